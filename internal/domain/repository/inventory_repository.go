package repository

import "github.com/tu-usuario/resto-backoffice/internal/domain/entity"

// InventoryRepository define el puerto de persistencia para InventoryItem (DIP).
type InventoryRepository interface {
	List() ([]*entity.InventoryItem, error)
	ListLowStock() ([]*entity.InventoryItem, error)
	GetByID(id string) (*entity.InventoryItem, error)
	GetByName(name string) (*entity.InventoryItem, error)
	Update(item *entity.InventoryItem) error
}
