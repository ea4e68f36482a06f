package repository

import "github.com/tu-usuario/resto-backoffice/internal/domain/entity"

// OrderRepository define el puerto de persistencia para SupplierOrder y sus items.
type OrderRepository interface {
	List() ([]*entity.SupplierOrder, error)
	GetByID(id string) (*entity.SupplierOrder, error)
	Create(order *entity.SupplierOrder) error
	UpdateStatus(id, status string) error
	// NextCode devuelve el siguiente código de despliegue ORD-xxx.
	NextCode() (string, error)
}
