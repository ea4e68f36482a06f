package repository

import "github.com/tu-usuario/resto-backoffice/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	List() ([]*entity.Supplier, error)
	GetByID(id string) (*entity.Supplier, error)
	GetByName(name string) (*entity.Supplier, error)
	Create(supplier *entity.Supplier) error
	Update(supplier *entity.Supplier) error
	// NextCode devuelve el siguiente código de despliegue SUP-xxx.
	NextCode() (string, error)
}
