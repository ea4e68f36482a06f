package usecase

import (
	"context"

	"github.com/tu-usuario/resto-backoffice/internal/domain/entity"
	"github.com/tu-usuario/resto-backoffice/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza atomicidad para la recepción de pedidos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		inventoryRepo repository.InventoryRepository,
		supplierRepo repository.SupplierRepository,
		changeLogRepo repository.ChangeLogRepository,
	) error) error
}

// OrderPDFGenerator define el puerto de salida para la representación PDF de un pedido de compra.
// supplier puede ser nil si el nombre desnormalizado no resuelve a ningún proveedor.
type OrderPDFGenerator interface {
	GenerateOrderPDF(ctx context.Context, order *entity.SupplierOrder, supplier *entity.Supplier) ([]byte, error)
}
