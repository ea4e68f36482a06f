package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/resto-backoffice/internal/application/usecase"
	"github.com/tu-usuario/resto-backoffice/internal/domain/repository"
)

// Ensure TxRunner implements usecase.TxRunner.
var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// Garantiza atomicidad para la recepción de pedidos (pedido + inventario + histórico + proveedor).
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	inventoryRepo repository.InventoryRepository,
	supplierRepo repository.SupplierRepository,
	changeLogRepo repository.ChangeLogRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	orderRepo := NewOrderRepository(tx)
	inventoryRepo := NewInventoryRepository(tx)
	supplierRepo := NewSupplierRepository(tx)
	changeLogRepo := NewChangeLogRepository(tx)

	if err := fn(orderRepo, inventoryRepo, supplierRepo, changeLogRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
