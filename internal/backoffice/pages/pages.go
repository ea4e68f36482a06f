// Package pages contiene los coordinadores de las tres vistas del
// back-office: inventario, proveedores y pedidos. Cada página carga sus
// colecciones del servicio de datos, monta sus tablas o tablero y
// persiste las ediciones fila a fila.
package pages

import (
	"context"
	"reflect"

	"github.com/tu-usuario/resto-backoffice/internal/backoffice/remote"
	"github.com/tu-usuario/resto-backoffice/pkg/logger"
)

// Client superficie del servicio de datos que consumen las páginas.
type Client interface {
	GetInventory(ctx context.Context) ([]remote.InventoryItem, error)
	GetLowStock(ctx context.Context) ([]remote.InventoryItem, error)
	UpdateInventoryItem(ctx context.Context, item remote.InventoryItem) (*remote.InventoryItem, error)

	GetOrders(ctx context.Context) ([]remote.Order, error)
	PlaceOrder(ctx context.Context, order remote.Order) (*remote.Order, error)
	UpdateOrderStatus(ctx context.Context, id, status string) (*remote.Order, error)

	GetSuppliers(ctx context.Context) ([]remote.Supplier, error)
	CreateSupplier(ctx context.Context, s remote.Supplier) (*remote.Supplier, error)
	UpdateSupplier(ctx context.Context, s remote.Supplier) (*remote.Supplier, error)

	GetChangeLog(ctx context.Context, itemID string) ([]remote.ChangeLogEntry, error)
}

// persistChanged compara la colección previa con la confirmada y lanza una
// actualización por cada fila que cambió. Las llamadas son independientes
// y no transaccionales: un fallo se loguea y se salta, sin deshacer el
// estado local ni las filas ya persistidas.
func persistChanged[T any](
	ctx context.Context,
	log *logger.Logger,
	previous, updated []T,
	idOf func(T) string,
	persist func(context.Context, T) error,
) {
	before := make(map[string]T, len(previous))
	for _, row := range previous {
		before[idOf(row)] = row
	}
	for _, row := range updated {
		prev, ok := before[idOf(row)]
		if ok && reflect.DeepEqual(prev, row) {
			continue
		}
		if err := persist(ctx, row); err != nil {
			log.Warn().Err(err).
				Str("id", idOf(row)).
				Msg("persistir fila editada falló, se omite")
		}
	}
}
