// Package board implementa el tablero de pedidos de tres columnas
// (low-stock, order-placed, order-received) con actualizaciones optimistas
// contra el servicio de datos.
package board

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/resto-backoffice/internal/backoffice/remote"
	"github.com/tu-usuario/resto-backoffice/internal/domain"
	"github.com/tu-usuario/resto-backoffice/pkg/logger"
)

// Client operaciones del servicio de datos que consume el tablero.
type Client interface {
	PlaceOrder(ctx context.Context, order remote.Order) (*remote.Order, error)
	UpdateOrderStatus(ctx context.Context, id, status string) (*remote.Order, error)
}

// Board copia local mutable de los pedidos. Las transiciones se aplican
// primero en local y después se confirman contra el servidor; Replace
// descarta todo optimismo local cuando llega una colección fresca.
type Board struct {
	client Client
	log    *logger.Logger

	orders   []remote.Order
	upstream []remote.Order // última colección confirmada por el servidor
}

// New construye el tablero.
func New(client Client, log *logger.Logger) *Board {
	return &Board{client: client, log: log}
}

// Replace sustituye la colección local por la del servidor.
func (b *Board) Replace(orders []remote.Order) {
	b.orders = append([]remote.Order(nil), orders...)
	b.upstream = append([]remote.Order(nil), orders...)
}

// Orders devuelve la colección local completa.
func (b *Board) Orders() []remote.Order {
	return append([]remote.Order(nil), b.orders...)
}

// Column devuelve los pedidos de una columna, en orden de colección.
func (b *Board) Column(status string) []remote.Order {
	var out []remote.Order
	for _, o := range b.orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out
}

// MoveOrder mueve un pedido a otra columna (drag & drop). Soltar en la
// misma columna no hace nada, ni siquiera la llamada de red. El cambio se
// aplica en local de inmediato; si el servidor rechaza, la colección local
// vuelve a la última versión confirmada.
func (b *Board) MoveOrder(ctx context.Context, id, status string) error {
	idx := b.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("pedido %q: %w", id, domain.ErrNotFound)
	}
	if b.orders[idx].Status == status {
		return nil
	}

	previous := b.orders[idx].Status
	b.orders[idx].Status = status

	if _, err := b.client.UpdateOrderStatus(ctx, id, status); err != nil {
		b.log.Warn().Err(err).
			Str("order", id).
			Str("from", previous).
			Str("to", status).
			Msg("mover pedido rechazado, recargando tablero")
		b.orders = append([]remote.Order(nil), b.upstream...)
		return fmt.Errorf("mover pedido %s: %w", id, err)
	}
	return nil
}

// PlaceOrder pasa un pedido sugerido a order-placed. El cambio local se
// mantiene aunque el servidor falle; la siguiente recarga reconcilia.
func (b *Board) PlaceOrder(ctx context.Context, id string) error {
	return b.flip(ctx, id, remote.StatusPlaced)
}

// MarkArrived pasa un pedido en tránsito a order-received. Sin rollback,
// igual que PlaceOrder.
func (b *Board) MarkArrived(ctx context.Context, id string) error {
	return b.flip(ctx, id, remote.StatusReceived)
}

func (b *Board) flip(ctx context.Context, id, status string) error {
	idx := b.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("pedido %q: %w", id, domain.ErrNotFound)
	}
	b.orders[idx].Status = status

	if _, err := b.client.UpdateOrderStatus(ctx, id, status); err != nil {
		b.log.Warn().Err(err).
			Str("order", id).
			Str("to", status).
			Msg("confirmación de transición falló")
		return fmt.Errorf("transición de pedido %s: %w", id, err)
	}
	return nil
}

// LowStockSuggestions devuelve los artículos candidatos a pedido: cantidad
// por debajo del nivel de reposición, proveedor resoluble por nombre
// exacto y sin ningún pedido vivo (estado distinto de order-received) que
// ya contenga un artículo con el mismo nombre.
func (b *Board) LowStockSuggestions(items []remote.InventoryItem, suppliers []remote.Supplier) []remote.InventoryItem {
	byName := make(map[string]struct{}, len(suppliers))
	for _, s := range suppliers {
		byName[s.Name] = struct{}{}
	}

	pending := make(map[string]struct{})
	for _, o := range b.orders {
		if o.Status == remote.StatusReceived {
			continue
		}
		for _, l := range o.Items {
			pending[l.ItemName] = struct{}{}
		}
	}

	var out []remote.InventoryItem
	for _, it := range items {
		if !it.IsLowStock() {
			continue
		}
		if _, ok := byName[it.Supplier]; !ok {
			continue
		}
		if _, ok := pending[it.Name]; ok {
			continue
		}
		out = append(out, it)
	}
	return out
}

// AddLowStockItem crea un pedido nuevo para el artículo sugerido. La
// cantidad repone hasta el doble del nivel de reposición, con mínimo de
// una unidad. Cada clic crea un pedido independiente, aunque ya exista
// otro del mismo proveedor. Si el servidor falla, la sugerencia se
// abandona sin tocar la colección local.
func (b *Board) AddLowStockItem(ctx context.Context, item remote.InventoryItem, orderDate string) error {
	qty := item.ReorderLevel.Mul(decimal.NewFromInt(2)).Sub(item.Quantity)
	if qty.LessThan(decimal.NewFromInt(1)) {
		qty = decimal.NewFromInt(1)
	}

	order := remote.Order{
		Supplier: item.Supplier,
		Items: []remote.OrderItem{{
			ItemName: item.Name,
			Quantity: qty,
			Unit:     item.Unit,
			Price:    item.UnitCost,
		}},
		Status:     remote.StatusLowStock,
		OrderDate:  orderDate,
		TotalValue: item.UnitCost.Mul(qty),
	}

	created, err := b.client.PlaceOrder(ctx, order)
	if err != nil {
		b.log.Error().Err(err).
			Str("item", item.Name).
			Str("supplier", item.Supplier).
			Msg("crear pedido de reposición falló")
		return fmt.Errorf("crear pedido para %s: %w", item.Name, err)
	}

	b.orders = append(b.orders, *created)
	return nil
}

func (b *Board) indexOf(id string) int {
	for i := range b.orders {
		if b.orders[i].ID == id {
			return i
		}
	}
	return -1
}
