package pages

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/resto-backoffice/internal/backoffice/board"
	"github.com/tu-usuario/resto-backoffice/internal/backoffice/remote"
	"github.com/tu-usuario/resto-backoffice/pkg/logger"
)

// OrdersPage página de pedidos: tablero de tres columnas más las
// sugerencias de reposición calculadas sobre inventario y proveedores.
type OrdersPage struct {
	client Client
	log    *logger.Logger

	Board *board.Board

	items     []remote.InventoryItem
	suppliers []remote.Supplier

	now func() time.Time
}

// NewOrdersPage construye la página y su tablero.
func NewOrdersPage(client Client, log *logger.Logger) *OrdersPage {
	return &OrdersPage{
		client: client,
		log:    log,
		Board:  board.New(client, log),
		now:    time.Now,
	}
}

// Load trae pedidos, inventario y proveedores y reemplaza el tablero.
// Cualquier optimismo local pendiente se descarta.
func (p *OrdersPage) Load(ctx context.Context) error {
	orders, err := p.client.GetOrders(ctx)
	if err != nil {
		return fmt.Errorf("cargar pedidos: %w", err)
	}
	items, err := p.client.GetInventory(ctx)
	if err != nil {
		return fmt.Errorf("cargar inventario: %w", err)
	}
	suppliers, err := p.client.GetSuppliers(ctx)
	if err != nil {
		return fmt.Errorf("cargar proveedores: %w", err)
	}

	p.Board.Replace(orders)
	p.items = items
	p.suppliers = suppliers
	return nil
}

// Suggestions devuelve los artículos candidatos a pedido de reposición.
func (p *OrdersPage) Suggestions() []remote.InventoryItem {
	return p.Board.LowStockSuggestions(p.items, p.suppliers)
}

// AddSuggestion crea el pedido de reposición para un artículo sugerido,
// fechado hoy.
func (p *OrdersPage) AddSuggestion(ctx context.Context, item remote.InventoryItem) error {
	return p.Board.AddLowStockItem(ctx, item, p.now().Format("2006-01-02"))
}

// Move mueve un pedido de columna (drag & drop). El error ya viene
// logueado y el tablero restaurado; aquí solo se propaga para la UI.
func (p *OrdersPage) Move(ctx context.Context, id, status string) error {
	return p.Board.MoveOrder(ctx, id, status)
}

// Place confirma un pedido sugerido.
func (p *OrdersPage) Place(ctx context.Context, id string) error {
	return p.Board.PlaceOrder(ctx, id)
}

// Arrived marca un pedido en tránsito como recibido. El inventario y el
// histórico los actualiza el servidor; la siguiente recarga los refleja.
func (p *OrdersPage) Arrived(ctx context.Context, id string) error {
	return p.Board.MarkArrived(ctx, id)
}
