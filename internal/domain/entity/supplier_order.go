package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del flujo de pedidos (tres columnas fijas del tablero).
const (
	OrderStatusLowStock = "low-stock"
	OrderStatusPlaced   = "order-placed"
	OrderStatusReceived = "order-received"
)

// ValidOrderStatus indica si s es uno de los tres estados del flujo.
func ValidOrderStatus(s string) bool {
	return s == OrderStatusLowStock || s == OrderStatusPlaced || s == OrderStatusReceived
}

// SupplierOrder representa un pedido de compra a un proveedor.
// TotalValue debería ser la suma de Price×Quantity de sus items; no se
// reimpone tras mutaciones ad-hoc del cliente.
type SupplierOrder struct {
	ID           string // código ORD-xxx
	Supplier     string // nombre del proveedor, no ID
	Items        []OrderItem
	Status       string // low-stock | order-placed | order-received
	OrderDate    string // YYYY-MM-DD
	ExpectedDate string // YYYY-MM-DD, vacío si no hay fecha estimada
	TotalValue   decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OrderItem es una línea de pedido; pertenece en exclusiva a su SupplierOrder.
type OrderItem struct {
	ID       string
	ItemName string // nombre del artículo de inventario, desnormalizado
	Quantity decimal.Decimal
	Unit     string
	Price    decimal.Decimal // precio unitario
}

// LineTotal devuelve Price×Quantity de la línea.
func (it OrderItem) LineTotal() decimal.Decimal {
	return it.Price.Mul(it.Quantity)
}

// ComputedTotal suma los LineTotal de todos los items.
func (o *SupplierOrder) ComputedTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.LineTotal())
	}
	return total
}
