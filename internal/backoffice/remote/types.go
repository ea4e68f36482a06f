package remote

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cantidades e importes viajan como números JSON, no como strings.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Estados de un pedido tal como viajan por el API.
const (
	StatusLowStock = "low-stock"
	StatusPlaced   = "order-placed"
	StatusReceived = "order-received"
)

// Tipos de entrada del histórico.
const (
	ChangeTypeCount         = "inventory-count"
	ChangeTypeOrderReceived = "order-received"
)

// InventoryItem artículo de inventario tal como lo sirve el servicio de datos.
type InventoryItem struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
	ReorderLevel decimal.Decimal `json:"reorderLevel"`
	UnitCost     decimal.Decimal `json:"unitCost"`
	Supplier     string          `json:"supplier"`
	LastUpdated  string          `json:"lastUpdated"`
}

// IsLowStock indica si la cantidad está por debajo del nivel de reposición.
func (i InventoryItem) IsLowStock() bool {
	return i.Quantity.LessThan(i.ReorderLevel)
}

// OrderItem línea de un pedido.
type OrderItem struct {
	ID       string          `json:"id"`
	ItemName string          `json:"itemName"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"`
	Price    decimal.Decimal `json:"price"`
}

// Order pedido de compra a proveedor.
type Order struct {
	ID           string          `json:"id"`
	Supplier     string          `json:"supplier"`
	Items        []OrderItem     `json:"items"`
	Status       string          `json:"status"`
	OrderDate    string          `json:"orderDate"`
	ExpectedDate string          `json:"expectedDate,omitempty"`
	TotalValue   decimal.Decimal `json:"totalValue"`
}

// Supplier proveedor.
type Supplier struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Contact   string  `json:"contact"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Category  string  `json:"category"`
	Rating    float64 `json:"rating"`
	LastOrder string  `json:"lastOrder"`
}

// ChangeLogEntry entrada del histórico de cambios de cantidad.
type ChangeLogEntry struct {
	ID               string          `json:"id"`
	ItemID           string          `json:"itemId"`
	Timestamp        time.Time       `json:"timestamp"`
	User             string          `json:"user"`
	Type             string          `json:"type"`
	PreviousQuantity decimal.Decimal `json:"previousQuantity"`
	NewQuantity      decimal.Decimal `json:"newQuantity"`
	OrderID          string          `json:"orderId,omitempty"`
	Supplier         string          `json:"supplier,omitempty"`
}
