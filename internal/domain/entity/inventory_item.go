package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de inventario del restaurante.
const (
	CategoryKitchen = "kitchen"
	CategoryBar     = "bar"
)

// InventoryItem representa un artículo de stock de cocina o barra.
// El estado "low stock" no se almacena: se deriva de Quantity < ReorderLevel.
// Supplier es una referencia desnormalizada por nombre (igualdad exacta de strings).
type InventoryItem struct {
	ID           string
	Name         string
	Category     string // kitchen | bar
	Quantity     decimal.Decimal
	Unit         string // kg, L, bottles, ...
	ReorderLevel decimal.Decimal
	UnitCost     decimal.Decimal
	Supplier     string // nombre del proveedor, no ID
	LastUpdated  string // fecha YYYY-MM-DD, formato del wire
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsLowStock indica si el artículo está por debajo de su punto de reorden.
func (i *InventoryItem) IsLowStock() bool {
	return i.Quantity.LessThan(i.ReorderLevel)
}
