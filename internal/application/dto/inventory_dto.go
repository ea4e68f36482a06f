package dto

import "github.com/shopspring/decimal"

// InventoryItemResponse registro de inventario en el wire (campos camelCase del dashboard).
type InventoryItemResponse struct {
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

// UpdateInventoryItemRequest actualización parcial de un artículo.
// Los campos nil no se tocan (el cliente manda el registro completo; da igual).
type UpdateInventoryItemRequest struct {
	Name         *string          `json:"name"`
	Category     *string          `json:"category"`
	Quantity     *decimal.Decimal `json:"quantity"`
	Unit         *string          `json:"unit"`
	ReorderLevel *decimal.Decimal `json:"reorderLevel"`
	UnitCost     *decimal.Decimal `json:"unitCost"`
	Supplier     *string          `json:"supplier"`
}
