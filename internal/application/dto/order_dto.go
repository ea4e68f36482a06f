package dto

import "github.com/shopspring/decimal"

// OrderItemPayload línea de pedido en el wire.
type OrderItemPayload struct {
	ID       string          `json:"id"`
	ItemName string          `json:"itemName"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"`
	Price    decimal.Decimal `json:"price"`
}

// OrderResponse registro de pedido en el wire.
type OrderResponse struct {
	ID           string             `json:"id"`
	Supplier     string             `json:"supplier"`
	Items        []OrderItemPayload `json:"items"`
	Status       string             `json:"status"`
	OrderDate    string             `json:"orderDate"`
	ExpectedDate string             `json:"expectedDate,omitempty"`
	TotalValue   decimal.Decimal    `json:"totalValue"`
}

// CreateOrderRequest alta de pedido. Status por defecto low-stock,
// OrderDate por defecto hoy, TotalValue se recalcula si viene en cero.
type CreateOrderRequest struct {
	Supplier     string             `json:"supplier"`
	Items        []OrderItemPayload `json:"items"`
	Status       string             `json:"status"`
	OrderDate    string             `json:"orderDate"`
	ExpectedDate string             `json:"expectedDate"`
	TotalValue   decimal.Decimal    `json:"totalValue"`
}

// UpdateOrderStatusRequest transición de estado del flujo.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}
