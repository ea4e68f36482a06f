package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChangeLogEntryResponse entrada del histórico en el wire.
type ChangeLogEntryResponse struct {
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
