package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de evento del histórico de cambios de cantidad.
const (
	ChangeTypeCount         = "inventory-count" // conteo manual
	ChangeTypeOrderReceived = "order-received"  // entrada por pedido recibido
)

// ChangeLogEntry registra un cambio de cantidad sobre un artículo de inventario.
// Es append-only: el cliente nunca lo muta ni lo borra.
type ChangeLogEntry struct {
	ID               string
	ItemID           string
	Timestamp        time.Time
	User             string // quien hizo el conteo; "System" para entradas automáticas
	Type             string // inventory-count | order-received
	PreviousQuantity decimal.Decimal
	NewQuantity      decimal.Decimal
	OrderID          string // solo cuando Type es order-received
	Supplier         string // solo cuando Type es order-received
}
