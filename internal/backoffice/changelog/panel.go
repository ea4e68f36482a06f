// Package changelog implementa el panel de histórico de cambios de un
// artículo: filtrado puro y delta por entrada listos para renderizar.
package changelog

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/resto-backoffice/internal/backoffice/remote"
)

// Entry entrada del histórico enriquecida para el panel.
type Entry struct {
	remote.ChangeLogEntry

	Delta    decimal.Decimal // NewQuantity - PreviousQuantity
	Positive bool            // delta >= 0; decide el signo y el color
}

// ForItem filtra el histórico por artículo preservando el orden de
// entrada. itemID vacío devuelve el histórico completo.
func ForItem(entries []remote.ChangeLogEntry, itemID string) []Entry {
	var out []Entry
	for _, e := range entries {
		if itemID != "" && e.ItemID != itemID {
			continue
		}
		delta := e.NewQuantity.Sub(e.PreviousQuantity)
		out = append(out, Entry{
			ChangeLogEntry: e,
			Delta:          delta,
			Positive:       !delta.IsNegative(),
		})
	}
	return out
}

// FormatDelta representa el delta con signo explícito: "+3", "-5", "+0".
func FormatDelta(e Entry) string {
	if e.Positive {
		return "+" + e.Delta.String()
	}
	return e.Delta.String()
}
