package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tu-usuario/resto-backoffice/internal/domain/entity"
	"github.com/tu-usuario/resto-backoffice/internal/domain/repository"
)

var _ repository.ChangeLogRepository = (*ChangeLogRepo)(nil)

const changeLogColumns = `id, item_id, ts, username, type, previous_quantity, new_quantity, order_id, supplier`

// ChangeLogRepo implementación del puerto ChangeLogRepository sobre PostgreSQL (usable con pool o tx).
type ChangeLogRepo struct {
	q Querier
}

// NewChangeLogRepository construye el adaptador de persistencia del histórico. Pasar pool o tx (Querier).
func NewChangeLogRepository(q Querier) *ChangeLogRepo {
	return &ChangeLogRepo{q: q}
}

// List devuelve el histórico completo, más reciente primero.
func (r *ChangeLogRepo) List() ([]*entity.ChangeLogEntry, error) {
	query := `SELECT ` + changeLogColumns + ` FROM change_log ORDER BY ts DESC, id`
	return r.queryEntries(query)
}

// ListByItem devuelve las entradas de un artículo, más reciente primero.
func (r *ChangeLogRepo) ListByItem(itemID string) ([]*entity.ChangeLogEntry, error) {
	query := `SELECT ` + changeLogColumns + ` FROM change_log WHERE item_id = $1 ORDER BY ts DESC, id`
	return r.queryEntries(query, itemID)
}

func (r *ChangeLogRepo) queryEntries(query string, args ...any) ([]*entity.ChangeLogEntry, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list change log: %w", err)
	}
	defer rows.Close()
	var list []*entity.ChangeLogEntry
	for rows.Next() {
		var e entity.ChangeLogEntry
		if err := rows.Scan(&e.ID, &e.ItemID, &e.Timestamp, &e.User, &e.Type,
			&e.PreviousQuantity, &e.NewQuantity, &e.OrderID, &e.Supplier); err != nil {
			return nil, fmt.Errorf("scan change log entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Create agrega una entrada al histórico. Nunca hay update ni delete.
func (r *ChangeLogRepo) Create(entry *entity.ChangeLogEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	query := `
		INSERT INTO change_log (id, item_id, ts, username, type, previous_quantity, new_quantity, order_id, supplier)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.ItemID, entry.Timestamp, entry.User, entry.Type,
		entry.PreviousQuantity, entry.NewQuantity, entry.OrderID, entry.Supplier,
	)
	if err != nil {
		return fmt.Errorf("insert change log entry: %w", err)
	}
	return nil
}
