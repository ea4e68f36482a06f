package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/resto-backoffice/internal/domain"
	"github.com/tu-usuario/resto-backoffice/internal/domain/entity"
	"github.com/tu-usuario/resto-backoffice/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL (usable con pool o tx).
// Los items viven en order_items con una columna position que preserva el orden de la secuencia.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para pedidos. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// List devuelve todos los pedidos con sus items, en orden de creación.
func (r *OrderRepo) List() ([]*entity.SupplierOrder, error) {
	query := `
		SELECT id, supplier, status, order_date, expected_date, total_value, created_at, updated_at
		FROM orders ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.SupplierOrder
	byID := make(map[string]*entity.SupplierOrder)
	for rows.Next() {
		var o entity.SupplierOrder
		if err := rows.Scan(&o.ID, &o.Supplier, &o.Status, &o.OrderDate, &o.ExpectedDate,
			&o.TotalValue, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		o.Items = []entity.OrderItem{}
		list = append(list, &o)
		byID[o.ID] = &o
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	itemRows, err := r.q.Query(context.Background(), `
		SELECT order_id, id, item_name, quantity, unit, price
		FROM order_items ORDER BY order_id, position`)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer itemRows.Close()
	for itemRows.Next() {
		var orderID string
		var it entity.OrderItem
		if err := itemRows.Scan(&orderID, &it.ID, &it.ItemName, &it.Quantity, &it.Unit, &it.Price); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		if o, ok := byID[orderID]; ok {
			o.Items = append(o.Items, it)
		}
	}
	return list, itemRows.Err()
}

// GetByID obtiene un pedido con sus items.
func (r *OrderRepo) GetByID(id string) (*entity.SupplierOrder, error) {
	query := `
		SELECT id, supplier, status, order_date, expected_date, total_value, created_at, updated_at
		FROM orders WHERE id = $1`
	var o entity.SupplierOrder
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.Supplier, &o.Status, &o.OrderDate, &o.ExpectedDate,
		&o.TotalValue, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	itemRows, err := r.q.Query(context.Background(), `
		SELECT id, item_name, quantity, unit, price
		FROM order_items WHERE order_id = $1 ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("get order items: %w", err)
	}
	defer itemRows.Close()
	o.Items = []entity.OrderItem{}
	for itemRows.Next() {
		var it entity.OrderItem
		if err := itemRows.Scan(&it.ID, &it.ItemName, &it.Quantity, &it.Unit, &it.Price); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		o.Items = append(o.Items, it)
	}
	return &o, itemRows.Err()
}

// Create persiste un pedido nuevo con todas sus líneas.
func (r *OrderRepo) Create(order *entity.SupplierOrder) error {
	query := `
		INSERT INTO orders (id, supplier, status, order_date, expected_date, total_value, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.Supplier, order.Status, order.OrderDate, order.ExpectedDate,
		order.TotalValue, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	for i, it := range order.Items {
		_, err := r.q.Exec(context.Background(), `
			INSERT INTO order_items (id, order_id, item_name, quantity, unit, price, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			it.ID, order.ID, it.ItemName, it.Quantity, it.Unit, it.Price, i,
		)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

// UpdateStatus cambia el estado del flujo de un pedido.
func (r *OrderRepo) UpdateStatus(id, status string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// NextCode devuelve el siguiente código ORD-xxx según el mayor sufijo numérico existente.
func (r *OrderRepo) NextCode() (string, error) {
	var max int
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(MAX(CAST(SUBSTRING(id FROM 5) AS INTEGER)), 0) FROM orders WHERE id LIKE 'ORD-%'`,
	).Scan(&max)
	if err != nil {
		return "", fmt.Errorf("next order code: %w", err)
	}
	return fmt.Sprintf("ORD-%03d", max+1), nil
}
