package usecase_test

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tu-usuario/resto-backoffice/internal/domain"
	"github.com/tu-usuario/resto-backoffice/internal/domain/entity"
	"github.com/tu-usuario/resto-backoffice/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los tests de casos de uso
// ──────────────────────────────────────────────────────────────────────────────

type memInventoryRepo struct {
	items []*entity.InventoryItem
}

func (r *memInventoryRepo) List() ([]*entity.InventoryItem, error) { return r.items, nil }

func (r *memInventoryRepo) ListLowStock() ([]*entity.InventoryItem, error) {
	var out []*entity.InventoryItem
	for _, it := range r.items {
		if it.Quantity.LessThan(it.ReorderLevel) {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *memInventoryRepo) GetByID(id string) (*entity.InventoryItem, error) {
	for _, it := range r.items {
		if it.ID == id {
			copia := *it
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *memInventoryRepo) GetByName(name string) (*entity.InventoryItem, error) {
	for _, it := range r.items {
		if it.Name == name {
			copia := *it
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *memInventoryRepo) Update(item *entity.InventoryItem) error {
	for i, it := range r.items {
		if it.ID == item.ID {
			copia := *item
			r.items[i] = &copia
			return nil
		}
	}
	return domain.ErrNotFound
}

type memSupplierRepo struct {
	suppliers []*entity.Supplier
}

func (r *memSupplierRepo) List() ([]*entity.Supplier, error) { return r.suppliers, nil }

func (r *memSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	for _, s := range r.suppliers {
		if s.ID == id {
			copia := *s
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *memSupplierRepo) GetByName(name string) (*entity.Supplier, error) {
	for _, s := range r.suppliers {
		if s.Name == name {
			copia := *s
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *memSupplierRepo) Create(s *entity.Supplier) error {
	r.suppliers = append(r.suppliers, s)
	return nil
}

func (r *memSupplierRepo) Update(s *entity.Supplier) error {
	for i, existing := range r.suppliers {
		if existing.ID == s.ID {
			copia := *s
			r.suppliers[i] = &copia
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memSupplierRepo) NextCode() (string, error) {
	return fmt.Sprintf("SUP-%03d", len(r.suppliers)+1), nil
}

type memOrderRepo struct {
	orders            []*entity.SupplierOrder
	updateStatusCalls int
}

func (r *memOrderRepo) List() ([]*entity.SupplierOrder, error) { return r.orders, nil }

func (r *memOrderRepo) GetByID(id string) (*entity.SupplierOrder, error) {
	for _, o := range r.orders {
		if o.ID == id {
			copia := *o
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *memOrderRepo) Create(o *entity.SupplierOrder) error {
	r.orders = append(r.orders, o)
	return nil
}

func (r *memOrderRepo) UpdateStatus(id, status string) error {
	r.updateStatusCalls++
	for _, o := range r.orders {
		if o.ID == id {
			o.Status = status
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memOrderRepo) NextCode() (string, error) {
	return fmt.Sprintf("ORD-%03d", len(r.orders)+1), nil
}

type memChangeLogRepo struct {
	entries []*entity.ChangeLogEntry
}

func (r *memChangeLogRepo) List() ([]*entity.ChangeLogEntry, error) { return r.entries, nil }

func (r *memChangeLogRepo) ListByItem(itemID string) ([]*entity.ChangeLogEntry, error) {
	var out []*entity.ChangeLogEntry
	for _, e := range r.entries {
		if e.ItemID == itemID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memChangeLogRepo) Create(e *entity.ChangeLogEntry) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	r.entries = append(r.entries, e)
	return nil
}

// memTxRunner pasa los repositorios tal cual; los tests no necesitan
// transaccionalidad real, solo el mismo contrato.
type memTxRunner struct {
	orders    repository.OrderRepository
	inventory repository.InventoryRepository
	suppliers repository.SupplierRepository
	changeLog repository.ChangeLogRepository
}

func (r *memTxRunner) Run(_ context.Context, fn func(
	repository.OrderRepository,
	repository.InventoryRepository,
	repository.SupplierRepository,
	repository.ChangeLogRepository,
) error) error {
	return fn(r.orders, r.inventory, r.suppliers, r.changeLog)
}

// stubPDF devuelve bytes fijos; el contenido real lo cubre el generador.
type stubPDF struct{}

func (stubPDF) GenerateOrderPDF(context.Context, *entity.SupplierOrder, *entity.Supplier) ([]byte, error) {
	return []byte("%PDF-stub"), nil
}
