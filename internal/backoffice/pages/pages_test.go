package pages_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/resto-backoffice/internal/backoffice/pages"
	"github.com/tu-usuario/resto-backoffice/internal/backoffice/remote"
	"github.com/tu-usuario/resto-backoffice/internal/backoffice/table"
	"github.com/tu-usuario/resto-backoffice/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Cliente falso
// ──────────────────────────────────────────────────────────────────────────────

type fakeClient struct {
	inventory []remote.InventoryItem
	orders    []remote.Order
	suppliers []remote.Supplier
	changeLog []remote.ChangeLogEntry

	updatedItems     []string        // ids pasados a UpdateInventoryItem
	updatedSuppliers []string        // ids pasados a UpdateSupplier
	failItemUpdate   map[string]bool // ids cuya actualización falla
}

func (f *fakeClient) GetInventory(context.Context) ([]remote.InventoryItem, error) {
	return f.inventory, nil
}

func (f *fakeClient) GetLowStock(context.Context) ([]remote.InventoryItem, error) {
	var out []remote.InventoryItem
	for _, it := range f.inventory {
		if it.IsLowStock() {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeClient) UpdateInventoryItem(_ context.Context, item remote.InventoryItem) (*remote.InventoryItem, error) {
	if f.failItemUpdate[item.ID] {
		return nil, errors.New("boom")
	}
	f.updatedItems = append(f.updatedItems, item.ID)
	return &item, nil
}

func (f *fakeClient) GetOrders(context.Context) ([]remote.Order, error) { return f.orders, nil }

func (f *fakeClient) PlaceOrder(_ context.Context, order remote.Order) (*remote.Order, error) {
	created := order
	created.ID = "ORD-NEW"
	return &created, nil
}

func (f *fakeClient) UpdateOrderStatus(_ context.Context, id, status string) (*remote.Order, error) {
	return &remote.Order{ID: id, Status: status}, nil
}

func (f *fakeClient) GetSuppliers(context.Context) ([]remote.Supplier, error) {
	return f.suppliers, nil
}

func (f *fakeClient) CreateSupplier(_ context.Context, s remote.Supplier) (*remote.Supplier, error) {
	created := s
	created.ID = "SUP-NEW"
	return &created, nil
}

func (f *fakeClient) UpdateSupplier(_ context.Context, s remote.Supplier) (*remote.Supplier, error) {
	f.updatedSuppliers = append(f.updatedSuppliers, s.ID)
	return &s, nil
}

func (f *fakeClient) GetChangeLog(context.Context, string) ([]remote.ChangeLogEntry, error) {
	return f.changeLog, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func d(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

func seedInventory() []remote.InventoryItem {
	return []remote.InventoryItem{
		{ID: "1", Name: "Olive Oil", Category: "kitchen", Quantity: d("12"), Unit: "L",
			ReorderLevel: d("5"), UnitCost: d("15.99"), Supplier: "Fresh Farms"},
		{ID: "2", Name: "Flour", Category: "kitchen", Quantity: d("25"), Unit: "kg",
			ReorderLevel: d("10"), UnitCost: d("2.5"), Supplier: "Fresh Farms"},
		{ID: "7", Name: "Vodka Premium", Category: "bar", Quantity: d("8"), Unit: "bottles",
			ReorderLevel: d("5"), UnitCost: d("32"), Supplier: "Spirit Masters"},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Página de inventario
// ──────────────────────────────────────────────────────────────────────────────

func TestInventoryPage_LoadReparteSecciones(t *testing.T) {
	client := &fakeClient{inventory: seedInventory()}
	page := pages.NewInventoryPage(client, testLogger())
	require.NoError(t, page.Load(context.Background()))

	assert.Len(t, page.Kitchen.All(), 2)
	assert.Len(t, page.Bar.All(), 1)
	assert.Equal(t, "Vodka Premium", page.Bar.All()[0].Name)
}

// Enter tras editar persiste solo la fila que cambió.
func TestInventoryPage_CommitPersisteFilaCambiada(t *testing.T) {
	client := &fakeClient{inventory: seedInventory()}
	page := pages.NewInventoryPage(client, testLogger())
	require.NoError(t, page.Load(context.Background()))

	require.NoError(t, page.Kitchen.StartEdit("2"))
	require.NoError(t, page.Kitchen.SetField("quantity", "30"))
	require.NoError(t, page.HandleKey(context.Background(), pages.SectionKitchen, table.KeyEnter))

	assert.Equal(t, []string{"2"}, client.updatedItems, "una llamada por fila cambiada, ninguna por las demás")
}

// Confirmar sin cambios reales no dispara ninguna llamada.
func TestInventoryPage_CommitSinCambiosNoPersiste(t *testing.T) {
	client := &fakeClient{inventory: seedInventory()}
	page := pages.NewInventoryPage(client, testLogger())
	require.NoError(t, page.Load(context.Background()))

	require.NoError(t, page.Kitchen.StartEdit("2"))
	require.NoError(t, page.HandleKey(context.Background(), pages.SectionKitchen, table.KeyEnter))

	assert.Empty(t, client.updatedItems)
}

// Un fallo al persistir se loguea y se salta: no hay error hacia arriba ni
// rollback del estado local.
func TestInventoryPage_FalloDePersistenciaSeSalta(t *testing.T) {
	client := &fakeClient{
		inventory:      seedInventory(),
		failItemUpdate: map[string]bool{"2": true},
	}
	page := pages.NewInventoryPage(client, testLogger())
	require.NoError(t, page.Load(context.Background()))

	require.NoError(t, page.Kitchen.StartEdit("2"))
	require.NoError(t, page.Kitchen.SetField("quantity", "30"))
	require.NoError(t, page.HandleKey(context.Background(), pages.SectionKitchen, table.KeyEnter))

	for _, it := range page.Kitchen.All() {
		if it.ID == "2" {
			assert.True(t, it.Quantity.Equal(d("30")), "el estado local conserva la edición aunque el servidor falle")
		}
	}
}

// Escape no persiste nada.
func TestInventoryPage_EscapeNoPersiste(t *testing.T) {
	client := &fakeClient{inventory: seedInventory()}
	page := pages.NewInventoryPage(client, testLogger())
	require.NoError(t, page.Load(context.Background()))

	require.NoError(t, page.Kitchen.StartEdit("2"))
	require.NoError(t, page.Kitchen.SetField("quantity", "99"))
	require.NoError(t, page.HandleKey(context.Background(), pages.SectionKitchen, table.KeyEscape))

	assert.Empty(t, client.updatedItems)
}

// ──────────────────────────────────────────────────────────────────────────────
// Página de proveedores
// ──────────────────────────────────────────────────────────────────────────────

func TestSuppliersPage_CommitPersisteCambios(t *testing.T) {
	client := &fakeClient{suppliers: []remote.Supplier{
		{ID: "SUP-001", Name: "Fresh Farms", Category: "Produce", Rating: 4.9},
		{ID: "SUP-002", Name: "Premium Meats", Category: "Meat & Poultry", Rating: 4.7},
	}}
	page := pages.NewSuppliersPage(client, testLogger())
	require.NoError(t, page.Load(context.Background()))

	require.NoError(t, page.Table.StartEdit("SUP-001"))
	require.NoError(t, page.Table.SetField("category", "Dairy"))
	require.NoError(t, page.HandleKey(context.Background(), table.KeyEnter))

	assert.Equal(t, []string{"SUP-001"}, client.updatedSuppliers)
}

func TestSuppliersPage_AddIncorporaCreado(t *testing.T) {
	client := &fakeClient{}
	page := pages.NewSuppliersPage(client, testLogger())
	require.NoError(t, page.Load(context.Background()))

	require.NoError(t, page.Add(context.Background(), remote.Supplier{Name: "Ocean Catch"}))

	rows := page.Table.All()
	require.Len(t, rows, 1)
	assert.Equal(t, "SUP-NEW", rows[0].ID, "la tabla incorpora la versión persistida por el servidor")
}

// ──────────────────────────────────────────────────────────────────────────────
// Página de pedidos
// ──────────────────────────────────────────────────────────────────────────────

func TestOrdersPage_LoadYSugerencias(t *testing.T) {
	client := &fakeClient{
		inventory: []remote.InventoryItem{
			{ID: "9", Name: "Whiskey Bourbon", Category: "bar", Quantity: d("3"),
				ReorderLevel: d("5"), UnitCost: d("45"), Supplier: "Spirit Masters"},
		},
		orders:    []remote.Order{{ID: "ORD-001", Status: remote.StatusLowStock}},
		suppliers: []remote.Supplier{{ID: "SUP-003", Name: "Spirit Masters"}},
	}
	page := pages.NewOrdersPage(client, testLogger())
	require.NoError(t, page.Load(context.Background()))

	assert.Len(t, page.Board.Column(remote.StatusLowStock), 1)

	sugs := page.Suggestions()
	require.Len(t, sugs, 1)
	assert.Equal(t, "Whiskey Bourbon", sugs[0].Name)

	require.NoError(t, page.AddSuggestion(context.Background(), sugs[0]))
	assert.Len(t, page.Board.Orders(), 2, "el pedido creado se añade al tablero")
}
