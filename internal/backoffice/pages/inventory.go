package pages

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/resto-backoffice/internal/backoffice/remote"
	"github.com/tu-usuario/resto-backoffice/internal/backoffice/table"
	"github.com/tu-usuario/resto-backoffice/pkg/logger"
)

// Secciones de la página de inventario, una tabla por categoría.
const (
	SectionKitchen = "kitchen"
	SectionBar     = "bar"
)

// InventoryPage página de inventario: dos tablas editables (cocina y
// barra) sobre la misma colección remota.
type InventoryPage struct {
	client Client
	log    *logger.Logger

	Kitchen *table.Table[remote.InventoryItem]
	Bar     *table.Table[remote.InventoryItem]
}

// NewInventoryPage construye la página con su esquema de columnas.
func NewInventoryPage(client Client, log *logger.Logger) *InventoryPage {
	idOf := func(i remote.InventoryItem) string { return i.ID }
	return &InventoryPage{
		client:  client,
		log:     log,
		Kitchen: table.New(idOf, inventoryColumns()),
		Bar:     table.New(idOf, inventoryColumns()),
	}
}

// inventoryColumns esquema compartido por ambas secciones. El nombre es
// clicable (abre el panel de histórico del artículo); la fecha de último
// conteo la estampa el servidor y no se edita.
func inventoryColumns() []table.Column[remote.InventoryItem] {
	return []table.Column[remote.InventoryItem]{
		{
			Key: "name", Title: "Artículo", Kind: table.KindText, Editable: true, Clickable: true,
			Value:  func(i remote.InventoryItem) any { return i.Name },
			Assign: func(i *remote.InventoryItem, v string) { i.Name = v },
		},
		{
			Key: "quantity", Title: "Cantidad", Kind: table.KindNumber, Editable: true,
			Value:        func(i remote.InventoryItem) any { return i.Quantity },
			AssignNumber: func(i *remote.InventoryItem, v decimal.Decimal) { i.Quantity = v },
		},
		{
			Key: "unit", Title: "Unidad", Kind: table.KindText, Editable: true,
			Value:  func(i remote.InventoryItem) any { return i.Unit },
			Assign: func(i *remote.InventoryItem, v string) { i.Unit = v },
		},
		{
			Key: "reorderLevel", Title: "Nivel de reposición", Kind: table.KindNumber, Editable: true,
			Value:        func(i remote.InventoryItem) any { return i.ReorderLevel },
			AssignNumber: func(i *remote.InventoryItem, v decimal.Decimal) { i.ReorderLevel = v },
		},
		{
			Key: "unitCost", Title: "Coste unitario", Kind: table.KindNumber, Editable: true,
			Value:        func(i remote.InventoryItem) any { return i.UnitCost },
			AssignNumber: func(i *remote.InventoryItem, v decimal.Decimal) { i.UnitCost = v },
		},
		{
			Key: "supplier", Title: "Proveedor", Kind: table.KindText, Editable: true,
			Value:  func(i remote.InventoryItem) any { return i.Supplier },
			Assign: func(i *remote.InventoryItem, v string) { i.Supplier = v },
		},
		{
			Key: "lastUpdated", Title: "Último conteo", Kind: table.KindText,
			Value: func(i remote.InventoryItem) any { return i.LastUpdated },
		},
	}
}

// Load trae el inventario completo y lo reparte entre las dos tablas.
func (p *InventoryPage) Load(ctx context.Context) error {
	items, err := p.client.GetInventory(ctx)
	if err != nil {
		return fmt.Errorf("cargar inventario: %w", err)
	}
	var kitchen, bar []remote.InventoryItem
	for _, it := range items {
		switch it.Category {
		case SectionBar:
			bar = append(bar, it)
		default:
			kitchen = append(kitchen, it)
		}
	}
	p.Kitchen.SetRows(kitchen)
	p.Bar.SetRows(bar)
	return nil
}

// Section devuelve la tabla de una sección; nil si no existe.
func (p *InventoryPage) Section(name string) *table.Table[remote.InventoryItem] {
	switch name {
	case SectionKitchen:
		return p.Kitchen
	case SectionBar:
		return p.Bar
	}
	return nil
}

// HandleKey enruta una tecla a la tabla de la sección. Enter confirma la
// edición y persiste cada fila cambiada con una llamada independiente;
// Escape descarta el borrador.
func (p *InventoryPage) HandleKey(ctx context.Context, section string, k table.Key) error {
	t := p.Section(section)
	if t == nil {
		return fmt.Errorf("sección de inventario desconocida: %q", section)
	}
	previous := t.Rows()
	updated, err := t.HandleKey(k)
	if err != nil {
		return err
	}
	if updated == nil {
		return nil
	}
	persistChanged(ctx, p.log, previous, updated,
		func(i remote.InventoryItem) string { return i.ID },
		func(ctx context.Context, i remote.InventoryItem) error {
			_, err := p.client.UpdateInventoryItem(ctx, i)
			return err
		})
	return nil
}

// ChangeLog trae el histórico del artículo clicado.
func (p *InventoryPage) ChangeLog(ctx context.Context, itemID string) ([]remote.ChangeLogEntry, error) {
	entries, err := p.client.GetChangeLog(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("cargar histórico de %s: %w", itemID, err)
	}
	return entries, nil
}
