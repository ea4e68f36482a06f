package pages

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/resto-backoffice/internal/backoffice/remote"
	"github.com/tu-usuario/resto-backoffice/internal/backoffice/table"
	"github.com/tu-usuario/resto-backoffice/pkg/logger"
)

// SupplierCategories opciones del desplegable de categoría.
var SupplierCategories = []string{
	"Produce",
	"Meat & Poultry",
	"Seafood",
	"Dairy",
	"Spirits",
	"Beverages",
	"Dry Goods",
}

// SuppliersPage página de proveedores: una tabla editable.
type SuppliersPage struct {
	client Client
	log    *logger.Logger

	Table *table.Table[remote.Supplier]
}

// NewSuppliersPage construye la página con su esquema de columnas.
func NewSuppliersPage(client Client, log *logger.Logger) *SuppliersPage {
	return &SuppliersPage{
		client: client,
		log:    log,
		Table: table.New(
			func(s remote.Supplier) string { return s.ID },
			supplierColumns(),
		),
	}
}

// supplierColumns: el email enlaza a mailto; la categoría es un
// desplegable; la fecha del último pedido la estampa el servidor.
func supplierColumns() []table.Column[remote.Supplier] {
	return []table.Column[remote.Supplier]{
		{
			Key: "name", Title: "Proveedor", Kind: table.KindText, Editable: true,
			Value:  func(s remote.Supplier) any { return s.Name },
			Assign: func(s *remote.Supplier, v string) { s.Name = v },
		},
		{
			Key: "contact", Title: "Contacto", Kind: table.KindText, Editable: true,
			Value:  func(s remote.Supplier) any { return s.Contact },
			Assign: func(s *remote.Supplier, v string) { s.Contact = v },
		},
		{
			Key: "email", Title: "Email", Kind: table.KindText, Editable: true,
			Value:  func(s remote.Supplier) any { return s.Email },
			Assign: func(s *remote.Supplier, v string) { s.Email = v },
			Link:   func(s remote.Supplier) string { return "mailto:" + s.Email },
		},
		{
			Key: "phone", Title: "Teléfono", Kind: table.KindText, Editable: true,
			Value:  func(s remote.Supplier) any { return s.Phone },
			Assign: func(s *remote.Supplier, v string) { s.Phone = v },
		},
		{
			Key: "category", Title: "Categoría", Kind: table.KindChoice, Editable: true,
			Choices: SupplierCategories,
			Value:   func(s remote.Supplier) any { return s.Category },
			Assign:  func(s *remote.Supplier, v string) { s.Category = v },
		},
		{
			Key: "rating", Title: "Valoración", Kind: table.KindNumber, Editable: true,
			Value: func(s remote.Supplier) any { return s.Rating },
			AssignNumber: func(s *remote.Supplier, v decimal.Decimal) {
				s.Rating, _ = v.Float64()
			},
		},
		{
			Key: "lastOrder", Title: "Último pedido", Kind: table.KindText,
			Value: func(s remote.Supplier) any { return s.LastOrder },
		},
	}
}

// Load trae la colección de proveedores.
func (p *SuppliersPage) Load(ctx context.Context) error {
	suppliers, err := p.client.GetSuppliers(ctx)
	if err != nil {
		return fmt.Errorf("cargar proveedores: %w", err)
	}
	p.Table.SetRows(suppliers)
	return nil
}

// HandleKey enruta una tecla a la tabla; Enter persiste las filas que
// cambiaron, una llamada por fila.
func (p *SuppliersPage) HandleKey(ctx context.Context, k table.Key) error {
	previous := p.Table.Rows()
	updated, err := p.Table.HandleKey(k)
	if err != nil {
		return err
	}
	if updated == nil {
		return nil
	}
	persistChanged(ctx, p.log, previous, updated,
		func(s remote.Supplier) string { return s.ID },
		func(ctx context.Context, s remote.Supplier) error {
			_, err := p.client.UpdateSupplier(ctx, s)
			return err
		})
	return nil
}

// Add da de alta un proveedor y lo incorpora a la tabla.
func (p *SuppliersPage) Add(ctx context.Context, s remote.Supplier) error {
	created, err := p.client.CreateSupplier(ctx, s)
	if err != nil {
		return fmt.Errorf("crear proveedor %s: %w", s.Name, err)
	}
	p.Table.SetRows(append(p.Table.All(), *created))
	return nil
}

// FormatRating representa la valoración con un decimal ("4.7").
func FormatRating(r float64) string {
	return strconv.FormatFloat(r, 'f', 1, 64)
}
