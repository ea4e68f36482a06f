// seed genera el script SQL con el dataset de demostración del back-office
// (inventario, proveedores, pedidos e histórico de un restaurante).
//
// Uso: go run ./cmd/seed
// Escribe: internal/infrastructure/postgres/migrations/002_seed_data.sql
//
// El script es idempotente: todos los INSERT llevan ON CONFLICT.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type seedSupplier struct {
	id, name, contact, email, phone, category string
	rating                                    float64
	lastOrder                                 string
}

type seedItem struct {
	id, name, category     string
	quantity               float64
	unit                   string
	reorderLevel, unitCost float64
	supplier, lastUpdated  string
}

type seedOrderLine struct {
	id, itemName string
	quantity     float64
	unit         string
	price        float64
}

type seedOrder struct {
	id, supplier, status, orderDate, expectedDate string
	totalValue                                    float64
	lines                                         []seedOrderLine
}

type seedLogEntry struct {
	id, itemID, ts, user, typ string
	prevQty, newQty           float64
	orderID, supplier         string
}

var suppliers = []seedSupplier{
	{"SUP-001", "Fresh Farms", "John Green", "john@freshfarms.co.uk", "+44 161 496 0732", "Produce", 4.9, "2025-12-10"},
	{"SUP-002", "Premium Meats", "Robert Smith", "robert@premiummeats.co.uk", "+44 113 496 0621", "Meat & Poultry", 4.7, "2025-12-08"},
	{"SUP-003", "Spirit Masters", "David Brown", "david@spiritmasters.co.uk", "+44 117 496 0398", "Spirits", 4.8, "2025-12-04"},
	{"SUP-004", "Beverage Plus", "Amy Taylor", "amy@beverageplus.co.uk", "+44 151 496 0287", "Beverages", 4.3, "2025-12-06"},
}

var items = []seedItem{
	{"1", "Olive Oil", "kitchen", 12, "L", 5, 15.99, "Fresh Farms", "2025-12-01"},
	{"2", "Flour", "kitchen", 25, "kg", 10, 2.50, "Fresh Farms", "2025-12-05"},
	{"3", "Tomatoes", "kitchen", 8, "kg", 15, 4.99, "Fresh Farms", "2025-12-10"},
	{"4", "Chicken Breast", "kitchen", 15, "kg", 10, 12.99, "Premium Meats", "2025-12-08"},
	{"5", "Salmon Fillet", "kitchen", 6, "kg", 8, 24.99, "Premium Meats", "2025-12-07"},
	{"6", "Heavy Cream", "kitchen", 4, "L", 6, 5.99, "Fresh Farms", "2025-12-09"},
	{"7", "Vodka Premium", "bar", 8, "bottles", 5, 32.00, "Spirit Masters", "2025-12-03"},
	{"8", "Gin London Dry", "bar", 6, "bottles", 4, 28.00, "Spirit Masters", "2025-12-03"},
	{"9", "Whiskey Bourbon", "bar", 3, "bottles", 5, 45.00, "Spirit Masters", "2025-12-02"},
	{"10", "Tequila Blanco", "bar", 5, "bottles", 4, 38.00, "Spirit Masters", "2025-12-04"},
	{"11", "Triple Sec", "bar", 4, "bottles", 3, 18.00, "Beverage Plus", "2025-12-06"},
	{"12", "Lime Juice", "bar", 10, "L", 5, 6.99, "Beverage Plus", "2025-12-10"},
	{"13", "Simple Syrup", "bar", 8, "L", 4, 8.99, "Beverage Plus", "2025-12-06"},
	{"14", "Angostura Bitters", "bar", 2, "bottles", 3, 14.00, "Spirit Masters", "2025-12-01"},
}

var orders = []seedOrder{
	{"ORD-001", "Fresh Farms", "low-stock", "2025-12-11", "", 159.70, []seedOrderLine{
		{"item-1", "Tomatoes", 20, "kg", 4.99},
		{"item-2", "Heavy Cream", 10, "L", 5.99},
	}},
	{"ORD-002", "Spirit Masters", "order-placed", "2025-12-10", "2025-12-13", 326.00, []seedOrderLine{
		{"item-3", "Whiskey Bourbon", 6, "bottles", 45.00},
		{"item-4", "Angostura Bitters", 4, "bottles", 14.00},
	}},
	{"ORD-003", "Premium Meats", "order-placed", "2025-12-09", "2025-12-12", 249.90, []seedOrderLine{
		{"item-5", "Salmon Fillet", 10, "kg", 24.99},
	}},
	{"ORD-004", "Fresh Farms", "order-received", "2025-12-05", "2025-12-10", 383.76, []seedOrderLine{
		{"item-6", "Olive Oil", 24, "L", 15.99},
	}},
	{"ORD-005", "Premium Meats", "order-received", "2025-12-03", "2025-12-08", 389.70, []seedOrderLine{
		{"item-7", "Chicken Breast", 30, "kg", 12.99},
	}},
	{"ORD-006", "Spirit Masters", "order-received", "2025-12-02", "2025-12-07", 836.00, []seedOrderLine{
		{"item-8", "Vodka Premium", 12, "bottles", 32.00},
		{"item-9", "Gin London Dry", 8, "bottles", 28.00},
		{"item-10", "Tequila Blanco", 6, "bottles", 38.00},
	}},
}

var changeLog = []seedLogEntry{
	{"log-1", "1", "2025-12-01T10:30:00Z", "John D.", "inventory-count", 15, 12, "", ""},
	{"log-2", "1", "2025-11-25T14:20:00Z", "System", "order-received", 5, 15, "ORD-004", "Fresh Farms"},
	{"log-3", "2", "2025-12-05T11:45:00Z", "Mike R.", "inventory-count", 30, 25, "", ""},
	{"log-4", "3", "2025-12-10T08:30:00Z", "John D.", "inventory-count", 20, 8, "", ""},
	{"log-5", "4", "2025-12-08T10:00:00Z", "Sarah M.", "inventory-count", 25, 15, "", ""},
	{"log-6", "4", "2025-12-08T16:00:00Z", "System", "order-received", 15, 45, "ORD-005", "Premium Meats"},
	{"log-7", "5", "2025-12-07T14:30:00Z", "John D.", "inventory-count", 12, 6, "", ""},
	{"log-8", "6", "2025-12-09T09:00:00Z", "Mike R.", "inventory-count", 10, 4, "", ""},
	{"log-9", "7", "2025-12-03T15:00:00Z", "Sarah M.", "inventory-count", 12, 8, "", ""},
	{"log-10", "7", "2025-12-07T11:00:00Z", "System", "order-received", 8, 20, "ORD-006", "Spirit Masters"},
	{"log-11", "8", "2025-12-07T11:00:00Z", "System", "order-received", 4, 12, "ORD-006", "Spirit Masters"},
	{"log-12", "9", "2025-12-02T11:00:00Z", "John D.", "inventory-count", 8, 3, "", ""},
	{"log-13", "10", "2025-12-04T16:30:00Z", "Mike R.", "inventory-count", 10, 5, "", ""},
	{"log-14", "10", "2025-12-07T11:00:00Z", "System", "order-received", 5, 11, "ORD-006", "Spirit Masters"},
	{"log-15", "14", "2025-12-01T12:00:00Z", "Sarah M.", "inventory-count", 5, 2, "", ""},
}

func main() {
	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_data.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Dataset de demostración del back-office de restaurante.\n")
	out.WriteString("-- Generado por cmd/seed; idempotente.\n\n")

	out.WriteString("-- 1. Proveedores\n")
	for _, s := range suppliers {
		fmt.Fprintf(out,
			"INSERT INTO suppliers (id, name, contact, email, phone, category, rating, last_order)\nVALUES ('%s', '%s', '%s', '%s', '%s', '%s', %.1f, '%s')\nON CONFLICT (id) DO NOTHING;\n",
			s.id, escapeSQL(s.name), escapeSQL(s.contact), s.email, s.phone, escapeSQL(s.category), s.rating, s.lastOrder)
	}

	out.WriteString("\n-- 2. Inventario\n")
	for _, it := range items {
		fmt.Fprintf(out,
			"INSERT INTO inventory_items (id, name, category, quantity, unit, reorder_level, unit_cost, supplier, last_updated)\nVALUES ('%s', '%s', '%s', %g, '%s', %g, %.2f, '%s', '%s')\nON CONFLICT (id) DO NOTHING;\n",
			it.id, escapeSQL(it.name), it.category, it.quantity, it.unit, it.reorderLevel, it.unitCost, escapeSQL(it.supplier), it.lastUpdated)
	}

	out.WriteString("\n-- 3. Pedidos y líneas\n")
	for _, o := range orders {
		fmt.Fprintf(out,
			"INSERT INTO orders (id, supplier, status, order_date, expected_date, total_value)\nVALUES ('%s', '%s', '%s', '%s', '%s', %.2f)\nON CONFLICT (id) DO NOTHING;\n",
			o.id, escapeSQL(o.supplier), o.status, o.orderDate, o.expectedDate, o.totalValue)
		for pos, l := range o.lines {
			fmt.Fprintf(out,
				"INSERT INTO order_items (id, order_id, item_name, quantity, unit, price, position)\nVALUES ('%s', '%s', '%s', %g, '%s', %.2f, %d)\nON CONFLICT (id) DO NOTHING;\n",
				l.id, o.id, escapeSQL(l.itemName), l.quantity, l.unit, l.price, pos)
		}
	}

	out.WriteString("\n-- 4. Histórico de cambios\n")
	for _, e := range changeLog {
		fmt.Fprintf(out,
			"INSERT INTO change_log (id, item_id, ts, username, type, previous_quantity, new_quantity, order_id, supplier)\nVALUES ('%s', '%s', '%s', '%s', '%s', %g, %g, '%s', '%s')\nON CONFLICT (id) DO NOTHING;\n",
			e.id, e.itemID, e.ts, escapeSQL(e.user), e.typ, e.prevQty, e.newQty, e.orderID, escapeSQL(e.supplier))
	}

	fmt.Printf("Generado %s: %d proveedores, %d artículos, %d pedidos, %d entradas de histórico\n",
		outPath, len(suppliers), len(items), len(orders), len(changeLog))
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
