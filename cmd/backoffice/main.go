// backoffice es el front-end de terminal del panel de gestión: consulta y
// edita inventario, proveedores y pedidos contra el servicio de datos.
//
// Uso:
//
//	backoffice inventory [-sort col] [-set id campo=valor ...]
//	backoffice low-stock
//	backoffice suppliers [-sort col]
//	backoffice orders
//	backoffice suggest            # sugerencias de reposición
//	backoffice add <item-id>      # crea pedido para un artículo sugerido
//	backoffice place <order-id>   # low-stock -> order-placed
//	backoffice arrive <order-id>  # order-placed -> order-received
//	backoffice move <order-id> <status>
//	backoffice changelog <item-id>
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tu-usuario/resto-backoffice/internal/backoffice/changelog"
	"github.com/tu-usuario/resto-backoffice/internal/backoffice/pages"
	"github.com/tu-usuario/resto-backoffice/internal/backoffice/remote"
	"github.com/tu-usuario/resto-backoffice/internal/backoffice/table"
	"github.com/tu-usuario/resto-backoffice/pkg/config"
	"github.com/tu-usuario/resto-backoffice/pkg/logger"
)

var gbp = message.NewPrinter(language.BritishEnglish)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "warn"})

	client := remote.NewClient(cfg.Backoffice.APIBaseURL, remote.WithUser(cfg.Backoffice.User))
	ctx := context.Background()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd, args := os.Args[1], os.Args[2:]
	if err := run(ctx, cmd, args, client, log); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd string, args []string, client *remote.Client, log *logger.Logger) error {
	switch cmd {
	case "inventory":
		return runInventory(ctx, args, client, log)
	case "low-stock":
		return runLowStock(ctx, client)
	case "suppliers":
		return runSuppliers(ctx, args, client, log)
	case "orders":
		return runOrders(ctx, client, log)
	case "suggest":
		return runSuggest(ctx, client, log)
	case "add":
		return runAdd(ctx, args, client, log)
	case "place", "arrive", "move":
		return runTransition(ctx, cmd, args, client, log)
	case "changelog":
		return runChangeLog(ctx, args, client)
	default:
		usage()
		return fmt.Errorf("comando desconocido: %q", cmd)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Uso: backoffice <inventory|low-stock|suppliers|orders|suggest|add|place|arrive|move|changelog> [args]")
}

// ── Inventario ────────────────────────────────────────────────────────────────

func runInventory(ctx context.Context, args []string, client *remote.Client, log *logger.Logger) error {
	fs := flag.NewFlagSet("inventory", flag.ExitOnError)
	sortKey := fs.String("sort", "", "columna de ordenación (repetir invierte el sentido)")
	section := fs.String("section", pages.SectionKitchen, "kitchen o bar")
	var sets multiFlag
	fs.Var(&sets, "set", "edición: id campo=valor (repetible)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	page := pages.NewInventoryPage(client, log)
	if err := page.Load(ctx); err != nil {
		return err
	}
	t := page.Section(*section)
	if t == nil {
		return fmt.Errorf("sección desconocida: %q", *section)
	}
	if *sortKey != "" {
		t.SortBy(*sortKey)
	}

	if err := applySets(t, sets); err != nil {
		return err
	}
	if len(sets) > 0 {
		if err := page.HandleKey(ctx, *section, table.KeyEnter); err != nil {
			return err
		}
	}

	printInventory(t.Rows())
	return nil
}

// applySets traduce los -set de la línea de comandos al contrato de la
// tabla: una fila en edición, borrador por campo, Enter al final.
func applySets(t *table.Table[remote.InventoryItem], sets []string) error {
	var editing string
	for _, s := range sets {
		parts := strings.SplitN(s, " ", 2)
		if len(parts) != 2 {
			return fmt.Errorf("formato de -set inválido: %q (esperado: id campo=valor)", s)
		}
		id := parts[0]
		kv := strings.SplitN(parts[1], "=", 2)
		if len(kv) != 2 {
			return fmt.Errorf("formato de -set inválido: %q (esperado: id campo=valor)", s)
		}
		if editing == "" {
			if err := t.StartEdit(id); err != nil {
				return err
			}
			editing = id
		} else if editing != id {
			return fmt.Errorf("solo se puede editar una fila por invocación (ya en edición: %s)", editing)
		}
		if err := t.SetField(kv[0], kv[1]); err != nil {
			return err
		}
	}
	return nil
}

func printInventory(items []remote.InventoryItem) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tARTÍCULO\tCANTIDAD\tUNIDAD\tREPOSICIÓN\tCOSTE\tPROVEEDOR\tÚLTIMO CONTEO")
	for _, it := range items {
		low := ""
		if it.IsLowStock() {
			low = " (!)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s%s\t%s\t%s\t%s\t%s\t%s\n",
			it.ID, it.Name, it.Quantity.String(), low, it.Unit,
			it.ReorderLevel.String(), money(it.UnitCost), it.Supplier, it.LastUpdated)
	}
	w.Flush()
}

func runLowStock(ctx context.Context, client *remote.Client) error {
	items, err := client.GetLowStock(ctx)
	if err != nil {
		return err
	}
	printInventory(items)
	return nil
}

// ── Proveedores ───────────────────────────────────────────────────────────────

func runSuppliers(ctx context.Context, args []string, client *remote.Client, log *logger.Logger) error {
	fs := flag.NewFlagSet("suppliers", flag.ExitOnError)
	sortKey := fs.String("sort", "", "columna de ordenación")
	if err := fs.Parse(args); err != nil {
		return err
	}

	page := pages.NewSuppliersPage(client, log)
	if err := page.Load(ctx); err != nil {
		return err
	}
	if *sortKey != "" {
		page.Table.SortBy(*sortKey)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPROVEEDOR\tCONTACTO\tEMAIL\tTELÉFONO\tCATEGORÍA\tVALORACIÓN\tÚLTIMO PEDIDO")
	for _, s := range page.Table.Rows() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			s.ID, s.Name, s.Contact, s.Email, s.Phone, s.Category,
			pages.FormatRating(s.Rating), s.LastOrder)
	}
	w.Flush()
	return nil
}

// ── Pedidos ───────────────────────────────────────────────────────────────────

func runOrders(ctx context.Context, client *remote.Client, log *logger.Logger) error {
	page := pages.NewOrdersPage(client, log)
	if err := page.Load(ctx); err != nil {
		return err
	}
	for _, status := range []string{remote.StatusLowStock, remote.StatusPlaced, remote.StatusReceived} {
		fmt.Printf("== %s ==\n", status)
		for _, o := range page.Board.Column(status) {
			fmt.Printf("  %s  %s  %s  %s\n", o.ID, o.Supplier, o.OrderDate, money(o.TotalValue))
			for _, l := range o.Items {
				fmt.Printf("      %s x %s %s @ %s\n", l.ItemName, l.Quantity.String(), l.Unit, money(l.Price))
			}
		}
	}
	return nil
}

func runSuggest(ctx context.Context, client *remote.Client, log *logger.Logger) error {
	page := pages.NewOrdersPage(client, log)
	if err := page.Load(ctx); err != nil {
		return err
	}
	for _, it := range page.Suggestions() {
		fmt.Printf("%s  %s  %s/%s %s  proveedor: %s\n",
			it.ID, it.Name, it.Quantity.String(), it.ReorderLevel.String(), it.Unit, it.Supplier)
	}
	return nil
}

func runAdd(ctx context.Context, args []string, client *remote.Client, log *logger.Logger) error {
	if len(args) != 1 {
		return fmt.Errorf("uso: backoffice add <item-id>")
	}
	page := pages.NewOrdersPage(client, log)
	if err := page.Load(ctx); err != nil {
		return err
	}
	for _, it := range page.Suggestions() {
		if it.ID == args[0] {
			return page.AddSuggestion(ctx, it)
		}
	}
	return fmt.Errorf("el artículo %q no está entre las sugerencias", args[0])
}

func runTransition(ctx context.Context, cmd string, args []string, client *remote.Client, log *logger.Logger) error {
	page := pages.NewOrdersPage(client, log)
	if err := page.Load(ctx); err != nil {
		return err
	}
	switch cmd {
	case "place":
		if len(args) != 1 {
			return fmt.Errorf("uso: backoffice place <order-id>")
		}
		return page.Place(ctx, args[0])
	case "arrive":
		if len(args) != 1 {
			return fmt.Errorf("uso: backoffice arrive <order-id>")
		}
		return page.Arrived(ctx, args[0])
	default:
		if len(args) != 2 {
			return fmt.Errorf("uso: backoffice move <order-id> <status>")
		}
		return page.Move(ctx, args[0], args[1])
	}
}

// ── Histórico ─────────────────────────────────────────────────────────────────

func runChangeLog(ctx context.Context, args []string, client *remote.Client) error {
	itemID := ""
	if len(args) > 0 {
		itemID = args[0]
	}
	entries, err := client.GetChangeLog(ctx, itemID)
	if err != nil {
		return err
	}
	for _, e := range changelog.ForItem(entries, itemID) {
		ref := ""
		if e.Type == remote.ChangeTypeOrderReceived {
			ref = fmt.Sprintf("  [%s, %s]", e.OrderID, e.Supplier)
		}
		fmt.Printf("%s  %-16s %-16s %s -> %s (%s)%s\n",
			e.Timestamp.Format("2006-01-02 15:04"), e.User, e.Type,
			e.PreviousQuantity.String(), e.NewQuantity.String(),
			changelog.FormatDelta(e), ref)
	}
	return nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

// multiFlag flag repetible.
type multiFlag []string

func (m *multiFlag) String() string     { return strings.Join(*m, "; ") }
func (m *multiFlag) Set(v string) error { *m = append(*m, v); return nil }

func money(d decimal.Decimal) string {
	f, _ := d.Float64()
	return gbp.Sprintf("£%.2f", f)
}
