// Package table implementa la tabla genérica editable del back-office:
// ordenación por columna y edición de una fila a la vez con buffer de
// borrador, confirmada o descartada por teclado.
package table

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/resto-backoffice/internal/domain"
)

// Kind tipo de dato de una columna editable.
type Kind int

const (
	KindText Kind = iota
	KindNumber
	KindChoice
)

// Key teclas con contrato definido durante la edición.
type Key int

const (
	KeyEnter Key = iota
	KeyEscape
)

// Column describe una columna del esquema de la tabla.
//
// Value extrae el valor crudo para ordenar y renderizar. Las columnas
// editables además definen Assign (texto y choice) o AssignNumber según
// Kind. Link y Clickable son mutuamente excluyentes; ambos quedan inertes
// mientras la fila está en edición.
type Column[T any] struct {
	Key      string
	Title    string
	Kind     Kind
	Editable bool
	Choices  []string // opciones válidas cuando Kind == KindChoice

	Value        func(T) any
	Assign       func(*T, string)
	AssignNumber func(*T, decimal.Decimal)

	Link      func(T) string // destino de navegación de la celda
	Clickable bool           // la celda dispara una acción propia
}

// Table tabla genérica sobre filas con id único.
//
// La colección se mantiene en el orden de llegada; Rows devuelve la vista
// ordenada según el estado de ordenación vigente. La edición es una
// máquina de estados explícita: idle -> editing(rowID) -> idle.
type Table[T any] struct {
	columns []Column[T]
	idOf    func(T) string
	rows    []T

	sortKey string
	sortAsc bool

	editRowID string            // "" cuando no hay edición en curso
	scratch   map[string]string // borrador por columna editable
}

// New construye la tabla. Valida el esquema: Link y Clickable no pueden
// convivir en la misma columna.
func New[T any](idOf func(T) string, columns []Column[T]) *Table[T] {
	for _, c := range columns {
		if c.Link != nil && c.Clickable {
			panic(fmt.Sprintf("table: columna %q define Link y Clickable a la vez", c.Key))
		}
	}
	return &Table[T]{
		columns: columns,
		idOf:    idOf,
		sortAsc: true,
	}
}

// Columns devuelve el esquema.
func (t *Table[T]) Columns() []Column[T] { return t.columns }

// SetRows reemplaza la colección. Cancela cualquier edición en curso:
// las filas nuevas pueden no contener ya la fila editada.
func (t *Table[T]) SetRows(rows []T) {
	t.rows = append([]T(nil), rows...)
	t.editRowID = ""
	t.scratch = nil
}

// All devuelve la colección en orden de llegada, ignorando la ordenación.
func (t *Table[T]) All() []T {
	return append([]T(nil), t.rows...)
}

// Rows devuelve la vista ordenada según el estado vigente. Con sortKey
// vacío devuelve la colección en orden de llegada. La ordenación es
// estable: los empates (incluidos los valores indefinidos) conservan su
// posición relativa.
func (t *Table[T]) Rows() []T {
	out := append([]T(nil), t.rows...)
	col := t.column(t.sortKey)
	if col == nil {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		cmp := compareValues(col.Value(out[i]), col.Value(out[j]))
		if t.sortAsc {
			return cmp < 0
		}
		return cmp > 0
	})
	return out
}

// SortBy aplica la ordenación por la columna dada: repetir la misma
// columna alterna asc/desc; cambiar de columna resetea a ascendente.
func (t *Table[T]) SortBy(key string) {
	if t.column(key) == nil {
		return
	}
	if t.sortKey == key {
		t.sortAsc = !t.sortAsc
		return
	}
	t.sortKey = key
	t.sortAsc = true
}

// SortState devuelve la columna de ordenación vigente y su sentido.
func (t *Table[T]) SortState() (key string, asc bool) {
	return t.sortKey, t.sortAsc
}

// ── Edición ───────────────────────────────────────────────────────────────────

// StartEdit entra en edición sobre la fila dada y copia sus campos
// editables al borrador. Con otra fila ya en edición devuelve
// domain.ErrRowBusy: hay que confirmar o descartar primero.
func (t *Table[T]) StartEdit(rowID string) error {
	if t.editRowID != "" && t.editRowID != rowID {
		return domain.ErrRowBusy
	}
	row, ok := t.find(rowID)
	if !ok {
		return fmt.Errorf("fila %q: %w", rowID, domain.ErrNotFound)
	}
	t.editRowID = rowID
	t.scratch = make(map[string]string)
	for _, c := range t.columns {
		if c.Editable {
			t.scratch[c.Key] = formatValue(c.Value(row))
		}
	}
	return nil
}

// Editing devuelve la fila en edición, si la hay.
func (t *Table[T]) Editing() (rowID string, ok bool) {
	return t.editRowID, t.editRowID != ""
}

// SetField escribe en el borrador; la colección no cambia hasta Commit.
func (t *Table[T]) SetField(key, raw string) error {
	if t.editRowID == "" {
		return fmt.Errorf("sin edición en curso: %w", domain.ErrInvalidInput)
	}
	col := t.column(key)
	if col == nil || !col.Editable {
		return fmt.Errorf("columna %q no editable: %w", key, domain.ErrInvalidInput)
	}
	t.scratch[key] = raw
	return nil
}

// Field lee el valor del borrador para una columna editable.
func (t *Table[T]) Field(key string) string {
	return t.scratch[key]
}

// Commit confirma el borrador: lo fusiona sobre una copia de la fila,
// reemplaza la fila dentro de una copia de la colección y la devuelve
// completa, en el orden de llegada. Los números que no parsean se
// convierten en cero. Deja la tabla en reposo.
func (t *Table[T]) Commit() ([]T, error) {
	if t.editRowID == "" {
		return nil, fmt.Errorf("sin edición en curso: %w", domain.ErrInvalidInput)
	}
	out := append([]T(nil), t.rows...)
	for i := range out {
		if t.idOf(out[i]) != t.editRowID {
			continue
		}
		for _, c := range t.columns {
			if !c.Editable {
				continue
			}
			raw := t.scratch[c.Key]
			switch c.Kind {
			case KindNumber:
				n, err := decimal.NewFromString(strings.TrimSpace(raw))
				if err != nil {
					n = decimal.Zero
				}
				if c.AssignNumber != nil {
					c.AssignNumber(&out[i], n)
				}
			default:
				if c.Assign != nil {
					c.Assign(&out[i], raw)
				}
			}
		}
		break
	}
	t.rows = out
	t.editRowID = ""
	t.scratch = nil
	return append([]T(nil), out...), nil
}

// Cancel descarta el borrador sin tocar la colección.
func (t *Table[T]) Cancel() {
	t.editRowID = ""
	t.scratch = nil
}

// HandleKey aplica el contrato de teclado: Enter confirma, Escape
// descarta. Fuera de edición ninguna tecla tiene efecto.
func (t *Table[T]) HandleKey(k Key) ([]T, error) {
	if t.editRowID == "" {
		return nil, nil
	}
	switch k {
	case KeyEnter:
		return t.Commit()
	case KeyEscape:
		t.Cancel()
		return nil, nil
	}
	return nil, nil
}

// ── internos ──────────────────────────────────────────────────────────────────

func (t *Table[T]) column(key string) *Column[T] {
	for i := range t.columns {
		if t.columns[i].Key == key {
			return &t.columns[i]
		}
	}
	return nil
}

func (t *Table[T]) find(rowID string) (T, bool) {
	for _, r := range t.rows {
		if t.idOf(r) == rowID {
			return r, true
		}
	}
	var zero T
	return zero, false
}

// compareValues compara valores crudos: -1, 0 o 1. Los valores nil
// (indefinidos) empatan con cualquier cosa y quedan donde estaban.
func compareValues(a, b any) int {
	if a == nil || b == nil {
		return 0
	}
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		if !ok {
			return 0
		}
		return strings.Compare(av, bv)
	case decimal.Decimal:
		bv, ok := b.(decimal.Decimal)
		if !ok {
			return 0
		}
		return av.Cmp(bv)
	case float64:
		bv, ok := b.(float64)
		if !ok {
			return 0
		}
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	case int:
		bv, ok := b.(int)
		if !ok {
			return 0
		}
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	}
	return 0
}

// formatValue representa un valor crudo como texto de borrador.
func formatValue(v any) string {
	switch tv := v.(type) {
	case nil:
		return ""
	case string:
		return tv
	case decimal.Decimal:
		return tv.String()
	default:
		return fmt.Sprint(tv)
	}
}
