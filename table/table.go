// Package table holds the in-memory requirement table, the facet column
// classifier, and the row aggregation passes that run before compilation.
package table

import "slices"

// Sentinel cell tokens. Missing marks cells that started empty; None is an
// explicit user-written placeholder. Both are dropped during value splitting.
const (
	Missing = "_MISSING_"
	None    = "_none_"
)

// Delimiters of the AND/OR value encoding.
const (
	AndSeparator = `\&`
	OrSeparator  = "|"
)

// Value is one cell after aggregation: the raw cell string, or the ordered
// collected values of several source rows.
type Value []string

// Row maps column names to cell values.
type Row map[string]Value

// Table is a named-column table. Rows keep first-seen source order.
type Table struct {
	Columns []string
	Rows    []Row
}

// New creates an empty table over the given columns.
func New(columns []string) *Table {
	return &Table{Columns: slices.Clone(columns)}
}

// Append adds one row of single-valued cells aligned with Columns. Short
// rows are padded with the Missing sentinel.
func (t *Table) Append(cells []string) {
	row := make(Row, len(t.Columns))
	for i, col := range t.Columns {
		if i < len(cells) {
			row[col] = Value{cells[i]}
		} else {
			row[col] = Value{Missing}
		}
	}
	t.Rows = append(t.Rows, row)
}

// HasColumn reports whether the table carries the named column.
func (t *Table) HasColumn(name string) bool {
	return slices.Contains(t.Columns, name)
}

// SetColumn sets every row's cell of the named column to the given value,
// adding the column when absent.
func (t *Table) SetColumn(name, value string) {
	if !t.HasColumn(name) {
		t.Columns = append(t.Columns, name)
	}
	for _, row := range t.Rows {
		row[name] = Value{value}
	}
}

// FillColumn replaces Missing cells of the named column with the given value.
func (t *Table) FillColumn(name, value string) {
	if !t.HasColumn(name) {
		return
	}
	for _, row := range t.Rows {
		if len(row[name]) == 1 && row[name][0] == Missing {
			row[name] = Value{value}
		}
	}
}
