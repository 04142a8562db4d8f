package model

import "strings"

// Cell is a single spreadsheet value as delivered by the reader.
// The empty (after trimming) cell is the explicit missing marker.
type Cell string

// IsMissing reports whether the cell carries no value.
func (c Cell) IsMissing() bool {
	return strings.TrimSpace(string(c)) == ""
}

// Trimmed returns the cell text without surrounding whitespace.
func (c Cell) Trimmed() string {
	return strings.TrimSpace(string(c))
}

// Row maps canonical column keys to cell values.
// Every row of a NormalizedTable has every declared column.
type Row map[string]Cell

// NormalizedTable is a table restricted to a declared set of columns,
// keyed by canonical (trimmed, lower-cased) column names.
type NormalizedTable struct {
	// Columns in declared order.
	Columns []string
	Rows    []Row
}

// NewNormalizedTable creates an empty table over the given columns.
func NewNormalizedTable(columns []string) *NormalizedTable {
	return &NormalizedTable{
		Columns: append([]string(nil), columns...),
		Rows:    make([]Row, 0),
	}
}

// Append adds a row, filling absent columns with the missing marker.
func (t *NormalizedTable) Append(row Row) {
	filled := make(Row, len(t.Columns))
	for _, col := range t.Columns {
		filled[col] = row[col]
	}
	t.Rows = append(t.Rows, filled)
}

// Len returns the number of data rows.
func (t *NormalizedTable) Len() int {
	return len(t.Rows)
}
