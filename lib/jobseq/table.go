package jobseq

import "sort"

// Row is a single record of a normalized table. Every row of a
// Table exposes exactly the Table's column set.
type Row = map[string]any

// Table is an ordered set of uniform rows. Row order always
// mirrors the vendor's ordering (usually time period or category).
type Table struct {
	Columns []string
	Rows    []Row
}

// Column returns every value of one column, in row order.
func (t Table) Column(name string) []any {
	out := make([]any, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[name]
	}
	return out
}

// Mapping returns a scalar-result response unchanged as a plain
// key/value mapping.
func Mapping(raw map[string]any) map[string]any {
	return raw
}

// Tabulate flattens a list of row-like objects into a uniform
// table. The column set is the union of keys across all rows,
// sorted for determinism since JSON objects carry no key order.
// Cells absent from a row are nil. An empty input produces a
// zero-row table with no columns.
func Tabulate(items []map[string]any) Table {
	var columns []string
	seen := map[string]bool{}
	for _, item := range items {
		for key := range item {
			if !seen[key] {
				seen[key] = true
				columns = append(columns, key)
			}
		}
	}
	sort.Strings(columns)

	rows := make([]Row, 0, len(items))
	for _, item := range items {
		row := Row{}
		for _, col := range columns {
			row[col] = item[col]
		}
		rows = append(rows, row)
	}
	return Table{Columns: columns, Rows: rows}
}
