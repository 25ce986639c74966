// Package report converts projection results into destination-agnostic
// tables and chart specs that a Renderer writes out.
package report

import (
	"fmt"
	"io"
)

// Kind tells a renderer how to format a column's values.
type Kind int

const (
	KindText Kind = iota
	KindInteger
	KindMoney
	KindPercent
	KindRate
)

// Column is one named, typed field of a table.
type Column struct {
	Name string
	Kind Kind
}

// Table is a named section whose rows all share the column shape.
type Table struct {
	Name    string
	Columns []Column
	Rows    [][]any
}

// Header returns the column names in order.
func (t Table) Header() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// ColumnIndex returns the zero-based index of the named column, or -1.
func (t Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// Record returns row i as named fields.
func (t Table) Record(i int) map[string]any {
	rec := make(map[string]any, len(t.Columns))
	for j, c := range t.Columns {
		rec[c.Name] = t.Rows[i][j]
	}
	return rec
}

// Float returns the numeric cell at row i of the named column.
func (t Table) Float(i int, column string) (float64, bool) {
	j := t.ColumnIndex(column)
	if j < 0 || i < 0 || i >= len(t.Rows) {
		return 0, false
	}
	switch v := t.Rows[i][j].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

func (t Table) append(row ...any) Table {
	if len(row) != len(t.Columns) {
		panic(fmt.Sprintf("report: table %q row has %d cells, want %d", t.Name, len(row), len(t.Columns)))
	}
	t.Rows = append(t.Rows, row)
	return t
}

// LineChart plots a contiguous, 1-based column range of one table against
// its first column.
type LineChart struct {
	Table       string
	Title       string
	XAxisTitle  string
	YAxisTitle  string
	FirstColumn int
	LastColumn  int
	Anchor      string
}

// Report is the complete renderer input.
type Report struct {
	Title  string
	Tables []Table
	Charts []LineChart
}

// Table returns the section with the given name.
func (r Report) Table(name string) (Table, bool) {
	for _, t := range r.Tables {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}

// Renderer writes a report to a destination format.
type Renderer interface {
	Render(w io.Writer, r Report) error
}
