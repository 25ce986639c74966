package cli

import (
	"github.com/theirongolddev/eduforecast/internal/report"
)

// RenderReportTable renders one report section as a bordered table.
func RenderReportTable(t report.Table) string {
	rows := make([][]string, len(t.Rows))
	for i := range t.Rows {
		rows[i] = t.FormatRow(i)
	}
	right := make([]bool, len(t.Columns))
	for i, c := range t.Columns {
		right[i] = c.Kind != report.KindText
	}
	return RenderTable(Table{
		Title:      t.Name,
		Headers:    t.Header(),
		Rows:       rows,
		RightAlign: right,
	})
}

// Transpose turns a wide table into a two-column field/value listing per
// row, which fits narrow terminals better than sixteen columns.
func Transpose(t report.Table) Table {
	out := Table{Title: t.Name, Headers: []string{"Field"}}
	for i := range t.Rows {
		out.Headers = append(out.Headers, t.FormatRow(i)[0])
	}
	for j := 1; j < len(t.Columns); j++ {
		row := []string{t.Columns[j].Name}
		for i := range t.Rows {
			row = append(row, t.Columns[j].Format(t.Rows[i][j]))
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}
