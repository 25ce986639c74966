package report

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Format renders a cell value of this column as display text.
func (c Column) Format(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return humanize.Comma(int64(x))
	case float64:
		switch c.Kind {
		case KindMoney:
			return humanize.FormatFloat("#,###.##", x)
		case KindPercent:
			return fmt.Sprintf("%.2f%%", x)
		case KindRate:
			return fmt.Sprintf("%.2f%%", x*100)
		case KindInteger:
			return humanize.Comma(int64(x))
		}
		return fmt.Sprintf("%.2f", x)
	case nil:
		return ""
	}
	return fmt.Sprint(v)
}

// FormatRow renders every cell of row i.
func (t Table) FormatRow(i int) []string {
	out := make([]string, len(t.Columns))
	for j, c := range t.Columns {
		out[j] = c.Format(t.Rows[i][j])
	}
	return out
}
