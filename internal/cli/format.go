// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// FormatCurrency formats an amount with comma grouping and two decimals,
// prefixed by the currency label when one is given.
// e.g., ("NPR", 1234567.891) -> "NPR 1,234,567.89"
func FormatCurrency(currency string, v float64) string {
	s := humanize.FormatFloat("#,###.##", v)
	if currency == "" {
		return s
	}
	return currency + " " + s
}

// FormatCompact formats large amounts with SI-style suffixes.
// e.g., 10916982 -> "10.9M", 84168 -> "84.2K"
func FormatCompact(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", v/1_000_000_000)
	case abs >= 1_000_000:
		return fmt.Sprintf("%.1fM", v/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("%.1fK", v/1_000)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	return humanize.Comma(n)
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.2f%%", f*100)
}

// FormatDelta formats the change between two amounts with an explicit sign.
func FormatDelta(current, previous float64) string {
	delta := current - previous
	if delta >= 0 {
		return "+" + FormatCompact(delta)
	}
	return "-" + FormatCompact(-delta)
}
