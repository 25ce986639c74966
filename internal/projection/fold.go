package projection

import (
	"math"

	"github.com/shopspring/decimal"
)

// scan threads acc through items in order and collects one output per item.
func scan[T, A, R any](items []T, acc A, step func(A, T) (A, R)) []R {
	out := make([]R, 0, len(items))
	for _, it := range items {
		var r R
		acc, r = step(acc, it)
		out = append(out, r)
	}
	return out
}

// periods returns 1..n.
func periods(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i + 1
	}
	return p
}

// round2 rounds a currency amount to two decimal places. Non-finite values
// pass through unchanged for Compute to reject.
func round2(v float64) float64 {
	if !finite(v) {
		return v
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
