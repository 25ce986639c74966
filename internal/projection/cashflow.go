package projection

import "github.com/theirongolddev/eduforecast/internal/model"

// CashFlows folds the income statement into cash flow records, carrying the
// cumulative total from one year to the next. Order matters.
func CashFlows(years []model.YearRecord, inflationRate float64) []model.CashFlowRecord {
	return scan(years, 0.0, func(cumulative float64, y model.YearRecord) (float64, model.CashFlowRecord) {
		cumulative = round2(cumulative + y.NetProfit)
		return cumulative, model.CashFlowRecord{
			Year:               y.Year,
			InflationRate:      inflationRate,
			Revenue:            y.TotalRevenue,
			Expenses:           y.TotalExpense,
			NetCashFlow:        y.NetProfit,
			CumulativeCashFlow: cumulative,
		}
	})
}
