package projection

import (
	"testing"

	"github.com/theirongolddev/eduforecast/internal/config"
	"github.com/theirongolddev/eduforecast/internal/model"
)

func TestCashFlows_PrefixSum(t *testing.T) {
	res := mustCompute(t, config.DefaultScenario())

	if len(res.CashFlow) != len(res.Years) {
		t.Fatalf("len(CashFlow) = %d, want %d", len(res.CashFlow), len(res.Years))
	}
	if res.CashFlow[0].CumulativeCashFlow != res.CashFlow[0].NetCashFlow {
		t.Fatalf("cumulative[1] = %.2f, want net[1] %.2f",
			res.CashFlow[0].CumulativeCashFlow, res.CashFlow[0].NetCashFlow)
	}
	for i := 1; i < len(res.CashFlow); i++ {
		prev, cur := res.CashFlow[i-1], res.CashFlow[i]
		if !near(cur.CumulativeCashFlow, prev.CumulativeCashFlow+cur.NetCashFlow, 0.005) {
			t.Errorf("cumulative[%d] = %.2f, want %.2f + %.2f",
				cur.Year, cur.CumulativeCashFlow, prev.CumulativeCashFlow, cur.NetCashFlow)
		}
	}
}

func TestCashFlows_MirrorsIncomeStatement(t *testing.T) {
	s := config.DefaultScenario()
	res := mustCompute(t, s)

	for i, cf := range res.CashFlow {
		y := res.Years[i]
		if cf.Year != y.Year {
			t.Errorf("row %d Year = %d, want %d", i, cf.Year, y.Year)
		}
		if cf.Revenue != y.TotalRevenue || cf.Expenses != y.TotalExpense || cf.NetCashFlow != y.NetProfit {
			t.Errorf("year %d cash flow %+v does not match income statement", cf.Year, cf)
		}
		if cf.InflationRate != s.InflationRate {
			t.Errorf("year %d InflationRate = %v, want %v", cf.Year, cf.InflationRate, s.InflationRate)
		}
	}
}

func TestCashFlows_OrderDependent(t *testing.T) {
	years := []model.YearRecord{
		{Year: 1, NetProfit: -500},
		{Year: 2, NetProfit: 200},
		{Year: 3, NetProfit: 400.25},
	}

	flows := CashFlows(years, 0.05)
	want := []float64{-500, -300, 100.25}
	for i, w := range want {
		if flows[i].CumulativeCashFlow != w {
			t.Errorf("year %d cumulative = %.2f, want %.2f", i+1, flows[i].CumulativeCashFlow, w)
		}
	}

	r := &model.ProjectionResult{CashFlow: flows}
	if got := r.PaybackYear(); got != 3 {
		t.Errorf("PaybackYear = %d, want 3", got)
	}
	if got := r.FinalCumulativeCashFlow(); got != 100.25 {
		t.Errorf("FinalCumulativeCashFlow = %.2f, want 100.25", got)
	}
}

func TestCashFlows_Empty(t *testing.T) {
	if flows := CashFlows(nil, 0.05); len(flows) != 0 {
		t.Fatalf("CashFlows(nil) returned %d rows", len(flows))
	}
}
