package report

import (
	"fmt"

	"github.com/theirongolddev/eduforecast/internal/model"
)

// Section names, in output order.
const (
	SheetFinancial = "Financial Report"
	SheetFees      = "Fee Projection"
	SheetCashFlow  = "Cash Flow"
	SheetBreakeven = "Breakeven Analysis"
	SheetLoan      = "Loan Amortization"
)

// Options controls labels that are not part of the computed data.
type Options struct {
	Title       string
	Currency    string
	ChartAnchor string
}

// YearLabel formats a projection year for the first column of a table.
func YearLabel(year int) string {
	return fmt.Sprintf("Year %d", year)
}

// Build lays out a projection result as the five report sections plus the
// revenue/expense/profit line chart.
func Build(res *model.ProjectionResult, opts Options) Report {
	if opts.Currency == "" {
		opts.Currency = "NPR"
	}
	if opts.ChartAnchor == "" {
		opts.ChartAnchor = "N2"
	}

	return Report{
		Title: opts.Title,
		Tables: []Table{
			financialTable(res.Years),
			feeTable(res.Fees, opts.Currency),
			cashFlowTable(res.CashFlow),
			breakevenTable(res.Breakeven, opts.Currency),
			loanTable(res.Loan),
		},
		Charts: []LineChart{{
			Table:       SheetFinancial,
			Title:       "Revenue vs Profit vs Expense",
			XAxisTitle:  "Year",
			YAxisTitle:  fmt.Sprintf("Amount (%s)", opts.Currency),
			FirstColumn: 5,
			LastColumn:  12,
			Anchor:      opts.ChartAnchor,
		}},
	}
}

// The first thirteen columns keep their positions so the chart range 5-12
// covers Total Revenue through Net Profit; revenue lines are appended.
func financialTable(years []model.YearRecord) Table {
	t := Table{
		Name: SheetFinancial,
		Columns: []Column{
			{"Year", KindText},
			{"Total Students", KindInteger},
			{"Admission Fee / Student", KindMoney},
			{"Semester Fee / Student", KindMoney},
			{"Total Revenue", KindMoney},
			{"Teaching Cost", KindMoney},
			{"Admin Cost", KindMoney},
			{"Marketing Cost", KindMoney},
			{"Infrastructure Cost", KindMoney},
			{"Misc Expenses", KindMoney},
			{"Total Expense", KindMoney},
			{"Net Profit", KindMoney},
			{"ROI (%)", KindPercent},
			{"Admission Revenue", KindMoney},
			{"Semester Revenue", KindMoney},
			{"Exam Revenue", KindMoney},
		},
	}
	for _, y := range years {
		t = t.append(
			YearLabel(y.Year), y.TotalStudents, y.AdmissionFee, y.SemesterFee,
			y.TotalRevenue, y.TeachingCost, y.AdminCost, y.MarketingCost,
			y.InfrastructureCost, y.MiscExpense, y.TotalExpense, y.NetProfit, y.ROI,
			y.AdmissionRevenue, y.SemesterRevenue, y.ExamRevenue,
		)
	}
	return t
}

func feeTable(fees []model.FeeProjectionRecord, currency string) Table {
	t := Table{
		Name: SheetFees,
		Columns: []Column{
			{"Year", KindText},
			{"Admission Fee", KindMoney},
			{"Semester Fee", KindMoney},
			{fmt.Sprintf("Exam Fee (%s, fixed)", currency), KindMoney},
		},
	}
	for _, f := range fees {
		t = t.append(YearLabel(f.Year), f.AdmissionFee, f.SemesterFee, f.ExamFee)
	}
	return t
}

func cashFlowTable(flows []model.CashFlowRecord) Table {
	t := Table{
		Name: SheetCashFlow,
		Columns: []Column{
			{"Year", KindText},
			{"Inflation Rate", KindRate},
			{"Revenue", KindMoney},
			{"Expenses", KindMoney},
			{"Net Cash Flow", KindMoney},
			{"Cumulative Cash Flow", KindMoney},
		},
	}
	for _, cf := range flows {
		t = t.append(YearLabel(cf.Year), cf.InflationRate, cf.Revenue, cf.Expenses,
			cf.NetCashFlow, cf.CumulativeCashFlow)
	}
	return t
}

func breakevenTable(be model.BreakevenResult, currency string) Table {
	t := Table{
		Name: SheetBreakeven,
		Columns: []Column{
			{fmt.Sprintf("Fixed Cost (%s)", currency), KindMoney},
			{"Revenue per Student", KindMoney},
			{"Variable Cost per Student", KindMoney},
			{"Breakeven Number of Students", KindMoney},
		},
	}
	return t.append(be.FixedCost, be.RevenuePerStudent, be.VariableCostPerStudent, be.BreakevenStudents)
}

func loanTable(schedule []model.LoanAmortizationRecord) Table {
	t := Table{
		Name: SheetLoan,
		Columns: []Column{
			{"Year", KindText},
			{"EMI Payment", KindMoney},
			{"Principal Paid", KindMoney},
			{"Interest Paid", KindMoney},
			{"Remaining Balance", KindMoney},
		},
	}
	for _, r := range schedule {
		t = t.append(YearLabel(r.Year), r.Installment, r.Principal, r.Interest, r.RemainingBalance)
	}
	return t
}
