// Package model defines the computed records of a business model projection.
package model

// YearRecord is one row of the per-year income statement.
type YearRecord struct {
	Year          int
	TotalStudents int

	// Per-student fees after inflation.
	AdmissionFee float64
	SemesterFee  float64

	AdmissionRevenue float64
	SemesterRevenue  float64
	ExamRevenue      float64

	TeachingCost       float64
	AdminCost          float64
	MarketingCost      float64
	InfrastructureCost float64
	MiscExpense        float64

	TotalRevenue float64
	TotalExpense float64
	NetProfit    float64
	ROI          float64 // percent
}

// FeeProjectionRecord holds the per-student fee schedule for one year.
type FeeProjectionRecord struct {
	Year         int
	AdmissionFee float64
	SemesterFee  float64
	ExamFee      float64 // local currency, identical every year
}

// CashFlowRecord holds one year of cash flow with its running total.
type CashFlowRecord struct {
	Year               int
	InflationRate      float64
	Revenue            float64
	Expenses           float64
	NetCashFlow        float64
	CumulativeCashFlow float64
}

// BreakevenResult is the single-period breakeven analysis.
type BreakevenResult struct {
	FixedCost              float64
	RevenuePerStudent      float64
	VariableCostPerStudent float64
	BreakevenStudents      float64
}

// Margin returns the contribution margin per student.
func (b BreakevenResult) Margin() float64 {
	return b.RevenuePerStudent - b.VariableCostPerStudent
}

// LoanAmortizationRecord is one annual installment of a fixed-payment loan.
type LoanAmortizationRecord struct {
	Year             int
	Installment      float64
	Principal        float64
	Interest         float64
	RemainingBalance float64
}

// ProjectionResult bundles every table produced by one engine run.
type ProjectionResult struct {
	Years     []YearRecord
	Fees      []FeeProjectionRecord
	CashFlow  []CashFlowRecord
	Breakeven BreakevenResult
	Loan      []LoanAmortizationRecord

	ExamFeeLocal float64
	EMI          float64
}

// FinalCumulativeCashFlow returns the cumulative cash flow after the last year.
func (r *ProjectionResult) FinalCumulativeCashFlow() float64 {
	if len(r.CashFlow) == 0 {
		return 0
	}
	return r.CashFlow[len(r.CashFlow)-1].CumulativeCashFlow
}

// PaybackYear returns the first year whose cumulative cash flow is
// non-negative, or 0 if the horizon never recovers.
func (r *ProjectionResult) PaybackYear() int {
	for _, cf := range r.CashFlow {
		if cf.CumulativeCashFlow >= 0 {
			return cf.Year
		}
	}
	return 0
}
