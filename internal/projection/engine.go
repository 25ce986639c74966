// Package projection computes the multi-year financial projection of the
// business model: income statement, fee schedule, cash flow, breakeven and
// loan amortization.
package projection

import (
	"fmt"
	"math"

	"github.com/theirongolddev/eduforecast/internal/config"
	"github.com/theirongolddev/eduforecast/internal/model"
)

// Compute validates the scenario and runs the full projection.
// It performs no I/O and returns identical results for identical input.
func Compute(s config.Scenario) (*model.ProjectionResult, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if m := InflationMultiplier(s.InflationRate, s.HorizonYears); !finite(m) {
		return nil, &config.ValidationError{
			Field:  "inflation_rate",
			Reason: fmt.Sprintf("compounds out of range over %d years", s.HorizonYears),
		}
	}
	if err := CheckLoan(s.Loan); err != nil {
		return nil, err
	}

	breakeven, err := Breakeven(s)
	if err != nil {
		return nil, err
	}

	examFee := s.ExamFeeLocal()

	res := &model.ProjectionResult{
		Years:        make([]model.YearRecord, 0, s.HorizonYears),
		Fees:         make([]model.FeeProjectionRecord, 0, s.HorizonYears),
		Breakeven:    breakeven,
		ExamFeeLocal: round2(examFee),
	}

	for year := 1; year <= s.HorizonYears; year++ {
		yr, fee := projectYear(s, year, examFee)
		res.Years = append(res.Years, yr)
		res.Fees = append(res.Fees, fee)
	}

	res.CashFlow = CashFlows(res.Years, s.InflationRate)
	res.EMI, res.Loan = Amortize(s.Loan)

	if field, ok := overflowed(res); ok {
		return nil, &config.ValidationError{Field: field, Reason: "amounts exceed the representable range"}
	}
	return res, nil
}

// overflowed reports the first section holding a non-finite amount.
func overflowed(res *model.ProjectionResult) (string, bool) {
	b := res.Breakeven
	if !finite(b.FixedCost, b.RevenuePerStudent, b.VariableCostPerStudent, b.BreakevenStudents) {
		return "breakeven", true
	}
	for _, y := range res.Years {
		if !finite(y.TotalRevenue, y.TotalExpense, y.NetProfit, y.ROI) {
			return "years", true
		}
	}
	if !finite(res.FinalCumulativeCashFlow()) {
		return "cash_flow", true
	}
	if !finite(res.EMI) {
		return "loan", true
	}
	for _, l := range res.Loan {
		if !finite(l.RemainingBalance) {
			return "loan", true
		}
	}
	return "", false
}

// InflationMultiplier returns (1+rate)^(year-1).
func InflationMultiplier(rate float64, year int) float64 {
	return math.Pow(1+rate, float64(year-1))
}

func projectYear(s config.Scenario, year int, examFee float64) (model.YearRecord, model.FeeProjectionRecord) {
	m := InflationMultiplier(s.InflationRate, year)

	admissionFee := s.AdmissionFeeBase * m
	semesterFee := s.SemesterFeeBase() * m
	teacherCost := s.TeacherCostPerSubjectBase * m
	adminPerStudent := s.AdminCostPerStudentBase * m

	students := float64(s.TotalStudents())
	admissionRevenue := students * admissionFee
	semesterRevenue := students * semesterFee
	examRevenue := students * examFee
	revenue := admissionRevenue + semesterRevenue + examRevenue

	teaching := float64(s.SubjectsPerIntakeYear()) * teacherCost * float64(s.IntakesPerYear)
	admin := students * adminPerStudent
	marketing := s.MarketingCostBase * m
	misc := s.MiscExpenseBase * m
	var infra float64
	if year == 1 {
		infra = s.InfrastructureCostYear1
	}
	expense := teaching + admin + marketing + infra + misc

	profit := revenue - expense
	var roi float64
	if expense > 0 {
		roi = profit / expense * 100
	}

	yr := model.YearRecord{
		Year:               year,
		TotalStudents:      s.TotalStudents(),
		AdmissionFee:       round2(admissionFee),
		SemesterFee:        round2(semesterFee),
		AdmissionRevenue:   round2(admissionRevenue),
		SemesterRevenue:    round2(semesterRevenue),
		ExamRevenue:        round2(examRevenue),
		TeachingCost:       round2(teaching),
		AdminCost:          round2(admin),
		MarketingCost:      round2(marketing),
		InfrastructureCost: round2(infra),
		MiscExpense:        round2(misc),
		TotalRevenue:       round2(revenue),
		TotalExpense:       round2(expense),
		NetProfit:          round2(profit),
		ROI:                round2(roi),
	}
	fee := model.FeeProjectionRecord{
		Year:         year,
		AdmissionFee: yr.AdmissionFee,
		SemesterFee:  yr.SemesterFee,
		ExamFee:      round2(examFee),
	}
	return yr, fee
}
