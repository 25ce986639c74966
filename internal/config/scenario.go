package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is matched by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// ValidationError describes a single rejected scenario field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s %s", e.Field, e.Reason)
}

// Is reports whether target is ErrInvalidConfig.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// Scenario holds every constant that drives a projection.
type Scenario struct {
	USDToLocalRate float64 `toml:"usd_to_local_rate" yaml:"usd_to_local_rate"`
	InflationRate  float64 `toml:"inflation_rate" yaml:"inflation_rate"`
	HorizonYears   int     `toml:"horizon_years" yaml:"horizon_years"`

	IntakesPerYear    int `toml:"intakes_per_year" yaml:"intakes_per_year"`
	StudentsPerIntake int `toml:"students_per_intake" yaml:"students_per_intake"`

	AdmissionFeeBase    float64 `toml:"admission_fee_base" yaml:"admission_fee_base"`
	SemesterFeePerTerm  float64 `toml:"semester_fee_per_term" yaml:"semester_fee_per_term"`
	SemestersPerProgram int     `toml:"semesters_per_program" yaml:"semesters_per_program"`
	ExamFeeUSD          float64 `toml:"exam_fee_usd" yaml:"exam_fee_usd"`

	TeacherCostPerSubjectBase float64 `toml:"teacher_cost_per_subject_base" yaml:"teacher_cost_per_subject_base"`
	SubjectsPerTerm           int     `toml:"subjects_per_term" yaml:"subjects_per_term"`
	TermsPerYear              int     `toml:"terms_per_year" yaml:"terms_per_year"`
	AdditionalSubjects        int     `toml:"additional_subjects" yaml:"additional_subjects"`

	MarketingCostBase       float64 `toml:"marketing_cost_base" yaml:"marketing_cost_base"`
	AdminCostPerStudentBase float64 `toml:"admin_cost_per_student_base" yaml:"admin_cost_per_student_base"`
	MiscExpenseBase         float64 `toml:"misc_expense_base" yaml:"misc_expense_base"`
	InfrastructureCostYear1 float64 `toml:"infrastructure_cost_year1" yaml:"infrastructure_cost_year1"`

	Loan LoanTerms `toml:"loan" yaml:"loan"`
}

// LoanTerms describes a fixed-installment loan repaid annually.
type LoanTerms struct {
	Amount       float64 `toml:"amount" yaml:"amount"`
	InterestRate float64 `toml:"interest_rate" yaml:"interest_rate"`
	TermYears    int     `toml:"term_years" yaml:"term_years"`
}

// DefaultScenario returns the reference business model.
func DefaultScenario() Scenario {
	return Scenario{
		USDToLocalRate: 137.54,
		InflationRate:  0.0521,
		HorizonYears:   5,

		IntakesPerYear:    2,
		StudentsPerIntake: 15,

		AdmissionFeeBase:    80000,
		SemesterFeePerTerm:  50000,
		SemestersPerProgram: 4,
		ExamFeeUSD:          610,

		TeacherCostPerSubjectBase: 150000,
		SubjectsPerTerm:           5,
		TermsPerYear:              3,
		AdditionalSubjects:        1,

		MarketingCostBase:       500000,
		AdminCostPerStudentBase: 10000,
		MiscExpenseBase:         300000,
		InfrastructureCostYear1: 2000000,

		Loan: LoanTerms{
			Amount:       5000000,
			InterestRate: 0.08,
			TermYears:    5,
		},
	}
}

// TotalStudents is the enrolment held constant in every projected year.
func (s Scenario) TotalStudents() int {
	return s.IntakesPerYear * s.StudentsPerIntake
}

// SemesterFeeBase is the per-student fee for the whole program before inflation.
func (s Scenario) SemesterFeeBase() float64 {
	return s.SemesterFeePerTerm * float64(s.SemestersPerProgram)
}

// SubjectsPerIntakeYear is the number of subjects taught to one intake in a year.
func (s Scenario) SubjectsPerIntakeYear() int {
	return s.SubjectsPerTerm*s.TermsPerYear + s.AdditionalSubjects
}

// ExamFeeLocal converts the USD exam fee into local currency.
func (s Scenario) ExamFeeLocal() float64 {
	return s.ExamFeeUSD * s.USDToLocalRate
}

type namedValue struct {
	field string
	v     float64
}

// floats lists every float setting by its config key.
func (s Scenario) floats() []namedValue {
	return []namedValue{
		{"usd_to_local_rate", s.USDToLocalRate},
		{"inflation_rate", s.InflationRate},
		{"admission_fee_base", s.AdmissionFeeBase},
		{"semester_fee_per_term", s.SemesterFeePerTerm},
		{"exam_fee_usd", s.ExamFeeUSD},
		{"teacher_cost_per_subject_base", s.TeacherCostPerSubjectBase},
		{"marketing_cost_base", s.MarketingCostBase},
		{"admin_cost_per_student_base", s.AdminCostPerStudentBase},
		{"misc_expense_base", s.MiscExpenseBase},
		{"infrastructure_cost_year1", s.InfrastructureCostYear1},
		{"loan.amount", s.Loan.Amount},
		{"loan.interest_rate", s.Loan.InterestRate},
	}
}

// Validate rejects scenarios the engine cannot project.
func (s Scenario) Validate() error {
	// NaN compares false against every bound below, so it must go first.
	for _, f := range s.floats() {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return &ValidationError{f.field, "must be a finite number"}
		}
	}

	switch {
	case s.HorizonYears < 1:
		return &ValidationError{"horizon_years", "must be at least 1"}
	case s.IntakesPerYear < 1:
		return &ValidationError{"intakes_per_year", "must be at least 1"}
	case s.StudentsPerIntake < 1:
		return &ValidationError{"students_per_intake", "must be at least 1"}
	case s.SemestersPerProgram < 0:
		return &ValidationError{"semesters_per_program", "must not be negative"}
	case s.SubjectsPerTerm < 0 || s.TermsPerYear < 0 || s.AdditionalSubjects < 0:
		return &ValidationError{"subjects", "counts must not be negative"}
	case s.SubjectsPerIntakeYear() < 1:
		return &ValidationError{"subjects", "at least one subject per intake year is required"}
	case s.InflationRate <= -1:
		return &ValidationError{"inflation_rate", "must be greater than -1"}
	case s.USDToLocalRate < 0:
		return &ValidationError{"usd_to_local_rate", "must not be negative"}
	case s.Loan.TermYears < 1:
		return &ValidationError{"loan.term_years", "must be at least 1"}
	case s.Loan.InterestRate < 0:
		return &ValidationError{"loan.interest_rate", "must not be negative"}
	case s.Loan.Amount < 0:
		return &ValidationError{"loan.amount", "must not be negative"}
	}

	money := []namedValue{
		{"admission_fee_base", s.AdmissionFeeBase},
		{"semester_fee_per_term", s.SemesterFeePerTerm},
		{"exam_fee_usd", s.ExamFeeUSD},
		{"teacher_cost_per_subject_base", s.TeacherCostPerSubjectBase},
		{"marketing_cost_base", s.MarketingCostBase},
		{"admin_cost_per_student_base", s.AdminCostPerStudentBase},
		{"misc_expense_base", s.MiscExpenseBase},
		{"infrastructure_cost_year1", s.InfrastructureCostYear1},
	}
	for _, m := range money {
		if m.v < 0 {
			return &ValidationError{m.field, "must not be negative"}
		}
	}
	return nil
}
