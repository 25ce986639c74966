package projection

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/eduforecast/internal/config"
	"github.com/theirongolddev/eduforecast/internal/model"
)

// ErrBreakevenUndefined is returned when revenue per student does not
// exceed variable cost per student, so no enrolment covers fixed cost.
var ErrBreakevenUndefined = errors.New("breakeven undefined: revenue per student does not exceed variable cost per student")

// Breakeven computes the enrolment at which revenue covers cost, using the
// nominal year-1 bases with no inflation applied.
func Breakeven(s config.Scenario) (model.BreakevenResult, error) {
	students := float64(s.TotalStudents())

	fixedCost := s.InfrastructureCostYear1 +
		s.MarketingCostBase +
		students*s.AdminCostPerStudentBase +
		s.MiscExpenseBase
	revenuePerStudent := s.AdmissionFeeBase +
		float64(s.SemestersPerProgram)*s.SemesterFeePerTerm +
		s.ExamFeeLocal()
	variablePerStudent := s.TeacherCostPerSubjectBase *
		float64(s.SubjectsPerIntakeYear()) *
		float64(s.IntakesPerYear) / students

	if !finite(fixedCost, revenuePerStudent, variablePerStudent) {
		return model.BreakevenResult{}, &config.ValidationError{
			Field:  "breakeven",
			Reason: "amounts exceed the representable range",
		}
	}

	margin := revenuePerStudent - variablePerStudent
	if margin <= 0 {
		return model.BreakevenResult{}, fmt.Errorf("%w (revenue %.2f, variable cost %.2f)",
			ErrBreakevenUndefined, revenuePerStudent, variablePerStudent)
	}

	return model.BreakevenResult{
		FixedCost:              round2(fixedCost),
		RevenuePerStudent:      round2(revenuePerStudent),
		VariableCostPerStudent: round2(variablePerStudent),
		BreakevenStudents:      round2(fixedCost / margin),
	}, nil
}
