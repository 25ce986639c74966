package projection

import (
	"fmt"
	"math"

	"github.com/theirongolddev/eduforecast/internal/config"
	"github.com/theirongolddev/eduforecast/internal/model"
)

// Installment returns the fixed annual payment that repays principal over
// years at rate. A zero rate splits the principal evenly.
func Installment(principal, rate float64, years int) float64 {
	if years < 1 {
		return 0
	}
	if rate == 0 {
		return principal / float64(years)
	}
	growth := math.Pow(1+rate, float64(years))
	if growth == 1 {
		// rate is below float resolution
		return principal / float64(years)
	}
	return principal * rate * growth / (growth - 1)
}

// CheckLoan rejects loan terms whose compound growth (1+rate)^term leaves
// the float range, which would turn every installment into NaN.
func CheckLoan(loan config.LoanTerms) error {
	growth := math.Pow(1+loan.InterestRate, float64(loan.TermYears))
	if !finite(growth) {
		return &config.ValidationError{
			Field:  "loan.interest_rate",
			Reason: fmt.Sprintf("compounds out of range over %d years", loan.TermYears),
		}
	}
	return nil
}

// Amortize builds the annual repayment schedule for a fixed-installment loan.
// The balance is carried unrounded; only the emitted records are rounded, so
// the final balance may drift from zero by a rounding error.
func Amortize(loan config.LoanTerms) (float64, []model.LoanAmortizationRecord) {
	emi := Installment(loan.Amount, loan.InterestRate, loan.TermYears)

	schedule := scan(periods(loan.TermYears), loan.Amount, func(remaining float64, year int) (float64, model.LoanAmortizationRecord) {
		interest := remaining * loan.InterestRate
		principal := emi - interest
		remaining -= principal
		return remaining, model.LoanAmortizationRecord{
			Year:             year,
			Installment:      round2(emi),
			Principal:        round2(principal),
			Interest:         round2(interest),
			RemainingBalance: round2(remaining),
		}
	})

	return round2(emi), schedule
}
