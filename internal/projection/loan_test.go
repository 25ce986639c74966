package projection

import (
	"errors"
	"testing"

	"github.com/theirongolddev/eduforecast/internal/config"
)

func TestAmortize_Default(t *testing.T) {
	emi, schedule := Amortize(config.DefaultScenario().Loan)

	if !near(emi, 1252282.27, 0.005) {
		t.Fatalf("EMI = %.2f, want 1252282.27", emi)
	}
	if len(schedule) != 5 {
		t.Fatalf("len(schedule) = %d, want 5", len(schedule))
	}

	want := []struct{ principal, interest, remaining float64 }{
		{852282.27, 400000.00, 4147717.73},
		{920464.85, 331817.42, 3227252.87},
		{994102.04, 258180.23, 2233150.83},
		{1073630.21, 178652.07, 1159520.62},
		{1159520.62, 92761.65, 0},
	}
	for i, w := range want {
		r := schedule[i]
		if r.Year != i+1 {
			t.Errorf("row %d Year = %d, want %d", i, r.Year, i+1)
		}
		if r.Installment != emi {
			t.Errorf("year %d Installment = %.2f, want %.2f", r.Year, r.Installment, emi)
		}
		if !near(r.Principal, w.principal, 0.005) {
			t.Errorf("year %d Principal = %.2f, want %.2f", r.Year, r.Principal, w.principal)
		}
		if !near(r.Interest, w.interest, 0.005) {
			t.Errorf("year %d Interest = %.2f, want %.2f", r.Year, r.Interest, w.interest)
		}
		if !near(r.RemainingBalance, w.remaining, 0.005) {
			t.Errorf("year %d RemainingBalance = %.2f, want %.2f", r.Year, r.RemainingBalance, w.remaining)
		}
	}
}

func TestAmortize_BalanceStrictlyDecreasesToZero(t *testing.T) {
	terms := []config.LoanTerms{
		{Amount: 5000000, InterestRate: 0.08, TermYears: 5},
		{Amount: 1200000, InterestRate: 0.12, TermYears: 10},
		{Amount: 750000, InterestRate: 0.035, TermYears: 3},
		{Amount: 900000, InterestRate: 0, TermYears: 4},
	}

	for _, lt := range terms {
		_, schedule := Amortize(lt)
		prev := lt.Amount
		for _, r := range schedule {
			if r.RemainingBalance >= prev {
				t.Errorf("%+v: year %d balance %.2f did not decrease from %.2f", lt, r.Year, r.RemainingBalance, prev)
			}
			if !near(r.Principal+r.Interest, r.Installment, 0.011) {
				t.Errorf("%+v: year %d principal+interest = %.2f, want EMI %.2f",
					lt, r.Year, r.Principal+r.Interest, r.Installment)
			}
			prev = r.RemainingBalance
		}
		if last := schedule[len(schedule)-1]; !near(last.RemainingBalance, 0, 0.01) {
			t.Errorf("%+v: final balance = %.2f, want ~0", lt, last.RemainingBalance)
		}
	}
}

func TestInstallment_ZeroRate(t *testing.T) {
	if got := Installment(1000, 0, 4); got != 250 {
		t.Fatalf("Installment(1000, 0, 4) = %v, want 250", got)
	}
	if got := Installment(1000, 0.1, 0); got != 0 {
		t.Fatalf("Installment with zero term = %v, want 0", got)
	}
}

func TestInstallment_RateBelowResolution(t *testing.T) {
	if got := Installment(1_000_000, 1e-20, 4); got != 250_000 {
		t.Fatalf("Installment = %v, want 250000", got)
	}
}

func TestCheckLoan(t *testing.T) {
	if err := CheckLoan(config.DefaultScenario().Loan); err != nil {
		t.Fatalf("CheckLoan(default) = %v, want nil", err)
	}
	err := CheckLoan(config.LoanTerms{Amount: 1000, InterestRate: 1e10, TermYears: 50})
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("CheckLoan(overflow) = %v, want ErrInvalidConfig", err)
	}
}
