package cmd

import (
	"fmt"

	"github.com/theirongolddev/eduforecast/internal/cli"
	"github.com/theirongolddev/eduforecast/internal/projection"
	"github.com/theirongolddev/eduforecast/internal/report"

	"github.com/spf13/cobra"
)

var (
	flagLoanAmount float64
	flagLoanRate   float64
	flagLoanTerm   int
)

var loanCmd = &cobra.Command{
	Use:   "loan",
	Short: "Show the loan amortization schedule",
	Long: `Show the annual repayment schedule of the loan.

The schedule has one row per year of the loan term (--term or
[scenario.loan] term_years), independent of --horizon, so the balance
always runs down to zero.`,
	RunE:  runLoan,
}

func init() {
	loanCmd.Flags().Float64Var(&flagLoanAmount, "amount", 0, "Loan principal (default from config)")
	loanCmd.Flags().Float64Var(&flagLoanRate, "rate", 0, "Annual interest rate, e.g. 0.08 (default from config)")
	loanCmd.Flags().IntVar(&flagLoanTerm, "term", 0, "Term in years (default from config)")
	rootCmd.AddCommand(loanCmd)
}

func runLoan(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	s := cfg.Scenario
	if cmd.Flags().Changed("amount") {
		s.Loan.Amount = flagLoanAmount
	}
	if cmd.Flags().Changed("rate") {
		s.Loan.InterestRate = flagLoanRate
	}
	if cmd.Flags().Changed("term") {
		s.Loan.TermYears = flagLoanTerm
	}
	if err := s.Validate(); err != nil {
		return err
	}
	if err := projection.CheckLoan(s.Loan); err != nil {
		return err
	}

	emi, schedule := projection.Amortize(s.Loan)
	cur := cfg.Report.Currency

	rows := make([][]string, 0, len(schedule)+2)
	var totalInterest float64
	for _, r := range schedule {
		totalInterest += r.Interest
		rows = append(rows, []string{
			report.YearLabel(r.Year),
			cli.FormatCurrency("", r.Installment),
			cli.FormatCurrency("", r.Principal),
			cli.FormatCurrency("", r.Interest),
			cli.FormatCurrency("", r.RemainingBalance),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"TOTAL",
		cli.FormatCurrency("", emi*float64(len(schedule))),
		cli.FormatCurrency("", s.Loan.Amount),
		cli.FormatCurrency("", totalInterest),
		"",
	})

	w := cmd.OutOrStdout()
	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.RenderTitle(fmt.Sprintf("LOAN  %s at %s over %d years",
		cli.FormatCurrency(cur, s.Loan.Amount), cli.FormatPercent(s.Loan.InterestRate), s.Loan.TermYears)))
	fmt.Fprintln(w)
	fmt.Fprint(w, cli.RenderTable(cli.Table{
		Title:   report.SheetLoan,
		Headers: []string{"Year", "EMI Payment", "Principal Paid", "Interest Paid", "Remaining Balance"},
		Rows:    rows,
	}))
	return nil
}
