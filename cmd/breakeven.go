package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/eduforecast/internal/cli"
	"github.com/theirongolddev/eduforecast/internal/projection"

	"github.com/spf13/cobra"
)

var breakevenCmd = &cobra.Command{
	Use:   "breakeven",
	Short: "Show the breakeven analysis",
	RunE:  runBreakeven,
}

func init() {
	rootCmd.AddCommand(breakevenCmd)
}

func runBreakeven(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	s := cfg.Scenario
	if err := s.Validate(); err != nil {
		return err
	}

	be, err := projection.Breakeven(s)
	if errors.Is(err, projection.ErrBreakevenUndefined) {
		fmt.Fprintf(cmd.OutOrStdout(), "\n  %s\n", cli.RenderSigned(-1, "No breakeven: each student costs more than they pay."))
		return err
	}
	if err != nil {
		return err
	}

	cur := cfg.Report.Currency
	students := s.TotalStudents()

	w := cmd.OutOrStdout()
	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.RenderTitle("BREAKEVEN ANALYSIS"))
	fmt.Fprintln(w)
	fmt.Fprint(w, cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Fixed cost", cli.FormatCurrency(cur, be.FixedCost)},
			{"Revenue / student", cli.FormatCurrency(cur, be.RevenuePerStudent)},
			{"Variable cost / student", cli.FormatCurrency(cur, be.VariableCostPerStudent)},
			{"Margin / student", cli.FormatCurrency(cur, be.Margin())},
			{"---"},
			{"Breakeven students", fmt.Sprintf("%.2f", be.BreakevenStudents)},
			{"Enrolled students", cli.FormatNumber(int64(students))},
		},
	}))

	headroom := float64(students) - be.BreakevenStudents
	fmt.Fprintf(w, "\n  Headroom: %s\n", cli.RenderSigned(headroom, fmt.Sprintf("%+.2f students", headroom)))
	return nil
}
