package cmd

import (
	"fmt"
	"io"

	"github.com/theirongolddev/eduforecast/internal/cli"
	"github.com/theirongolddev/eduforecast/internal/config"
	"github.com/theirongolddev/eduforecast/internal/model"
	"github.com/theirongolddev/eduforecast/internal/projection"
	"github.com/theirongolddev/eduforecast/internal/report"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the projection tables and a profit chart",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	res, err := projection.Compute(cfg.Scenario)
	if err != nil {
		return fmt.Errorf("computing projection: %w", err)
	}
	rep := report.Build(res, report.Options{
		Title:    cfg.Report.Title,
		Currency: cfg.Report.Currency,
	})

	w := cmd.OutOrStdout()
	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.RenderTitle(fmt.Sprintf("%s  %d years", cfg.Report.Title, cfg.Scenario.HorizonYears)))
	fmt.Fprintln(w)

	fmt.Fprint(w, cli.RenderTable(headline(cfg, res)))
	fmt.Fprintln(w)

	for _, t := range rep.Tables {
		// The financial statement is too wide to read row-wise.
		if t.Name == report.SheetFinancial {
			fmt.Fprint(w, cli.RenderTable(cli.Transpose(t)))
		} else {
			fmt.Fprint(w, cli.RenderReportTable(t))
		}
		fmt.Fprintln(w)
	}

	renderProfitChart(w, cfg.Report.Currency, res.Years)
	return nil
}

func headline(cfg config.Config, res *model.ProjectionResult) cli.Table {
	cur := cfg.Report.Currency
	payback := "not within horizon"
	if y := res.PaybackYear(); y > 0 {
		payback = report.YearLabel(y)
	}

	return cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Students / year", cli.FormatNumber(int64(cfg.Scenario.TotalStudents()))},
			{"Inflation", cli.FormatPercent(cfg.Scenario.InflationRate)},
			{"Exam fee", cli.FormatCurrency(cur, res.ExamFeeLocal)},
			{"---"},
			{"Breakeven students", fmt.Sprintf("%.2f", res.Breakeven.BreakevenStudents)},
			{"Loan EMI", cli.FormatCurrency(cur, res.EMI)},
			{"---"},
			{"Cumulative cash flow", cli.FormatCurrency(cur, res.FinalCumulativeCashFlow())},
			{"Payback", payback},
		},
	}
}

func renderProfitChart(w io.Writer, currency string, years []model.YearRecord) {
	if len(years) == 0 {
		return
	}

	values := make([]float64, len(years))
	labels := make([]string, len(years))
	for i, y := range years {
		values[i] = y.NetProfit
		labels[i] = fmt.Sprintf("Y%d", y.Year)
	}

	fmt.Fprintf(w, "  Net Profit (%s)  %s\n\n", currency, cli.RenderSparkline(values))
	fmt.Fprint(w, cli.RenderBarChart(values, labels, 60, 10))
	fmt.Fprintln(w)

	peak := 0.0
	for _, v := range values {
		if v > peak {
			peak = v
		}
	}
	for i, y := range years {
		line := fmt.Sprintf("  %-8s %-30s %s", report.YearLabel(y.Year),
			cli.RenderHorizontalBar(y.NetProfit, peak, 30),
			cli.RenderSigned(y.NetProfit, cli.FormatCompact(y.NetProfit)))
		if i > 0 {
			line += fmt.Sprintf("  (%s)", cli.FormatDelta(y.NetProfit, years[i-1].NetProfit))
		}
		fmt.Fprintln(w, line)
	}
}
