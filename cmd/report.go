package cmd

import (
	"fmt"
	"log/slog"

	"github.com/theirongolddev/eduforecast/internal/export"
	"github.com/theirongolddev/eduforecast/internal/projection"
	"github.com/theirongolddev/eduforecast/internal/report"

	"github.com/spf13/cobra"
)

var (
	flagOutput   string
	flagFormat   string
	flagCurrency string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Compute the projection and write the report file",
	RunE:  runReport,
}

func init() {
	addReportFlags(reportCmd)
	rootCmd.AddCommand(reportCmd)
}

// addReportFlags registers the output flags on both the root command and
// report, since report is the default action.
func addReportFlags(c *cobra.Command) {
	c.Flags().StringVarP(&flagOutput, "output", "o", "", "Output file (default from config)")
	c.Flags().StringVarP(&flagFormat, "format", "f", "", "Output format: xlsx or pdf (default from extension)")
	c.Flags().StringVar(&flagCurrency, "currency", "", "Currency label (default from config)")
}

func runReport(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	out := cfg.Report.Output
	if flagOutput != "" {
		out = flagOutput
	}
	currency := cfg.Report.Currency
	if flagCurrency != "" {
		currency = flagCurrency
	}

	format := flagFormat
	if format == "" {
		format = cfg.Report.Format
	}
	if format == "" {
		format = export.FormatFromPath(out)
	}
	if format == "" {
		format = "xlsx"
	}
	rend, err := export.ForFormat(format)
	if err != nil {
		return err
	}

	progress(cmd, "  Computing %d-year projection...\n", cfg.Scenario.HorizonYears)
	res, err := projection.Compute(cfg.Scenario)
	if err != nil {
		return fmt.Errorf("computing projection: %w", err)
	}

	rep := report.Build(res, report.Options{
		Title:       cfg.Report.Title,
		Currency:    currency,
		ChartAnchor: cfg.Report.ChartAnchor,
	})
	slog.Debug("report built", "tables", len(rep.Tables), "charts", len(rep.Charts), "format", format)

	if err := export.WriteFile(out, rend, rep); err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Report generated successfully: %s\n", out)
	}
	return nil
}
