// Package cmd implements the eduforecast CLI commands.
package cmd

import (
	"fmt"

	"github.com/theirongolddev/eduforecast/internal/cli"
	"github.com/theirongolddev/eduforecast/internal/config"

	"github.com/spf13/cobra"
)

var (
	flagInitPath  string
	flagInitForce bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE:  runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	RunE:  runConfigInit,
}

func init() {
	configInitCmd.Flags().StringVar(&flagInitPath, "path", "", "Destination file (default: XDG config path)")
	configInitCmd.Flags().BoolVar(&flagInitForce, "force", false, "Overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	s := cfg.Scenario
	w := cmd.OutOrStdout()

	switch {
	case flagConfig != "":
		fmt.Fprintf(w, "  Scenario file: %s\n", flagConfig)
	case config.Exists():
		fmt.Fprintf(w, "  Config file: %s\n", config.Path())
		fmt.Fprintln(w, "  Status: loaded")
	default:
		fmt.Fprintf(w, "  Config file: %s\n", config.Path())
		fmt.Fprintln(w, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(w)

	cur := cfg.Report.Currency
	fmt.Fprintln(w, "  [Scenario]")
	fmt.Fprintf(w, "    Horizon:             %d years\n", s.HorizonYears)
	fmt.Fprintf(w, "    Inflation:           %s\n", cli.FormatPercent(s.InflationRate))
	fmt.Fprintf(w, "    USD rate:            %.2f\n", s.USDToLocalRate)
	fmt.Fprintf(w, "    Students:            %d intakes x %d = %d\n", s.IntakesPerYear, s.StudentsPerIntake, s.TotalStudents())
	fmt.Fprintf(w, "    Admission fee:       %s\n", cli.FormatCurrency(cur, s.AdmissionFeeBase))
	fmt.Fprintf(w, "    Semester fee:        %s x %d\n", cli.FormatCurrency(cur, s.SemesterFeePerTerm), s.SemestersPerProgram)
	fmt.Fprintf(w, "    Exam fee:            USD %.2f (%s)\n", s.ExamFeeUSD, cli.FormatCurrency(cur, s.ExamFeeLocal()))
	fmt.Fprintf(w, "    Teacher / subject:   %s x %d subjects\n", cli.FormatCurrency(cur, s.TeacherCostPerSubjectBase), s.SubjectsPerIntakeYear())
	fmt.Fprintf(w, "    Marketing:           %s\n", cli.FormatCurrency(cur, s.MarketingCostBase))
	fmt.Fprintf(w, "    Admin / student:     %s\n", cli.FormatCurrency(cur, s.AdminCostPerStudentBase))
	fmt.Fprintf(w, "    Misc:                %s\n", cli.FormatCurrency(cur, s.MiscExpenseBase))
	fmt.Fprintf(w, "    Infrastructure (Y1): %s\n", cli.FormatCurrency(cur, s.InfrastructureCostYear1))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [Loan]")
	fmt.Fprintf(w, "    Amount: %s\n", cli.FormatCurrency(cur, s.Loan.Amount))
	fmt.Fprintf(w, "    Rate:   %s\n", cli.FormatPercent(s.Loan.InterestRate))
	fmt.Fprintf(w, "    Term:   %d years\n", s.Loan.TermYears)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [Report]")
	fmt.Fprintf(w, "    Output:   %s\n", cfg.Report.Output)
	if cfg.Report.Format != "" {
		fmt.Fprintf(w, "    Format:   %s\n", cfg.Report.Format)
	}
	fmt.Fprintf(w, "    Currency: %s\n", cur)
	fmt.Fprintf(w, "    Title:    %s\n", cfg.Report.Title)
	fmt.Fprintln(w)

	if err := s.Validate(); err != nil {
		fmt.Fprintf(w, "  %s\n", cli.RenderSigned(-1, err.Error()))
		return nil
	}
	if flagConfig == "" && !config.Exists() {
		fmt.Fprintln(w, "  Run `eduforecast config init` to write these defaults to disk.")
	}
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path := flagInitPath
	if path == "" {
		path = config.Path()
	}
	if !flagInitForce && fileExists(path) {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := config.SaveFile(path, config.DefaultConfig()); err != nil {
		return err
	}
	progress(cmd, "  Wrote default configuration to %s\n", path)
	return nil
}
