package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/theirongolddev/eduforecast/internal/config"
	"github.com/theirongolddev/eduforecast/internal/logging"

	"github.com/spf13/cobra"
)

var (
	flagConfig  string
	flagHorizon int
	flagQuiet   bool
	flagVerbose bool
	flagLogLev  string
)

var rootCmd = &cobra.Command{
	Use:   "eduforecast",
	Short: "College business model projection",
	Long:  "Project revenue, expenses, cash flow, breakeven and loan repayment for a college and export the analysis as a spreadsheet.",
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		level := logging.LevelFor(flagQuiet, flagVerbose)
		if cmd.Flags().Changed("log-level") {
			var err error
			if level, err = logging.ParseLevel(flagLogLev); err != nil {
				return err
			}
		}
		logging.Setup(cmd.ErrOrStderr(), level)
		return nil
	},
	RunE:         runReport,
	SilenceUsage: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Scenario file (.toml or .yaml); defaults to the XDG config file")
	rootCmd.PersistentFlags().IntVar(&flagHorizon, "horizon", 0, "Override the number of projected years")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagLogLev, "log-level", "", "Log level: debug, info, warn or error (overrides --quiet/--verbose)")
	addReportFlags(rootCmd)
}

// loadConfig is the shared config path used by all commands: the explicit
// --config file or the XDG config, then flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if flagConfig != "" {
		cfg, err = config.LoadFile(flagConfig)
		if err != nil {
			if os.IsNotExist(err) {
				return cfg, fmt.Errorf("scenario file %s does not exist", flagConfig)
			}
			return cfg, err
		}
		slog.Debug("loaded scenario", "path", flagConfig)
	} else {
		cfg, err = config.Load()
		if err != nil {
			return cfg, err
		}
		slog.Debug("loaded config", "path", config.Path(), "exists", config.Exists())
	}

	if cmd.Flags().Changed("horizon") {
		cfg.Scenario.HorizonYears = flagHorizon
	}
	return cfg, nil
}

// progress writes a human status line to stderr unless --quiet is set.
func progress(cmd *cobra.Command, format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), format, args...)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
