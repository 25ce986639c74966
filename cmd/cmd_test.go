package cmd

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/theirongolddev/eduforecast/internal/config"
	"github.com/theirongolddev/eduforecast/internal/projection"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

var lastStderr bytes.Buffer

func stderrOf(t *testing.T) string {
	t.Helper()
	return lastStderr.String()
}

// resetFlags restores every flag to its default and clears Changed, since
// the command tree is shared between tests.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// run executes the root command with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	resetFlags(rootCmd)

	var stdout bytes.Buffer
	lastStderr.Reset()
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&lastStderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), err
}

func TestReportWritesWorkbook(t *testing.T) {
	out := filepath.Join(t.TempDir(), "analysis.xlsx")
	stdout, err := run(t, "report", "-o", out)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if !strings.Contains(stdout, "Report generated successfully: "+out) {
		t.Errorf("stdout = %q", stdout)
	}

	zr, err := zip.OpenReader(out)
	if err != nil {
		t.Fatalf("opening workbook: %v", err)
	}
	defer zr.Close()
	var sheets int
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "xl/worksheets/sheet") {
			sheets++
		}
	}
	if sheets != 5 {
		t.Errorf("sheets = %d, want 5", sheets)
	}
}

func TestRootDefaultsToReport(t *testing.T) {
	out := filepath.Join(t.TempDir(), "analysis.pdf")
	if _, err := run(t, "--quiet", "-o", out); err != nil {
		t.Fatalf("root: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output is not a PDF")
	}
}

func TestReportUnknownFormat(t *testing.T) {
	out := filepath.Join(t.TempDir(), "analysis.csv")
	_, err := run(t, "report", "-o", out, "-f", "csv")
	if err == nil {
		t.Fatal("expected error for csv format")
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Errorf("output file created despite format error")
	}
}

func TestInvalidScenarioFailsBeforeWriting(t *testing.T) {
	dir := t.TempDir()
	scenario := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(scenario, []byte("scenario:\n  students_per_intake: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "analysis.xlsx")

	_, err := run(t, "report", "-c", scenario, "-o", out)
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Errorf("output file written for invalid scenario")
	}
}

func TestNonFiniteScenarioFailsWithoutPanic(t *testing.T) {
	dir := t.TempDir()
	scenario := filepath.Join(dir, "nan.toml")
	if err := os.WriteFile(scenario, []byte("[scenario]\nusd_to_local_rate = nan\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "analysis.xlsx")

	_, err := run(t, "report", "-c", scenario, "-o", out)
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Errorf("output file written for non-finite scenario")
	}
}

func TestHorizonOverflowFailsWithoutPanic(t *testing.T) {
	dir := t.TempDir()
	scenario := filepath.Join(dir, "runaway.toml")
	if err := os.WriteFile(scenario, []byte("[scenario]\ninflation_rate = 5.0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := run(t, "summary", "-c", scenario, "--horizon", "500")
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestExplicitZeroHorizonFails(t *testing.T) {
	_, err := run(t, "summary", "--horizon", "0")
	var ve *config.ValidationError
	if !errors.As(err, &ve) || ve.Field != "horizon_years" {
		t.Fatalf("err = %v, want horizon_years validation error", err)
	}
}

func TestLogLevelFlag(t *testing.T) {
	out := filepath.Join(t.TempDir(), "analysis.xlsx")
	if _, err := run(t, "report", "--log-level", "debug", "-o", out); err != nil {
		t.Fatalf("report --log-level debug: %v", err)
	}
	if !strings.Contains(stderrOf(t), "report built") {
		t.Errorf("debug records missing from stderr:\n%s", stderrOf(t))
	}

	if _, err := run(t, "report", "--log-level", "loud", "-o", out); err == nil {
		t.Error("expected error for unknown log level")
	}
}

func TestLoanHelpMentionsTerm(t *testing.T) {
	if !strings.Contains(loanCmd.Long, "independent of --horizon") {
		t.Errorf("loan help does not explain schedule length:\n%s", loanCmd.Long)
	}
}

func TestHorizonOverride(t *testing.T) {
	stdout, err := run(t, "summary", "--horizon", "3")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if !strings.Contains(stdout, "Year 3") {
		t.Errorf("summary missing Year 3:\n%s", stdout)
	}
	// The loan schedule follows the loan term, so Year 4 appears there only.
	if n := strings.Count(stdout, "Year 4"); n != 1 {
		t.Errorf("Year 4 appears %d times, want 1 (loan schedule only)", n)
	}
}

func TestSummary(t *testing.T) {
	stdout, err := run(t, "summary")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	for _, want := range []string{
		"Financial Report",
		"Fee Projection",
		"Cash Flow",
		"Breakeven Analysis",
		"Loan Amortization",
		"10,916,982.00",
		"Payback",
		"Net Profit (NPR)",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("summary missing %q", want)
		}
	}
}

func TestBreakeven(t *testing.T) {
	stdout, err := run(t, "breakeven")
	if err != nil {
		t.Fatalf("breakeven: %v", err)
	}
	for _, want := range []string{"15.20", "NPR 3,100,000.00", "+14.80 students"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("breakeven output missing %q:\n%s", want, stdout)
		}
	}
}

func TestBreakevenUndefined(t *testing.T) {
	scenario := filepath.Join(t.TempDir(), "loss.toml")
	body := "[scenario]\nadmission_fee_base = 0.0\nsemester_fee_per_term = 0.0\nexam_fee_usd = 0.0\n"
	if err := os.WriteFile(scenario, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := run(t, "breakeven", "-c", scenario)
	if !errors.Is(err, projection.ErrBreakevenUndefined) {
		t.Fatalf("err = %v, want ErrBreakevenUndefined", err)
	}
}

func TestLoanFlags(t *testing.T) {
	stdout, err := run(t, "loan", "--amount", "1000000", "--rate", "0", "--term", "4")
	if err != nil {
		t.Fatalf("loan: %v", err)
	}
	if !strings.Contains(stdout, "250,000.00") {
		t.Errorf("zero-rate EMI not P/n:\n%s", stdout)
	}
	if !strings.Contains(stdout, "Year 4") || strings.Contains(stdout, "Year 5") {
		t.Errorf("schedule does not have 4 rows:\n%s", stdout)
	}
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eduforecast.toml")
	if _, err := run(t, "config", "init", "--path", path); err != nil {
		t.Fatalf("config init: %v", err)
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("loading written config: %v", err)
	}
	if cfg.Scenario != config.DefaultScenario() {
		t.Errorf("written scenario = %+v, want defaults", cfg.Scenario)
	}

	if _, err := run(t, "config", "init", "--path", path); err == nil {
		t.Error("expected error when config already exists")
	}
	if _, err := run(t, "config", "init", "--path", path, "--force"); err != nil {
		t.Errorf("config init --force: %v", err)
	}
}

func TestConfigShow(t *testing.T) {
	stdout, err := run(t, "config")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	for _, want := range []string{"using defaults", "30", "NPR 83,899.40", "config init"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("config output missing %q:\n%s", want, stdout)
		}
	}
}
