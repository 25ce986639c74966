package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"Info":    slog.LevelInfo,
		"WARNING": slog.LevelWarn,
		"Error":   slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		if err != nil {
			t.Errorf("ParseLevel(%q): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}

	for _, bad := range []string{"", "bogus"} {
		if _, err := ParseLevel(bad); err == nil {
			t.Errorf("ParseLevel(%q) = nil error, want error", bad)
		}
	}
}

func TestLevelFor(t *testing.T) {
	if got := LevelFor(false, false); got != slog.LevelWarn {
		t.Errorf("LevelFor(default) = %v, want WARN", got)
	}
	if got := LevelFor(false, true); got != slog.LevelDebug {
		t.Errorf("LevelFor(verbose) = %v, want DEBUG", got)
	}
	if got := LevelFor(true, true); got != slog.LevelError {
		t.Errorf("LevelFor(quiet, verbose) = %v, want ERROR", got)
	}
}

func TestSetupFiltersByLevel(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	Setup(&buf, slog.LevelWarn)

	slog.Info("hidden")
	slog.Warn("shown", "sheet", "Cash Flow")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record written at WARN level:\n%s", out)
	}
	if !strings.Contains(out, `msg=shown sheet="Cash Flow"`) {
		t.Errorf("warn record missing attrs:\n%s", out)
	}
}
