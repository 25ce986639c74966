// Package export writes report sections to spreadsheet and PDF files.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/theirongolddev/eduforecast/internal/report"
)

// ErrUnknownFormat is returned for an output format with no renderer.
var ErrUnknownFormat = errors.New("unknown report format")

// Formats lists the supported output formats.
var Formats = []string{"xlsx", "pdf"}

// ForFormat returns the renderer for a format name.
func ForFormat(name string) (report.Renderer, error) {
	switch strings.ToLower(name) {
	case "xlsx":
		return XLSX{}, nil
	case "pdf":
		return PDF{}, nil
	}
	return nil, fmt.Errorf("%w %q (want one of %s)", ErrUnknownFormat, name, strings.Join(Formats, ", "))
}

// FormatFromPath infers the output format from a file extension.
// Returns "" when the extension is not recognised.
func FormatFromPath(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	for _, f := range Formats {
		if ext == f {
			return f
		}
	}
	return ""
}

// WriteFile renders r into path, removing the partial file on failure.
func WriteFile(path string, rend report.Renderer, r report.Report) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	f, err := os.Create(path) //nolint:gosec // output path is user supplied
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := rend.Render(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
