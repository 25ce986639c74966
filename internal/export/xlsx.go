package export

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/theirongolddev/eduforecast/internal/report"
	"github.com/xuri/excelize/v2"
)

const (
	numFmtMoney   = 4  // #,##0.00
	numFmtPercent = 2  // 0.00
	numFmtRate    = 10 // 0.00%

	columnWidth = 18
)

// XLSX writes one worksheet per table and embeds the report's line charts.
type XLSX struct{}

type xlsxStyles struct {
	header, money, percent, rate int
}

// Render implements report.Renderer.
func (XLSX) Render(w io.Writer, r report.Report) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	styles, err := newXLSXStyles(f)
	if err != nil {
		return err
	}

	for i, t := range r.Tables {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), t.Name); err != nil {
				return fmt.Errorf("naming sheet %q: %w", t.Name, err)
			}
		} else if _, err := f.NewSheet(t.Name); err != nil {
			return fmt.Errorf("creating sheet %q: %w", t.Name, err)
		}
		if err := writeSheet(f, t, styles); err != nil {
			return fmt.Errorf("writing sheet %q: %w", t.Name, err)
		}
		slog.Debug("sheet written", "sheet", t.Name, "rows", len(t.Rows))
	}

	for _, c := range r.Charts {
		if err := addLineChart(f, r, c); err != nil {
			return fmt.Errorf("adding chart %q: %w", c.Title, err)
		}
	}

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:      r.Title,
		Creator:    "eduforecast",
		Identifier: uuid.NewString(),
		Created:    time.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		return fmt.Errorf("setting document properties: %w", err)
	}
	f.SetActiveSheet(0)

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func newXLSXStyles(f *excelize.File) (xlsxStyles, error) {
	var s xlsxStyles
	var err error

	s.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#DDEBF7"}},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			WrapText:   true,
		},
	})
	if err != nil {
		return s, fmt.Errorf("header style: %w", err)
	}
	if s.money, err = f.NewStyle(&excelize.Style{NumFmt: numFmtMoney}); err != nil {
		return s, fmt.Errorf("money style: %w", err)
	}
	if s.percent, err = f.NewStyle(&excelize.Style{NumFmt: numFmtPercent}); err != nil {
		return s, fmt.Errorf("percent style: %w", err)
	}
	if s.rate, err = f.NewStyle(&excelize.Style{NumFmt: numFmtRate}); err != nil {
		return s, fmt.Errorf("rate style: %w", err)
	}
	return s, nil
}

func writeSheet(f *excelize.File, t report.Table, s xlsxStyles) error {
	header := make([]any, len(t.Columns))
	for i, name := range t.Header() {
		header[i] = name
	}
	if err := f.SetSheetRow(t.Name, "A1", &header); err != nil {
		return err
	}

	lastCol, err := excelize.ColumnNumberToName(len(t.Columns))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(t.Name, "A1", lastCol+"1", s.header); err != nil {
		return err
	}
	if err := f.SetColWidth(t.Name, "A", lastCol, columnWidth); err != nil {
		return err
	}

	for i, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := row
		if err := f.SetSheetRow(t.Name, cell, &values); err != nil {
			return err
		}
	}

	if len(t.Rows) == 0 {
		return nil
	}
	lastRow := len(t.Rows) + 1
	for i, c := range t.Columns {
		var style int
		switch c.Kind {
		case report.KindMoney:
			style = s.money
		case report.KindPercent:
			style = s.percent
		case report.KindRate:
			style = s.rate
		default:
			continue
		}
		top, _ := excelize.CoordinatesToCellName(i+1, 2)
		bottom, _ := excelize.CoordinatesToCellName(i+1, lastRow)
		if err := f.SetCellStyle(t.Name, top, bottom, style); err != nil {
			return err
		}
	}
	return nil
}

// addLineChart plots each column in the chart's range as one series, with
// the table's first column as categories.
func addLineChart(f *excelize.File, r report.Report, c report.LineChart) error {
	t, ok := r.Table(c.Table)
	if !ok {
		return fmt.Errorf("no table %q", c.Table)
	}
	if c.FirstColumn < 1 || c.LastColumn > len(t.Columns) || c.FirstColumn > c.LastColumn {
		return fmt.Errorf("column range %d-%d outside table of %d columns", c.FirstColumn, c.LastColumn, len(t.Columns))
	}
	if len(t.Rows) == 0 {
		return fmt.Errorf("table %q has no rows", c.Table)
	}

	sheet := "'" + t.Name + "'"
	lastRow := len(t.Rows) + 1

	series := make([]excelize.ChartSeries, 0, c.LastColumn-c.FirstColumn+1)
	for col := c.FirstColumn; col <= c.LastColumn; col++ {
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return err
		}
		series = append(series, excelize.ChartSeries{
			Name:       fmt.Sprintf("%s!$%s$1", sheet, name),
			Categories: fmt.Sprintf("%s!$A$2:$A$%d", sheet, lastRow),
			Values:     fmt.Sprintf("%s!$%s$2:$%s$%d", sheet, name, name, lastRow),
		})
	}

	return f.AddChart(t.Name, c.Anchor, &excelize.Chart{
		Type:   excelize.Line,
		Series: series,
		Title:  []excelize.RichTextRun{{Text: c.Title}},
		XAxis: excelize.ChartAxis{
			Title: []excelize.RichTextRun{{Text: c.XAxisTitle}},
		},
		YAxis: excelize.ChartAxis{
			MajorGridLines: true,
			Title:          []excelize.RichTextRun{{Text: c.YAxisTitle}},
		},
		Legend:    excelize.ChartLegend{Position: "bottom"},
		Dimension: excelize.ChartDimension{Width: 720, Height: 420},
	})
}
