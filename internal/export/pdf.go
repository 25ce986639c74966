package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/theirongolddev/eduforecast/internal/report"
)

const (
	pdfRowHeight   = 6.0
	pdfMaxFontSize = 9.0
	pdfMinFontSize = 5.0
)

// PDF writes every table as a bordered grid on landscape A4 pages.
// Charts are not drawn; the figures they plot are in the first table.
type PDF struct{}

// Render implements report.Renderer.
func (PDF) Render(w io.Writer, r report.Report) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(r.Title, true)
	pdf.SetCreator("eduforecast", true)
	pdf.SetAutoPageBreak(true, 12)
	pdf.AddPage()

	if r.Title != "" {
		pdf.SetFont("Arial", "B", 16)
		pdf.CellFormat(0, 10, r.Title, "", 1, "L", false, 0, "")
		pdf.Ln(2)
	}

	left, _, right, _ := pdf.GetMargins()
	pageW, _ := pdf.GetPageSize()
	usable := pageW - left - right

	for _, t := range r.Tables {
		writePDFTable(pdf, t, usable)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

func writePDFTable(pdf *gofpdf.Fpdf, t report.Table, usable float64) {
	if len(t.Columns) == 0 {
		return
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, t.Name, "", 1, "L", false, 0, "")

	colW := usable / float64(len(t.Columns))
	size := fitFontSize(pdf, t.Header(), colW)

	pdf.SetFont("Arial", "B", size)
	pdf.SetFillColor(221, 235, 247)
	for _, h := range t.Header() {
		pdf.CellFormat(colW, pdfRowHeight, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", size)
	for i := range t.Rows {
		for j, cell := range t.FormatRow(i) {
			align := "R"
			if t.Columns[j].Kind == report.KindText {
				align = "L"
			}
			pdf.CellFormat(colW, pdfRowHeight, cell, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)
}

// fitFontSize shrinks the font until every header fits its column.
func fitFontSize(pdf *gofpdf.Fpdf, headers []string, colW float64) float64 {
	size := pdfMaxFontSize
	for ; size > pdfMinFontSize; size -= 0.5 {
		pdf.SetFont("Arial", "B", size)
		fits := true
		for _, h := range headers {
			if pdf.GetStringWidth(h)+2 > colW {
				fits = false
				break
			}
		}
		if fits {
			break
		}
	}
	return size
}
