package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/hailamir/academic-report-api/internal/models"
)

// PDFExporter renders a fallback summary PDF when no external converter is
// available. The core PDF fonts cannot shape Arabic script, so the fallback
// carries the cover metadata and the English-safe section outline rather
// than the full body; the DOCX remains the primary deliverable.
type PDFExporter struct{}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// RenderSummary creates a one-page summary PDF for the report.
func (e *PDFExporter) RenderSummary(report *models.ComposedReport) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("report nil")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 25, 20)
	pdf.AddPage()

	pdf.SetFont("Times", "B", 18)
	pdf.MultiCell(0, 9, report.Request.Title, "", "C", false)
	pdf.Ln(8)

	pdf.SetFont("Times", "", 12)
	rows := [][2]string{
		{"Student(s)", report.Request.StudentNames},
		{"Professor", report.Request.Professor},
		{"University", report.Request.University},
		{"College", report.Request.College},
		{"Department", report.Request.Department},
		{"Academic Year", report.Request.AcademicYear},
		{"Citation Style", string(report.Request.Style)},
		{"Pages Requested", fmt.Sprintf("%d", report.Request.Pages)},
		{"Body Word Count", fmt.Sprintf("%d", report.BodyWordCount)},
	}
	for _, row := range rows {
		pdf.SetFont("Times", "B", 12)
		pdf.CellFormat(50, 8, row[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Times", "", 12)
		pdf.MultiCell(0, 8, row[1], "", "L", false)
	}

	pdf.Ln(6)
	pdf.SetFont("Times", "I", 10)
	pdf.MultiCell(0, 6, "Full formatting is available in the accompanying word-processor document.", "", "L", false)

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
