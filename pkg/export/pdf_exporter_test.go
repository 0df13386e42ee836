package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hailamir/academic-report-api/internal/models"
)

func TestPDFExporterRenderSummary(t *testing.T) {
	exporter := NewPDFExporter()

	report := sampleReport(models.LanguageEnglish)
	report.Request.StudentNames = "Sara Ahmed"
	report.Request.Professor = "Dr. Omar Khalil"
	report.Request.University = "Cairo University"
	report.BodyWordCount = 1800

	data, err := exporter.RenderSummary(report)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestPDFExporterNilReport(t *testing.T) {
	exporter := NewPDFExporter()
	_, err := exporter.RenderSummary(nil)
	require.Error(t, err)
}
