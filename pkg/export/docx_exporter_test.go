package export

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hailamir/academic-report-api/internal/models"
)

func sampleReport(lang models.Language) *models.ComposedReport {
	return &models.ComposedReport{
		Request: models.ReportRequest{
			Title:    "Water & Soil <Quality>",
			Language: lang,
			Pages:    5,
			Style:    models.StyleAPA,
		},
		Sections: []models.Section{
			{
				Kind:  models.SectionCoverPage,
				Title: "Cover Page",
				Blocks: []models.Block{
					{Kind: models.BlockHeading1, Text: "Water & Soil <Quality>"},
					{Kind: models.BlockParagraph, Text: "Prepared by: Sara Ahmed"},
				},
			},
			{
				Kind:  models.SectionIntroduction,
				Title: "Introduction",
				Blocks: []models.Block{
					{Kind: models.BlockHeading1, Text: "Introduction"},
					{Kind: models.BlockParagraph, Text: "This report examines the topic."},
					{Kind: models.BlockHeading2, Text: "Background"},
					{Kind: models.BlockBullet, Text: "First point"},
				},
			},
		},
		Format: models.DefaultFormatPolicy(lang),
	}
}

func docxPart(t *testing.T, data []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		body, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(body)
	}
	t.Fatalf("part %s not found", name)
	return ""
}

func TestDOCXExporterPackageStructure(t *testing.T) {
	exporter := NewDOCXExporter()

	data, err := exporter.Render(sampleReport(models.LanguageEnglish))
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.Contains(t, names, "[Content_Types].xml")
	assert.Contains(t, names, "_rels/.rels")
	assert.Contains(t, names, "word/document.xml")
	assert.Contains(t, names, "word/styles.xml")
}

func TestDOCXExporterFormattingPolicy(t *testing.T) {
	exporter := NewDOCXExporter()

	data, err := exporter.Render(sampleReport(models.LanguageEnglish))
	require.NoError(t, err)

	doc := docxPart(t, data, "word/document.xml")
	assert.Contains(t, doc, `w:ascii="Times New Roman"`)
	assert.Contains(t, doc, `<w:spacing w:line="360" w:lineRule="auto"/>`)
	assert.Contains(t, doc, `<w:sz w:val="28"/>`)
	assert.NotContains(t, doc, `<w:bidi`)

	styles := docxPart(t, data, "word/styles.xml")
	assert.Contains(t, styles, `<w:sz w:val="28"/>`)
	assert.Contains(t, styles, "Times New Roman")
}

func TestDOCXExporterArabicIsRTL(t *testing.T) {
	exporter := NewDOCXExporter()

	data, err := exporter.Render(sampleReport(models.LanguageArabic))
	require.NoError(t, err)

	doc := docxPart(t, data, "word/document.xml")
	assert.Contains(t, doc, `<w:bidi w:val="1"/>`)
	assert.Contains(t, doc, `<w:rtl/>`)
	assert.Contains(t, doc, `<w:jc w:val="right"/>`)
	assert.Contains(t, doc, `<w:ind w:right="720"/>`)
	assert.NotContains(t, doc, `<w:ind w:left="720"/>`)
}

func TestDOCXExporterEscapesText(t *testing.T) {
	exporter := NewDOCXExporter()

	data, err := exporter.Render(sampleReport(models.LanguageEnglish))
	require.NoError(t, err)

	doc := docxPart(t, data, "word/document.xml")
	assert.Contains(t, doc, "Water &amp; Soil &lt;Quality&gt;")
	assert.NotContains(t, doc, "Water & Soil <Quality>")
}

func TestDOCXExporterPageBreakAfterCover(t *testing.T) {
	exporter := NewDOCXExporter()

	data, err := exporter.Render(sampleReport(models.LanguageEnglish))
	require.NoError(t, err)

	doc := docxPart(t, data, "word/document.xml")
	assert.Equal(t, 1, strings.Count(doc, `<w:br w:type="page"/>`))
}

func TestDOCXExporterNilReport(t *testing.T) {
	exporter := NewDOCXExporter()
	_, err := exporter.Render(nil)
	require.Error(t, err)
}
