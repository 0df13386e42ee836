package service

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hailamir/academic-report-api/internal/models"
	"github.com/hailamir/academic-report-api/pkg/storage"
)

type converterStub struct {
	available bool
	path      string
	err       error
}

func (c converterStub) Available() bool { return c.available }

func (c converterStub) Convert(ctx context.Context, docxPath string) (string, error) {
	if c.err != nil {
		return "", c.err
	}
	return c.path, nil
}

func newExportServiceForTest(t *testing.T, converter pdfConverter) (*ExportService, *storage.LocalStorage) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)
	signer := storage.NewSignedURLSigner("secret", time.Hour)
	composer := NewComposeService(composeTestConfig(), nil, nil)
	cfg := ExportConfig{APIPrefix: "/api/v1", ResultTTL: time.Hour}
	return NewExportService(composer, store, signer, converter, cfg, zap.NewNop()), store
}

func testJob(id string) *models.GenerationJob {
	return &models.GenerationJob{
		ID:      id,
		Request: models.JobRequest{ReportRequest: validRequest()},
		Status:  models.JobStatusQueued,
	}
}

func TestExportServiceGenerateWithSummaryFallback(t *testing.T) {
	svc, store := newExportServiceForTest(t, converterStub{available: false})

	result, err := svc.Generate(context.Background(), testJob("job-1"))
	require.NoError(t, err)

	require.NotEmpty(t, result.DocxPath)
	assert.True(t, strings.HasSuffix(result.DocxPath, ".docx"))
	assert.True(t, strings.HasPrefix(result.DocxURL, "/api/v1/export/"))
	_, statErr := os.Stat(store.Path(result.DocxPath))
	require.NoError(t, statErr)

	// Converter unavailable: summary PDF is produced and flagged.
	require.NotEmpty(t, result.PdfPath)
	assert.True(t, strings.HasSuffix(result.PdfPath, ".pdf"))
	_, statErr = os.Stat(store.Path(result.PdfPath))
	require.NoError(t, statErr)
	assert.True(t, result.PdfFallback)
	require.NotEmpty(t, result.Notes)
	assert.Contains(t, strings.Join(result.Notes, " "), "summary")
}

func TestExportServiceDocxIsZip(t *testing.T) {
	svc, store := newExportServiceForTest(t, converterStub{available: false})

	result, err := svc.Generate(context.Background(), testJob("job-2"))
	require.NoError(t, err)

	data, err := os.ReadFile(store.Path(result.DocxPath))
	require.NoError(t, err)
	require.Greater(t, len(data), 4)
	assert.Equal(t, []byte{'P', 'K'}, data[:2])
}

func TestExportServiceValidationErrorAborts(t *testing.T) {
	svc, _ := newExportServiceForTest(t, converterStub{available: false})

	job := testJob("job-3")
	job.Request.Pages = 3

	_, err := svc.Generate(context.Background(), job)
	require.Error(t, err)
}

func TestExportServiceTokenRoundTrip(t *testing.T) {
	svc, _ := newExportServiceForTest(t, converterStub{available: false})

	result, err := svc.Generate(context.Background(), testJob("job-4"))
	require.NoError(t, err)

	token := strings.TrimPrefix(result.DocxURL, "/api/v1/export/")
	jobID, relPath, _, err := svc.ParseToken(token, false)
	require.NoError(t, err)
	assert.Equal(t, "job-4", jobID)
	assert.Equal(t, result.DocxPath, relPath)

	file, err := svc.Open(relPath)
	require.NoError(t, err)
	file.Close()
}
