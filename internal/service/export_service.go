package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hailamir/academic-report-api/internal/models"
	"github.com/hailamir/academic-report-api/pkg/export"
	"github.com/hailamir/academic-report-api/pkg/storage"
)

type reportComposer interface {
	Build(req models.ReportRequest) (*models.ComposedReport, error)
}

type fileStorage interface {
	Save(filename string, data []byte) (string, error)
	Open(filename string) (*os.File, error)
	Delete(filename string) error
	CleanupOlderThan(ttl time.Duration) ([]string, error)
	Path(filename string) string
}

type docxRenderer interface {
	Render(report *models.ComposedReport) ([]byte, error)
}

type pdfSummaryRenderer interface {
	RenderSummary(report *models.ComposedReport) ([]byte, error)
}

type pdfConverter interface {
	Available() bool
	Convert(ctx context.Context, docxPath string) (string, error)
}

// ExportConfig tunes export behaviour.
type ExportConfig struct {
	APIPrefix string
	ResultTTL time.Duration
}

// ExportResult captures the artifacts produced for one job. PDF fields stay
// empty only when both the converter and the summary fallback failed; the
// reason lands in Notes instead of an error.
type ExportResult struct {
	DocxPath     string
	DocxURL      string
	PdfPath      string
	PdfURL       string
	Notes        models.JobNotes
	ExpiresAt    time.Time
	ToleranceMet bool
	PdfFallback  bool
}

// ExportService composes a report and persists the rendered artifacts. The
// DOCX is the primary deliverable; PDF is best-effort and its failure never
// fails the job.
type ExportService struct {
	composer  reportComposer
	storage   fileStorage
	docx      docxRenderer
	pdf       pdfSummaryRenderer
	converter pdfConverter
	signer    *storage.SignedURLSigner
	logger    *zap.Logger
	cfg       ExportConfig
}

// NewExportService constructs an ExportService.
func NewExportService(composer reportComposer, store fileStorage, signer *storage.SignedURLSigner, converter pdfConverter, cfg ExportConfig, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ResultTTL <= 0 {
		cfg.ResultTTL = 24 * time.Hour
	}
	return &ExportService{
		composer:  composer,
		storage:   store,
		docx:      export.NewDOCXExporter(),
		pdf:       export.NewPDFExporter(),
		converter: converter,
		signer:    signer,
		logger:    logger,
		cfg:       cfg,
	}
}

// Generate composes the report for a job and writes the DOCX and, when
// possible, a PDF. Composition errors abort; PDF errors degrade to a note.
func (s *ExportService) Generate(ctx context.Context, job *models.GenerationJob) (*ExportResult, error) {
	if job == nil {
		return nil, fmt.Errorf("job nil")
	}

	report, err := s.composer.Build(job.Request.ReportRequest)
	if err != nil {
		return nil, err
	}

	result := &ExportResult{ToleranceMet: report.ToleranceMet}
	if report.AdjustmentNote != "" {
		result.Notes = append(result.Notes, report.AdjustmentNote)
	}

	payload, err := s.docx.Render(report)
	if err != nil {
		return nil, fmt.Errorf("render docx: %w", err)
	}

	base := s.buildFilename(job)
	docxRel, err := s.storage.Save(base+".docx", payload)
	if err != nil {
		return nil, err
	}
	result.DocxPath = docxRel

	token, expiresAt, err := s.signer.Generate(job.ID, docxRel)
	if err != nil {
		return nil, err
	}
	result.DocxURL = s.downloadURL(token)
	result.ExpiresAt = expiresAt

	pdfRel, note := s.renderPDF(ctx, report, docxRel, base)
	if note != "" {
		result.Notes = append(result.Notes, note)
		result.PdfFallback = true
	}
	if pdfRel != "" {
		result.PdfPath = pdfRel
		pdfToken, _, err := s.signer.Generate(job.ID, pdfRel)
		if err != nil {
			s.logger.Sugar().Warnw("failed to sign pdf url", "job_id", job.ID, "error", err)
		} else {
			result.PdfURL = s.downloadURL(pdfToken)
		}
	}
	return result, nil
}

// renderPDF tries the external converter first and falls back to the summary
// renderer. Both failing yields an empty path and an explanatory note.
func (s *ExportService) renderPDF(ctx context.Context, report *models.ComposedReport, docxRel, base string) (string, string) {
	if s.converter != nil && s.converter.Available() {
		pdfPath, err := s.converter.Convert(ctx, s.storage.Path(docxRel))
		if err == nil {
			return filepath.Base(pdfPath), ""
		}
		s.logger.Sugar().Warnw("pdf conversion failed, falling back to summary", "error", err)
	}

	payload, err := s.pdf.RenderSummary(report)
	if err != nil {
		s.logger.Sugar().Warnw("pdf summary rendering failed", "error", err)
		return "", "pdf export unavailable; docx delivered"
	}
	rel, err := s.storage.Save(base+".pdf", payload)
	if err != nil {
		s.logger.Sugar().Warnw("pdf summary save failed", "error", err)
		return "", "pdf export unavailable; docx delivered"
	}
	return rel, "pdf rendered as summary page; full layout available in docx"
}

// ParseToken validates download token metadata.
func (s *ExportService) ParseToken(token string, allowExpired bool) (jobID, relPath string, expiresAt time.Time, err error) {
	return s.signer.Parse(token, allowExpired)
}

// Open returns a handle to the stored file.
func (s *ExportService) Open(relPath string) (*os.File, error) {
	return s.storage.Open(relPath)
}

// Delete removes a stored export file.
func (s *ExportService) Delete(relPath string) error {
	return s.storage.Delete(relPath)
}

// Cleanup removes files older than ttl (defaults to configured ResultTTL when ttl <= 0).
func (s *ExportService) Cleanup(ttl time.Duration) ([]string, error) {
	if ttl <= 0 {
		ttl = s.cfg.ResultTTL
	}
	return s.storage.CleanupOlderThan(ttl)
}

func (s *ExportService) downloadURL(token string) string {
	prefix := strings.TrimRight(s.cfg.APIPrefix, "/")
	if prefix == "" {
		prefix = "/api/v1"
	}
	return fmt.Sprintf("%s/export/%s", prefix, token)
}

func (s *ExportService) buildFilename(job *models.GenerationJob) string {
	timestamp := time.Now().UTC().Format("20060102_150405")
	return fmt.Sprintf("report_%s_%s", sanitizeFilename(job.ID), timestamp)
}

func sanitizeFilename(raw string) string {
	if raw == "" {
		return "na"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", ":", "-", "..", ".", "__", "_")
	result := replacer.Replace(raw)
	if len(result) > 100 {
		return result[:100]
	}
	return result
}
