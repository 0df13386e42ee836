package dto

import "github.com/hailamir/academic-report-api/internal/models"

// GenerateReportRequest captures POST /reports payload.
type GenerateReportRequest struct {
	Title        string `json:"title" binding:"required"`
	Language     string `json:"language" binding:"required"`
	StudentNames string `json:"studentNames" binding:"required"`
	Professor    string `json:"professor" binding:"required"`
	University   string `json:"university" binding:"required"`
	College      string `json:"college" binding:"required"`
	Department   string `json:"department" binding:"required"`
	AcademicYear string `json:"academicYear" binding:"required"`
	Pages        int    `json:"pages" binding:"required"`
	Style        string `json:"style" binding:"required"`
}

// ToModel maps the payload onto the domain request.
func (r GenerateReportRequest) ToModel() models.ReportRequest {
	return models.ReportRequest{
		Title:        r.Title,
		Language:     models.Language(r.Language),
		StudentNames: r.StudentNames,
		Professor:    r.Professor,
		University:   r.University,
		College:      r.College,
		Department:   r.Department,
		AcademicYear: r.AcademicYear,
		Pages:        r.Pages,
		Style:        models.CitationStyle(r.Style),
	}
}

// ReportJobResponse is returned after enqueueing a generation job.
type ReportJobResponse struct {
	ID       string           `json:"id"`
	Status   models.JobStatus `json:"status"`
	Progress int              `json:"progress"`
}

// ReportStatusResponse exposes job progress metadata.
type ReportStatusResponse struct {
	ID       string           `json:"id"`
	Status   models.JobStatus `json:"status"`
	Progress int              `json:"progress"`
	DocxURL  *string          `json:"docxUrl,omitempty"`
	PdfURL   *string          `json:"pdfUrl,omitempty"`
	Notes    []string         `json:"notes,omitempty"`
	Error    *string          `json:"error,omitempty"`
}
