package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/hailamir/academic-report-api/internal/models"
)

// ErrJobNotFound signals a missing job row.
var ErrJobNotFound = errors.New("generation job not found")

// JobRepository persists generation job metadata.
type JobRepository struct {
	db *sqlx.DB
}

// NewJobRepository constructs the repository.
func NewJobRepository(db *sqlx.DB) *JobRepository {
	return &JobRepository{db: db}
}

// Create inserts a new generation job row with generated defaults.
func (r *JobRepository) Create(ctx context.Context, job *models.GenerationJob) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.Status == "" {
		job.Status = models.JobStatusQueued
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO generation_jobs (id, request, status, progress, docx_url, pdf_url, notes, created_at, finished_at, error_message)
VALUES (:id, :request, :status, :progress, :docx_url, :pdf_url, :notes, :created_at, :finished_at, :error_message)`
	if _, err := r.db.NamedExecContext(ctx, query, job); err != nil {
		return fmt.Errorf("create generation job: %w", err)
	}
	return nil
}

// GetByID returns a job row by its identifier.
func (r *JobRepository) GetByID(ctx context.Context, id string) (*models.GenerationJob, error) {
	const query = `SELECT id, request, status, progress, docx_url, pdf_url, notes, created_at, finished_at, error_message
FROM generation_jobs WHERE id = $1`
	var job models.GenerationJob
	if err := r.db.GetContext(ctx, &job, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("get generation job: %w", err)
	}
	return &job, nil
}

// UpdateJobParams defines the mutable job fields.
type UpdateJobParams struct {
	Status       *models.JobStatus
	Progress     *int
	DocxURL      *string
	PdfURL       *string
	Notes        models.JobNotes
	ErrorMessage *string
	FinishedAt   *time.Time
}

// Update persists the provided changes for a job row.
func (r *JobRepository) Update(ctx context.Context, id string, params UpdateJobParams) error {
	set := make([]string, 0, 7)
	args := make([]interface{}, 0, 8)
	argPos := 1

	if params.Status != nil {
		set = append(set, fmt.Sprintf("status = $%d", argPos))
		args = append(args, *params.Status)
		argPos++
	}
	if params.Progress != nil {
		set = append(set, fmt.Sprintf("progress = $%d", argPos))
		args = append(args, *params.Progress)
		argPos++
	}
	if params.DocxURL != nil {
		set = append(set, fmt.Sprintf("docx_url = $%d", argPos))
		args = append(args, *params.DocxURL)
		argPos++
	}
	if params.PdfURL != nil {
		set = append(set, fmt.Sprintf("pdf_url = $%d", argPos))
		args = append(args, *params.PdfURL)
		argPos++
	}
	if params.Notes != nil {
		set = append(set, fmt.Sprintf("notes = $%d", argPos))
		args = append(args, params.Notes)
		argPos++
	}
	if params.ErrorMessage != nil {
		set = append(set, fmt.Sprintf("error_message = $%d", argPos))
		args = append(args, *params.ErrorMessage)
		argPos++
	}
	if params.FinishedAt != nil {
		set = append(set, fmt.Sprintf("finished_at = $%d", argPos))
		args = append(args, *params.FinishedAt)
		argPos++
	}

	if len(set) == 0 {
		return nil
	}

	query := fmt.Sprintf("UPDATE generation_jobs SET %s WHERE id = $%d", strings.Join(set, ", "), argPos)
	args = append(args, id)

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update generation job: %w", err)
	}
	return nil
}

// ListQueued fetches queued jobs, oldest first (used for cold start recovery).
func (r *JobRepository) ListQueued(ctx context.Context, limit int) ([]models.GenerationJob, error) {
	if limit <= 0 {
		limit = 20
	}
	const query = `SELECT id, request, status, progress, docx_url, pdf_url, notes, created_at, finished_at, error_message
FROM generation_jobs WHERE status = 'QUEUED' ORDER BY created_at ASC LIMIT $1`
	var jobs []models.GenerationJob
	if err := r.db.SelectContext(ctx, &jobs, query, limit); err != nil {
		return nil, fmt.Errorf("list queued generation jobs: %w", err)
	}
	return jobs, nil
}

// ListFinishedBefore fetches terminal jobs older than cutoff for cleanup.
func (r *JobRepository) ListFinishedBefore(ctx context.Context, cutoff time.Time, limit int) ([]models.GenerationJob, error) {
	if limit <= 0 {
		limit = 20
	}
	const query = `SELECT id, request, status, progress, docx_url, pdf_url, notes, created_at, finished_at, error_message
FROM generation_jobs WHERE status IN ('FINISHED', 'FAILED') AND finished_at IS NOT NULL AND finished_at < $1
ORDER BY finished_at ASC LIMIT $2`
	var jobs []models.GenerationJob
	if err := r.db.SelectContext(ctx, &jobs, query, cutoff, limit); err != nil {
		return nil, fmt.Errorf("list finished generation jobs: %w", err)
	}
	return jobs, nil
}
