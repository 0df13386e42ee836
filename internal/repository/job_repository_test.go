package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/hailamir/academic-report-api/internal/models"
)

func newJobRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestJobRepositoryCreateAndGet(t *testing.T) {
	db, mock, cleanup := newJobRepoMock(t)
	defer cleanup()

	repo := NewJobRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO generation_jobs")).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "QUEUED", 0, nil, nil, sqlmock.AnyArg(), sqlmock.AnyArg(), nil, nil).
		WillReturnResult(sqlmock.NewResult(1, 1))

	job := &models.GenerationJob{
		Request: models.JobRequest{ReportRequest: models.ReportRequest{
			Title:    "Renewable Energy",
			Language: models.LanguageEnglish,
			Pages:    10,
			Style:    models.StyleAPA,
		}},
	}
	require.NoError(t, repo.Create(context.Background(), job))
	require.NotEmpty(t, job.ID)
	require.Equal(t, models.JobStatusQueued, job.Status)

	rows := sqlmock.NewRows([]string{"id", "request", "status", "progress", "docx_url", "pdf_url", "notes", "created_at", "finished_at", "error_message"}).
		AddRow(job.ID, `{"title":"Renewable Energy","language":"EN","pages":10,"style":"APA"}`, "QUEUED", 0, nil, nil, nil, time.Now(), nil, nil)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, request, status, progress, docx_url, pdf_url, notes, created_at, finished_at, error_message FROM generation_jobs WHERE id = $1")).
		WithArgs(job.ID).
		WillReturnRows(rows)

	fetched, err := repo.GetByID(context.Background(), job.ID)
	require.NoError(t, err)
	require.Equal(t, job.ID, fetched.ID)
	require.Equal(t, "Renewable Energy", fetched.Request.Title)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepositoryGetByIDNotFound(t *testing.T) {
	db, mock, cleanup := newJobRepoMock(t)
	defer cleanup()
	repo := NewJobRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, request, status, progress, docx_url, pdf_url, notes, created_at, finished_at, error_message FROM generation_jobs WHERE id = $1")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, ErrJobNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepositoryUpdate(t *testing.T) {
	db, mock, cleanup := newJobRepoMock(t)
	defer cleanup()
	repo := NewJobRepository(db)

	now := time.Now()
	status := models.JobStatusFinished
	progress := 100
	docx := "/api/v1/export/docx-token"
	pdf := "/api/v1/export/pdf-token"
	notes := models.JobNotes{"word count outside tolerance band"}
	mock.ExpectExec(regexp.QuoteMeta("UPDATE generation_jobs SET status = $1, progress = $2, docx_url = $3, pdf_url = $4, notes = $5, finished_at = $6 WHERE id = $7")).
		WithArgs(status, progress, docx, pdf, sqlmock.AnyArg(), now, "job-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), "job-1", UpdateJobParams{
		Status:     &status,
		Progress:   &progress,
		DocxURL:    &docx,
		PdfURL:     &pdf,
		Notes:      notes,
		FinishedAt: &now,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepositoryUpdateNoChanges(t *testing.T) {
	db, mock, cleanup := newJobRepoMock(t)
	defer cleanup()
	repo := NewJobRepository(db)

	require.NoError(t, repo.Update(context.Background(), "job-1", UpdateJobParams{}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepositoryListQueued(t *testing.T) {
	db, mock, cleanup := newJobRepoMock(t)
	defer cleanup()
	repo := NewJobRepository(db)

	rows := sqlmock.NewRows([]string{"id", "request", "status", "progress", "docx_url", "pdf_url", "notes", "created_at", "finished_at", "error_message"}).
		AddRow("job-1", `{"title":"Water Management","language":"AR","pages":12,"style":"MLA"}`, "QUEUED", 0, nil, nil, nil, time.Now(), nil, nil)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, request, status, progress, docx_url, pdf_url, notes, created_at, finished_at, error_message FROM generation_jobs WHERE status = 'QUEUED' ORDER BY created_at ASC LIMIT $1")).
		WithArgs(20).
		WillReturnRows(rows)

	jobs, err := repo.ListQueued(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	require.Equal(t, models.LanguageArabic, jobs[0].Request.Language)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepositoryListFinishedBefore(t *testing.T) {
	db, mock, cleanup := newJobRepoMock(t)
	defer cleanup()
	repo := NewJobRepository(db)

	cutoff := time.Now().Add(-24 * time.Hour)
	finished := cutoff.Add(-time.Hour)
	rows := sqlmock.NewRows([]string{"id", "request", "status", "progress", "docx_url", "pdf_url", "notes", "created_at", "finished_at", "error_message"}).
		AddRow("job-2", `{"title":"Old Report","language":"EN","pages":5,"style":"IEEE"}`, "FINISHED", 100, nil, nil, nil, finished.Add(-time.Hour), finished, nil)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, request, status, progress, docx_url, pdf_url, notes, created_at, finished_at, error_message FROM generation_jobs WHERE status IN ('FINISHED', 'FAILED') AND finished_at IS NOT NULL AND finished_at < $1 ORDER BY finished_at ASC LIMIT $2")).
		WithArgs(cutoff, 20).
		WillReturnRows(rows)

	jobs, err := repo.ListFinishedBefore(context.Background(), cutoff, 0)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	require.Equal(t, "job-2", jobs[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}
