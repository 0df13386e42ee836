package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// JobStatus captures background generation job lifecycle states.
type JobStatus string

const (
	JobStatusQueued     JobStatus = "QUEUED"
	JobStatusProcessing JobStatus = "PROCESSING"
	JobStatusFinished   JobStatus = "FINISHED"
	JobStatusFailed     JobStatus = "FAILED"
)

// GenerationJob is the persisted metadata for one report generation run.
type GenerationJob struct {
	ID           string     `db:"id" json:"id"`
	Request      JobRequest `db:"request" json:"request"`
	Status       JobStatus  `db:"status" json:"status"`
	Progress     int        `db:"progress" json:"progress"`
	DocxURL      *string    `db:"docx_url" json:"docx_url,omitempty"`
	PdfURL       *string    `db:"pdf_url" json:"pdf_url,omitempty"`
	Notes        JobNotes   `db:"notes" json:"notes,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	FinishedAt   *time.Time `db:"finished_at" json:"finished_at,omitempty"`
	ErrorMessage *string    `db:"error_message" json:"error_message,omitempty"`
}

// JobNotes carries non-fatal advisories recorded alongside a finished job,
// such as a missed tolerance band or an unavailable PDF converter.
type JobNotes []string

// Value marshals notes to JSON for persistence.
func (n JobNotes) Value() (driver.Value, error) {
	if n == nil {
		n = JobNotes{}
	}
	data, err := json.Marshal(n)
	if err != nil {
		return nil, fmt.Errorf("marshal job notes: %w", err)
	}
	return data, nil
}

// Scan unmarshals JSON payloads into the notes slice.
func (n *JobNotes) Scan(value interface{}) error {
	if value == nil {
		*n = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for JobNotes", value)
	}
	if len(data) == 0 {
		*n = nil
		return nil
	}
	if err := json.Unmarshal(data, n); err != nil {
		return fmt.Errorf("unmarshal job notes: %w", err)
	}
	return nil
}

// JobRequest embeds the report request for JSONB persistence.
type JobRequest struct {
	ReportRequest
}

// Value marshals the request to JSON for persistence.
func (r JobRequest) Value() (driver.Value, error) {
	data, err := json.Marshal(r.ReportRequest)
	if err != nil {
		return nil, fmt.Errorf("marshal job request: %w", err)
	}
	return data, nil
}

// Scan unmarshals JSON payloads into the request struct.
func (r *JobRequest) Scan(value interface{}) error {
	if value == nil {
		*r = JobRequest{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for JobRequest", value)
	}
	if len(data) == 0 {
		*r = JobRequest{}
		return nil
	}
	if err := json.Unmarshal(data, &r.ReportRequest); err != nil {
		return fmt.Errorf("unmarshal job request: %w", err)
	}
	return nil
}
