package dto

import "github.com/hailamir/academic-report-api/internal/models"

// StartIntakeResponse opens a new collection session.
type StartIntakeResponse struct {
	SessionID string            `json:"sessionId"`
	Step      models.IntakeStep `json:"step"`
	Prompt    string            `json:"prompt"`
	Choices   []string          `json:"choices,omitempty"`
}

// IntakeAnswerRequest carries one answer for the session's current step.
type IntakeAnswerRequest struct {
	Answer string `json:"answer" binding:"required"`
}

// IntakeStepResponse reflects the session state after an answer. When the
// answer was rejected, Prompt repeats the question with a corrective hint.
// When the final step completes, JobID points at the enqueued generation.
type IntakeStepResponse struct {
	SessionID string            `json:"sessionId"`
	Step      models.IntakeStep `json:"step"`
	Accepted  bool              `json:"accepted"`
	Prompt    string            `json:"prompt,omitempty"`
	Choices   []string          `json:"choices,omitempty"`
	JobID     *string           `json:"jobId,omitempty"`
}

// IntakeSessionResponse exposes the collected fields so far.
type IntakeSessionResponse struct {
	SessionID string            `json:"sessionId"`
	Step      models.IntakeStep `json:"step"`
	Fields    map[string]string `json:"fields"`
	JobID     *string           `json:"jobId,omitempty"`
}
