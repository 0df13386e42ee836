package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hailamir/academic-report-api/internal/dto"
	"github.com/hailamir/academic-report-api/internal/models"
	"github.com/hailamir/academic-report-api/internal/repository"
	appErrors "github.com/hailamir/academic-report-api/pkg/errors"
)

type sessionStore interface {
	Get(ctx context.Context, id string) (*models.IntakeSession, error)
	Save(ctx context.Context, session *models.IntakeSession) error
	Delete(ctx context.Context, id string) error
}

type jobCreator interface {
	CreateJob(ctx context.Context, req models.ReportRequest) (*dto.ReportJobResponse, error)
}

// IntakeService walks an external collaborator through the ordered field
// collection steps. The composer is never invoked until every field has been
// collected and validated; cancelling mid-intake leaves no job behind.
type IntakeService struct {
	sessions sessionStore
	reports  jobCreator
	logger   *zap.Logger
}

// NewIntakeService constructs the intake service.
func NewIntakeService(sessions sessionStore, reports jobCreator, logger *zap.Logger) *IntakeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IntakeService{sessions: sessions, reports: reports, logger: logger}
}

// Start opens a new session positioned at the first step.
func (s *IntakeService) Start(ctx context.Context) (*dto.StartIntakeResponse, error) {
	session := &models.IntakeSession{
		ID:     uuid.NewString(),
		Step:   models.StepTitle,
		Fields: make(map[string]string),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create intake session")
	}
	return &dto.StartIntakeResponse{
		SessionID: session.ID,
		Step:      session.Step,
		Prompt:    stepPrompts[session.Step],
		Choices:   stepChoices[session.Step],
	}, nil
}

// Answer applies one answer to the session's current step. Invalid answers
// keep the session on the same step and return a corrective prompt; the
// final valid answer finalizes the session into a generation job.
func (s *IntakeService) Answer(ctx context.Context, sessionID, answer string) (*dto.IntakeStepResponse, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Complete() {
		return nil, appErrors.Clone(appErrors.ErrConflict, "intake session already finalized")
	}

	value, ok := validateStepAnswer(session.Step, answer)
	if !ok {
		return &dto.IntakeStepResponse{
			SessionID: session.ID,
			Step:      session.Step,
			Accepted:  false,
			Prompt:    correctivePrompts[session.Step],
			Choices:   stepChoices[session.Step],
		}, nil
	}
	session.Fields[string(session.Step)] = value

	next := nextStep(session.Step)
	session.Step = next

	if next != models.StepDone {
		if err := s.sessions.Save(ctx, session); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save intake session")
		}
		return &dto.IntakeStepResponse{
			SessionID: session.ID,
			Step:      next,
			Accepted:  true,
			Prompt:    stepPrompts[next],
			Choices:   stepChoices[next],
		}, nil
	}

	job, err := s.reports.CreateJob(ctx, requestFromFields(session.Fields))
	if err != nil {
		// Keep the session alive on the last step so the caller can retry.
		session.Step = models.StepStyle
		delete(session.Fields, string(models.StepStyle))
		if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
			s.logger.Sugar().Warnw("failed to rewind intake session", "session_id", session.ID, "error", saveErr)
		}
		return nil, err
	}

	session.JobID = &job.ID
	if err := s.sessions.Save(ctx, session); err != nil {
		s.logger.Sugar().Warnw("failed to store finalized intake session", "session_id", session.ID, "error", err)
	}
	return &dto.IntakeStepResponse{
		SessionID: session.ID,
		Step:      models.StepDone,
		Accepted:  true,
		JobID:     &job.ID,
	}, nil
}

// Get returns the current session state.
func (s *IntakeService) Get(ctx context.Context, sessionID string) (*dto.IntakeSessionResponse, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &dto.IntakeSessionResponse{
		SessionID: session.ID,
		Step:      session.Step,
		Fields:    session.Fields,
		JobID:     session.JobID,
	}, nil
}

// Cancel discards the session. No generation work has happened yet unless
// the session was already finalized, in which case the job proceeds on its
// own and only the session record is dropped.
func (s *IntakeService) Cancel(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to cancel intake session")
	}
	return nil
}

func (s *IntakeService) load(ctx context.Context, sessionID string) (*models.IntakeSession, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "intake session not found or expired")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load intake session")
	}
	if session.Fields == nil {
		session.Fields = make(map[string]string)
	}
	return session, nil
}

func nextStep(current models.IntakeStep) models.IntakeStep {
	for i, step := range models.IntakeOrder {
		if step == current {
			if i+1 < len(models.IntakeOrder) {
				return models.IntakeOrder[i+1]
			}
			return models.StepDone
		}
	}
	return models.StepDone
}

// validateStepAnswer normalizes and validates one answer. The returned value
// is the canonical stored form.
func validateStepAnswer(step models.IntakeStep, answer string) (string, bool) {
	answer = strings.TrimSpace(answer)
	switch step {
	case models.StepLanguage:
		switch strings.ToLower(answer) {
		case "english", "en":
			return string(models.LanguageEnglish), true
		case "arabic", "ar":
			return string(models.LanguageArabic), true
		}
		return "", false
	case models.StepAcademicYear:
		year, err := strconv.Atoi(answer)
		if err != nil || year < 1900 || year > 2100 {
			return "", false
		}
		return strconv.Itoa(year), true
	case models.StepPages:
		pages, err := strconv.Atoi(answer)
		if err != nil || pages < models.MinPages || pages > models.MaxPages {
			return "", false
		}
		return strconv.Itoa(pages), true
	case models.StepStyle:
		for _, style := range []models.CitationStyle{models.StyleAPA, models.StyleIEEE, models.StyleMLA, models.StyleHarvard, models.StyleChicago} {
			if strings.EqualFold(answer, string(style)) {
				return string(style), true
			}
		}
		return "", false
	default:
		if answer == "" {
			return "", false
		}
		return answer, true
	}
}

func requestFromFields(fields map[string]string) models.ReportRequest {
	pages, _ := strconv.Atoi(fields[string(models.StepPages)])
	return models.ReportRequest{
		Title:        fields[string(models.StepTitle)],
		Language:     models.Language(fields[string(models.StepLanguage)]),
		StudentNames: fields[string(models.StepStudentNames)],
		Professor:    fields[string(models.StepProfessor)],
		University:   fields[string(models.StepUniversity)],
		College:      fields[string(models.StepCollege)],
		Department:   fields[string(models.StepDepartment)],
		AcademicYear: fields[string(models.StepAcademicYear)],
		Pages:        pages,
		Style:        models.CitationStyle(fields[string(models.StepStyle)]),
	}
}

var stepPrompts = map[models.IntakeStep]string{
	models.StepTitle:        "Let's start by entering the title of your report:",
	models.StepLanguage:     "Please select the language for your report:",
	models.StepStudentNames: "Please enter the student's full name:",
	models.StepProfessor:    "Please enter the professor's name:",
	models.StepUniversity:   "Please enter the university name:",
	models.StepCollege:      "Please enter the college/faculty name:",
	models.StepDepartment:   "Please enter the department name:",
	models.StepAcademicYear: "Please enter the academic year (e.g., 2024):",
	models.StepPages:        "Please enter the number of pages for your report (5-40):",
	models.StepStyle:        "Finally, please select the reference style:",
}

var correctivePrompts = map[models.IntakeStep]string{
	models.StepTitle:        "The title cannot be empty. Please enter the title of your report:",
	models.StepLanguage:     "Please select either 'English' or 'Arabic'.",
	models.StepStudentNames: "The name cannot be empty. Please enter the student's full name:",
	models.StepProfessor:    "The name cannot be empty. Please enter the professor's name:",
	models.StepUniversity:   "The name cannot be empty. Please enter the university name:",
	models.StepCollege:      "The name cannot be empty. Please enter the college/faculty name:",
	models.StepDepartment:   "The name cannot be empty. Please enter the department name:",
	models.StepAcademicYear: "Please enter a valid year (e.g., 2024):",
	models.StepPages:        "Please enter a valid number of pages between 5 and 40:",
	models.StepStyle:        "Please select a valid reference style.",
}

var stepChoices = map[models.IntakeStep][]string{
	models.StepLanguage: {"English", "Arabic"},
	models.StepStyle:    {"APA", "IEEE", "MLA", "Harvard", "Chicago"},
}
