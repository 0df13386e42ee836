package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/hailamir/academic-report-api/internal/dto"
	"github.com/hailamir/academic-report-api/internal/models"
	appErrors "github.com/hailamir/academic-report-api/pkg/errors"
)

type intakeServiceMock struct {
	startResp  *dto.StartIntakeResponse
	startErr   error
	answerResp *dto.IntakeStepResponse
	answerErr  error
	getResp    *dto.IntakeSessionResponse
	getErr     error
	cancelErr  error
}

func (m *intakeServiceMock) Start(ctx context.Context) (*dto.StartIntakeResponse, error) {
	return m.startResp, m.startErr
}

func (m *intakeServiceMock) Answer(ctx context.Context, sessionID, answer string) (*dto.IntakeStepResponse, error) {
	return m.answerResp, m.answerErr
}

func (m *intakeServiceMock) Get(ctx context.Context, sessionID string) (*dto.IntakeSessionResponse, error) {
	return m.getResp, m.getErr
}

func (m *intakeServiceMock) Cancel(ctx context.Context, sessionID string) error {
	return m.cancelErr
}

func TestIntakeHandlerStartSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &intakeServiceMock{
		startResp: &dto.StartIntakeResponse{
			SessionID: "sess-1",
			Step:      models.StepTitle,
			Prompt:    "Let's start by entering the title of your report:",
		},
	}
	handler := NewIntakeHandler(mockSvc)

	c, w := newGinContext(http.MethodPost, "/intake/sessions", nil)

	handler.StartSession(c)
	require.Equal(t, http.StatusCreated, w.Code)

	var envelope struct {
		Data dto.StartIntakeResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Equal(t, "sess-1", envelope.Data.SessionID)
	require.Equal(t, models.StepTitle, envelope.Data.Step)
}

func TestIntakeHandlerSubmitAnswer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &intakeServiceMock{
		answerResp: &dto.IntakeStepResponse{
			SessionID: "sess-1",
			Step:      models.StepLanguage,
			Accepted:  true,
			Prompt:    "Please select the language for your report:",
			Choices:   []string{"English", "Arabic"},
		},
	}
	handler := NewIntakeHandler(mockSvc)

	payload, _ := json.Marshal(dto.IntakeAnswerRequest{Answer: "My Report"})
	c, w := newGinContext(http.MethodPost, "/intake/sessions/sess-1/answer", payload)
	c.Params = gin.Params{{Key: "id", Value: "sess-1"}}

	handler.SubmitAnswer(c)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data dto.IntakeStepResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.True(t, envelope.Data.Accepted)
	require.Equal(t, models.StepLanguage, envelope.Data.Step)
}

func TestIntakeHandlerSubmitAnswerEmptyBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewIntakeHandler(&intakeServiceMock{})

	c, w := newGinContext(http.MethodPost, "/intake/sessions/sess-1/answer", []byte("{}"))
	c.Params = gin.Params{{Key: "id", Value: "sess-1"}}

	handler.SubmitAnswer(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIntakeHandlerSessionNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &intakeServiceMock{
		getErr: appErrors.Clone(appErrors.ErrNotFound, "intake session not found or expired"),
	}
	handler := NewIntakeHandler(mockSvc)

	c, w := newGinContext(http.MethodGet, "/intake/sessions/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	handler.GetSession(c)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestIntakeHandlerCancelSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewIntakeHandler(&intakeServiceMock{})

	c, w := newGinContext(http.MethodDelete, "/intake/sessions/sess-1", nil)
	c.Params = gin.Params{{Key: "id", Value: "sess-1"}}

	handler.CancelSession(c)
	c.Writer.WriteHeaderNow()
	require.Equal(t, http.StatusNoContent, w.Code)
}
