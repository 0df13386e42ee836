package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hailamir/academic-report-api/internal/dto"
	appErrors "github.com/hailamir/academic-report-api/pkg/errors"
	"github.com/hailamir/academic-report-api/pkg/response"
)

type intakeService interface {
	Start(ctx context.Context) (*dto.StartIntakeResponse, error)
	Answer(ctx context.Context, sessionID, answer string) (*dto.IntakeStepResponse, error)
	Get(ctx context.Context, sessionID string) (*dto.IntakeSessionResponse, error)
	Cancel(ctx context.Context, sessionID string) error
}

// IntakeHandler exposes the conversational field collection endpoints.
type IntakeHandler struct {
	service intakeService
}

// NewIntakeHandler constructs the handler.
func NewIntakeHandler(svc intakeService) *IntakeHandler {
	return &IntakeHandler{service: svc}
}

// StartSession opens a new intake session and returns the first prompt.
func (h *IntakeHandler) StartSession(c *gin.Context) {
	resp, err := h.service.Start(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, resp)
}

// SubmitAnswer applies one answer to the session's current step.
func (h *IntakeHandler) SubmitAnswer(c *gin.Context) {
	var req dto.IntakeAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "answer is required"))
		return
	}
	resp, err := h.service.Answer(c.Request.Context(), c.Param("id"), req.Answer)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp)
}

// GetSession returns the session's collected fields and current step.
func (h *IntakeHandler) GetSession(c *gin.Context) {
	resp, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp)
}

// CancelSession discards the session before any generation happens.
func (h *IntakeHandler) CancelSession(c *gin.Context) {
	if err := h.service.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
