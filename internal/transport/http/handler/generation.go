package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"docflow/internal/app"
	"docflow/internal/transport/http/response"
)

type GenerationHandler struct {
	generationService *app.GenerationService
}

type GenerateRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

func NewGenerationHandler(generationService *app.GenerationService) *GenerationHandler {
	return &GenerationHandler{generationService: generationService}
}

// Generate handles POST /documents/:id/generate.
func (h *GenerationHandler) Generate(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	documentID, ok := parseDocumentID(c)
	if !ok {
		return
	}

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "missing prompt")
		return
	}

	gen, err := h.generationService.Generate(c.Request.Context(), userID, documentID, req.Prompt)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput), errors.Is(err, app.ErrPromptEmpty):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		case errors.Is(err, app.ErrDocumentNotFound):
			response.Error(c, http.StatusNotFound, response.CodeDocumentNotFound, err.Error())
		case errors.Is(err, app.ErrNotDocumentOwner):
			response.Error(c, http.StatusForbidden, response.CodeForbidden, err.Error())
		case errors.Is(err, app.ErrDailyLimitReached):
			response.Error(c, http.StatusTooManyRequests, response.CodeRateLimited, "Daily limit reached")
		case errors.Is(err, app.ErrHourlyLimitReached):
			response.Error(c, http.StatusTooManyRequests, response.CodeRateLimited, "Hourly limit reached")
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "generation failed")
		}
		return
	}

	response.Created(c, gen)
}

// ListGenerated handles GET /documents/:id/generate.
func (h *GenerationHandler) ListGenerated(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	documentID, ok := parseDocumentID(c)
	if !ok {
		return
	}

	gens, err := h.generationService.ListGenerated(c.Request.Context(), userID, documentID)
	if err != nil {
		writeDocumentError(c, err, "list generated documents failed")
		return
	}

	response.OK(c, gens)
}
