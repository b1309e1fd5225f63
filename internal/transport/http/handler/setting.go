package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"docflow/internal/app"
	"docflow/internal/transport/http/response"
)

type SettingHandler struct {
	settingService *app.SettingService
}

type UpdateSettingRequest struct {
	Language string `json:"language" binding:"max=8"`
	Theme    string `json:"theme" binding:"max=32"`
}

func NewSettingHandler(settingService *app.SettingService) *SettingHandler {
	return &SettingHandler{settingService: settingService}
}

func (h *SettingHandler) Get(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	setting, err := h.settingService.Get(userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "get settings failed")
		return
	}

	response.OK(c, setting)
}

func (h *SettingHandler) Update(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	var req UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	setting, err := h.settingService.Update(app.UpdateSettingInput{
		UserID:   userID,
		Language: req.Language,
		Theme:    req.Theme,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput), errors.Is(err, app.ErrUnsupportedLanguage):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "update settings failed")
		}
		return
	}

	response.OK(c, setting)
}
