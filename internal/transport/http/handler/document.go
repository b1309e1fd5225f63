package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"docflow/internal/app"
	"docflow/internal/transport/http/response"
)

type DocumentHandler struct {
	documentService *app.DocumentService
}

type CreateDocumentRequest struct {
	Title     string `json:"title" binding:"max=256"`
	Content   string `json:"content"`
	Objective string `json:"objective" binding:"max=512"`
}

type UpdateDocumentRequest struct {
	Title     string `json:"title" binding:"max=256"`
	Content   string `json:"content"`
	Objective string `json:"objective" binding:"max=512"`
}

func NewDocumentHandler(documentService *app.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

func (h *DocumentHandler) Create(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	var req CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	doc, err := h.documentService.Create(app.CreateDocumentInput{
		UserID:    userID,
		Title:     req.Title,
		Content:   req.Content,
		Objective: req.Objective,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "create document failed")
		}
		return
	}

	response.Created(c, doc)
}

func (h *DocumentHandler) List(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	docs, err := h.documentService.List(userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "list documents failed")
		return
	}

	response.OK(c, docs)
}

func (h *DocumentHandler) Get(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	documentID, ok := parseDocumentID(c)
	if !ok {
		return
	}

	doc, err := h.documentService.Get(userID, documentID)
	if err != nil {
		writeDocumentError(c, err, "get document failed")
		return
	}

	response.OK(c, doc)
}

func (h *DocumentHandler) Update(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	documentID, ok := parseDocumentID(c)
	if !ok {
		return
	}

	var req UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	doc, err := h.documentService.Update(app.UpdateDocumentInput{
		UserID:     userID,
		DocumentID: documentID,
		Title:      req.Title,
		Content:    req.Content,
		Objective:  req.Objective,
	})
	if err != nil {
		writeDocumentError(c, err, "update document failed")
		return
	}

	response.OK(c, doc)
}

func (h *DocumentHandler) Delete(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	documentID, ok := parseDocumentID(c)
	if !ok {
		return
	}

	if err := h.documentService.Delete(userID, documentID); err != nil {
		writeDocumentError(c, err, "delete document failed")
		return
	}

	response.OK(c, gin.H{"deleted_document_id": documentID})
}

func parseDocumentID(c *gin.Context) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id64 == 0 {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid document id")
		return 0, false
	}
	return uint(id64), true
}

func writeDocumentError(c *gin.Context, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
	case errors.Is(err, app.ErrDocumentNotFound):
		response.Error(c, http.StatusNotFound, response.CodeDocumentNotFound, err.Error())
	case errors.Is(err, app.ErrNotDocumentOwner):
		response.Error(c, http.StatusForbidden, response.CodeForbidden, err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, fallbackMsg)
	}
}
