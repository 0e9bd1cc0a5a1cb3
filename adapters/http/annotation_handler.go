package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/talentbase/talentbase/internal/application/usecase/annotation"
	"github.com/talentbase/talentbase/pkg/logger"
)

// AnnotationHandler exposes the five moderation endpoints. Each returns
// only the new value of the field it touched.
type AnnotationHandler struct {
	annotationUseCase *annotation.AnnotationUseCase
	logger            logger.Logger
}

func NewAnnotationHandler(uc *annotation.AnnotationUseCase, log logger.Logger) *AnnotationHandler {
	return &AnnotationHandler{annotationUseCase: uc, logger: log}
}

func (h *AnnotationHandler) profileID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile id"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *AnnotationHandler) ToggleFavorite(c *gin.Context) {
	id, ok := h.profileID(c)
	if !ok {
		return
	}

	v, err := h.annotationUseCase.ExecuteToggleFavorite(c.Request.Context(), id)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"isFavorite": v})
}

func (h *AnnotationHandler) ToggleInterviewed(c *gin.Context) {
	id, ok := h.profileID(c)
	if !ok {
		return
	}

	v, err := h.annotationUseCase.ExecuteToggleInterviewed(c.Request.Context(), id)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"isInterviewed": v})
}

func (h *AnnotationHandler) SetStars(c *gin.Context) {
	id, ok := h.profileID(c)
	if !ok {
		return
	}

	var req SetStarsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	v, err := h.annotationUseCase.ExecuteSetStars(c.Request.Context(), id, *req.Stars)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stars": v})
}

func (h *AnnotationHandler) SetWorked(c *gin.Context) {
	id, ok := h.profileID(c)
	if !ok {
		return
	}

	var req SetWorkedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	v, err := h.annotationUseCase.ExecuteSetWorked(c.Request.Context(), id, req.Worked)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"worked": v})
}

func (h *AnnotationHandler) SaveNote(c *gin.Context) {
	id, ok := h.profileID(c)
	if !ok {
		return
	}

	var req SaveNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	v, err := h.annotationUseCase.ExecuteSaveNote(c.Request.Context(), id, req.Note)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"note": v})
}
