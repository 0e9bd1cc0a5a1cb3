package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	logUC "github.com/talentbase/talentbase/internal/application/usecase/activitylog"
	"github.com/talentbase/talentbase/internal/domain/activitylog"
	"github.com/talentbase/talentbase/pkg/logger"
)

type LogHandler struct {
	logUseCase *logUC.LogUseCase
	logger     logger.Logger
}

func NewLogHandler(uc *logUC.LogUseCase, log logger.Logger) *LogHandler {
	return &LogHandler{logUseCase: uc, logger: log}
}

// List returns the joined activity feed, optionally narrowed by user
// or entry type through query parameters.
func (h *LogHandler) List(c *gin.Context) {
	filter := activitylog.ListFilter{Type: c.Query("type")}

	if raw := c.Query("user_id"); raw != "" {
		userID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
			return
		}
		filter.UserID = userID
	}

	views, err := h.logUseCase.ExecuteList(c.Request.Context(), filter)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, views)
}

func (h *LogHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid log id"})
		return
	}

	l, err := h.logUseCase.ExecuteGet(c.Request.Context(), id)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, l)
}

func (h *LogHandler) Add(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user information not found"})
		return
	}

	var req AddLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	l, err := h.logUseCase.ExecuteAdd(c.Request.Context(), logUC.AddLogInput{
		UserID: userID,
		Text:   req.Text,
		Type:   req.Type,
	})
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, l)
}

func (h *LogHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid log id"})
		return
	}

	if err := h.logUseCase.ExecuteDelete(c.Request.Context(), id); err != nil {
		renderError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "log removed"})
}
