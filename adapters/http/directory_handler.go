package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	directoryUC "github.com/talentbase/talentbase/internal/application/usecase/directory"
	"github.com/talentbase/talentbase/internal/domain/directory"
	"github.com/talentbase/talentbase/pkg/logger"
)

type DirectoryHandler struct {
	directoryUseCase *directoryUC.DirectoryUseCase
	logger           logger.Logger
}

func NewDirectoryHandler(uc *directoryUC.DirectoryUseCase, log logger.Logger) *DirectoryHandler {
	return &DirectoryHandler{directoryUseCase: uc, logger: log}
}

// ListAll returns every directory entry, unfiltered and unsorted.
func (h *DirectoryHandler) ListAll(c *gin.Context) {
	output, err := h.directoryUseCase.ExecuteList(c.Request.Context(), directoryUC.ListInput{
		Filters: directory.NewFilterSelection(),
	})
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, ToEntryDTOs(output.Entries))
}

// FilterBySkills is the older skills-only endpoint kept for clients
// that predate the combined filter. It accepts just a skills query and
// runs the same pipeline.
func (h *DirectoryHandler) FilterBySkills(c *gin.Context) {
	var req struct {
		Skills string `json:"skills"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	filters := directory.NewFilterSelection()
	filters.Skills = req.Skills

	output, err := h.directoryUseCase.ExecuteList(c.Request.Context(), directoryUC.ListInput{
		Filters: filters,
	})
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, ToEntryDTOs(output.Entries))
}

// Filter runs the full predicate pipeline plus the requested ordering.
// Skill matches come back with their skill text decorated by the match
// marker so the client can highlight them.
func (h *DirectoryHandler) Filter(c *gin.Context) {
	var req FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	output, err := h.directoryUseCase.ExecuteList(c.Request.Context(), directoryUC.ListInput{
		Filters: req.ToSelection(),
		SortBy:  req.ToSortBy(),
	})
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, ToEntryDTOs(output.Entries))
}
