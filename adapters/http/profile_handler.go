package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/talentbase/talentbase/adapters/github"
	"github.com/talentbase/talentbase/internal/application/usecase/auth"
	profileUC "github.com/talentbase/talentbase/internal/application/usecase/profile"
	"github.com/talentbase/talentbase/pkg/logger"
)

const githubReposShown = 5

type ProfileHandler struct {
	profileUseCase       *profileUC.ProfileUseCase
	deleteAccountUseCase *profileUC.DeleteAccountUseCase
	currentUserUseCase   *auth.CurrentUserUseCase
	githubClient         *github.Client
	logger               logger.Logger
}

func NewProfileHandler(
	pUC *profileUC.ProfileUseCase,
	deleteUC *profileUC.DeleteAccountUseCase,
	currentUC *auth.CurrentUserUseCase,
	ghClient *github.Client,
	log logger.Logger,
) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase:       pUC,
		deleteAccountUseCase: deleteUC,
		currentUserUseCase:   currentUC,
		githubClient:         ghClient,
		logger:               log,
	}
}

// respondWithProfile resolves the owning user's name and avatar so
// responses always carry the joined user block the frontend expects.
func (h *ProfileHandler) respondWithProfile(c *gin.Context, status int, userID uuid.UUID, dto func(ref UserRefDTO) ProfileDTO) {
	ref := UserRefDTO{ID: userID.String()}
	if u, err := h.currentUserUseCase.Execute(c.Request.Context(), userID); err == nil {
		ref.Name = u.Name
		ref.Avatar = u.Avatar
	}
	c.JSON(status, dto(ref))
}

func (h *ProfileHandler) Me(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user information not found"})
		return
	}

	p, err := h.profileUseCase.ExecuteGetMyProfile(c.Request.Context(), userID)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	h.respondWithProfile(c, http.StatusOK, userID, func(ref UserRefDTO) ProfileDTO {
		return ToProfileDTO(p, ref)
	})
}

func (h *ProfileHandler) GetByUserID(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	p, err := h.profileUseCase.ExecuteGetByUserID(c.Request.Context(), userID)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	h.respondWithProfile(c, http.StatusOK, userID, func(ref UserRefDTO) ProfileDTO {
		return ToProfileDTO(p, ref)
	})
}

func (h *ProfileHandler) Upsert(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user information not found"})
		return
	}

	var req UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	p, err := h.profileUseCase.ExecuteUpsertProfile(c.Request.Context(), profileUC.UpsertProfileInput{
		UserID:         userID,
		Status:         req.Status,
		Skills:         req.Skills,
		Company:        req.Company,
		Website:        req.Website,
		Address:        req.Address,
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
		Social:         req.SocialMap(),
	})
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	h.respondWithProfile(c, http.StatusOK, userID, func(ref UserRefDTO) ProfileDTO {
		return ToProfileDTO(p, ref)
	})
}

func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user information not found"})
		return
	}

	if err := h.deleteAccountUseCase.Execute(c.Request.Context(), userID); err != nil {
		renderError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user removed"})
}

func (h *ProfileHandler) AddExperience(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user information not found"})
		return
	}

	var req AddExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	p, err := h.profileUseCase.ExecuteAddExperience(c.Request.Context(), profileUC.AddExperienceInput{
		UserID:      userID,
		Title:       req.Title,
		Company:     req.Company,
		Address:     req.Address,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	h.respondWithProfile(c, http.StatusOK, userID, func(ref UserRefDTO) ProfileDTO {
		return ToProfileDTO(p, ref)
	})
}

func (h *ProfileHandler) DeleteExperience(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user information not found"})
		return
	}

	entryID, err := uuid.Parse(c.Param("exp_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid experience id"})
		return
	}

	p, err := h.profileUseCase.ExecuteRemoveExperience(c.Request.Context(), userID, entryID)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	h.respondWithProfile(c, http.StatusOK, userID, func(ref UserRefDTO) ProfileDTO {
		return ToProfileDTO(p, ref)
	})
}

func (h *ProfileHandler) AddEducation(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user information not found"})
		return
	}

	var req AddEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	p, err := h.profileUseCase.ExecuteAddEducation(c.Request.Context(), profileUC.AddEducationInput{
		UserID:       userID,
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	h.respondWithProfile(c, http.StatusOK, userID, func(ref UserRefDTO) ProfileDTO {
		return ToProfileDTO(p, ref)
	})
}

func (h *ProfileHandler) DeleteEducation(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user information not found"})
		return
	}

	entryID, err := uuid.Parse(c.Param("edu_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid education id"})
		return
	}

	p, err := h.profileUseCase.ExecuteRemoveEducation(c.Request.Context(), userID, entryID)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	h.respondWithProfile(c, http.StatusOK, userID, func(ref UserRefDTO) ProfileDTO {
		return ToProfileDTO(p, ref)
	})
}

func (h *ProfileHandler) GithubRepos(c *gin.Context) {
	username := c.Param("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'username' is required"})
		return
	}

	repos, err := h.githubClient.NewestRepos(c.Request.Context(), username, githubReposShown)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, repos)
}
