package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talentbase/talentbase/internal/application/usecase/auth"
	profileUC "github.com/talentbase/talentbase/internal/application/usecase/profile"
	"github.com/talentbase/talentbase/pkg/logger"
)

type AuthHandler struct {
	registerUseCase     *auth.RegisterUseCase
	loginUseCase        *auth.LoginUseCase
	currentUserUseCase  *auth.CurrentUserUseCase
	uploadAvatarUseCase *profileUC.UploadAvatarUseCase
	logger              logger.Logger
}

func NewAuthHandler(
	registerUC *auth.RegisterUseCase,
	loginUC *auth.LoginUseCase,
	currentUC *auth.CurrentUserUseCase,
	avatarUC *profileUC.UploadAvatarUseCase,
	log logger.Logger,
) *AuthHandler {
	return &AuthHandler{
		registerUseCase:     registerUC,
		loginUseCase:        loginUC,
		currentUserUseCase:  currentUC,
		uploadAvatarUseCase: avatarUC,
		logger:              log,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	output, err := h.registerUseCase.Execute(c.Request.Context(), auth.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": output.AccessToken})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	output, err := h.loginUseCase.Execute(c.Request.Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Email or password is incorrect"})
			return
		}
		renderError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": output.AccessToken})
}

func (h *AuthHandler) CurrentUser(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user information not found"})
		return
	}

	u, err := h.currentUserUseCase.Execute(c.Request.Context(), userID)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, ToUserDTO(u))
}

func (h *AuthHandler) UploadAvatar(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user information not found"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'file' is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "file cannot open"})
		return
	}
	defer file.Close()

	url, err := h.uploadAvatarUseCase.Execute(c.Request.Context(), userID, file)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar": url})
}
