package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/talentbase/talentbase/pkg/apperror"
	"github.com/talentbase/talentbase/pkg/auth"
	"github.com/talentbase/talentbase/pkg/logger"
)

const (
	GinContextKeyUserID = "userID"
	GinContextKeyRole   = "userRole"
)

func AuthMiddleware(jwtSvc *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format"})
			return
		}

		claims, err := jwtSvc.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(GinContextKeyUserID, claims.UserID)
		c.Set(GinContextKeyRole, claims.Role)

		c.Next()
	}
}

func GetUserIDFromGinContext(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(GinContextKeyUserID)
	if !ok {
		return uuid.Nil, false
	}
	userID, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil, false
	}
	return userID, true
}

// ErrorMiddleware renders any error a handler attached to the context
// and did not write a response for itself.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		renderError(c, log, c.Errors.Last().Err)
	}
}

// renderError maps an error onto the wire format. AppErrors carry
// their own status and body; anything else is a plain 500.
func renderError(c *gin.Context, log logger.Logger, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status := apperror.ToHTTPStatus(appErr)
		if status == http.StatusInternalServerError {
			log.Error("Request failed", err, zap.String("path", c.FullPath()))
		}
		c.JSON(status, appErr.ToJSON())
		return
	}

	log.Error("Request failed", err, zap.String("path", c.FullPath()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
