package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/fitdetector-backend/internal/handlers"
	"github.com/yungbote/fitdetector-backend/internal/logger"
	"github.com/yungbote/fitdetector-backend/internal/services"
)

type AuthMiddleware struct {
	log         *logger.Logger
	authService services.AuthService
}

func NewAuthMiddleware(log *logger.Logger, authService services.AuthService) *AuthMiddleware {
	mwLog := log.With("middleware", "AuthMiddleware")
	return &AuthMiddleware{log: mwLog, authService: authService}
}

// RequireAuth aborts with 401 unless the request carries a valid bearer
// token backed by a live session.
func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			handlers.RespondError(c, 401, "missing bearer token", "UNAUTHORIZED")
			c.Abort()
			return
		}
		userID, err := am.authService.ResolveUserID(c.Request.Context(), token)
		if err != nil {
			am.log.Debug("Token resolution failed", "error", err)
			handlers.RespondError(c, 401, "invalid or expired token", "UNAUTHORIZED")
			c.Abort()
			return
		}
		c.Set(handlers.UserIDKey, userID)
		c.Next()
	}
}

// OptionalAuth resolves the caller when a valid token is present and
// lets the request through anonymously otherwise.
func (am *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token != "" {
			if userID, err := am.authService.ResolveUserID(c.Request.Context(), token); err == nil {
				c.Set(handlers.UserIDKey, userID)
			}
		}
		c.Next()
	}
}

// BearerToken extracts the token from an Authorization header, or ""
// when the header is missing or malformed.
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
