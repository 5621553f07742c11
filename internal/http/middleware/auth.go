package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fluxera.app/api/common/logger"
	"fluxera.app/api/internal/model"
	"fluxera.app/api/internal/service"
)

type contextKey string

const (
	SessionCookieName            = "fluxera_session"
	userContextKey    contextKey = "user"
	tokenContextKey   contextKey = "session_token"
)

// RequireAuth resolves the session token from the cookie or a bearer header and
// aborts with 401 when it does not map to a live session.
func RequireAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := SessionToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		user, err := authService.ValidateSession(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, service.ErrSessionExpired) || errors.Is(err, service.ErrUserNotFound) {
				ClearSessionCookie(c, false)
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
				return
			}
			slog.ErrorContext(c.Request.Context(), "failed to validate session", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to validate session"})
			return
		}

		ctx := WithUser(c.Request.Context(), user, token)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// WithUser attaches the authenticated user to ctx, including log fields.
func WithUser(ctx context.Context, user *model.User, token string) context.Context {
	ctx = context.WithValue(ctx, userContextKey, user)
	ctx = context.WithValue(ctx, tokenContextKey, token)
	return logger.WithLogFields(ctx, logger.LogFields{UserID: &user.ID})
}

func GetUser(ctx context.Context) *model.User {
	user, _ := ctx.Value(userContextKey).(*model.User)
	return user
}

func GetSessionToken(ctx context.Context) string {
	token, _ := ctx.Value(tokenContextKey).(string)
	return token
}

// SessionToken reads the session cookie, falling back to an Authorization bearer header.
func SessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

func ClearSessionCookie(c *gin.Context, secure bool) {
	c.SetCookie(
		SessionCookieName,
		"",
		-1,
		"/",
		"",
		secure,
		true,
	)
}
