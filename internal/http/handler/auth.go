package handler

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"fluxera.app/api/internal/http/dto"
	"fluxera.app/api/internal/http/middleware"
	"fluxera.app/api/internal/model"
	"fluxera.app/api/internal/service"
)

const (
	stateCookieName = "fluxera_oauth_state"
	sessionMaxAge   = 30 * 24 * 60 * 60
	stateMaxAge     = 600
)

type AuthHandler struct {
	authService  service.AuthService
	dashboardURL string
	isProduction bool
}

func NewAuthHandler(authService service.AuthService, dashboardURL string, isProduction bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		dashboardURL: dashboardURL,
		isProduction: isProduction,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(c.Request.Context(), "invalid register request", "error", err)
		respondBadRequest(c, "name, email and a password of at least 8 characters are required")
		return
	}

	user, session, err := h.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setSessionCookie(c, session)
	respondCreated(c, dto.ToSessionResponse(user, session))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "email and password are required")
		return
	}

	user, session, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setSessionCookie(c, session)
	respondOK(c, dto.ToSessionResponse(user, session))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	if token := middleware.SessionToken(c); token != "" {
		if err := h.authService.Logout(ctx, token); err != nil {
			slog.WarnContext(ctx, "failed to delete session", "error", err)
		}
	}

	middleware.ClearSessionCookie(c, h.isProduction)
	respondOK(c, gin.H{"message": "logged out"})
}

func (h *AuthHandler) Current(c *gin.Context) {
	respondOK(c, dto.ToUserResponse(currentUser(c)))
}

// Authorize starts the hosted sign-in flow and redirects to the provider.
func (h *AuthHandler) Authorize(c *gin.Context) {
	state, err := generateState()
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to generate state", "error", err)
		respondError(c, err)
		return
	}

	authURL, err := h.authService.GetAuthorizationURL(state)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to get authorization URL", "error", err)
		respondError(c, err)
		return
	}

	c.SetCookie(stateCookieName, state, stateMaxAge, "/", "", h.isProduction, true)
	c.Redirect(http.StatusTemporaryRedirect, authURL)
}

func (h *AuthHandler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	if errorParam := c.Query("error"); errorParam != "" {
		slog.WarnContext(ctx, "OAuth error", "error", errorParam, "description", c.Query("error_description"))
		h.redirectWithError(c, errorParam)
		return
	}

	storedState, err := c.Cookie(stateCookieName)
	if err != nil || c.Query("state") != storedState {
		slog.WarnContext(ctx, "state mismatch")
		h.redirectWithError(c, "invalid_state")
		return
	}
	c.SetCookie(stateCookieName, "", -1, "/", "", h.isProduction, true)

	code := c.Query("code")
	if code == "" {
		h.redirectWithError(c, "no_code")
		return
	}

	_, session, err := h.authService.HandleCallback(ctx, code)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCode) {
			h.redirectWithError(c, "invalid_code")
			return
		}
		slog.ErrorContext(ctx, "failed to handle callback", "error", err)
		h.redirectWithError(c, "callback_failed")
		return
	}

	h.setSessionCookie(c, session)
	c.Redirect(http.StatusTemporaryRedirect, h.dashboardURL+"/dashboard")
}

func (h *AuthHandler) redirectWithError(c *gin.Context, reason string) {
	c.Redirect(http.StatusTemporaryRedirect, h.dashboardURL+"?auth_error="+url.QueryEscape(reason))
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, session *model.Session) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		middleware.SessionCookieName,
		session.Token,
		sessionMaxAge,
		"/",
		"",
		h.isProduction,
		true,
	)
}

func generateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
