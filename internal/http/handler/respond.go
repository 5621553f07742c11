package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"fluxera.app/api/internal/access"
	"fluxera.app/api/internal/docgen"
	"fluxera.app/api/internal/service"
	"fluxera.app/api/internal/source"
)

type errorMapping struct {
	target  error
	status  int
	message string // empty means the error text is shown
}

// errorMappings is checked in order; the first errors.Is match wins.
var errorMappings = []errorMapping{
	{service.ErrSessionExpired, http.StatusUnauthorized, "Unauthorized"},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, ""},
	{service.ErrInvalidCode, http.StatusUnauthorized, ""},
	{access.ErrForbidden, http.StatusForbidden, "Forbidden"},
	{access.ErrNotFound, http.StatusNotFound, ""},
	{service.ErrNotFound, http.StatusNotFound, ""},
	{service.ErrEmailTaken, http.StatusConflict, ""},
	{service.ErrAlreadyMember, http.StatusConflict, ""},
	{service.ErrInviteExpired, http.StatusGone, ""},
	{service.ErrInvalidInvite, http.StatusBadRequest, ""},
	{service.ErrTitleRequired, http.StatusBadRequest, ""},
	{service.ErrNameRequired, http.StatusBadRequest, ""},
	{service.ErrUserStoryRequired, http.StatusBadRequest, ""},
	{service.ErrTechnicalNameRequired, http.StatusBadRequest, ""},
	{service.ErrInstructionRequired, http.StatusBadRequest, ""},
	{service.ErrInvalidURL, http.StatusBadRequest, ""},
	{service.ErrNoSourceConfigured, http.StatusUnprocessableEntity, ""},
	{source.ErrInvalidPayload, http.StatusUnprocessableEntity, "Source returned an invalid JSON payload"},
	{source.ErrExternalFetchFailed, http.StatusBadGateway, "Failed to fetch data from the source API"},
	{docgen.ErrDisabled, http.StatusServiceUnavailable, ""},
	{docgen.ErrTimedOut, http.StatusGatewayTimeout, "Documentation generation timed out"},
	{docgen.ErrInvalidResponseFormat, http.StatusBadGateway, "Assistant returned an invalid response"},
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"data": data})
}

func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"data": data})
}

func respondBadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": message})
}

// respondError maps a service error to its status code. Unknown errors are
// logged and reported as a generic 500.
func respondError(c *gin.Context, err error) {
	status, message := classify(err)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "request failed", "error", err, "status", status)
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

func classify(err error) (int, string) {
	var runErr *docgen.AssistantRunFailedError
	if errors.As(err, &runErr) {
		return http.StatusBadGateway, runErr.Error()
	}

	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			if m.message != "" {
				return m.status, m.message
			}
			return m.status, err.Error()
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}
