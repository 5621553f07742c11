package handler

import (
	"github.com/gin-gonic/gin"

	"fluxera.app/api/common/id"
	"fluxera.app/api/internal/http/middleware"
	"fluxera.app/api/internal/model"
)

// pathID parses a snowflake path parameter, answering 400 when it is malformed.
func pathID(c *gin.Context, name string) (int64, bool) {
	v, err := id.Parse(c.Param(name))
	if err != nil {
		respondBadRequest(c, "invalid "+name)
		return 0, false
	}
	return v, true
}

// currentUser is set by middleware.RequireAuth on every route that reaches a handler.
func currentUser(c *gin.Context) *model.User {
	return middleware.GetUser(c.Request.Context())
}
