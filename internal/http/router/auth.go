package router

import (
	"github.com/gin-gonic/gin"

	"fluxera.app/api/internal/http/handler"
)

func AuthRouter(rg *gin.RouterGroup, h *handler.AuthHandler, requireAuth gin.HandlerFunc) {
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
	rg.POST("/logout", h.Logout)
	rg.GET("/current", requireAuth, h.Current)
	rg.GET("/authorize", h.Authorize)
	rg.GET("/callback", h.Callback)
}
