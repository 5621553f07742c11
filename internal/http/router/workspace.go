package router

import (
	"github.com/gin-gonic/gin"

	"fluxera.app/api/internal/http/handler"
)

func WorkspaceRouter(rg *gin.RouterGroup, h *handler.WorkspaceHandler) {
	rg.GET("/my-workspaces", h.ListMine)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.POST("/:id/invite", h.CreateInvite)
}

func RoleRouter(rg *gin.RouterGroup, h *handler.RoleHandler) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.PUT("/:roleId", h.Update)
	rg.DELETE("/:roleId", h.Delete)
}

func MemberRouter(rg *gin.RouterGroup, h *handler.MemberHandler) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.PUT("/:memberId", h.Update)
	rg.DELETE("/:memberId", h.Delete)
}

func APILinkRouter(rg *gin.RouterGroup, h *handler.APILinkHandler) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.PUT("/:linkId", h.Update)
	rg.DELETE("/:linkId", h.Delete)
}
