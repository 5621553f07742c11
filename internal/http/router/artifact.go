package router

import (
	"github.com/gin-gonic/gin"

	"fluxera.app/api/internal/http/handler"
)

func ArtifactRouter(rg *gin.RouterGroup, h *handler.ArtifactHandler) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:artifactId", h.Get)
	rg.DELETE("/:artifactId", h.Delete)
	rg.POST("/:artifactId/refresh", h.Refresh)
	rg.POST("/:artifactId/documentation", h.GenerateDocumentation)
	rg.POST("/:artifactId/documentation/chat", h.ChatDocumentation)
	rg.GET("/:artifactId/documentation/blocks", h.DocumentationBlocks)
}

func SchemaRouter(rg *gin.RouterGroup, h *handler.SchemaHandler) {
	rg.GET("", h.List)
	rg.GET("/:name", h.Get)
}
