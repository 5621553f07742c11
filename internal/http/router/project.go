package router

import (
	"github.com/gin-gonic/gin"

	"fluxera.app/api/internal/http/handler"
)

func ProjectRouter(rg *gin.RouterGroup, h *handler.ProjectHandler) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:projectId", h.Get)
	rg.PUT("/:projectId", h.Update)
	rg.DELETE("/:projectId", h.Delete)

	features := rg.Group("/:projectId/features")
	features.GET("", h.ListFeatures)
	features.POST("", h.CreateFeature)
	features.PUT("/:featureId", h.UpdateFeature)
	features.DELETE("/:featureId", h.DeleteFeature)
}
