package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fluxera.app/api/internal/http/handler"
	"fluxera.app/api/internal/http/middleware"
	"fluxera.app/api/internal/service"
)

type RouterConfig struct {
	DashboardURL string
	IsProduction bool
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authService := services.Auth()
	requireAuth := middleware.RequireAuth(authService)

	api := router.Group("/api")
	{
		authHandler := handler.NewAuthHandler(authService, cfg.DashboardURL, cfg.IsProduction)
		AuthRouter(api.Group("/auth"), authHandler, requireAuth)

		schemaHandler := handler.NewSchemaHandler()
		SchemaRouter(api.Group("/schemas"), schemaHandler)

		protected := api.Group("", requireAuth)

		workspaceHandler := handler.NewWorkspaceHandler(services.Workspaces())
		WorkspaceRouter(protected.Group("/workspaces"), workspaceHandler)

		roleHandler := handler.NewRoleHandler(services.Roles())
		RoleRouter(protected.Group("/roles/workspace-roles/:wsId"), roleHandler)

		memberHandler := handler.NewMemberHandler(services.Members())
		MemberRouter(protected.Group("/members/workspace-members/:wsId"), memberHandler)

		projectHandler := handler.NewProjectHandler(services.Projects(), services.Features())
		ProjectRouter(protected.Group("/projects/workspace-projects/:wsId"), projectHandler)

		artifactHandler := handler.NewArtifactHandler(services.Artifacts())
		ArtifactRouter(protected.Group("/artifacts/workspace-artifacts/:wsId"), artifactHandler)

		linkHandler := handler.NewAPILinkHandler(services.APILinks())
		APILinkRouter(protected.Group("/api-links/workspace-links/:wsId"), linkHandler)
	}
}
