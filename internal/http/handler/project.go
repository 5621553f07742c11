package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fluxera.app/api/internal/http/dto"
	"fluxera.app/api/internal/service"
)

type ProjectHandler struct {
	projectService service.ProjectService
	featureService service.FeatureService
}

func NewProjectHandler(projectService service.ProjectService, featureService service.FeatureService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService, featureService: featureService}
}

func (h *ProjectHandler) List(c *gin.Context) {
	wsID, ok := pathID(c, "wsId")
	if !ok {
		return
	}
	projects, err := h.projectService.List(c.Request.Context(), currentUser(c).ID, wsID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, dto.ToProjectResponses(projects))
}

func (h *ProjectHandler) Get(c *gin.Context) {
	wsID, projectID, ok := projectPath(c)
	if !ok {
		return
	}
	project, err := h.projectService.Get(c.Request.Context(), currentUser(c).ID, wsID, projectID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, dto.ToProjectResponse(project))
}

func (h *ProjectHandler) Create(c *gin.Context) {
	wsID, ok := pathID(c, "wsId")
	if !ok {
		return
	}
	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "title is required")
		return
	}
	project, err := h.projectService.Create(c.Request.Context(), currentUser(c).ID, wsID, projectInput(req))
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, dto.ToProjectResponse(project))
}

func (h *ProjectHandler) Update(c *gin.Context) {
	wsID, projectID, ok := projectPath(c)
	if !ok {
		return
	}
	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "title is required")
		return
	}
	project, err := h.projectService.Update(c.Request.Context(), currentUser(c).ID, wsID, projectID, projectInput(req))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, dto.ToProjectResponse(project))
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	wsID, projectID, ok := projectPath(c)
	if !ok {
		return
	}
	if err := h.projectService.Delete(c.Request.Context(), currentUser(c).ID, wsID, projectID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProjectHandler) ListFeatures(c *gin.Context) {
	wsID, projectID, ok := projectPath(c)
	if !ok {
		return
	}
	features, err := h.featureService.List(c.Request.Context(), currentUser(c).ID, wsID, projectID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, dto.ToFeatureResponses(features))
}

func (h *ProjectHandler) CreateFeature(c *gin.Context) {
	wsID, projectID, ok := projectPath(c)
	if !ok {
		return
	}
	var req dto.FeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "user_story is required")
		return
	}
	feature, err := h.featureService.Create(c.Request.Context(), currentUser(c).ID, wsID, projectID, req.UserStory)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, dto.ToFeatureResponse(feature))
}

func (h *ProjectHandler) UpdateFeature(c *gin.Context) {
	wsID, projectID, ok := projectPath(c)
	if !ok {
		return
	}
	featureID, ok := pathID(c, "featureId")
	if !ok {
		return
	}
	var req dto.FeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "user_story is required")
		return
	}
	feature, err := h.featureService.Update(c.Request.Context(), currentUser(c).ID, wsID, projectID, featureID, req.UserStory)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, dto.ToFeatureResponse(feature))
}

func (h *ProjectHandler) DeleteFeature(c *gin.Context) {
	wsID, projectID, ok := projectPath(c)
	if !ok {
		return
	}
	featureID, ok := pathID(c, "featureId")
	if !ok {
		return
	}
	if err := h.featureService.Delete(c.Request.Context(), currentUser(c).ID, wsID, projectID, featureID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func projectPath(c *gin.Context) (wsID, projectID int64, ok bool) {
	if wsID, ok = pathID(c, "wsId"); !ok {
		return 0, 0, false
	}
	if projectID, ok = pathID(c, "projectId"); !ok {
		return 0, 0, false
	}
	return wsID, projectID, true
}

func projectInput(req dto.ProjectRequest) service.ProjectInput {
	return service.ProjectInput{Title: req.Title, Closed: req.Closed, Obsolete: req.Obsolete}
}
