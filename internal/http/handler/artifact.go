package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fluxera.app/api/internal/http/dto"
	"fluxera.app/api/internal/service"
)

type ArtifactHandler struct {
	artifactService service.ArtifactService
}

func NewArtifactHandler(artifactService service.ArtifactService) *ArtifactHandler {
	return &ArtifactHandler{artifactService: artifactService}
}

func (h *ArtifactHandler) List(c *gin.Context) {
	wsID, ok := pathID(c, "wsId")
	if !ok {
		return
	}
	artifacts, err := h.artifactService.List(c.Request.Context(), currentUser(c).ID, wsID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, dto.ToArtifactResponses(artifacts))
}

func (h *ArtifactHandler) Get(c *gin.Context) {
	wsID, artifactID, ok := artifactPath(c)
	if !ok {
		return
	}
	artifact, err := h.artifactService.Get(c.Request.Context(), currentUser(c).ID, wsID, artifactID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, dto.ToArtifactResponse(artifact))
}

func (h *ArtifactHandler) Create(c *gin.Context) {
	wsID, ok := pathID(c, "wsId")
	if !ok {
		return
	}
	var req dto.CreateArtifactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "name, technical_name and source_api_id are required")
		return
	}

	artifact, err := h.artifactService.Create(c.Request.Context(), currentUser(c).ID, wsID, service.CreateArtifactInput{
		Name:          req.Name,
		TechnicalName: req.TechnicalName,
		SourceAPIID:   req.SourceAPIID,
		FeatureID:     req.FeatureID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, dto.ToArtifactResponse(artifact))
}

func (h *ArtifactHandler) Refresh(c *gin.Context) {
	wsID, artifactID, ok := artifactPath(c)
	if !ok {
		return
	}
	artifact, err := h.artifactService.Refresh(c.Request.Context(), currentUser(c).ID, wsID, artifactID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, dto.ToArtifactResponse(artifact))
}

func (h *ArtifactHandler) Delete(c *gin.Context) {
	wsID, artifactID, ok := artifactPath(c)
	if !ok {
		return
	}
	if err := h.artifactService.Delete(c.Request.Context(), currentUser(c).ID, wsID, artifactID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ArtifactHandler) GenerateDocumentation(c *gin.Context) {
	wsID, artifactID, ok := artifactPath(c)
	if !ok {
		return
	}
	artifact, err := h.artifactService.GenerateDocumentation(c.Request.Context(), currentUser(c).ID, wsID, artifactID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, dto.ToArtifactResponse(artifact))
}

func (h *ArtifactHandler) ChatDocumentation(c *gin.Context) {
	wsID, artifactID, ok := artifactPath(c)
	if !ok {
		return
	}
	var req dto.DocumentationChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "instruction is required")
		return
	}

	artifact, err := h.artifactService.UpdateDocumentation(
		c.Request.Context(),
		currentUser(c).ID,
		wsID,
		artifactID,
		req.CurrentDocumentation,
		req.Instruction,
	)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, dto.ToArtifactResponse(artifact))
}

func (h *ArtifactHandler) DocumentationBlocks(c *gin.Context) {
	wsID, artifactID, ok := artifactPath(c)
	if !ok {
		return
	}
	blocks, err := h.artifactService.DocumentationBlocks(c.Request.Context(), currentUser(c).ID, wsID, artifactID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, blocks)
}

func artifactPath(c *gin.Context) (wsID, artifactID int64, ok bool) {
	if wsID, ok = pathID(c, "wsId"); !ok {
		return 0, 0, false
	}
	if artifactID, ok = pathID(c, "artifactId"); !ok {
		return 0, 0, false
	}
	return wsID, artifactID, true
}
