package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fluxera.app/api/internal/http/dto"
	"fluxera.app/api/internal/service"
)

type APILinkHandler struct {
	linkService service.APILinkService
}

func NewAPILinkHandler(linkService service.APILinkService) *APILinkHandler {
	return &APILinkHandler{linkService: linkService}
}

func (h *APILinkHandler) List(c *gin.Context) {
	wsID, ok := pathID(c, "wsId")
	if !ok {
		return
	}
	links, err := h.linkService.List(c.Request.Context(), currentUser(c).ID, wsID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, dto.ToAPILinkResponses(links))
}

func (h *APILinkHandler) Create(c *gin.Context) {
	wsID, ok := pathID(c, "wsId")
	if !ok {
		return
	}
	var req dto.APILinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "name and a valid url are required")
		return
	}
	link, err := h.linkService.Create(c.Request.Context(), currentUser(c).ID, wsID, linkInput(req))
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, dto.ToAPILinkResponse(link))
}

func (h *APILinkHandler) Update(c *gin.Context) {
	wsID, ok := pathID(c, "wsId")
	if !ok {
		return
	}
	linkID, ok := pathID(c, "linkId")
	if !ok {
		return
	}
	var req dto.APILinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "name and a valid url are required")
		return
	}
	link, err := h.linkService.Update(c.Request.Context(), currentUser(c).ID, wsID, linkID, linkInput(req))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, dto.ToAPILinkResponse(link))
}

func (h *APILinkHandler) Delete(c *gin.Context) {
	wsID, ok := pathID(c, "wsId")
	if !ok {
		return
	}
	linkID, ok := pathID(c, "linkId")
	if !ok {
		return
	}
	if err := h.linkService.Delete(c.Request.Context(), currentUser(c).ID, wsID, linkID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func linkInput(req dto.APILinkRequest) service.APILinkInput {
	return service.APILinkInput{Name: req.Name, URL: req.URL, Description: req.Description}
}
