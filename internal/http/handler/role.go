package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fluxera.app/api/internal/http/dto"
	"fluxera.app/api/internal/service"
)

type RoleHandler struct {
	roleService service.RoleService
}

func NewRoleHandler(roleService service.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

func (h *RoleHandler) List(c *gin.Context) {
	wsID, ok := pathID(c, "wsId")
	if !ok {
		return
	}
	roles, err := h.roleService.List(c.Request.Context(), currentUser(c).ID, wsID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, dto.ToRoleResponses(roles))
}

func (h *RoleHandler) Create(c *gin.Context) {
	wsID, ok := pathID(c, "wsId")
	if !ok {
		return
	}
	var req dto.RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid role: "+err.Error())
		return
	}

	role, err := h.roleService.Create(c.Request.Context(), currentUser(c).ID, wsID, roleInput(req))
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, dto.ToRoleResponse(role))
}

func (h *RoleHandler) Update(c *gin.Context) {
	wsID, ok := pathID(c, "wsId")
	if !ok {
		return
	}
	roleID, ok := pathID(c, "roleId")
	if !ok {
		return
	}
	var req dto.RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid role: "+err.Error())
		return
	}

	role, err := h.roleService.Update(c.Request.Context(), currentUser(c).ID, wsID, roleID, roleInput(req))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, dto.ToRoleResponse(role))
}

func (h *RoleHandler) Delete(c *gin.Context) {
	wsID, ok := pathID(c, "wsId")
	if !ok {
		return
	}
	roleID, ok := pathID(c, "roleId")
	if !ok {
		return
	}
	if err := h.roleService.Delete(c.Request.Context(), currentUser(c).ID, wsID, roleID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func roleInput(req dto.RoleRequest) service.RoleInput {
	return service.RoleInput{
		Name:         req.Name,
		CanManage:    req.CanManage,
		Capabilities: req.Capabilities,
	}
}
