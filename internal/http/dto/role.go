package dto

import (
	"time"

	"fluxera.app/api/internal/model"
)

// RoleRequest carries capabilities keyed "resource:verb", e.g. "artifact:post".
type RoleRequest struct {
	Name         string             `json:"name" binding:"required,min=1,max=100"`
	CanManage    bool               `json:"can_manage"`
	Capabilities model.Capabilities `json:"capabilities"`
}

type RoleResponse struct {
	ID           int64              `json:"id,string"`
	WorkspaceID  int64              `json:"workspace_id,string"`
	Name         string             `json:"name"`
	CanManage    bool               `json:"can_manage"`
	Capabilities model.Capabilities `json:"capabilities"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

func ToRoleResponse(r *model.Role) RoleResponse {
	return RoleResponse{
		ID:           r.ID,
		WorkspaceID:  r.WorkspaceID,
		Name:         r.Name,
		CanManage:    r.CanManage,
		Capabilities: r.Capabilities,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func ToRoleResponses(roles []model.Role) []RoleResponse {
	out := make([]RoleResponse, len(roles))
	for i := range roles {
		out[i] = ToRoleResponse(&roles[i])
	}
	return out
}
