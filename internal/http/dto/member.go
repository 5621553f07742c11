package dto

import (
	"time"

	"fluxera.app/api/internal/model"
)

// CreateMemberRequest adds a member either by email (managers) or by invite
// code (the caller joins as a visitor). Exactly one of Email or Invite is set.
type CreateMemberRequest struct {
	Email  string `json:"email" binding:"omitempty,email,max=255"`
	Invite string `json:"invite" binding:"omitempty,max=512"`
	RoleID *int64 `json:"role_id,string" binding:"omitempty"`
}

type UpdateMemberRequest struct {
	RoleID *int64 `json:"role_id,string"`
}

type MemberResponse struct {
	ID          int64         `json:"id,string"`
	WorkspaceID int64         `json:"workspace_id,string"`
	UserID      int64         `json:"user_id,string"`
	RoleID      *int64        `json:"role_id,string,omitempty"`
	User        *UserResponse `json:"user,omitempty"`
	Role        *RoleResponse `json:"role,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

func ToMemberResponse(m *model.WorkspaceMember) MemberResponse {
	return MemberResponse{
		ID:          m.ID,
		WorkspaceID: m.WorkspaceID,
		UserID:      m.UserID,
		RoleID:      m.RoleID,
		CreatedAt:   m.CreatedAt,
	}
}

func ToMemberResponses(members []model.MemberWithUser) []MemberResponse {
	out := make([]MemberResponse, len(members))
	for i := range members {
		resp := ToMemberResponse(&members[i].Member)
		user := ToUserResponse(&members[i].User)
		resp.User = &user
		if members[i].Role != nil {
			role := ToRoleResponse(members[i].Role)
			resp.Role = &role
		}
		out[i] = resp
	}
	return out
}
