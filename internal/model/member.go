package model

import "time"

// WorkspaceMember grants a user access to a workspace. A nil RoleID marks a
// visitor, who may only read.
type WorkspaceMember struct {
	ID          int64     `json:"id"`
	WorkspaceID int64     `json:"workspace_id"`
	UserID      int64     `json:"user_id"`
	RoleID      *int64    `json:"role_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (m *WorkspaceMember) IsVisitor() bool {
	return m.RoleID == nil
}

// MemberWithUser pairs a membership with the member's user record and role.
type MemberWithUser struct {
	Member WorkspaceMember
	User   User
	Role   *Role
}
