package model

import "time"

type Project struct {
	ID          int64     `json:"id"`
	WorkspaceID int64     `json:"workspace_id"`
	Title       string    `json:"title"`
	Closed      bool      `json:"closed"`
	Obsolete    bool      `json:"obsolete"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Feature is a user story inside a project. Permissions address it as the task resource.
type Feature struct {
	ID        int64     `json:"id"`
	ProjectID int64     `json:"project_id"`
	UserStory string    `json:"user_story"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
