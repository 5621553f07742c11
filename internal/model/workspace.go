package model

import "time"

type Workspace struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	ImageURL  *string   `json:"image_url,omitempty"`
	OwnerID   int64     `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (w *Workspace) IsOwnedBy(userID int64) bool {
	return w.OwnerID == userID
}

// PersonalWorkspaceTitle is the title of the workspace created at registration.
func PersonalWorkspaceTitle(name string) string {
	return "🔒 - " + name
}
