package dto

import (
	"time"

	"fluxera.app/api/internal/model"
	"fluxera.app/api/internal/service"
)

// CreateWorkspaceForm is the multipart form for a new workspace. The optional
// image arrives as the "image" file part.
type CreateWorkspaceForm struct {
	Title string `form:"title" binding:"required,max=255"`
}

type UpdateWorkspaceForm struct {
	Title    string `form:"title" binding:"max=255"`
	OldImage string `form:"oldImage"`
}

type WorkspaceResponse struct {
	ID        int64     `json:"id,string"`
	Title     string    `json:"title"`
	ImageURL  *string   `json:"image_url,omitempty"`
	OwnerID   int64     `json:"owner_id,string"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToWorkspaceResponse(w *model.Workspace) WorkspaceResponse {
	return WorkspaceResponse{
		ID:        w.ID,
		Title:     w.Title,
		ImageURL:  w.ImageURL,
		OwnerID:   w.OwnerID,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

func ToWorkspaceResponses(ws []model.Workspace) []WorkspaceResponse {
	out := make([]WorkspaceResponse, len(ws))
	for i := range ws {
		out[i] = ToWorkspaceResponse(&ws[i])
	}
	return out
}

type InviteLinkResponse struct {
	Code      string    `json:"code"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

func ToInviteLinkResponse(l *service.InviteLink) InviteLinkResponse {
	return InviteLinkResponse{Code: l.Code, URL: l.URL, ExpiresAt: l.ExpiresAt}
}
