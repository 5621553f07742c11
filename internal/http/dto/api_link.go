package dto

import (
	"time"

	"fluxera.app/api/internal/model"
)

type APILinkRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=255"`
	URL         string  `json:"url" binding:"required,url,max=2048"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=2000"`
}

type APILinkResponse struct {
	ID          int64     `json:"id,string"`
	WorkspaceID int64     `json:"workspace_id,string"`
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToAPILinkResponse(l *model.APILink) APILinkResponse {
	return APILinkResponse{
		ID:          l.ID,
		WorkspaceID: l.WorkspaceID,
		Name:        l.Name,
		URL:         l.URL,
		Description: l.Description,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func ToAPILinkResponses(links []model.APILink) []APILinkResponse {
	out := make([]APILinkResponse, len(links))
	for i := range links {
		out[i] = ToAPILinkResponse(&links[i])
	}
	return out
}
