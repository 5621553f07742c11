package dto

import (
	"time"

	"fluxera.app/api/internal/model"
)

type ProjectRequest struct {
	Title    string `json:"title" binding:"required,min=1,max=255"`
	Closed   bool   `json:"closed"`
	Obsolete bool   `json:"obsolete"`
}

type ProjectResponse struct {
	ID          int64     `json:"id,string"`
	WorkspaceID int64     `json:"workspace_id,string"`
	Title       string    `json:"title"`
	Closed      bool      `json:"closed"`
	Obsolete    bool      `json:"obsolete"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToProjectResponse(p *model.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		WorkspaceID: p.WorkspaceID,
		Title:       p.Title,
		Closed:      p.Closed,
		Obsolete:    p.Obsolete,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func ToProjectResponses(projects []model.Project) []ProjectResponse {
	out := make([]ProjectResponse, len(projects))
	for i := range projects {
		out[i] = ToProjectResponse(&projects[i])
	}
	return out
}

type FeatureRequest struct {
	UserStory string `json:"user_story" binding:"required,min=1"`
}

type FeatureResponse struct {
	ID        int64     `json:"id,string"`
	ProjectID int64     `json:"project_id,string"`
	UserStory string    `json:"user_story"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToFeatureResponse(f *model.Feature) FeatureResponse {
	return FeatureResponse{
		ID:        f.ID,
		ProjectID: f.ProjectID,
		UserStory: f.UserStory,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func ToFeatureResponses(features []model.Feature) []FeatureResponse {
	out := make([]FeatureResponse, len(features))
	for i := range features {
		out[i] = ToFeatureResponse(&features[i])
	}
	return out
}
