package dto

import (
	"encoding/json"
	"time"

	"fluxera.app/api/internal/model"
)

type CreateArtifactRequest struct {
	Name          string `json:"name" binding:"required,min=1,max=255"`
	TechnicalName string `json:"technical_name" binding:"required,min=1,max=255"`
	SourceAPIID   int64  `json:"source_api_id,string" binding:"required"`
	FeatureID     *int64 `json:"feature_id,string,omitempty"`
}

type DocumentationChatRequest struct {
	CurrentDocumentation string `json:"current_documentation"`
	Instruction          string `json:"instruction" binding:"required,min=1,max=4000"`
}

type ArtifactResponse struct {
	ID                 int64                    `json:"id,string"`
	WorkspaceID        int64                    `json:"workspace_id,string"`
	FeatureID          *int64                   `json:"feature_id,string,omitempty"`
	Name               string                   `json:"name"`
	TechnicalName      string                   `json:"technical_name"`
	Data               json.RawMessage          `json:"data"`
	APIURL             *string                  `json:"api_url"`
	Documentation      *string                  `json:"documentation"`
	DocumentationState model.DocumentationState `json:"documentation_state"`
	CreatedAt          time.Time                `json:"created_at"`
	UpdatedAt          time.Time                `json:"updated_at"`
}

func ToArtifactResponse(a *model.Artifact) ArtifactResponse {
	data := a.Data
	if len(data) == 0 {
		data = json.RawMessage("null")
	}
	return ArtifactResponse{
		ID:                 a.ID,
		WorkspaceID:        a.WorkspaceID,
		FeatureID:          a.FeatureID,
		Name:               a.Name,
		TechnicalName:      a.TechnicalName,
		Data:               data,
		APIURL:             a.APIURL,
		Documentation:      a.Documentation,
		DocumentationState: a.DocumentationState(),
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

func ToArtifactResponses(artifacts []model.Artifact) []ArtifactResponse {
	out := make([]ArtifactResponse, len(artifacts))
	for i := range artifacts {
		out[i] = ToArtifactResponse(&artifacts[i])
	}
	return out
}
