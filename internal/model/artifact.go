package model

import (
	"encoding/json"
	"time"
)

type DocumentationState string

const (
	DocumentationAbsent  DocumentationState = "absent"
	DocumentationPresent DocumentationState = "present"
)

type Artifact struct {
	ID            int64           `json:"id"`
	WorkspaceID   int64           `json:"workspace_id"`
	FeatureID     *int64          `json:"feature_id,omitempty"`
	Name          string          `json:"name"`
	TechnicalName string          `json:"technical_name"`
	Data          json.RawMessage `json:"data"`
	APIURL        *string         `json:"api_url,omitempty"`
	Documentation *string         `json:"documentation,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (a *Artifact) DocumentationState() DocumentationState {
	if a.Documentation == nil || *a.Documentation == "" {
		return DocumentationAbsent
	}
	return DocumentationPresent
}

func (a *Artifact) HasSource() bool {
	return a.APIURL != nil && *a.APIURL != ""
}
