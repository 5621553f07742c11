package store

import (
	"context"
	"encoding/json"
	"errors"

	"fluxera.app/api/core/db/sqlc"
	"fluxera.app/api/internal/model"
	"github.com/jackc/pgx/v5"
)

type artifactStore struct {
	queries *sqlc.Queries
}

func newArtifactStore(queries *sqlc.Queries) ArtifactStore {
	return &artifactStore{queries: queries}
}

func (s *artifactStore) GetByID(ctx context.Context, id int64) (*model.Artifact, error) {
	row, err := s.queries.GetArtifact(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toArtifactModel(row), nil
}

func (s *artifactStore) Create(ctx context.Context, artifact *model.Artifact) error {
	row, err := s.queries.CreateArtifact(ctx, sqlc.CreateArtifactParams{
		ID:            artifact.ID,
		WorkspaceID:   artifact.WorkspaceID,
		FeatureID:     artifact.FeatureID,
		Name:          artifact.Name,
		TechnicalName: artifact.TechnicalName,
		Data:          artifact.Data,
		ApiUrl:        artifact.APIURL,
	})
	if err != nil {
		return err
	}
	*artifact = *toArtifactModel(row)
	return nil
}

// UpdateData replaces the payload; id, created_at and documentation are preserved.
func (s *artifactStore) UpdateData(ctx context.Context, id int64, data json.RawMessage) (*model.Artifact, error) {
	row, err := s.queries.UpdateArtifactData(ctx, sqlc.UpdateArtifactDataParams{
		ID:   id,
		Data: data,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toArtifactModel(row), nil
}

func (s *artifactStore) UpdateDocumentation(ctx context.Context, id int64, documentation string) (*model.Artifact, error) {
	row, err := s.queries.UpdateArtifactDocumentation(ctx, sqlc.UpdateArtifactDocumentationParams{
		ID:            id,
		Documentation: &documentation,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toArtifactModel(row), nil
}

func (s *artifactStore) Delete(ctx context.Context, id int64) error {
	return deleted(s.queries.DeleteArtifact(ctx, id))
}

func (s *artifactStore) ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.Artifact, error) {
	rows, err := s.queries.ListArtifactsByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	result := make([]model.Artifact, len(rows))
	for i, row := range rows {
		result[i] = *toArtifactModel(row)
	}
	return result, nil
}

func toArtifactModel(row sqlc.Artifact) *model.Artifact {
	return &model.Artifact{
		ID:            row.ID,
		WorkspaceID:   row.WorkspaceID,
		FeatureID:     row.FeatureID,
		Name:          row.Name,
		TechnicalName: row.TechnicalName,
		Data:          json.RawMessage(row.Data),
		APIURL:        row.ApiUrl,
		Documentation: row.Documentation,
		CreatedAt:     row.CreatedAt.Time,
		UpdatedAt:     row.UpdatedAt.Time,
	}
}
