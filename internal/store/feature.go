package store

import (
	"context"
	"errors"

	"fluxera.app/api/core/db/sqlc"
	"fluxera.app/api/internal/model"
	"github.com/jackc/pgx/v5"
)

type featureStore struct {
	queries *sqlc.Queries
}

func newFeatureStore(queries *sqlc.Queries) FeatureStore {
	return &featureStore{queries: queries}
}

func (s *featureStore) GetByID(ctx context.Context, id int64) (*model.Feature, error) {
	row, err := s.queries.GetFeature(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toFeatureModel(row), nil
}

func (s *featureStore) Create(ctx context.Context, feature *model.Feature) error {
	row, err := s.queries.CreateFeature(ctx, sqlc.CreateFeatureParams{
		ID:        feature.ID,
		ProjectID: feature.ProjectID,
		UserStory: feature.UserStory,
	})
	if err != nil {
		return err
	}
	*feature = *toFeatureModel(row)
	return nil
}

func (s *featureStore) Update(ctx context.Context, feature *model.Feature) error {
	row, err := s.queries.UpdateFeature(ctx, sqlc.UpdateFeatureParams{
		ID:        feature.ID,
		UserStory: feature.UserStory,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	*feature = *toFeatureModel(row)
	return nil
}

func (s *featureStore) Delete(ctx context.Context, id int64) error {
	return deleted(s.queries.DeleteFeature(ctx, id))
}

func (s *featureStore) ListByProject(ctx context.Context, projectID int64) ([]model.Feature, error) {
	rows, err := s.queries.ListFeaturesByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	result := make([]model.Feature, len(rows))
	for i, row := range rows {
		result[i] = *toFeatureModel(row)
	}
	return result, nil
}

func toFeatureModel(row sqlc.Feature) *model.Feature {
	return &model.Feature{
		ID:        row.ID,
		ProjectID: row.ProjectID,
		UserStory: row.UserStory,
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}
