package store

import (
	"context"
	"errors"

	"fluxera.app/api/core/db/sqlc"
	"fluxera.app/api/internal/model"
	"github.com/jackc/pgx/v5"
)

type apiLinkStore struct {
	queries *sqlc.Queries
}

func newAPILinkStore(queries *sqlc.Queries) APILinkStore {
	return &apiLinkStore{queries: queries}
}

func (s *apiLinkStore) GetByID(ctx context.Context, id int64) (*model.APILink, error) {
	row, err := s.queries.GetApiLink(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toAPILinkModel(row), nil
}

func (s *apiLinkStore) Create(ctx context.Context, link *model.APILink) error {
	row, err := s.queries.CreateApiLink(ctx, sqlc.CreateApiLinkParams{
		ID:          link.ID,
		WorkspaceID: link.WorkspaceID,
		Name:        link.Name,
		Url:         link.URL,
		Description: link.Description,
	})
	if err != nil {
		return err
	}
	*link = *toAPILinkModel(row)
	return nil
}

func (s *apiLinkStore) Update(ctx context.Context, link *model.APILink) error {
	row, err := s.queries.UpdateApiLink(ctx, sqlc.UpdateApiLinkParams{
		ID:          link.ID,
		Name:        link.Name,
		Url:         link.URL,
		Description: link.Description,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	*link = *toAPILinkModel(row)
	return nil
}

func (s *apiLinkStore) Delete(ctx context.Context, id int64) error {
	return deleted(s.queries.DeleteApiLink(ctx, id))
}

func (s *apiLinkStore) ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.APILink, error) {
	rows, err := s.queries.ListApiLinksByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	result := make([]model.APILink, len(rows))
	for i, row := range rows {
		result[i] = *toAPILinkModel(row)
	}
	return result, nil
}

func toAPILinkModel(row sqlc.ApiLink) *model.APILink {
	return &model.APILink{
		ID:          row.ID,
		WorkspaceID: row.WorkspaceID,
		Name:        row.Name,
		URL:         row.Url,
		Description: row.Description,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}
