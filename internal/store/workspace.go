package store

import (
	"context"
	"errors"

	"fluxera.app/api/core/db/sqlc"
	"fluxera.app/api/internal/model"
	"github.com/jackc/pgx/v5"
)

type workspaceStore struct {
	queries *sqlc.Queries
}

func newWorkspaceStore(queries *sqlc.Queries) WorkspaceStore {
	return &workspaceStore{queries: queries}
}

func (s *workspaceStore) GetByID(ctx context.Context, id int64) (*model.Workspace, error) {
	row, err := s.queries.GetWorkspace(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toWorkspaceModel(row), nil
}

func (s *workspaceStore) Create(ctx context.Context, ws *model.Workspace) error {
	row, err := s.queries.CreateWorkspace(ctx, sqlc.CreateWorkspaceParams{
		ID:       ws.ID,
		Title:    ws.Title,
		ImageUrl: ws.ImageURL,
		OwnerID:  ws.OwnerID,
	})
	if err != nil {
		return err
	}
	*ws = *toWorkspaceModel(row)
	return nil
}

func (s *workspaceStore) Update(ctx context.Context, ws *model.Workspace) error {
	row, err := s.queries.UpdateWorkspace(ctx, sqlc.UpdateWorkspaceParams{
		ID:       ws.ID,
		Title:    ws.Title,
		ImageUrl: ws.ImageURL,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	*ws = *toWorkspaceModel(row)
	return nil
}

func (s *workspaceStore) Delete(ctx context.Context, id int64) error {
	return deleted(s.queries.DeleteWorkspace(ctx, id))
}

func (s *workspaceStore) ListByOwner(ctx context.Context, ownerID int64) ([]model.Workspace, error) {
	rows, err := s.queries.ListWorkspacesByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return toWorkspaceModels(rows), nil
}

func (s *workspaceStore) ListByMember(ctx context.Context, userID int64) ([]model.Workspace, error) {
	rows, err := s.queries.ListWorkspacesByMember(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toWorkspaceModels(rows), nil
}

func toWorkspaceModel(row sqlc.Workspace) *model.Workspace {
	return &model.Workspace{
		ID:        row.ID,
		Title:     row.Title,
		ImageURL:  row.ImageUrl,
		OwnerID:   row.OwnerID,
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}

func toWorkspaceModels(rows []sqlc.Workspace) []model.Workspace {
	result := make([]model.Workspace, len(rows))
	for i, row := range rows {
		result[i] = *toWorkspaceModel(row)
	}
	return result
}
