package store

import (
	"context"
	"errors"

	"fluxera.app/api/core/db/sqlc"
	"fluxera.app/api/internal/model"
	"github.com/jackc/pgx/v5"
)

type projectStore struct {
	queries *sqlc.Queries
}

func newProjectStore(queries *sqlc.Queries) ProjectStore {
	return &projectStore{queries: queries}
}

func (s *projectStore) GetByID(ctx context.Context, id int64) (*model.Project, error) {
	row, err := s.queries.GetProject(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toProjectModel(row), nil
}

func (s *projectStore) Create(ctx context.Context, project *model.Project) error {
	row, err := s.queries.CreateProject(ctx, sqlc.CreateProjectParams{
		ID:          project.ID,
		WorkspaceID: project.WorkspaceID,
		Title:       project.Title,
		Closed:      project.Closed,
		Obsolete:    project.Obsolete,
	})
	if err != nil {
		return err
	}
	*project = *toProjectModel(row)
	return nil
}

func (s *projectStore) Update(ctx context.Context, project *model.Project) error {
	row, err := s.queries.UpdateProject(ctx, sqlc.UpdateProjectParams{
		ID:       project.ID,
		Title:    project.Title,
		Closed:   project.Closed,
		Obsolete: project.Obsolete,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	*project = *toProjectModel(row)
	return nil
}

func (s *projectStore) Delete(ctx context.Context, id int64) error {
	return deleted(s.queries.DeleteProject(ctx, id))
}

func (s *projectStore) ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.Project, error) {
	rows, err := s.queries.ListProjectsByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	result := make([]model.Project, len(rows))
	for i, row := range rows {
		result[i] = *toProjectModel(row)
	}
	return result, nil
}

func toProjectModel(row sqlc.Project) *model.Project {
	return &model.Project{
		ID:          row.ID,
		WorkspaceID: row.WorkspaceID,
		Title:       row.Title,
		Closed:      row.Closed,
		Obsolete:    row.Obsolete,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}
