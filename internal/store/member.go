package store

import (
	"context"
	"errors"

	"fluxera.app/api/core/db/sqlc"
	"fluxera.app/api/internal/model"
	"github.com/jackc/pgx/v5"
)

type memberStore struct {
	queries *sqlc.Queries
}

func newMemberStore(queries *sqlc.Queries) MemberStore {
	return &memberStore{queries: queries}
}

func (s *memberStore) GetByID(ctx context.Context, id int64) (*model.WorkspaceMember, error) {
	row, err := s.queries.GetWorkspaceMember(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toMemberModel(row), nil
}

func (s *memberStore) GetByWorkspaceAndUser(ctx context.Context, workspaceID, userID int64) (*model.WorkspaceMember, error) {
	row, err := s.queries.GetWorkspaceMemberByUser(ctx, sqlc.GetWorkspaceMemberByUserParams{
		WorkspaceID: workspaceID,
		UserID:      userID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toMemberModel(row), nil
}

func (s *memberStore) Create(ctx context.Context, member *model.WorkspaceMember) error {
	row, err := s.queries.CreateWorkspaceMember(ctx, sqlc.CreateWorkspaceMemberParams{
		ID:          member.ID,
		WorkspaceID: member.WorkspaceID,
		UserID:      member.UserID,
		RoleID:      member.RoleID,
	})
	if err != nil {
		return mapError(err)
	}
	*member = *toMemberModel(row)
	return nil
}

func (s *memberStore) UpdateRole(ctx context.Context, id int64, roleID *int64) (*model.WorkspaceMember, error) {
	row, err := s.queries.UpdateWorkspaceMemberRole(ctx, sqlc.UpdateWorkspaceMemberRoleParams{
		ID:     id,
		RoleID: roleID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toMemberModel(row), nil
}

func (s *memberStore) Delete(ctx context.Context, id int64) error {
	return deleted(s.queries.DeleteWorkspaceMember(ctx, id))
}

func (s *memberStore) ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.WorkspaceMember, error) {
	rows, err := s.queries.ListWorkspaceMembers(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	result := make([]model.WorkspaceMember, len(rows))
	for i, row := range rows {
		result[i] = *toMemberModel(row)
	}
	return result, nil
}

func toMemberModel(row sqlc.WorkspaceMember) *model.WorkspaceMember {
	return &model.WorkspaceMember{
		ID:          row.ID,
		WorkspaceID: row.WorkspaceID,
		UserID:      row.UserID,
		RoleID:      row.RoleID,
		CreatedAt:   row.CreatedAt.Time,
	}
}
