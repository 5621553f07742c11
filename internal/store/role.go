package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"fluxera.app/api/core/db/sqlc"
	"fluxera.app/api/internal/model"
	"github.com/jackc/pgx/v5"
)

type roleStore struct {
	queries *sqlc.Queries
}

func newRoleStore(queries *sqlc.Queries) RoleStore {
	return &roleStore{queries: queries}
}

func (s *roleStore) GetByID(ctx context.Context, id int64) (*model.Role, error) {
	row, err := s.queries.GetRole(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toRoleModel(row)
}

func (s *roleStore) Create(ctx context.Context, role *model.Role) error {
	capabilities, err := encodeCapabilities(role.Capabilities)
	if err != nil {
		return err
	}
	row, err := s.queries.CreateRole(ctx, sqlc.CreateRoleParams{
		ID:           role.ID,
		WorkspaceID:  role.WorkspaceID,
		Name:         role.Name,
		CanManage:    role.CanManage,
		Capabilities: capabilities,
	})
	if err != nil {
		return err
	}
	created, err := toRoleModel(row)
	if err != nil {
		return err
	}
	*role = *created
	return nil
}

func (s *roleStore) Update(ctx context.Context, role *model.Role) error {
	capabilities, err := encodeCapabilities(role.Capabilities)
	if err != nil {
		return err
	}
	row, err := s.queries.UpdateRole(ctx, sqlc.UpdateRoleParams{
		ID:           role.ID,
		Name:         role.Name,
		CanManage:    role.CanManage,
		Capabilities: capabilities,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	updated, err := toRoleModel(row)
	if err != nil {
		return err
	}
	*role = *updated
	return nil
}

func (s *roleStore) Delete(ctx context.Context, id int64) error {
	return deleted(s.queries.DeleteRole(ctx, id))
}

func (s *roleStore) ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.Role, error) {
	rows, err := s.queries.ListRolesByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	result := make([]model.Role, len(rows))
	for i, row := range rows {
		role, err := toRoleModel(row)
		if err != nil {
			return nil, err
		}
		result[i] = *role
	}
	return result, nil
}

func encodeCapabilities(c model.Capabilities) ([]byte, error) {
	if c == nil {
		c = model.Capabilities{}
	}
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding capabilities: %w", err)
	}
	return data, nil
}

func toRoleModel(row sqlc.Role) (*model.Role, error) {
	capabilities := model.Capabilities{}
	if len(row.Capabilities) > 0 {
		if err := json.Unmarshal(row.Capabilities, &capabilities); err != nil {
			return nil, fmt.Errorf("decoding capabilities of role %d: %w", row.ID, err)
		}
	}
	return &model.Role{
		ID:           row.ID,
		WorkspaceID:  row.WorkspaceID,
		Name:         row.Name,
		CanManage:    row.CanManage,
		Capabilities: capabilities,
		CreatedAt:    row.CreatedAt.Time,
		UpdatedAt:    row.UpdatedAt.Time,
	}, nil
}
