package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"fluxera.app/api/common/id"
	"fluxera.app/api/internal/access"
	"fluxera.app/api/internal/model"
	"fluxera.app/api/internal/store"
)

var (
	ErrRoleNotFound = fmt.Errorf("role %w", ErrNotFound)
	ErrNameRequired = errors.New("name is required")
)

type RoleInput struct {
	Name         string
	CanManage    bool
	Capabilities model.Capabilities
}

type RoleService interface {
	List(ctx context.Context, userID, workspaceID int64) ([]model.Role, error)
	Create(ctx context.Context, userID, workspaceID int64, in RoleInput) (*model.Role, error)
	Update(ctx context.Context, userID, workspaceID, roleID int64, in RoleInput) (*model.Role, error)
	Delete(ctx context.Context, userID, workspaceID, roleID int64) error
}

type roleService struct {
	roleStore store.RoleStore
	gate      access.Gate
}

func NewRoleService(roleStore store.RoleStore, gate access.Gate) RoleService {
	return &roleService{roleStore: roleStore, gate: gate}
}

func (s *roleService) List(ctx context.Context, userID, workspaceID int64) ([]model.Role, error) {
	a, err := s.gate.CanAccess(ctx, userID, workspaceID)
	if err != nil {
		return nil, err
	}
	if !a.Allowed {
		return nil, access.ErrForbidden
	}
	roles, err := s.roleStore.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("listing roles: %w", err)
	}
	return roles, nil
}

func (s *roleService) Create(ctx context.Context, userID, workspaceID int64, in RoleInput) (*model.Role, error) {
	if _, err := s.gate.RequireManage(ctx, userID, workspaceID); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	role := &model.Role{
		ID:           id.New(),
		WorkspaceID:  workspaceID,
		Name:         name,
		CanManage:    in.CanManage,
		Capabilities: in.Capabilities,
	}
	if role.Capabilities == nil {
		role.Capabilities = model.Capabilities{}
	}
	if err := s.roleStore.Create(ctx, role); err != nil {
		return nil, fmt.Errorf("creating role: %w", err)
	}

	slog.InfoContext(ctx, "role created",
		"workspace_id", workspaceID,
		"role_id", role.ID,
		"can_manage", role.CanManage,
	)
	return role, nil
}

func (s *roleService) Update(ctx context.Context, userID, workspaceID, roleID int64, in RoleInput) (*model.Role, error) {
	if _, err := s.gate.RequireManage(ctx, userID, workspaceID); err != nil {
		return nil, err
	}
	role, err := s.get(ctx, workspaceID, roleID)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	role.Name = name
	role.CanManage = in.CanManage
	role.Capabilities = in.Capabilities
	if role.Capabilities == nil {
		role.Capabilities = model.Capabilities{}
	}
	if err := s.roleStore.Update(ctx, role); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, fmt.Errorf("updating role: %w", err)
	}

	slog.InfoContext(ctx, "role updated", "workspace_id", workspaceID, "role_id", roleID)
	return role, nil
}

// Delete removes the role. Members holding it become visitors.
func (s *roleService) Delete(ctx context.Context, userID, workspaceID, roleID int64) error {
	if _, err := s.gate.RequireManage(ctx, userID, workspaceID); err != nil {
		return err
	}
	if _, err := s.get(ctx, workspaceID, roleID); err != nil {
		return err
	}
	if err := s.roleStore.Delete(ctx, roleID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrRoleNotFound
		}
		return fmt.Errorf("deleting role: %w", err)
	}

	slog.InfoContext(ctx, "role deleted", "workspace_id", workspaceID, "role_id", roleID)
	return nil
}

func (s *roleService) get(ctx context.Context, workspaceID, roleID int64) (*model.Role, error) {
	role, err := s.roleStore.GetByID(ctx, roleID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, fmt.Errorf("getting role: %w", err)
	}
	if role.WorkspaceID != workspaceID {
		return nil, ErrRoleNotFound
	}
	return role, nil
}
