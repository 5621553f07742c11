package access_test

import (
	"context"

	"fluxera.app/api/internal/model"
	"fluxera.app/api/internal/store"
)

type mockWorkspaceStore struct {
	getByIDFn func(ctx context.Context, id int64) (*model.Workspace, error)
}

func (m *mockWorkspaceStore) GetByID(ctx context.Context, id int64) (*model.Workspace, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockWorkspaceStore) Create(context.Context, *model.Workspace) error { return nil }
func (m *mockWorkspaceStore) Update(context.Context, *model.Workspace) error { return nil }
func (m *mockWorkspaceStore) Delete(context.Context, int64) error            { return nil }

func (m *mockWorkspaceStore) ListByOwner(context.Context, int64) ([]model.Workspace, error) {
	return nil, nil
}

func (m *mockWorkspaceStore) ListByMember(context.Context, int64) ([]model.Workspace, error) {
	return nil, nil
}

type mockMemberStore struct {
	getByWorkspaceAndUserFn func(ctx context.Context, workspaceID, userID int64) (*model.WorkspaceMember, error)
}

func (m *mockMemberStore) GetByWorkspaceAndUser(ctx context.Context, workspaceID, userID int64) (*model.WorkspaceMember, error) {
	if m.getByWorkspaceAndUserFn != nil {
		return m.getByWorkspaceAndUserFn(ctx, workspaceID, userID)
	}
	return nil, store.ErrNotFound
}

func (m *mockMemberStore) GetByID(context.Context, int64) (*model.WorkspaceMember, error) {
	return nil, store.ErrNotFound
}

func (m *mockMemberStore) Create(context.Context, *model.WorkspaceMember) error { return nil }

func (m *mockMemberStore) UpdateRole(context.Context, int64, *int64) (*model.WorkspaceMember, error) {
	return nil, nil
}

func (m *mockMemberStore) Delete(context.Context, int64) error { return nil }

func (m *mockMemberStore) ListByWorkspace(context.Context, int64) ([]model.WorkspaceMember, error) {
	return nil, nil
}

type mockRoleStore struct {
	getByIDFn func(ctx context.Context, id int64) (*model.Role, error)
}

func (m *mockRoleStore) GetByID(ctx context.Context, id int64) (*model.Role, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockRoleStore) Create(context.Context, *model.Role) error { return nil }
func (m *mockRoleStore) Update(context.Context, *model.Role) error { return nil }
func (m *mockRoleStore) Delete(context.Context, int64) error       { return nil }

func (m *mockRoleStore) ListByWorkspace(context.Context, int64) ([]model.Role, error) {
	return nil, nil
}
