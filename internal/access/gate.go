// Package access decides what an authenticated user may do inside a workspace.
//
// Owners may do anything. Members may always read; mutating a project, task or
// artifact needs the matching capability on the member's role. Members without
// a role are visitors and can only read. Managing the workspace itself (members,
// roles, api links, settings) needs ownership or a role with CanManage.
package access

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"fluxera.app/api/internal/model"
	"fluxera.app/api/internal/store"
)

var (
	ErrNotFound  = errors.New("workspace not found")
	ErrForbidden = errors.New("forbidden")
)

// Access is the outcome of resolving a user against a workspace.
type Access struct {
	Workspace *model.Workspace
	Member    *model.WorkspaceMember
	Role      *model.Role
	IsOwner   bool
	Allowed   bool
}

// Can reports whether the resolved user may perform verb on resource.
func (a *Access) Can(resource model.Resource, verb model.Verb) bool {
	switch {
	case !a.Allowed:
		return false
	case a.IsOwner:
		return true
	case !verb.Mutating():
		return true
	case a.Role == nil:
		return false
	}
	return a.Role.Allows(resource, verb)
}

func (a *Access) CanManage() bool {
	if !a.Allowed {
		return false
	}
	return a.IsOwner || (a.Role != nil && a.Role.CanManage)
}

type Gate interface {
	CanAccess(ctx context.Context, userID, workspaceID int64) (*Access, error)
	Authorize(ctx context.Context, userID, workspaceID int64, resource model.Resource, verb model.Verb) (*Access, error)
	RequireManage(ctx context.Context, userID, workspaceID int64) (*Access, error)
}

type gate struct {
	workspaces store.WorkspaceStore
	members    store.MemberStore
	roles      store.RoleStore
}

func NewGate(workspaces store.WorkspaceStore, members store.MemberStore, roles store.RoleStore) Gate {
	return &gate{workspaces: workspaces, members: members, roles: roles}
}

func (g *gate) CanAccess(ctx context.Context, userID, workspaceID int64) (*Access, error) {
	var (
		ws     *model.Workspace
		member *model.WorkspaceMember
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		w, err := g.workspaces.GetByID(egCtx, workspaceID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("getting workspace: %w", err)
		}
		ws = w
		return nil
	})
	eg.Go(func() error {
		m, err := g.members.GetByWorkspaceAndUser(egCtx, workspaceID, userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil
			}
			return fmt.Errorf("getting membership: %w", err)
		}
		member = m
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	access := &Access{
		Workspace: ws,
		Member:    member,
		IsOwner:   ws.IsOwnedBy(userID),
	}
	access.Allowed = access.IsOwner || member != nil

	if member != nil && !member.IsVisitor() {
		role, err := g.roles.GetByID(ctx, *member.RoleID)
		switch {
		case errors.Is(err, store.ErrNotFound):
			// Role removed after the membership was read; treat as visitor.
		case err != nil:
			return nil, fmt.Errorf("getting role: %w", err)
		case role.WorkspaceID == workspaceID:
			access.Role = role
		}
	}

	return access, nil
}

func (g *gate) Authorize(ctx context.Context, userID, workspaceID int64, resource model.Resource, verb model.Verb) (*Access, error) {
	access, err := g.CanAccess(ctx, userID, workspaceID)
	if err != nil {
		return nil, err
	}
	if !access.Can(resource, verb) {
		slog.InfoContext(ctx, "workspace access denied",
			"user_id", userID,
			"workspace_id", workspaceID,
			"resource", resource,
			"verb", verb,
			"member", access.Allowed,
		)
		return nil, ErrForbidden
	}
	return access, nil
}

func (g *gate) RequireManage(ctx context.Context, userID, workspaceID int64) (*Access, error) {
	access, err := g.CanAccess(ctx, userID, workspaceID)
	if err != nil {
		return nil, err
	}
	if !access.CanManage() {
		slog.InfoContext(ctx, "workspace management denied",
			"user_id", userID,
			"workspace_id", workspaceID,
		)
		return nil, ErrForbidden
	}
	return access, nil
}
