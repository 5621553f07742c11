package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"fluxera.app/api/common/id"
	"fluxera.app/api/internal/access"
	"fluxera.app/api/internal/model"
	"fluxera.app/api/internal/store"
)

var (
	ErrMemberNotFound = fmt.Errorf("member %w", ErrNotFound)
	ErrAlreadyMember  = errors.New("user is already a member of this workspace")
)

type MemberService interface {
	List(ctx context.Context, userID, workspaceID int64) ([]model.MemberWithUser, error)
	// AddByEmail lets a manager add an existing user, optionally with a role.
	AddByEmail(ctx context.Context, userID, workspaceID int64, email string, roleID *int64) (*model.WorkspaceMember, error)
	// Join adds the caller as a visitor using an invite code for the workspace.
	Join(ctx context.Context, userID, workspaceID int64, code string) (*model.WorkspaceMember, error)
	UpdateRole(ctx context.Context, userID, workspaceID, memberID int64, roleID *int64) (*model.WorkspaceMember, error)
	// Remove lets a manager remove anyone and any member leave on their own.
	Remove(ctx context.Context, userID, workspaceID, memberID int64) error
}

type memberService struct {
	memberStore store.MemberStore
	userStore   store.UserStore
	roleStore   store.RoleStore
	gate        access.Gate
	now         func() time.Time
}

func NewMemberService(memberStore store.MemberStore, userStore store.UserStore, roleStore store.RoleStore, gate access.Gate) MemberService {
	return &memberService{
		memberStore: memberStore,
		userStore:   userStore,
		roleStore:   roleStore,
		gate:        gate,
		now:         time.Now,
	}
}

func (s *memberService) List(ctx context.Context, userID, workspaceID int64) ([]model.MemberWithUser, error) {
	a, err := s.gate.CanAccess(ctx, userID, workspaceID)
	if err != nil {
		return nil, err
	}
	if !a.Allowed {
		return nil, access.ErrForbidden
	}

	var (
		members []model.WorkspaceMember
		roles   []model.Role
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		members, err = s.memberStore.ListByWorkspace(egCtx, workspaceID)
		return err
	})
	eg.Go(func() error {
		var err error
		roles, err = s.roleStore.ListByWorkspace(egCtx, workspaceID)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("listing members: %w", err)
	}

	rolesByID := make(map[int64]*model.Role, len(roles))
	for i := range roles {
		rolesByID[roles[i].ID] = &roles[i]
	}

	result := make([]model.MemberWithUser, len(members))
	users, usersCtx := errgroup.WithContext(ctx)
	users.SetLimit(8)
	for i, m := range members {
		result[i].Member = m
		if m.RoleID != nil {
			result[i].Role = rolesByID[*m.RoleID]
		}
		users.Go(func() error {
			u, err := s.userStore.GetByID(usersCtx, m.UserID)
			if err != nil {
				return fmt.Errorf("getting user %d: %w", m.UserID, err)
			}
			result[i].User = *u
			return nil
		})
	}
	if err := users.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

func (s *memberService) AddByEmail(ctx context.Context, userID, workspaceID int64, email string, roleID *int64) (*model.WorkspaceMember, error) {
	a, err := s.gate.RequireManage(ctx, userID, workspaceID)
	if err != nil {
		return nil, err
	}

	user, err := s.userStore.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}
	if a.Workspace.IsOwnedBy(user.ID) {
		return nil, ErrAlreadyMember
	}
	if err := s.checkRole(ctx, workspaceID, roleID); err != nil {
		return nil, err
	}

	return s.create(ctx, workspaceID, user.ID, roleID)
}

func (s *memberService) Join(ctx context.Context, userID, workspaceID int64, code string) (*model.WorkspaceMember, error) {
	invite, err := DecodeInvite(code, s.now())
	if err != nil {
		return nil, err
	}
	if invite.WorkspaceID != workspaceID {
		return nil, ErrInvalidInvite
	}

	a, err := s.gate.CanAccess(ctx, userID, workspaceID)
	if err != nil {
		return nil, err
	}
	if a.Allowed {
		return nil, ErrAlreadyMember
	}

	return s.create(ctx, workspaceID, userID, nil)
}

func (s *memberService) UpdateRole(ctx context.Context, userID, workspaceID, memberID int64, roleID *int64) (*model.WorkspaceMember, error) {
	if _, err := s.gate.RequireManage(ctx, userID, workspaceID); err != nil {
		return nil, err
	}
	if _, err := s.member(ctx, workspaceID, memberID); err != nil {
		return nil, err
	}
	if err := s.checkRole(ctx, workspaceID, roleID); err != nil {
		return nil, err
	}

	updated, err := s.memberStore.UpdateRole(ctx, memberID, roleID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("updating member role: %w", err)
	}

	slog.InfoContext(ctx, "member role updated",
		"workspace_id", workspaceID,
		"member_id", memberID,
		"visitor", updated.IsVisitor(),
	)
	return updated, nil
}

func (s *memberService) Remove(ctx context.Context, userID, workspaceID, memberID int64) error {
	a, err := s.gate.CanAccess(ctx, userID, workspaceID)
	if err != nil {
		return err
	}
	if !a.Allowed {
		return access.ErrForbidden
	}

	member, err := s.member(ctx, workspaceID, memberID)
	if err != nil {
		return err
	}
	if member.UserID != userID && !a.CanManage() {
		return access.ErrForbidden
	}

	if err := s.memberStore.Delete(ctx, memberID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrMemberNotFound
		}
		return fmt.Errorf("deleting member: %w", err)
	}

	slog.InfoContext(ctx, "member removed", "workspace_id", workspaceID, "member_id", memberID)
	return nil
}

func (s *memberService) create(ctx context.Context, workspaceID, userID int64, roleID *int64) (*model.WorkspaceMember, error) {
	member := &model.WorkspaceMember{
		ID:          id.New(),
		WorkspaceID: workspaceID,
		UserID:      userID,
		RoleID:      roleID,
	}
	if err := s.memberStore.Create(ctx, member); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrAlreadyMember
		}
		return nil, fmt.Errorf("creating member: %w", err)
	}

	slog.InfoContext(ctx, "member added",
		"workspace_id", workspaceID,
		"user_id", userID,
		"member_id", member.ID,
	)
	return member, nil
}

func (s *memberService) member(ctx context.Context, workspaceID, memberID int64) (*model.WorkspaceMember, error) {
	member, err := s.memberStore.GetByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("getting member: %w", err)
	}
	if member.WorkspaceID != workspaceID {
		return nil, ErrMemberNotFound
	}
	return member, nil
}

func (s *memberService) checkRole(ctx context.Context, workspaceID int64, roleID *int64) error {
	if roleID == nil {
		return nil
	}
	role, err := s.roleStore.GetByID(ctx, *roleID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrRoleNotFound
		}
		return fmt.Errorf("getting role: %w", err)
	}
	if role.WorkspaceID != workspaceID {
		return ErrRoleNotFound
	}
	return nil
}
