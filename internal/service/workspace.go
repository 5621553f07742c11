package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"fluxera.app/api/common/id"
	"fluxera.app/api/common/logger"
	"fluxera.app/api/internal/access"
	"fluxera.app/api/internal/model"
	"fluxera.app/api/internal/storage"
	"fluxera.app/api/internal/store"
)

var (
	ErrWorkspaceNotFound = fmt.Errorf("workspace %w", ErrNotFound)
	ErrTitleRequired     = errors.New("title is required")
)

// ImageUpload is an image received with a workspace form.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// UpdateWorkspaceInput carries a workspace edit. OldImage is the URL the
// client last saw; when a new image is uploaded that blob is removed.
type UpdateWorkspaceInput struct {
	Title    string
	Image    *ImageUpload
	OldImage string
}

type InviteLink struct {
	Code      string
	URL       string
	ExpiresAt time.Time
}

type WorkspaceService interface {
	ListMine(ctx context.Context, userID int64) ([]model.Workspace, error)
	Get(ctx context.Context, userID, workspaceID int64) (*model.Workspace, error)
	Create(ctx context.Context, userID int64, title string, image *ImageUpload) (*model.Workspace, error)
	Update(ctx context.Context, userID, workspaceID int64, in UpdateWorkspaceInput) (*model.Workspace, error)
	Delete(ctx context.Context, userID, workspaceID int64) error
	CreateInviteLink(ctx context.Context, userID, workspaceID int64) (*InviteLink, error)
}

type workspaceService struct {
	workspaceStore store.WorkspaceStore
	gate           access.Gate
	images         storage.ImageStore
	dashboardURL   string
	now            func() time.Time
}

func NewWorkspaceService(workspaceStore store.WorkspaceStore, gate access.Gate, images storage.ImageStore, dashboardURL string) WorkspaceService {
	return &workspaceService{
		workspaceStore: workspaceStore,
		gate:           gate,
		images:         images,
		dashboardURL:   strings.TrimRight(dashboardURL, "/"),
		now:            time.Now,
	}
}

// ListMine returns owned workspaces and workspaces the user is a member of,
// without duplicates, oldest first.
func (s *workspaceService) ListMine(ctx context.Context, userID int64) ([]model.Workspace, error) {
	var owned, joined []model.Workspace

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		owned, err = s.workspaceStore.ListByOwner(egCtx, userID)
		return err
	})
	eg.Go(func() error {
		var err error
		joined, err = s.workspaceStore.ListByMember(egCtx, userID)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("listing workspaces: %w", err)
	}

	seen := make(map[int64]bool, len(owned)+len(joined))
	result := make([]model.Workspace, 0, len(owned)+len(joined))
	for _, ws := range append(owned, joined...) {
		if seen[ws.ID] {
			continue
		}
		seen[ws.ID] = true
		result = append(result, ws)
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (s *workspaceService) Get(ctx context.Context, userID, workspaceID int64) (*model.Workspace, error) {
	a, err := s.gate.CanAccess(ctx, userID, workspaceID)
	if err != nil {
		return nil, err
	}
	if !a.Allowed {
		return nil, access.ErrForbidden
	}
	return a.Workspace, nil
}

func (s *workspaceService) Create(ctx context.Context, userID int64, title string, image *ImageUpload) (*model.Workspace, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	ws := &model.Workspace{
		ID:      id.New(),
		Title:   title,
		OwnerID: userID,
	}
	ctx = logger.WithLogFields(ctx, logger.LogFields{WorkspaceID: &ws.ID})

	imageURL, err := s.upload(ctx, image)
	if err != nil {
		return nil, err
	}
	ws.ImageURL = imageURL

	if err := s.workspaceStore.Create(ctx, ws); err != nil {
		s.discard(ctx, imageURL)
		return nil, fmt.Errorf("creating workspace: %w", err)
	}

	slog.InfoContext(ctx, "workspace created", "title", ws.Title)
	return ws, nil
}

func (s *workspaceService) Update(ctx context.Context, userID, workspaceID int64, in UpdateWorkspaceInput) (*model.Workspace, error) {
	a, err := s.gate.RequireManage(ctx, userID, workspaceID)
	if err != nil {
		return nil, err
	}
	ctx = logger.WithLogFields(ctx, logger.LogFields{WorkspaceID: &workspaceID})

	ws := *a.Workspace
	if title := strings.TrimSpace(in.Title); title != "" {
		ws.Title = title
	}

	newURL, err := s.upload(ctx, in.Image)
	if err != nil {
		return nil, err
	}
	previous := ws.ImageURL
	if newURL != nil {
		ws.ImageURL = newURL
	}

	if err := s.workspaceStore.Update(ctx, &ws); err != nil {
		s.discard(ctx, newURL)
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("updating workspace: %w", err)
	}

	if newURL != nil {
		old := in.OldImage
		if old == "" && previous != nil {
			old = *previous
		}
		if old != "" && old != *newURL {
			s.discard(ctx, &old)
		}
	}

	slog.InfoContext(ctx, "workspace updated", "image_replaced", newURL != nil)
	return &ws, nil
}

// Delete is reserved to the owner. Rows cascade; the image blob is removed afterwards.
func (s *workspaceService) Delete(ctx context.Context, userID, workspaceID int64) error {
	a, err := s.gate.CanAccess(ctx, userID, workspaceID)
	if err != nil {
		return err
	}
	if !a.IsOwner {
		return access.ErrForbidden
	}
	ctx = logger.WithLogFields(ctx, logger.LogFields{WorkspaceID: &workspaceID})

	if err := s.workspaceStore.Delete(ctx, workspaceID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrWorkspaceNotFound
		}
		return fmt.Errorf("deleting workspace: %w", err)
	}
	s.discard(ctx, a.Workspace.ImageURL)

	slog.InfoContext(ctx, "workspace deleted")
	return nil
}

func (s *workspaceService) CreateInviteLink(ctx context.Context, userID, workspaceID int64) (*InviteLink, error) {
	if _, err := s.gate.RequireManage(ctx, userID, workspaceID); err != nil {
		return nil, err
	}

	now := s.now()
	code := EncodeInvite(workspaceID, now)
	return &InviteLink{
		Code:      code,
		URL:       s.dashboardURL + "/accept-invite?invite=" + url.QueryEscape(code),
		ExpiresAt: now.Add(model.InviteTTL),
	}, nil
}

func (s *workspaceService) upload(ctx context.Context, image *ImageUpload) (*string, error) {
	if image == nil || len(image.Data) == 0 {
		return nil, nil
	}
	if s.images == nil {
		slog.WarnContext(ctx, "image storage not configured, ignoring upload")
		return nil, nil
	}
	publicURL, err := s.images.Upload(ctx, image.Filename, image.ContentType, image.Data)
	if err != nil {
		return nil, fmt.Errorf("uploading image: %w", err)
	}
	return &publicURL, nil
}

// discard removes a stored image. Failures are logged; the blob is orphaned.
func (s *workspaceService) discard(ctx context.Context, imageURL *string) {
	if s.images == nil || imageURL == nil || *imageURL == "" {
		return
	}
	if err := s.images.Delete(ctx, *imageURL); err != nil {
		slog.WarnContext(ctx, "failed to delete workspace image", "error", err, "url", *imageURL)
	}
}
