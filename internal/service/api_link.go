package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"fluxera.app/api/common/id"
	"fluxera.app/api/internal/access"
	"fluxera.app/api/internal/model"
	"fluxera.app/api/internal/store"
)

var (
	ErrAPILinkNotFound = fmt.Errorf("api link %w", ErrNotFound)
	ErrInvalidURL      = errors.New("url must be an absolute http(s) URL")
)

type APILinkInput struct {
	Name        string
	URL         string
	Description *string
}

type APILinkService interface {
	List(ctx context.Context, userID, workspaceID int64) ([]model.APILink, error)
	Create(ctx context.Context, userID, workspaceID int64, in APILinkInput) (*model.APILink, error)
	Update(ctx context.Context, userID, workspaceID, linkID int64, in APILinkInput) (*model.APILink, error)
	Delete(ctx context.Context, userID, workspaceID, linkID int64) error
}

type apiLinkService struct {
	linkStore store.APILinkStore
	gate      access.Gate
}

func NewAPILinkService(linkStore store.APILinkStore, gate access.Gate) APILinkService {
	return &apiLinkService{linkStore: linkStore, gate: gate}
}

func (s *apiLinkService) List(ctx context.Context, userID, workspaceID int64) ([]model.APILink, error) {
	a, err := s.gate.CanAccess(ctx, userID, workspaceID)
	if err != nil {
		return nil, err
	}
	if !a.Allowed {
		return nil, access.ErrForbidden
	}
	links, err := s.linkStore.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("listing api links: %w", err)
	}
	return links, nil
}

func (s *apiLinkService) Create(ctx context.Context, userID, workspaceID int64, in APILinkInput) (*model.APILink, error) {
	if _, err := s.gate.RequireManage(ctx, userID, workspaceID); err != nil {
		return nil, err
	}
	if err := validateLink(&in); err != nil {
		return nil, err
	}

	link := &model.APILink{
		ID:          id.New(),
		WorkspaceID: workspaceID,
		Name:        in.Name,
		URL:         in.URL,
		Description: in.Description,
	}
	if err := s.linkStore.Create(ctx, link); err != nil {
		return nil, fmt.Errorf("creating api link: %w", err)
	}

	slog.InfoContext(ctx, "api link created", "workspace_id", workspaceID, "link_id", link.ID)
	return link, nil
}

func (s *apiLinkService) Update(ctx context.Context, userID, workspaceID, linkID int64, in APILinkInput) (*model.APILink, error) {
	if _, err := s.gate.RequireManage(ctx, userID, workspaceID); err != nil {
		return nil, err
	}
	link, err := apiLinkInWorkspace(ctx, s.linkStore, workspaceID, linkID)
	if err != nil {
		return nil, err
	}
	if err := validateLink(&in); err != nil {
		return nil, err
	}

	link.Name = in.Name
	link.URL = in.URL
	link.Description = in.Description
	if err := s.linkStore.Update(ctx, link); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAPILinkNotFound
		}
		return nil, fmt.Errorf("updating api link: %w", err)
	}
	return link, nil
}

func (s *apiLinkService) Delete(ctx context.Context, userID, workspaceID, linkID int64) error {
	if _, err := s.gate.RequireManage(ctx, userID, workspaceID); err != nil {
		return err
	}
	if _, err := apiLinkInWorkspace(ctx, s.linkStore, workspaceID, linkID); err != nil {
		return err
	}
	if err := s.linkStore.Delete(ctx, linkID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAPILinkNotFound
		}
		return fmt.Errorf("deleting api link: %w", err)
	}
	return nil
}

func validateLink(in *APILinkInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.URL = strings.TrimSpace(in.URL)
	if in.Name == "" {
		return ErrNameRequired
	}
	u, err := url.Parse(in.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidURL
	}
	return nil
}

func apiLinkInWorkspace(ctx context.Context, links store.APILinkStore, workspaceID, linkID int64) (*model.APILink, error) {
	link, err := links.GetByID(ctx, linkID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAPILinkNotFound
		}
		return nil, fmt.Errorf("getting api link: %w", err)
	}
	if link.WorkspaceID != workspaceID {
		return nil, ErrAPILinkNotFound
	}
	return link, nil
}
