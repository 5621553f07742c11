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

var ErrProjectNotFound = fmt.Errorf("project %w", ErrNotFound)

type ProjectInput struct {
	Title    string
	Closed   bool
	Obsolete bool
}

type ProjectService interface {
	List(ctx context.Context, userID, workspaceID int64) ([]model.Project, error)
	Get(ctx context.Context, userID, workspaceID, projectID int64) (*model.Project, error)
	Create(ctx context.Context, userID, workspaceID int64, in ProjectInput) (*model.Project, error)
	Update(ctx context.Context, userID, workspaceID, projectID int64, in ProjectInput) (*model.Project, error)
	Delete(ctx context.Context, userID, workspaceID, projectID int64) error
}

type projectService struct {
	projectStore store.ProjectStore
	gate         access.Gate
}

func NewProjectService(projectStore store.ProjectStore, gate access.Gate) ProjectService {
	return &projectService{projectStore: projectStore, gate: gate}
}

func (s *projectService) List(ctx context.Context, userID, workspaceID int64) ([]model.Project, error) {
	if _, err := s.gate.Authorize(ctx, userID, workspaceID, model.ResourceProject, model.VerbGet); err != nil {
		return nil, err
	}
	projects, err := s.projectStore.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	return projects, nil
}

func (s *projectService) Get(ctx context.Context, userID, workspaceID, projectID int64) (*model.Project, error) {
	if _, err := s.gate.Authorize(ctx, userID, workspaceID, model.ResourceProject, model.VerbGet); err != nil {
		return nil, err
	}
	return projectInWorkspace(ctx, s.projectStore, workspaceID, projectID)
}

func (s *projectService) Create(ctx context.Context, userID, workspaceID int64, in ProjectInput) (*model.Project, error) {
	if _, err := s.gate.Authorize(ctx, userID, workspaceID, model.ResourceProject, model.VerbPost); err != nil {
		return nil, err
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	project := &model.Project{
		ID:          id.New(),
		WorkspaceID: workspaceID,
		Title:       title,
		Closed:      in.Closed,
		Obsolete:    in.Obsolete,
	}
	if err := s.projectStore.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	slog.InfoContext(ctx, "project created", "workspace_id", workspaceID, "project_id", project.ID)
	return project, nil
}

func (s *projectService) Update(ctx context.Context, userID, workspaceID, projectID int64, in ProjectInput) (*model.Project, error) {
	if _, err := s.gate.Authorize(ctx, userID, workspaceID, model.ResourceProject, model.VerbPut); err != nil {
		return nil, err
	}
	project, err := projectInWorkspace(ctx, s.projectStore, workspaceID, projectID)
	if err != nil {
		return nil, err
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	project.Title = title
	project.Closed = in.Closed
	project.Obsolete = in.Obsolete
	if err := s.projectStore.Update(ctx, project); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("updating project: %w", err)
	}
	return project, nil
}

func (s *projectService) Delete(ctx context.Context, userID, workspaceID, projectID int64) error {
	if _, err := s.gate.Authorize(ctx, userID, workspaceID, model.ResourceProject, model.VerbDelete); err != nil {
		return err
	}
	if _, err := projectInWorkspace(ctx, s.projectStore, workspaceID, projectID); err != nil {
		return err
	}
	if err := s.projectStore.Delete(ctx, projectID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("deleting project: %w", err)
	}

	slog.InfoContext(ctx, "project deleted", "workspace_id", workspaceID, "project_id", projectID)
	return nil
}

func projectInWorkspace(ctx context.Context, projects store.ProjectStore, workspaceID, projectID int64) (*model.Project, error) {
	project, err := projects.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	if project.WorkspaceID != workspaceID {
		return nil, ErrProjectNotFound
	}
	return project, nil
}
