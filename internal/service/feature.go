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
	ErrFeatureNotFound   = fmt.Errorf("feature %w", ErrNotFound)
	ErrUserStoryRequired = errors.New("user story is required")
)

// FeatureService manages user stories. Permissions treat features as the task resource.
type FeatureService interface {
	List(ctx context.Context, userID, workspaceID, projectID int64) ([]model.Feature, error)
	Create(ctx context.Context, userID, workspaceID, projectID int64, userStory string) (*model.Feature, error)
	Update(ctx context.Context, userID, workspaceID, projectID, featureID int64, userStory string) (*model.Feature, error)
	Delete(ctx context.Context, userID, workspaceID, projectID, featureID int64) error
}

type featureService struct {
	featureStore store.FeatureStore
	projectStore store.ProjectStore
	gate         access.Gate
}

func NewFeatureService(featureStore store.FeatureStore, projectStore store.ProjectStore, gate access.Gate) FeatureService {
	return &featureService{featureStore: featureStore, projectStore: projectStore, gate: gate}
}

func (s *featureService) List(ctx context.Context, userID, workspaceID, projectID int64) ([]model.Feature, error) {
	if _, err := s.gate.Authorize(ctx, userID, workspaceID, model.ResourceTask, model.VerbGet); err != nil {
		return nil, err
	}
	if _, err := projectInWorkspace(ctx, s.projectStore, workspaceID, projectID); err != nil {
		return nil, err
	}
	features, err := s.featureStore.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing features: %w", err)
	}
	return features, nil
}

func (s *featureService) Create(ctx context.Context, userID, workspaceID, projectID int64, userStory string) (*model.Feature, error) {
	if _, err := s.gate.Authorize(ctx, userID, workspaceID, model.ResourceTask, model.VerbPost); err != nil {
		return nil, err
	}
	if _, err := projectInWorkspace(ctx, s.projectStore, workspaceID, projectID); err != nil {
		return nil, err
	}
	userStory = strings.TrimSpace(userStory)
	if userStory == "" {
		return nil, ErrUserStoryRequired
	}

	feature := &model.Feature{
		ID:        id.New(),
		ProjectID: projectID,
		UserStory: userStory,
	}
	if err := s.featureStore.Create(ctx, feature); err != nil {
		return nil, fmt.Errorf("creating feature: %w", err)
	}

	slog.InfoContext(ctx, "feature created", "project_id", projectID, "feature_id", feature.ID)
	return feature, nil
}

func (s *featureService) Update(ctx context.Context, userID, workspaceID, projectID, featureID int64, userStory string) (*model.Feature, error) {
	if _, err := s.gate.Authorize(ctx, userID, workspaceID, model.ResourceTask, model.VerbPut); err != nil {
		return nil, err
	}
	feature, err := s.get(ctx, workspaceID, projectID, featureID)
	if err != nil {
		return nil, err
	}
	userStory = strings.TrimSpace(userStory)
	if userStory == "" {
		return nil, ErrUserStoryRequired
	}

	feature.UserStory = userStory
	if err := s.featureStore.Update(ctx, feature); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrFeatureNotFound
		}
		return nil, fmt.Errorf("updating feature: %w", err)
	}
	return feature, nil
}

func (s *featureService) Delete(ctx context.Context, userID, workspaceID, projectID, featureID int64) error {
	if _, err := s.gate.Authorize(ctx, userID, workspaceID, model.ResourceTask, model.VerbDelete); err != nil {
		return err
	}
	if _, err := s.get(ctx, workspaceID, projectID, featureID); err != nil {
		return err
	}
	if err := s.featureStore.Delete(ctx, featureID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrFeatureNotFound
		}
		return fmt.Errorf("deleting feature: %w", err)
	}
	return nil
}

func (s *featureService) get(ctx context.Context, workspaceID, projectID, featureID int64) (*model.Feature, error) {
	if _, err := projectInWorkspace(ctx, s.projectStore, workspaceID, projectID); err != nil {
		return nil, err
	}
	feature, err := s.featureStore.GetByID(ctx, featureID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrFeatureNotFound
		}
		return nil, fmt.Errorf("getting feature: %w", err)
	}
	if feature.ProjectID != projectID {
		return nil, ErrFeatureNotFound
	}
	return feature, nil
}
