package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"fluxera.app/api/common/id"
	"fluxera.app/api/common/logger"
	"fluxera.app/api/common/markdown"
	"fluxera.app/api/internal/access"
	"fluxera.app/api/internal/docgen"
	"fluxera.app/api/internal/model"
	"fluxera.app/api/internal/source"
	"fluxera.app/api/internal/store"
)

var (
	ErrArtifactNotFound      = fmt.Errorf("artifact %w", ErrNotFound)
	ErrNoSourceConfigured    = errors.New("artifact has no source api configured")
	ErrTechnicalNameRequired = errors.New("technical name is required")
	ErrInstructionRequired   = errors.New("instruction is required")
)

type CreateArtifactInput struct {
	Name          string
	TechnicalName string
	SourceAPIID   int64
	FeatureID     *int64
}

type ArtifactService interface {
	List(ctx context.Context, userID, workspaceID int64) ([]model.Artifact, error)
	Get(ctx context.Context, userID, workspaceID, artifactID int64) (*model.Artifact, error)
	Create(ctx context.Context, userID, workspaceID int64, in CreateArtifactInput) (*model.Artifact, error)
	// Refresh re-fetches the payload from the stored source URL and replaces data only.
	Refresh(ctx context.Context, userID, workspaceID, artifactID int64) (*model.Artifact, error)
	Delete(ctx context.Context, userID, workspaceID, artifactID int64) error
	GenerateDocumentation(ctx context.Context, userID, workspaceID, artifactID int64) (*model.Artifact, error)
	// UpdateDocumentation applies a chat instruction to the documentation. An
	// empty current text falls back to the stored documentation.
	UpdateDocumentation(ctx context.Context, userID, workspaceID, artifactID int64, current, instruction string) (*model.Artifact, error)
	DocumentationBlocks(ctx context.Context, userID, workspaceID, artifactID int64) ([]markdown.Block, error)
}

type artifactService struct {
	artifactStore store.ArtifactStore
	linkStore     store.APILinkStore
	featureStore  store.FeatureStore
	projectStore  store.ProjectStore
	gate          access.Gate
	fetcher       source.Fetcher
	docs          docgen.Generator
}

func NewArtifactService(
	artifactStore store.ArtifactStore,
	linkStore store.APILinkStore,
	featureStore store.FeatureStore,
	projectStore store.ProjectStore,
	gate access.Gate,
	fetcher source.Fetcher,
	docs docgen.Generator,
) ArtifactService {
	return &artifactService{
		artifactStore: artifactStore,
		linkStore:     linkStore,
		featureStore:  featureStore,
		projectStore:  projectStore,
		gate:          gate,
		fetcher:       fetcher,
		docs:          docs,
	}
}

func (s *artifactService) List(ctx context.Context, userID, workspaceID int64) ([]model.Artifact, error) {
	if _, err := s.gate.Authorize(ctx, userID, workspaceID, model.ResourceArtifact, model.VerbGet); err != nil {
		return nil, err
	}
	artifacts, err := s.artifactStore.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("listing artifacts: %w", err)
	}
	return artifacts, nil
}

func (s *artifactService) Get(ctx context.Context, userID, workspaceID, artifactID int64) (*model.Artifact, error) {
	if _, err := s.gate.Authorize(ctx, userID, workspaceID, model.ResourceArtifact, model.VerbGet); err != nil {
		return nil, err
	}
	return s.get(ctx, workspaceID, artifactID)
}

func (s *artifactService) Create(ctx context.Context, userID, workspaceID int64, in CreateArtifactInput) (*model.Artifact, error) {
	if _, err := s.gate.Authorize(ctx, userID, workspaceID, model.ResourceArtifact, model.VerbPost); err != nil {
		return nil, err
	}
	ctx = logger.WithLogFields(ctx, logger.LogFields{WorkspaceID: &workspaceID, Component: "fluxera.artifact"})

	name := strings.TrimSpace(in.Name)
	technicalName := strings.TrimSpace(in.TechnicalName)
	if name == "" {
		return nil, ErrNameRequired
	}
	if technicalName == "" {
		return nil, ErrTechnicalNameRequired
	}

	link, err := apiLinkInWorkspace(ctx, s.linkStore, workspaceID, in.SourceAPIID)
	if err != nil {
		return nil, err
	}
	if in.FeatureID != nil {
		if err := s.checkFeature(ctx, workspaceID, *in.FeatureID); err != nil {
			return nil, err
		}
	}

	data, err := s.fetcher.Fetch(ctx, link.URL, technicalName)
	if err != nil {
		return nil, err
	}

	apiURL := link.URL
	artifact := &model.Artifact{
		ID:            id.New(),
		WorkspaceID:   workspaceID,
		FeatureID:     in.FeatureID,
		Name:          name,
		TechnicalName: technicalName,
		Data:          data,
		APIURL:        &apiURL,
	}
	if err := s.artifactStore.Create(ctx, artifact); err != nil {
		return nil, fmt.Errorf("creating artifact: %w", err)
	}

	slog.InfoContext(ctx, "artifact created",
		"artifact_id", artifact.ID,
		"technical_name", technicalName,
		"bytes", len(data),
	)
	return artifact, nil
}

func (s *artifactService) Refresh(ctx context.Context, userID, workspaceID, artifactID int64) (*model.Artifact, error) {
	if _, err := s.gate.Authorize(ctx, userID, workspaceID, model.ResourceArtifact, model.VerbPut); err != nil {
		return nil, err
	}
	ctx = logger.WithLogFields(ctx, logger.LogFields{WorkspaceID: &workspaceID, ArtifactID: &artifactID, Component: "fluxera.artifact"})

	artifact, err := s.get(ctx, workspaceID, artifactID)
	if err != nil {
		return nil, err
	}
	if !artifact.HasSource() {
		return nil, ErrNoSourceConfigured
	}

	data, err := s.fetcher.Fetch(ctx, *artifact.APIURL, artifact.TechnicalName)
	if err != nil {
		return nil, err
	}

	updated, err := s.artifactStore.UpdateData(ctx, artifactID, data)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrArtifactNotFound
		}
		return nil, fmt.Errorf("updating artifact data: %w", err)
	}

	slog.InfoContext(ctx, "artifact refreshed", "bytes", len(data))
	return updated, nil
}

func (s *artifactService) Delete(ctx context.Context, userID, workspaceID, artifactID int64) error {
	if _, err := s.gate.Authorize(ctx, userID, workspaceID, model.ResourceArtifact, model.VerbDelete); err != nil {
		return err
	}
	if _, err := s.get(ctx, workspaceID, artifactID); err != nil {
		return err
	}
	if err := s.artifactStore.Delete(ctx, artifactID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrArtifactNotFound
		}
		return fmt.Errorf("deleting artifact: %w", err)
	}

	slog.InfoContext(ctx, "artifact deleted", "workspace_id", workspaceID, "artifact_id", artifactID)
	return nil
}

func (s *artifactService) GenerateDocumentation(ctx context.Context, userID, workspaceID, artifactID int64) (*model.Artifact, error) {
	if _, err := s.gate.Authorize(ctx, userID, workspaceID, model.ResourceArtifact, model.VerbPut); err != nil {
		return nil, err
	}
	artifact, err := s.get(ctx, workspaceID, artifactID)
	if err != nil {
		return nil, err
	}

	// Generation outlives the request: a client that stops waiting does not abort it.
	ctx = logger.WithLogFields(context.WithoutCancel(ctx), logger.LogFields{
		WorkspaceID: &workspaceID,
		ArtifactID:  &artifactID,
		Component:   "fluxera.docgen",
	})

	text, err := s.docs.Generate(ctx, artifact.Data, artifact.Name)
	if err != nil {
		slog.ErrorContext(ctx, "documentation generation failed", "error", err)
		return nil, err
	}
	return s.saveDocumentation(ctx, artifactID, text)
}

func (s *artifactService) UpdateDocumentation(ctx context.Context, userID, workspaceID, artifactID int64, current, instruction string) (*model.Artifact, error) {
	if _, err := s.gate.Authorize(ctx, userID, workspaceID, model.ResourceArtifact, model.VerbPut); err != nil {
		return nil, err
	}
	instruction = strings.TrimSpace(instruction)
	if instruction == "" {
		return nil, ErrInstructionRequired
	}
	artifact, err := s.get(ctx, workspaceID, artifactID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(current) == "" && artifact.Documentation != nil {
		current = *artifact.Documentation
	}

	ctx = logger.WithLogFields(context.WithoutCancel(ctx), logger.LogFields{
		WorkspaceID: &workspaceID,
		ArtifactID:  &artifactID,
		Component:   "fluxera.docgen",
	})

	text, err := s.docs.Update(ctx, artifact.Data, artifact.Name, current, instruction)
	if err != nil {
		slog.ErrorContext(ctx, "documentation update failed", "error", err)
		return nil, err
	}
	return s.saveDocumentation(ctx, artifactID, text)
}

func (s *artifactService) DocumentationBlocks(ctx context.Context, userID, workspaceID, artifactID int64) ([]markdown.Block, error) {
	artifact, err := s.Get(ctx, userID, workspaceID, artifactID)
	if err != nil {
		return nil, err
	}
	if artifact.DocumentationState() == model.DocumentationAbsent {
		return []markdown.Block{}, nil
	}
	return markdown.Parse(*artifact.Documentation), nil
}

func (s *artifactService) saveDocumentation(ctx context.Context, artifactID int64, text string) (*model.Artifact, error) {
	updated, err := s.artifactStore.UpdateDocumentation(ctx, artifactID, text)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrArtifactNotFound
		}
		return nil, fmt.Errorf("saving documentation: %w", err)
	}
	slog.InfoContext(ctx, "documentation saved", "chars", len(text))
	return updated, nil
}

func (s *artifactService) get(ctx context.Context, workspaceID, artifactID int64) (*model.Artifact, error) {
	artifact, err := s.artifactStore.GetByID(ctx, artifactID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrArtifactNotFound
		}
		return nil, fmt.Errorf("getting artifact: %w", err)
	}
	if artifact.WorkspaceID != workspaceID {
		return nil, ErrArtifactNotFound
	}
	return artifact, nil
}

func (s *artifactService) checkFeature(ctx context.Context, workspaceID, featureID int64) error {
	feature, err := s.featureStore.GetByID(ctx, featureID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrFeatureNotFound
		}
		return fmt.Errorf("getting feature: %w", err)
	}
	_, err = projectInWorkspace(ctx, s.projectStore, workspaceID, feature.ProjectID)
	if errors.Is(err, ErrProjectNotFound) {
		return ErrFeatureNotFound
	}
	return err
}
