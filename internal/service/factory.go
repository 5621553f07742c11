package service

import (
	"fluxera.app/api/core/config"
	"fluxera.app/api/internal/access"
	"fluxera.app/api/internal/cache"
	"fluxera.app/api/internal/docgen"
	"fluxera.app/api/internal/source"
	"fluxera.app/api/internal/storage"
	"fluxera.app/api/internal/store"
)

// Dependencies are the external collaborators services call out to. Images
// and SessionCache may be nil when the backing system is not configured.
type Dependencies struct {
	Identity     IdentityProvider
	SessionCache cache.SessionCache
	Images       storage.ImageStore
	Sources      source.Fetcher
	Docs         docgen.Generator
}

type Services struct {
	stores   *store.Stores
	txRunner TxRunner
	gate     access.Gate
	deps     Dependencies
	cfg      config.Config
}

func NewServices(stores *store.Stores, txRunner TxRunner, deps Dependencies, cfg config.Config) *Services {
	return &Services{
		stores:   stores,
		txRunner: txRunner,
		gate:     access.NewGate(stores.Workspaces(), stores.Members(), stores.Roles()),
		deps:     deps,
		cfg:      cfg,
	}
}

func (s *Services) Auth() AuthService {
	return NewAuthService(
		s.stores.Users(),
		s.stores.Sessions(),
		s.txRunner,
		s.deps.Identity,
		s.deps.SessionCache,
		s.cfg.Session.Lifetime,
	)
}

func (s *Services) Workspaces() WorkspaceService {
	return NewWorkspaceService(s.stores.Workspaces(), s.gate, s.deps.Images, s.cfg.DashboardURL)
}

func (s *Services) Members() MemberService {
	return NewMemberService(s.stores.Members(), s.stores.Users(), s.stores.Roles(), s.gate)
}

func (s *Services) Roles() RoleService {
	return NewRoleService(s.stores.Roles(), s.gate)
}

func (s *Services) Projects() ProjectService {
	return NewProjectService(s.stores.Projects(), s.gate)
}

func (s *Services) Features() FeatureService {
	return NewFeatureService(s.stores.Features(), s.stores.Projects(), s.gate)
}

func (s *Services) APILinks() APILinkService {
	return NewAPILinkService(s.stores.APILinks(), s.gate)
}

func (s *Services) Artifacts() ArtifactService {
	return NewArtifactService(
		s.stores.Artifacts(),
		s.stores.APILinks(),
		s.stores.Features(),
		s.stores.Projects(),
		s.gate,
		s.deps.Sources,
		s.deps.Docs,
	)
}
