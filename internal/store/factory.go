package store

import (
	"fluxera.app/api/core/db/sqlc"
)

type Stores struct {
	queries *sqlc.Queries
}

func NewStores(queries *sqlc.Queries) *Stores {
	return &Stores{queries: queries}
}

func (s *Stores) Users() UserStore {
	return newUserStore(s.queries)
}

func (s *Stores) Sessions() SessionStore {
	return newSessionStore(s.queries)
}

func (s *Stores) Workspaces() WorkspaceStore {
	return newWorkspaceStore(s.queries)
}

func (s *Stores) Members() MemberStore {
	return newMemberStore(s.queries)
}

func (s *Stores) Roles() RoleStore {
	return newRoleStore(s.queries)
}

func (s *Stores) Projects() ProjectStore {
	return newProjectStore(s.queries)
}

func (s *Stores) Features() FeatureStore {
	return newFeatureStore(s.queries)
}

func (s *Stores) APILinks() APILinkStore {
	return newAPILinkStore(s.queries)
}

func (s *Stores) Artifacts() ArtifactStore {
	return newArtifactStore(s.queries)
}
