package store

import (
	"context"
	"encoding/json"
	"errors"

	"fluxera.app/api/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when a write violates a uniqueness constraint
var ErrDuplicate = errors.New("duplicate")

// UserStore defines the contract for user data access
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	Upsert(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
}

// SessionStore defines the contract for session data access
type SessionStore interface {
	Create(ctx context.Context, session *model.Session) error
	GetValidByToken(ctx context.Context, token string) (*model.Session, error) // checks expiry
	DeleteByToken(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

// WorkspaceStore defines the contract for workspace data access
type WorkspaceStore interface {
	GetByID(ctx context.Context, id int64) (*model.Workspace, error)
	Create(ctx context.Context, ws *model.Workspace) error
	Update(ctx context.Context, ws *model.Workspace) error
	Delete(ctx context.Context, id int64) error // cascades to everything the workspace owns
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Workspace, error)
	ListByMember(ctx context.Context, userID int64) ([]model.Workspace, error)
}

// MemberStore defines the contract for workspace membership data access
type MemberStore interface {
	GetByID(ctx context.Context, id int64) (*model.WorkspaceMember, error)
	GetByWorkspaceAndUser(ctx context.Context, workspaceID, userID int64) (*model.WorkspaceMember, error)
	Create(ctx context.Context, member *model.WorkspaceMember) error // ErrDuplicate on (workspace, user) collision
	UpdateRole(ctx context.Context, id int64, roleID *int64) (*model.WorkspaceMember, error)
	Delete(ctx context.Context, id int64) error
	ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.WorkspaceMember, error)
}

// RoleStore defines the contract for role data access
type RoleStore interface {
	GetByID(ctx context.Context, id int64) (*model.Role, error)
	Create(ctx context.Context, role *model.Role) error
	Update(ctx context.Context, role *model.Role) error
	Delete(ctx context.Context, id int64) error
	ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.Role, error)
}

// ProjectStore defines the contract for project data access
type ProjectStore interface {
	GetByID(ctx context.Context, id int64) (*model.Project, error)
	Create(ctx context.Context, project *model.Project) error
	Update(ctx context.Context, project *model.Project) error
	Delete(ctx context.Context, id int64) error
	ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.Project, error)
}

// FeatureStore defines the contract for feature data access
type FeatureStore interface {
	GetByID(ctx context.Context, id int64) (*model.Feature, error)
	Create(ctx context.Context, feature *model.Feature) error
	Update(ctx context.Context, feature *model.Feature) error
	Delete(ctx context.Context, id int64) error
	ListByProject(ctx context.Context, projectID int64) ([]model.Feature, error)
}

// APILinkStore defines the contract for external API link data access
type APILinkStore interface {
	GetByID(ctx context.Context, id int64) (*model.APILink, error)
	Create(ctx context.Context, link *model.APILink) error
	Update(ctx context.Context, link *model.APILink) error
	Delete(ctx context.Context, id int64) error
	ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.APILink, error)
}

// ArtifactStore defines the contract for artifact data access
type ArtifactStore interface {
	GetByID(ctx context.Context, id int64) (*model.Artifact, error)
	Create(ctx context.Context, artifact *model.Artifact) error
	UpdateData(ctx context.Context, id int64, data json.RawMessage) (*model.Artifact, error)
	UpdateDocumentation(ctx context.Context, id int64, documentation string) (*model.Artifact, error)
	Delete(ctx context.Context, id int64) error
	ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.Artifact, error)
}
