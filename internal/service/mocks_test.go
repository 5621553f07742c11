package service_test

import (
	"context"
	"encoding/json"
	"time"

	"fluxera.app/api/internal/cache"
	"fluxera.app/api/internal/model"
	"fluxera.app/api/internal/service"
	"fluxera.app/api/internal/store"
)

type mockUserStore struct {
	getByIDFn    func(ctx context.Context, id int64) (*model.User, error)
	getByEmailFn func(ctx context.Context, email string) (*model.User, error)
	createFn     func(ctx context.Context, user *model.User) error
	upsertFn     func(ctx context.Context, user *model.User) error
	updateFn     func(ctx context.Context, user *model.User) error
	createCalls  int
}

func (m *mockUserStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, store.ErrNotFound
}

func (m *mockUserStore) Create(ctx context.Context, user *model.User) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserStore) Upsert(ctx context.Context, user *model.User) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, user)
	}
	return nil
}

func (m *mockUserStore) Update(ctx context.Context, user *model.User) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, user)
	}
	return nil
}

type mockSessionStore struct {
	createFn          func(ctx context.Context, session *model.Session) error
	getValidByTokenFn func(ctx context.Context, token string) (*model.Session, error)
	deleteByTokenFn   func(ctx context.Context, token string) error
	created           []*model.Session
}

func (m *mockSessionStore) Create(ctx context.Context, session *model.Session) error {
	m.created = append(m.created, session)
	if m.createFn != nil {
		return m.createFn(ctx, session)
	}
	return nil
}

func (m *mockSessionStore) GetValidByToken(ctx context.Context, token string) (*model.Session, error) {
	if m.getValidByTokenFn != nil {
		return m.getValidByTokenFn(ctx, token)
	}
	return nil, store.ErrNotFound
}

func (m *mockSessionStore) DeleteByToken(ctx context.Context, token string) error {
	if m.deleteByTokenFn != nil {
		return m.deleteByTokenFn(ctx, token)
	}
	return nil
}

func (m *mockSessionStore) DeleteExpired(context.Context) (int64, error) {
	return 0, nil
}

type mockWorkspaceStore struct {
	getByIDFn      func(ctx context.Context, id int64) (*model.Workspace, error)
	createFn       func(ctx context.Context, ws *model.Workspace) error
	updateFn       func(ctx context.Context, ws *model.Workspace) error
	deleteFn       func(ctx context.Context, id int64) error
	listByOwnerFn  func(ctx context.Context, ownerID int64) ([]model.Workspace, error)
	listByMemberFn func(ctx context.Context, userID int64) ([]model.Workspace, error)
	createCalls    int
}

func (m *mockWorkspaceStore) GetByID(ctx context.Context, id int64) (*model.Workspace, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockWorkspaceStore) Create(ctx context.Context, ws *model.Workspace) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, ws)
	}
	return nil
}

func (m *mockWorkspaceStore) Update(ctx context.Context, ws *model.Workspace) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, ws)
	}
	return nil
}

func (m *mockWorkspaceStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockWorkspaceStore) ListByOwner(ctx context.Context, ownerID int64) ([]model.Workspace, error) {
	if m.listByOwnerFn != nil {
		return m.listByOwnerFn(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockWorkspaceStore) ListByMember(ctx context.Context, userID int64) ([]model.Workspace, error) {
	if m.listByMemberFn != nil {
		return m.listByMemberFn(ctx, userID)
	}
	return nil, nil
}

type mockMemberStore struct {
	getByIDFn               func(ctx context.Context, id int64) (*model.WorkspaceMember, error)
	getByWorkspaceAndUserFn func(ctx context.Context, workspaceID, userID int64) (*model.WorkspaceMember, error)
	createFn                func(ctx context.Context, member *model.WorkspaceMember) error
	updateRoleFn            func(ctx context.Context, id int64, roleID *int64) (*model.WorkspaceMember, error)
	deleteFn                func(ctx context.Context, id int64) error
	listByWorkspaceFn       func(ctx context.Context, workspaceID int64) ([]model.WorkspaceMember, error)
	createCalls             int
}

func (m *mockMemberStore) GetByID(ctx context.Context, id int64) (*model.WorkspaceMember, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockMemberStore) GetByWorkspaceAndUser(ctx context.Context, workspaceID, userID int64) (*model.WorkspaceMember, error) {
	if m.getByWorkspaceAndUserFn != nil {
		return m.getByWorkspaceAndUserFn(ctx, workspaceID, userID)
	}
	return nil, store.ErrNotFound
}

func (m *mockMemberStore) Create(ctx context.Context, member *model.WorkspaceMember) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, member)
	}
	return nil
}

func (m *mockMemberStore) UpdateRole(ctx context.Context, id int64, roleID *int64) (*model.WorkspaceMember, error) {
	if m.updateRoleFn != nil {
		return m.updateRoleFn(ctx, id, roleID)
	}
	return &model.WorkspaceMember{ID: id, RoleID: roleID}, nil
}

func (m *mockMemberStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockMemberStore) ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.WorkspaceMember, error) {
	if m.listByWorkspaceFn != nil {
		return m.listByWorkspaceFn(ctx, workspaceID)
	}
	return nil, nil
}

type mockRoleStore struct {
	getByIDFn         func(ctx context.Context, id int64) (*model.Role, error)
	createFn          func(ctx context.Context, role *model.Role) error
	updateFn          func(ctx context.Context, role *model.Role) error
	deleteFn          func(ctx context.Context, id int64) error
	listByWorkspaceFn func(ctx context.Context, workspaceID int64) ([]model.Role, error)
}

func (m *mockRoleStore) GetByID(ctx context.Context, id int64) (*model.Role, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockRoleStore) Create(ctx context.Context, role *model.Role) error {
	if m.createFn != nil {
		return m.createFn(ctx, role)
	}
	return nil
}

func (m *mockRoleStore) Update(ctx context.Context, role *model.Role) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, role)
	}
	return nil
}

func (m *mockRoleStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockRoleStore) ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.Role, error) {
	if m.listByWorkspaceFn != nil {
		return m.listByWorkspaceFn(ctx, workspaceID)
	}
	return nil, nil
}

type mockProjectStore struct {
	getByIDFn func(ctx context.Context, id int64) (*model.Project, error)
	createFn  func(ctx context.Context, project *model.Project) error
	updateFn  func(ctx context.Context, project *model.Project) error
	deleteFn  func(ctx context.Context, id int64) error
	listFn    func(ctx context.Context, workspaceID int64) ([]model.Project, error)
}

func (m *mockProjectStore) GetByID(ctx context.Context, id int64) (*model.Project, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockProjectStore) Create(ctx context.Context, project *model.Project) error {
	if m.createFn != nil {
		return m.createFn(ctx, project)
	}
	return nil
}

func (m *mockProjectStore) Update(ctx context.Context, project *model.Project) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, project)
	}
	return nil
}

func (m *mockProjectStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockProjectStore) ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.Project, error) {
	if m.listFn != nil {
		return m.listFn(ctx, workspaceID)
	}
	return nil, nil
}

type mockFeatureStore struct {
	getByIDFn func(ctx context.Context, id int64) (*model.Feature, error)
	createFn  func(ctx context.Context, feature *model.Feature) error
	updateFn  func(ctx context.Context, feature *model.Feature) error
	deleteFn  func(ctx context.Context, id int64) error
	listFn    func(ctx context.Context, projectID int64) ([]model.Feature, error)
}

func (m *mockFeatureStore) GetByID(ctx context.Context, id int64) (*model.Feature, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockFeatureStore) Create(ctx context.Context, feature *model.Feature) error {
	if m.createFn != nil {
		return m.createFn(ctx, feature)
	}
	return nil
}

func (m *mockFeatureStore) Update(ctx context.Context, feature *model.Feature) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, feature)
	}
	return nil
}

func (m *mockFeatureStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockFeatureStore) ListByProject(ctx context.Context, projectID int64) ([]model.Feature, error) {
	if m.listFn != nil {
		return m.listFn(ctx, projectID)
	}
	return nil, nil
}

type mockAPILinkStore struct {
	getByIDFn func(ctx context.Context, id int64) (*model.APILink, error)
	createFn  func(ctx context.Context, link *model.APILink) error
	updateFn  func(ctx context.Context, link *model.APILink) error
	deleteFn  func(ctx context.Context, id int64) error
	listFn    func(ctx context.Context, workspaceID int64) ([]model.APILink, error)
}

func (m *mockAPILinkStore) GetByID(ctx context.Context, id int64) (*model.APILink, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockAPILinkStore) Create(ctx context.Context, link *model.APILink) error {
	if m.createFn != nil {
		return m.createFn(ctx, link)
	}
	return nil
}

func (m *mockAPILinkStore) Update(ctx context.Context, link *model.APILink) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, link)
	}
	return nil
}

func (m *mockAPILinkStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockAPILinkStore) ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.APILink, error) {
	if m.listFn != nil {
		return m.listFn(ctx, workspaceID)
	}
	return nil, nil
}

type mockArtifactStore struct {
	getByIDFn             func(ctx context.Context, id int64) (*model.Artifact, error)
	createFn              func(ctx context.Context, artifact *model.Artifact) error
	updateDataFn          func(ctx context.Context, id int64, data json.RawMessage) (*model.Artifact, error)
	updateDocumentationFn func(ctx context.Context, id int64, documentation string) (*model.Artifact, error)
	deleteFn              func(ctx context.Context, id int64) error
	listFn                func(ctx context.Context, workspaceID int64) ([]model.Artifact, error)
	createCalls           int
}

func (m *mockArtifactStore) GetByID(ctx context.Context, id int64) (*model.Artifact, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockArtifactStore) Create(ctx context.Context, artifact *model.Artifact) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, artifact)
	}
	return nil
}

func (m *mockArtifactStore) UpdateData(ctx context.Context, id int64, data json.RawMessage) (*model.Artifact, error) {
	if m.updateDataFn != nil {
		return m.updateDataFn(ctx, id, data)
	}
	return &model.Artifact{ID: id, Data: data}, nil
}

func (m *mockArtifactStore) UpdateDocumentation(ctx context.Context, id int64, documentation string) (*model.Artifact, error) {
	if m.updateDocumentationFn != nil {
		return m.updateDocumentationFn(ctx, id, documentation)
	}
	return &model.Artifact{ID: id, Documentation: &documentation}, nil
}

func (m *mockArtifactStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockArtifactStore) ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.Artifact, error) {
	if m.listFn != nil {
		return m.listFn(ctx, workspaceID)
	}
	return nil, nil
}

type mockStoreProvider struct {
	users      *mockUserStore
	sessions   *mockSessionStore
	workspaces *mockWorkspaceStore
	members    *mockMemberStore
	roles      *mockRoleStore
}

func (m *mockStoreProvider) Users() store.UserStore           { return m.users }
func (m *mockStoreProvider) Sessions() store.SessionStore     { return m.sessions }
func (m *mockStoreProvider) Workspaces() store.WorkspaceStore { return m.workspaces }
func (m *mockStoreProvider) Members() store.MemberStore       { return m.members }
func (m *mockStoreProvider) Roles() store.RoleStore           { return m.roles }

type mockTxRunner struct {
	withTxFn func(ctx context.Context, fn func(stores service.StoreProvider) error) error
}

func (m *mockTxRunner) WithTx(ctx context.Context, fn func(stores service.StoreProvider) error) error {
	if m.withTxFn != nil {
		return m.withTxFn(ctx, fn)
	}
	return fn(&mockStoreProvider{})
}

type mockIdentityProvider struct {
	signUpFn       func(ctx context.Context, email, password, name string) (*service.ProviderUser, error)
	signInFn       func(ctx context.Context, email, password string) (*service.ProviderUser, error)
	exchangeCodeFn func(ctx context.Context, code string) (*service.ProviderUser, error)
	signUpCalls    int
}

func (m *mockIdentityProvider) SignUp(ctx context.Context, email, password, name string) (*service.ProviderUser, error) {
	m.signUpCalls++
	if m.signUpFn != nil {
		return m.signUpFn(ctx, email, password, name)
	}
	return &service.ProviderUser{ID: "user_01", Email: email}, nil
}

func (m *mockIdentityProvider) SignIn(ctx context.Context, email, password string) (*service.ProviderUser, error) {
	if m.signInFn != nil {
		return m.signInFn(ctx, email, password)
	}
	return &service.ProviderUser{ID: "user_01", Email: email}, nil
}

func (m *mockIdentityProvider) AuthorizationURL(state string) (string, error) {
	return "https://auth.example.com/authorize?state=" + state, nil
}

func (m *mockIdentityProvider) ExchangeCode(ctx context.Context, code string) (*service.ProviderUser, error) {
	if m.exchangeCodeFn != nil {
		return m.exchangeCodeFn(ctx, code)
	}
	return &service.ProviderUser{ID: "user_01", Email: "sso@example.com", FirstName: "Sso"}, nil
}

type mockSessionCache struct {
	entries map[string]*model.User
	sets    int
}

func newMockSessionCache() *mockSessionCache {
	return &mockSessionCache{entries: map[string]*model.User{}}
}

func (m *mockSessionCache) Get(_ context.Context, token string) (*model.User, error) {
	if u, ok := m.entries[token]; ok {
		return u, nil
	}
	return nil, cache.ErrMiss
}

func (m *mockSessionCache) Set(_ context.Context, token string, user *model.User, _ time.Time) error {
	m.sets++
	m.entries[token] = user
	return nil
}

func (m *mockSessionCache) Delete(_ context.Context, token string) error {
	delete(m.entries, token)
	return nil
}

type mockImageStore struct {
	uploadFn func(ctx context.Context, filename, contentType string, body []byte) (string, error)
	deleted  []string
}

func (m *mockImageStore) Upload(ctx context.Context, filename, contentType string, body []byte) (string, error) {
	if m.uploadFn != nil {
		return m.uploadFn(ctx, filename, contentType, body)
	}
	return "https://store.example.com/storage/v1/object/public/workspace-images/workspaces/" + filename, nil
}

func (m *mockImageStore) Delete(_ context.Context, publicURL string) error {
	m.deleted = append(m.deleted, publicURL)
	return nil
}

type mockFetcher struct {
	fetchFn func(ctx context.Context, baseURL, technicalName string) (json.RawMessage, error)
	calls   int
}

func (m *mockFetcher) Fetch(ctx context.Context, baseURL, technicalName string) (json.RawMessage, error) {
	m.calls++
	if m.fetchFn != nil {
		return m.fetchFn(ctx, baseURL, technicalName)
	}
	return json.RawMessage(`{"ok":true}`), nil
}

type mockGenerator struct {
	generateFn func(ctx context.Context, data json.RawMessage, name string) (string, error)
	updateFn   func(ctx context.Context, data json.RawMessage, name, current, instruction string) (string, error)
}

func (m *mockGenerator) Generate(ctx context.Context, data json.RawMessage, name string) (string, error) {
	if m.generateFn != nil {
		return m.generateFn(ctx, data, name)
	}
	return "OVERVIEW\n- generated", nil
}

func (m *mockGenerator) Update(ctx context.Context, data json.RawMessage, name, current, instruction string) (string, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, data, name, current, instruction)
	}
	return current + "\n- updated", nil
}

func strPtr(s string) *string {
	return &s
}

func int64Ptr(v int64) *int64 {
	return &v
}
