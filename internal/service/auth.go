package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"fluxera.app/api/common/id"
	"fluxera.app/api/internal/cache"
	"fluxera.app/api/internal/model"
	"fluxera.app/api/internal/store"
)

var (
	ErrInvalidCode        = errors.New("invalid authorization code")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = fmt.Errorf("user %w", ErrNotFound)
	ErrSessionExpired     = errors.New("session expired")
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*model.User, *model.Session, error)
	Login(ctx context.Context, email, password string) (*model.User, *model.Session, error)
	GetAuthorizationURL(state string) (string, error)
	HandleCallback(ctx context.Context, code string) (*model.User, *model.Session, error)
	ValidateSession(ctx context.Context, token string) (*model.User, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	userStore       store.UserStore
	sessionStore    store.SessionStore
	txRunner        TxRunner
	identity        IdentityProvider
	sessionCache    cache.SessionCache
	sessionLifetime time.Duration
}

func NewAuthService(
	userStore store.UserStore,
	sessionStore store.SessionStore,
	txRunner TxRunner,
	identity IdentityProvider,
	sessionCache cache.SessionCache,
	sessionLifetime time.Duration,
) AuthService {
	return &authService{
		userStore:       userStore,
		sessionStore:    sessionStore,
		txRunner:        txRunner,
		identity:        identity,
		sessionCache:    sessionCache,
		sessionLifetime: sessionLifetime,
	}
}

// Register checks the local users table before touching the identity provider,
// so an existing email is reported as a conflict without creating a remote user.
func (s *authService) Register(ctx context.Context, name, email, password string) (*model.User, *model.Session, error) {
	email = normalizeEmail(email)
	name = strings.TrimSpace(name)

	_, err := s.userStore.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, nil, ErrEmailTaken
	case !errors.Is(err, store.ErrNotFound):
		return nil, nil, fmt.Errorf("checking email: %w", err)
	}

	providerUser, err := s.identity.SignUp(ctx, email, password, name)
	if err != nil {
		slog.ErrorContext(ctx, "identity provider rejected sign up", "error", err, "email", email)
		return nil, nil, err
	}

	user := &model.User{
		ID:       id.New(),
		Name:     name,
		Email:    email,
		WorkOSID: &providerUser.ID,
	}
	if err := s.provision(ctx, user); err != nil {
		return nil, nil, err
	}

	session, err := s.startSession(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	slog.InfoContext(ctx, "user registered", "user_id", user.ID, "email", user.Email)
	return user, session, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*model.User, *model.Session, error) {
	email = normalizeEmail(email)

	providerUser, err := s.identity.SignIn(ctx, email, password)
	if err != nil {
		slog.InfoContext(ctx, "sign in rejected", "email", email, "error", err)
		return nil, nil, ErrInvalidCredentials
	}

	user, err := s.findOrProvision(ctx, providerUser)
	if err != nil {
		return nil, nil, err
	}

	session, err := s.startSession(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	slog.InfoContext(ctx, "user logged in", "user_id", user.ID, "session_id", session.ID)
	return user, session, nil
}

func (s *authService) GetAuthorizationURL(state string) (string, error) {
	return s.identity.AuthorizationURL(state)
}

func (s *authService) HandleCallback(ctx context.Context, code string) (*model.User, *model.Session, error) {
	providerUser, err := s.identity.ExchangeCode(ctx, code)
	if err != nil {
		slog.ErrorContext(ctx, "failed to authenticate with code", "error", err)
		return nil, nil, ErrInvalidCode
	}

	user, err := s.findOrProvision(ctx, providerUser)
	if err != nil {
		return nil, nil, err
	}

	session, err := s.startSession(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	slog.InfoContext(ctx, "user authenticated",
		"user_id", user.ID,
		"email", user.Email,
		"session_id", session.ID,
	)
	return user, session, nil
}

func (s *authService) ValidateSession(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, ErrSessionExpired
	}

	if s.sessionCache != nil {
		user, err := s.sessionCache.Get(ctx, token)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			slog.WarnContext(ctx, "session cache unavailable", "error", err)
		}
	}

	session, err := s.sessionStore.GetValidByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("getting session: %w", err)
	}

	user, err := s.userStore.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}

	if s.sessionCache != nil {
		if err := s.sessionCache.Set(ctx, token, user, session.ExpiresAt); err != nil {
			slog.WarnContext(ctx, "failed to cache session", "error", err)
		}
	}

	return user, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if s.sessionCache != nil {
		if err := s.sessionCache.Delete(ctx, token); err != nil {
			slog.WarnContext(ctx, "failed to evict cached session", "error", err)
		}
	}
	if err := s.sessionStore.DeleteByToken(ctx, token); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

// findOrProvision returns the local user for a provider identity, creating the
// user and their personal workspace on first sight.
func (s *authService) findOrProvision(ctx context.Context, providerUser *ProviderUser) (*model.User, error) {
	email := normalizeEmail(providerUser.Email)

	user, err := s.userStore.GetByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	user = &model.User{
		ID:       id.New(),
		Name:     providerUser.DisplayName(),
		Email:    email,
		WorkOSID: &providerUser.ID,
	}
	if err := s.provision(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// provision creates the user together with their personal workspace.
func (s *authService) provision(ctx context.Context, user *model.User) error {
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		if err := stores.Users().Create(ctx, user); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				return ErrEmailTaken
			}
			return fmt.Errorf("creating user: %w", err)
		}

		ws := &model.Workspace{
			ID:      id.New(),
			Title:   model.PersonalWorkspaceTitle(user.Name),
			OwnerID: user.ID,
		}
		if err := stores.Workspaces().Create(ctx, ws); err != nil {
			return fmt.Errorf("creating personal workspace: %w", err)
		}
		return nil
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to provision user", "error", err, "email", user.Email)
		return err
	}
	return nil
}

func (s *authService) startSession(ctx context.Context, user *model.User) (*model.Session, error) {
	session, err := newSession(user.ID, s.sessionLifetime)
	if err != nil {
		return nil, err
	}
	if err := s.sessionStore.Create(ctx, session); err != nil {
		slog.ErrorContext(ctx, "failed to create session", "error", err, "user_id", user.ID)
		return nil, fmt.Errorf("creating session: %w", err)
	}
	return session, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
