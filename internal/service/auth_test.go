package service_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"fluxera.app/api/internal/model"
	"fluxera.app/api/internal/service"
	"fluxera.app/api/internal/store"
)

var _ = Describe("AuthService", func() {
	var (
		ctx          context.Context
		users        *mockUserStore
		sessions     *mockSessionStore
		txUsers      *mockUserStore
		txWorkspaces *mockWorkspaceStore
		txRunner     *mockTxRunner
		identity     *mockIdentityProvider
		sessionCache *mockSessionCache
		svc          service.AuthService
	)

	BeforeEach(func() {
		ctx = context.Background()
		users = &mockUserStore{}
		sessions = &mockSessionStore{}
		txUsers = &mockUserStore{}
		txWorkspaces = &mockWorkspaceStore{}
		txRunner = &mockTxRunner{
			withTxFn: func(ctx context.Context, fn func(stores service.StoreProvider) error) error {
				return fn(&mockStoreProvider{users: txUsers, workspaces: txWorkspaces})
			},
		}
		identity = &mockIdentityProvider{}
		sessionCache = newMockSessionCache()
		svc = service.NewAuthService(users, sessions, txRunner, identity, sessionCache, 30*24*time.Hour)
	})

	Describe("Register", func() {
		It("provisions the user with a personal workspace and a session", func() {
			var created *model.Workspace
			txWorkspaces.createFn = func(_ context.Context, ws *model.Workspace) error {
				created = ws
				return nil
			}

			user, session, err := svc.Register(ctx, "Ada Lovelace", "  Ada@Example.com ", "secret-password")

			Expect(err).NotTo(HaveOccurred())
			Expect(user.Email).To(Equal("ada@example.com"))
			Expect(user.Name).To(Equal("Ada Lovelace"))
			Expect(txUsers.createCalls).To(Equal(1))
			Expect(created).NotTo(BeNil())
			Expect(created.OwnerID).To(Equal(user.ID))
			Expect(created.Title).To(Equal("🔒 - Ada Lovelace"))
			Expect(session.UserID).To(Equal(user.ID))
			Expect(session.Token).NotTo(BeEmpty())
			Expect(sessions.created).To(HaveLen(1))
		})

		It("reports a conflict for a known email without calling the provider", func() {
			users.getByEmailFn = func(_ context.Context, email string) (*model.User, error) {
				return &model.User{ID: 9, Email: email}, nil
			}

			_, _, err := svc.Register(ctx, "Ada", "ada@example.com", "secret-password")

			Expect(err).To(MatchError(service.ErrEmailTaken))
			Expect(identity.signUpCalls).To(Equal(0))
			Expect(txUsers.createCalls).To(Equal(0))
		})

		It("does not start a session when provisioning fails", func() {
			txWorkspaces.createFn = func(context.Context, *model.Workspace) error {
				return errors.New("db down")
			}

			_, _, err := svc.Register(ctx, "Ada", "ada@example.com", "secret-password")

			Expect(err).To(HaveOccurred())
			Expect(sessions.created).To(BeEmpty())
		})
	})

	Describe("Login", func() {
		It("maps provider rejection to invalid credentials", func() {
			identity.signInFn = func(context.Context, string, string) (*service.ProviderUser, error) {
				return nil, errors.New("invalid_credentials")
			}

			_, _, err := svc.Login(ctx, "ada@example.com", "wrong")

			Expect(err).To(MatchError(service.ErrInvalidCredentials))
		})

		It("reuses the existing local user", func() {
			users.getByEmailFn = func(_ context.Context, email string) (*model.User, error) {
				return &model.User{ID: 42, Email: email, Name: "Ada"}, nil
			}

			user, session, err := svc.Login(ctx, "ada@example.com", "secret-password")

			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).To(Equal(int64(42)))
			Expect(session.UserID).To(Equal(int64(42)))
			Expect(txUsers.createCalls).To(Equal(0))
		})
	})

	Describe("HandleCallback", func() {
		It("rejects a code the provider cannot exchange", func() {
			identity.exchangeCodeFn = func(context.Context, string) (*service.ProviderUser, error) {
				return nil, errors.New("bad code")
			}

			_, _, err := svc.HandleCallback(ctx, "nope")

			Expect(err).To(MatchError(service.ErrInvalidCode))
		})

		It("provisions a first-time user", func() {
			user, _, err := svc.HandleCallback(ctx, "code")

			Expect(err).NotTo(HaveOccurred())
			Expect(user.Email).To(Equal("sso@example.com"))
			Expect(txUsers.createCalls).To(Equal(1))
		})
	})

	Describe("ValidateSession", func() {
		BeforeEach(func() {
			sessions.getValidByTokenFn = func(_ context.Context, token string) (*model.Session, error) {
				if token != "good" {
					return nil, store.ErrNotFound
				}
				return &model.Session{ID: 1, UserID: 7, Token: token, ExpiresAt: time.Now().Add(time.Hour)}, nil
			}
			users.getByIDFn = func(_ context.Context, id int64) (*model.User, error) {
				return &model.User{ID: id, Email: "ada@example.com"}, nil
			}
		})

		It("resolves the user and caches the entry", func() {
			user, err := svc.ValidateSession(ctx, "good")

			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).To(Equal(int64(7)))
			Expect(sessionCache.sets).To(Equal(1))
		})

		It("serves cached sessions without the database", func() {
			sessionCache.entries["cached"] = &model.User{ID: 8}

			user, err := svc.ValidateSession(ctx, "cached")

			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).To(Equal(int64(8)))
		})

		It("rejects unknown or expired tokens", func() {
			_, err := svc.ValidateSession(ctx, "stale")
			Expect(err).To(MatchError(service.ErrSessionExpired))

			_, err = svc.ValidateSession(ctx, "")
			Expect(err).To(MatchError(service.ErrSessionExpired))
		})
	})

	Describe("Logout", func() {
		It("evicts the cache and ignores sessions already gone", func() {
			sessionCache.entries["tok"] = &model.User{ID: 1}
			sessions.deleteByTokenFn = func(context.Context, string) error {
				return store.ErrNotFound
			}

			Expect(svc.Logout(ctx, "tok")).To(Succeed())
			Expect(sessionCache.entries).NotTo(HaveKey("tok"))
		})
	})
})
