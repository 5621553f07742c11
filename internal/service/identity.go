package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/workos/workos-go/v6/pkg/usermanagement"

	"fluxera.app/api/core/config"
)

// ProviderUser is a user as the identity provider knows them.
type ProviderUser struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
}

// DisplayName falls back from the full name to either part and finally to the email.
func (u ProviderUser) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name != "" {
		return name
	}
	return u.Email
}

// IdentityProvider owns credentials. Fluxera never stores passwords.
type IdentityProvider interface {
	SignUp(ctx context.Context, email, password, name string) (*ProviderUser, error)
	SignIn(ctx context.Context, email, password string) (*ProviderUser, error)
	AuthorizationURL(state string) (string, error)
	ExchangeCode(ctx context.Context, code string) (*ProviderUser, error)
}

type workOSProvider struct {
	cfg config.WorkOSConfig
}

func NewWorkOSProvider(cfg config.WorkOSConfig) IdentityProvider {
	usermanagement.SetAPIKey(cfg.APIKey)
	return &workOSProvider{cfg: cfg}
}

func (p *workOSProvider) SignUp(ctx context.Context, email, password, name string) (*ProviderUser, error) {
	first, last, _ := strings.Cut(strings.TrimSpace(name), " ")
	user, err := usermanagement.CreateUser(ctx, usermanagement.CreateUserOpts{
		Email:     email,
		Password:  password,
		FirstName: first,
		LastName:  strings.TrimSpace(last),
	})
	if err != nil {
		return nil, fmt.Errorf("creating provider user: %w", err)
	}
	return &ProviderUser{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}, nil
}

func (p *workOSProvider) SignIn(ctx context.Context, email, password string) (*ProviderUser, error) {
	resp, err := usermanagement.AuthenticateWithPassword(ctx, usermanagement.AuthenticateWithPasswordOpts{
		ClientID: p.cfg.ClientID,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}
	return toProviderUser(resp.User), nil
}

func (p *workOSProvider) AuthorizationURL(state string) (string, error) {
	url, err := usermanagement.GetAuthorizationURL(usermanagement.GetAuthorizationURLOpts{
		ClientID:    p.cfg.ClientID,
		RedirectURI: p.cfg.RedirectURI,
		State:       state,
		Provider:    "authkit",
	})
	if err != nil {
		return "", fmt.Errorf("generating authorization URL: %w", err)
	}
	return url.String(), nil
}

func (p *workOSProvider) ExchangeCode(ctx context.Context, code string) (*ProviderUser, error) {
	resp, err := usermanagement.AuthenticateWithCode(ctx, usermanagement.AuthenticateWithCodeOpts{
		ClientID: p.cfg.ClientID,
		Code:     code,
	})
	if err != nil {
		return nil, err
	}
	return toProviderUser(resp.User), nil
}

func toProviderUser(u usermanagement.User) *ProviderUser {
	return &ProviderUser{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
