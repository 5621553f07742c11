package dto

import (
	"time"

	"fluxera.app/api/internal/model"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8,max=255"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,max=255"`
}

type UserResponse struct {
	ID    int64  `json:"id,string"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func ToUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

type SessionResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
}

func ToSessionResponse(u *model.User, s *model.Session) SessionResponse {
	return SessionResponse{
		User:      ToUserResponse(u),
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt,
	}
}

type AuthorizeResponse struct {
	AuthorizationURL string `json:"authorization_url"`
	State            string `json:"state"`
}
