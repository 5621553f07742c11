package service

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"fluxera.app/api/common/id"
	"fluxera.app/api/internal/model"
)

const sessionTokenLength = 32

func newSession(userID int64, lifetime time.Duration) (*model.Session, error) {
	token, err := generateSecureToken(sessionTokenLength)
	if err != nil {
		return nil, fmt.Errorf("generating session token: %w", err)
	}
	return &model.Session{
		ID:        id.New(),
		UserID:    userID,
		Token:     token,
		ExpiresAt: time.Now().Add(lifetime),
	}, nil
}

func generateSecureToken(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
