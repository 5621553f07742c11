package store

import (
	"context"
	"errors"

	"fluxera.app/api/core/db/sqlc"
	"fluxera.app/api/internal/model"
	"github.com/jackc/pgx/v5"
)

type sessionStore struct {
	queries *sqlc.Queries
}

func newSessionStore(queries *sqlc.Queries) SessionStore {
	return &sessionStore{queries: queries}
}

func (s *sessionStore) Create(ctx context.Context, session *model.Session) error {
	row, err := s.queries.CreateSession(ctx, sqlc.CreateSessionParams{
		ID:        session.ID,
		Token:     session.Token,
		UserID:    session.UserID,
		ExpiresAt: timestamptz(session.ExpiresAt),
	})
	if err != nil {
		return err
	}
	*session = *toSessionModel(row)
	return nil
}

func (s *sessionStore) GetValidByToken(ctx context.Context, token string) (*model.Session, error) {
	row, err := s.queries.GetValidSessionByToken(ctx, token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toSessionModel(row), nil
}

func (s *sessionStore) DeleteByToken(ctx context.Context, token string) error {
	return s.queries.DeleteSessionByToken(ctx, token)
}

func (s *sessionStore) DeleteExpired(ctx context.Context) (int64, error) {
	return s.queries.DeleteExpiredSessions(ctx)
}

func toSessionModel(row sqlc.Session) *model.Session {
	return &model.Session{
		ID:        row.ID,
		Token:     row.Token,
		UserID:    row.UserID,
		ExpiresAt: row.ExpiresAt.Time,
		CreatedAt: row.CreatedAt.Time,
	}
}
