package store

import (
	"context"
	"errors"

	"fluxera.app/api/core/db/sqlc"
	"fluxera.app/api/internal/model"
	"github.com/jackc/pgx/v5"
)

type userStore struct {
	queries *sqlc.Queries
}

func newUserStore(queries *sqlc.Queries) UserStore {
	return &userStore{queries: queries}
}

func (s *userStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	row, err := s.queries.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toUserModel(row), nil
}

func (s *userStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	row, err := s.queries.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toUserModel(row), nil
}

func (s *userStore) Create(ctx context.Context, user *model.User) error {
	row, err := s.queries.CreateUser(ctx, sqlc.CreateUserParams{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		WorkosID: user.WorkOSID,
	})
	if err != nil {
		return mapError(err)
	}
	*user = *toUserModel(row)
	return nil
}

// Upsert inserts the user or, when the email already exists, refreshes the
// name and identity-provider id of the existing row.
func (s *userStore) Upsert(ctx context.Context, user *model.User) error {
	row, err := s.queries.UpsertUserByWorkOSID(ctx, sqlc.UpsertUserByWorkOSIDParams{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		WorkosID: user.WorkOSID,
	})
	if err != nil {
		return err
	}
	*user = *toUserModel(row)
	return nil
}

func (s *userStore) Update(ctx context.Context, user *model.User) error {
	row, err := s.queries.UpdateUser(ctx, sqlc.UpdateUserParams{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	})
	if err != nil {
		return mapError(err)
	}
	*user = *toUserModel(row)
	return nil
}

func toUserModel(row sqlc.User) *model.User {
	return &model.User{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		WorkOSID:  row.WorkosID,
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}
