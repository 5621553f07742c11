// Package cache keeps validated sessions in redis so that authenticated
// requests skip the database on the hot path.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fluxera.app/api/internal/model"
	"github.com/redis/go-redis/v9"
)

// ErrMiss is returned when a token has no cached entry.
var ErrMiss = errors.New("cache miss")

const keyPrefix = "session:"

type SessionCache interface {
	Get(ctx context.Context, token string) (*model.User, error)
	Set(ctx context.Context, token string, user *model.User, expiresAt time.Time) error
	Delete(ctx context.Context, token string) error
}

type entry struct {
	UserID    int64     `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	ExpiresAt time.Time `json:"expires_at"`
}

type redisSessionCache struct {
	client *redis.Client
	ttl    time.Duration
	now    func() time.Time
}

func NewSessionCache(client *redis.Client, ttl time.Duration) SessionCache {
	return &redisSessionCache{client: client, ttl: ttl, now: time.Now}
}

func (c *redisSessionCache) Get(ctx context.Context, token string) (*model.User, error) {
	raw, err := c.client.Get(ctx, keyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMiss
		}
		return nil, fmt.Errorf("reading session cache: %w", err)
	}

	var e entry
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, fmt.Errorf("decoding cached session: %w", err)
	}
	if !c.now().Before(e.ExpiresAt) {
		_ = c.client.Del(ctx, keyPrefix+token).Err()
		return nil, ErrMiss
	}

	return &model.User{ID: e.UserID, Email: e.Email, Name: e.Name}, nil
}

// Set caches the user for token. The entry never outlives the session itself.
func (c *redisSessionCache) Set(ctx context.Context, token string, user *model.User, expiresAt time.Time) error {
	ttl := min(c.ttl, expiresAt.Sub(c.now()))
	if ttl <= 0 {
		return nil
	}

	raw, err := json.Marshal(entry{
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.Name,
		ExpiresAt: expiresAt,
	})
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}

	if err := c.client.Set(ctx, keyPrefix+token, raw, ttl).Err(); err != nil {
		return fmt.Errorf("writing session cache: %w", err)
	}
	return nil
}

func (c *redisSessionCache) Delete(ctx context.Context, token string) error {
	if err := c.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("deleting cached session: %w", err)
	}
	return nil
}
