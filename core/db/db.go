package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"fluxera.app/api/core/db/sqlc"
)

const (
	defaultMaxConns        int32 = 10
	defaultMinConns        int32 = 2
	defaultMaxConnLifetime       = time.Hour
	defaultApplicationName       = "fluxera-api"
)

// DB owns the connection pool. Stores get their queries from Queries; multi-row
// writes such as registration go through WithTx.
type DB struct {
	pool *pgxpool.Pool
}

type Config struct {
	DSN string

	// Per replica.
	MaxConns int32
	MinConns int32

	MaxConnLifetime time.Duration
	// Reported as application_name in pg_stat_activity.
	ApplicationName string
}

func New(ctx context.Context, cfg Config) (*DB, error) {
	poolCfg, err := PoolConfig(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// PoolConfig parses the DSN and applies pool sizing, falling back to defaults
// for zero values. MinConns never exceeds MaxConns.
func PoolConfig(cfg Config) (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parsing database config: %w", err)
	}

	poolCfg.MaxConns = orDefault(cfg.MaxConns, defaultMaxConns)
	poolCfg.MinConns = min(orDefault(cfg.MinConns, defaultMinConns), poolCfg.MaxConns)
	poolCfg.MaxConnLifetime = orDefault(cfg.MaxConnLifetime, defaultMaxConnLifetime)

	if _, set := poolCfg.ConnConfig.RuntimeParams["application_name"]; !set {
		poolCfg.ConnConfig.RuntimeParams["application_name"] = orDefault(cfg.ApplicationName, defaultApplicationName)
	}

	return poolCfg, nil
}

func orDefault[T comparable](v, fallback T) T {
	var zero T
	if v == zero {
		return fallback
	}
	return v
}

func (db *DB) Close() {
	db.pool.Close()
}

// Ping reports whether the pool can still reach the database.
func (db *DB) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

func (db *DB) Queries() *sqlc.Queries {
	return sqlc.New(db.pool)
}

// WithTx runs fn in a transaction, committing only when fn returns nil.
//
//	err := database.WithTx(ctx, func(q *sqlc.Queries) error {
//	    if _, err := q.CreateUser(ctx, userParams); err != nil {
//	        return err
//	    }
//	    _, err := q.CreateWorkspace(ctx, workspaceParams)
//	    return err
//	})
func (db *DB) WithTx(ctx context.Context, fn func(q *sqlc.Queries) error) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	// no-op after commit
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := fn(sqlc.New(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
