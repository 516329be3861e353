// Package database builds the pgx connection pool shared by the repositories.
package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Options tunes pool construction.
type Options struct {
	MaxConns     int32
	MinConns     int32
	ConnAttempts int
	RetryDelay   time.Duration
	Logger       *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.MaxConns <= 0 {
		o.MaxConns = 10
	}
	if o.MinConns < 0 || o.MinConns > o.MaxConns {
		o.MinConns = 0
	}
	if o.ConnAttempts <= 0 {
		o.ConnAttempts = 1
	}
	if o.RetryDelay <= 0 {
		o.RetryDelay = 2 * time.Second
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// Config parses dsn into a pool config with NUMERIC columns mapped to
// shopspring decimals on every new connection.
func Config(dsn string, opts Options) (*pgxpool.Config, error) {
	opts = opts.withDefaults()

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}
	cfg.MaxConns = opts.MaxConns
	cfg.MinConns = opts.MinConns
	cfg.MaxConnLifetime = 30 * time.Minute
	cfg.MaxConnIdleTime = 5 * time.Minute
	cfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}
	return cfg, nil
}

// NewPool creates and pings a pool, retrying while the server comes up.
func NewPool(ctx context.Context, dsn string, opts Options) (*pgxpool.Pool, error) {
	opts = opts.withDefaults()

	cfg, err := Config(dsn, opts)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 1; attempt <= opts.ConnAttempts; attempt++ {
		pool, err := pgxpool.NewWithConfig(ctx, cfg)
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				return pool, nil
			}
			pool.Close()
		}
		lastErr = err
		if attempt == opts.ConnAttempts {
			break
		}
		opts.Logger.Warn("db connect attempt failed",
			"attempt", attempt,
			"max_attempts", opts.ConnAttempts,
			"retry_in", opts.RetryDelay,
			"error", err,
		)
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("connect to postgres: %w", ctx.Err())
		case <-time.After(opts.RetryDelay):
		}
	}
	return nil, fmt.Errorf("connect to postgres: %w", lastErr)
}
