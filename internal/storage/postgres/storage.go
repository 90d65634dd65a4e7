package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// Storage is an order registry backed by PostgreSQL.
type Storage struct {
	pool   pool
	logger *slog.Logger
}

// New connects to PostgreSQL and ensures the registry schema exists.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	p, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: p, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		p.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() error {
	if s.pool != nil {
		s.pool.Close()
	}
	return nil
}

func (s *Storage) Name() string { return "postgres" }

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS order_registry (
            order_id TEXT PRIMARY KEY,
            created_at TIMESTAMPTZ NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_order_registry_created_at ON order_registry(created_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// Record upserts the order's creation time.
func (s *Storage) Record(ctx context.Context, orderID string, createdAt time.Time) error {
	const query = `INSERT INTO order_registry (order_id, created_at) VALUES ($1, $2)
                   ON CONFLICT (order_id) DO UPDATE SET created_at = EXCLUDED.created_at`
	if _, err := s.pool.Exec(ctx, query, orderID, createdAt); err != nil {
		return fmt.Errorf("record order: %w", err)
	}
	return nil
}

// Observe looks up the order's creation time.
func (s *Storage) Observe(ctx context.Context, orderID string) (time.Time, bool, error) {
	const query = `SELECT created_at FROM order_registry WHERE order_id=$1`
	var createdAt time.Time
	err := s.pool.QueryRow(ctx, query, orderID).Scan(&createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, fmt.Errorf("observe order: %w", err)
	}
	return createdAt, true, nil
}

// Evict removes rows created before cutoff.
func (s *Storage) Evict(ctx context.Context, cutoff time.Time) (int, error) {
	const query = `DELETE FROM order_registry WHERE created_at < $1`
	tag, err := s.pool.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("evict orders: %w", err)
	}
	if n := tag.RowsAffected(); n > 0 {
		s.logger.Debug("evicted registry rows", slog.Int64("count", n))
	}
	return int(tag.RowsAffected()), nil
}
