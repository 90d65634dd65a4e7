package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/go-redis/redis/v8"
)

const keyPrefix = "orders:registry:"

// Registry stores creation timestamps in Redis with a per-key TTL, so entries
// expire on their own once ttl has elapsed since the order was created.
type Registry struct {
	client *goredis.Client
	ttl    time.Duration
	now    func() time.Time
}

// New connects to Redis at addr and verifies the connection.
func New(ctx context.Context, addr string, ttl time.Duration) (*Registry, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:         addr,
		DialTimeout:  time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	return NewWithClient(client, ttl), nil
}

// NewWithClient wraps an existing client.
func NewWithClient(client *goredis.Client, ttl time.Duration) *Registry {
	return &Registry{client: client, ttl: ttl, now: time.Now}
}

// Record stores createdAt until createdAt+ttl. Orders already past that point
// are not written.
func (r *Registry) Record(ctx context.Context, orderID string, createdAt time.Time) error {
	if createdAt.IsZero() {
		createdAt = r.now()
	}
	remaining := createdAt.Add(r.ttl).Sub(r.now())
	if remaining <= 0 {
		return nil
	}
	if err := r.client.Set(ctx, keyPrefix+orderID, createdAt.UnixMilli(), remaining).Err(); err != nil {
		return fmt.Errorf("record order: %w", err)
	}
	return nil
}

func (r *Registry) Observe(ctx context.Context, orderID string) (time.Time, bool, error) {
	ms, err := r.client.Get(ctx, keyPrefix+orderID).Int64()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, fmt.Errorf("observe order: %w", err)
	}
	return time.UnixMilli(ms), true, nil
}

// Evict is a no-op: key expiry already bounds the registry.
func (r *Registry) Evict(context.Context, time.Time) (int, error) {
	return 0, nil
}

func (r *Registry) Close() error {
	return r.client.Close()
}

func (r *Registry) Name() string { return "redis" }
