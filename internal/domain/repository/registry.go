package repository

import (
	"context"
	"time"
)

// OrderRegistry keeps advisory creation timestamps for issued orders.
type OrderRegistry interface {
	Record(ctx context.Context, orderID string, createdAt time.Time) error
	Observe(ctx context.Context, orderID string) (time.Time, bool, error)
	Evict(ctx context.Context, cutoff time.Time) (int, error)
}
