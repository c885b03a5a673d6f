package ports

import (
	"context"
	"time"
)

// ResetGuard makes reset tokens single-use. A token is marked once it has
// been consumed and stays marked until it would have expired anyway.
type ResetGuard interface {
	IsUsed(ctx context.Context, token string) (bool, error)
	MarkUsed(ctx context.Context, token string, ttl time.Duration) error
}
