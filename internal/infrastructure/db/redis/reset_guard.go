package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ResetGuard makes password-reset tokens single-use, backed by Redis.
// Consumed tokens are keyed by a digest of the token string so the raw
// token never lands in the store.
// Key format: pwreset:used:<sha256(token)>
type ResetGuard struct {
	client *redis.Client
}

// NewResetGuard creates a ResetGuard wrapping the given Redis client.
func NewResetGuard(client *redis.Client) *ResetGuard {
	return &ResetGuard{client: client}
}

// IsUsed reports whether this reset token has already been consumed.
func (g *ResetGuard) IsUsed(ctx context.Context, token string) (bool, error) {
	n, err := g.client.Exists(ctx, g.key(token)).Result()
	if err != nil {
		return false, fmt.Errorf("reset guard check: %w", err)
	}
	return n > 0, nil
}

// MarkUsed records the token as consumed. The entry expires with the token
// itself; after that, signature verification alone rejects it.
func (g *ResetGuard) MarkUsed(ctx context.Context, token string, ttl time.Duration) error {
	return g.client.Set(ctx, g.key(token), "1", ttl).Err()
}

func (g *ResetGuard) key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "pwreset:used:" + hex.EncodeToString(sum[:])
}
