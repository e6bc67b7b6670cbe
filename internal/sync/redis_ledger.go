package sync

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisLedger persists viewer markers in Redis so idempotency survives
// server restarts. Windowed markers rely on key TTLs; the once-ever
// and toggle policies use keys without expiry.
type RedisLedger struct {
	client *redis.Client
}

// NewRedisLedger creates a ledger backed by the given Redis client
func NewRedisLedger(client *redis.Client) *RedisLedger {
	return &RedisLedger{client: client}
}

func markerKey(scopeKey string) string {
	return fmt.Sprintf("ledger:view:%s", scopeKey)
}

func likedKey(viewerID string) string {
	return fmt.Sprintf("ledger:liked:%s", viewerID)
}

func (l *RedisLedger) HasCountedView(ctx context.Context, scopeKey string, _ Policy) (bool, error) {
	exists, err := l.client.Exists(ctx, markerKey(scopeKey)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

func (l *RedisLedger) MarkViewCounted(ctx context.Context, scopeKey string, policy Policy) error {
	// Window of zero means no TTL, the marker lives for ever
	return l.client.Set(ctx, markerKey(scopeKey), "counted", policy.Window).Err()
}

func (l *RedisLedger) IsLiked(ctx context.Context, viewerID, reviewID string) (bool, error) {
	return l.client.SIsMember(ctx, likedKey(viewerID), reviewID).Result()
}

func (l *RedisLedger) SetLiked(ctx context.Context, viewerID, reviewID string, liked bool) error {
	if liked {
		return l.client.SAdd(ctx, likedKey(viewerID), reviewID).Err()
	}
	return l.client.SRem(ctx, likedKey(viewerID), reviewID).Err()
}

// PurgeExpired is a no-op: Redis expires windowed markers via TTL
func (l *RedisLedger) PurgeExpired(_ context.Context) (int, error) {
	return 0, nil
}
