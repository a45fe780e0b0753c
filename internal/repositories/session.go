package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/parts-store/internal/logger"
)

// SessionRevocationRepository keeps logged-out session ids in Redis until the
// session token would have expired anyway.
type SessionRevocationRepository struct {
	client *redis.Client
}

func NewSessionRevocationRepository(client *redis.Client) *SessionRevocationRepository {
	return &SessionRevocationRepository{client: client}
}

func revokedKey(sessionID string) string {
	return fmt.Sprintf("session:revoked:%s", sessionID)
}

// Revoke marks the session as logged out for ttl. Non-positive ttl is a no-op
// since the token is already expired.
func (r *SessionRevocationRepository) Revoke(ctx context.Context, sessionID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	key := revokedKey(sessionID)
	err := r.client.Set(ctx, key, "1", ttl).Err()

	logger.Log.Debugw("session revoke",
		"key", key,
		"ttl", ttl,
		"error", err,
	)

	return err
}

// IsRevoked reports whether the session has been logged out.
func (r *SessionRevocationRepository) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	key := revokedKey(sessionID)
	n, err := r.client.Exists(ctx, key).Result()

	logger.Log.Debugw("session lookup",
		"key", key,
		"result", n,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return n > 0, nil
}
