package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RunLock implements usecase.RunLocker using Redis SETNX. It is an
// advisory lock that lets concurrent materialization requests for the
// same template fail fast instead of queueing on the row lock.
type RunLock struct {
	client *redis.Client
	prefix string
}

// NewRunLock creates a new RunLock.
func NewRunLock(client *redis.Client) *RunLock {
	return &RunLock{
		client: client,
		prefix: "materialize:run:",
	}
}

// TryLock attempts to acquire the lock for a template. It returns false
// when another run already holds it. The TTL bounds how long a crashed
// run can keep the template locked.
func (l *RunLock) TryLock(ctx context.Context, templateID string, ttl time.Duration) (bool, error) {
	return l.client.SetNX(ctx, l.prefix+templateID, "locked", ttl).Result()
}

// Unlock releases the lock for a template.
func (l *RunLock) Unlock(ctx context.Context, templateID string) error {
	return l.client.Del(ctx, l.prefix+templateID).Err()
}
