package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"lifedash/internal/core/ports"
)

// releaseScript deletes the key only while it still belongs to the caller.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RunLock elects a single runner per key across worker replicas.
type RunLock struct {
	client *redis.Client
	owner  string
}

var _ ports.RunLock = (*RunLock)(nil)

func NewRunLock(client *redis.Client, owner string) *RunLock {
	return &RunLock{client: client, owner: owner}
}

// Acquire claims key for ttl. It reports false when another owner holds it.
func (l *RunLock) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := l.client.SetNX(ctx, "lock:"+key, l.owner, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis setnx %s: %w", key, err)
	}
	return ok, nil
}

// Release drops key if this owner still holds it.
func (l *RunLock) Release(ctx context.Context, key string) error {
	if err := releaseScript.Run(ctx, l.client, []string{"lock:" + key}, l.owner).Err(); err != nil {
		return fmt.Errorf("redis release %s: %w", key, err)
	}
	return nil
}
