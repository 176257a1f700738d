// File: utils/lock.go
package utils

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrLockNotAcquired is returned when the lock stays held past the wait bound
// or until ctx is done.
var ErrLockNotAcquired = errors.New("resource is locked")

// releaseScript deletes the key only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker hands out one writer at a time per key. A lock expires after TTL
// so a crashed holder cannot block a resource forever; a waiter gives up after
// Wait.
type RedisLocker struct {
	Client redis.Cmdable
	TTL    time.Duration
	Wait   time.Duration
	Logger *zap.Logger
}

func NewRedisLocker(client redis.Cmdable, ttl time.Duration) *RedisLocker {
	if ttl <= 0 {
		ttl = DefaultLockTTL
	}
	return &RedisLocker{Client: client, TTL: ttl, Wait: LockWaitTimeout, Logger: GetLogger()}
}

// Lock blocks until key is free, Wait elapses or ctx ends. The returned func
// releases it.
func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	lockKey := LockPrefix + key
	token := uuid.New().String()

	wait := l.Wait
	if wait <= 0 {
		wait = LockWaitTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, wait)
	defer cancel()

	ticker := time.NewTicker(LockRetryInterval)
	defer ticker.Stop()
	for {
		ok, err := l.Client.SetNX(ctx, lockKey, token, l.TTL).Result()
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("%s: %w", key, ErrLockNotAcquired)
			}
			return nil, fmt.Errorf("acquire %s: %w", lockKey, err)
		}
		if ok {
			return func() { l.release(lockKey, token) }, nil
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%s: %w", key, ErrLockNotAcquired)
		case <-ticker.C:
		}
	}
}

func (l *RedisLocker) release(lockKey, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := releaseScript.Run(ctx, l.Client, []string{lockKey}, token).Err(); err != nil && err != redis.Nil {
		l.Logger.Warn("failed to release lock", zap.String("key", lockKey), zap.Error(err))
	}
}
