package availability

import (
	"context"
	"encoding/json"
	"time"

	"resourcecal/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const viewCachePrefix = "availability:"

// setViewScript writes a view only while no invalidation newer than its
// version has been seen.
var setViewScript = redis.NewScript(`
local head = tonumber(redis.call("GET", KEYS[2]) or "-1")
if head > tonumber(ARGV[3]) then
	return 0
end
redis.call("HSET", KEYS[1], ARGV[1], ARGV[2])
if tonumber(ARGV[4]) > 0 then
	redis.call("PEXPIRE", KEYS[1], ARGV[4])
end
return 1
`)

// invalidateScript raises the version watermark and drops every cached day.
var invalidateScript = redis.NewScript(`
local head = tonumber(redis.call("GET", KEYS[2]) or "-1")
if tonumber(ARGV[1]) > head then
	redis.call("SET", KEYS[2], ARGV[1])
end
return redis.call("DEL", KEYS[1])
`)

// RedisViewCache keeps one hash per resource with a field per date, so a single
// DEL drops every cached day of the resource. A version key next to the hash
// records the newest aggregate version that invalidated it.
type RedisViewCache struct {
	Client *redis.Client
	TTL    time.Duration
	Logger *zap.Logger
}

func NewRedisViewCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisViewCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisViewCache{Client: client, TTL: ttl, Logger: logger}
}

// keys share a hash tag so both scripts stay on one cluster slot.
func (c *RedisViewCache) keys(resourceID string) []string {
	base := viewCachePrefix + "{" + resourceID + "}"
	return []string{base, base + ":version"}
}

func (c *RedisViewCache) Get(ctx context.Context, resourceID, date string) (*models.AvailabilityView, bool) {
	raw, err := c.Client.HGet(ctx, c.keys(resourceID)[0], date).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.Logger.Warn("availability cache read failed", zap.String("resourceId", resourceID), zap.Error(err))
		return nil, false
	}
	var view models.AvailabilityView
	if err := json.Unmarshal(raw, &view); err != nil {
		return nil, false
	}
	return &view, true
}

func (c *RedisViewCache) Set(ctx context.Context, resourceID, date string, version int, view *models.AvailabilityView) {
	raw, err := json.Marshal(view)
	if err != nil {
		return
	}
	stored, err := setViewScript.Run(ctx, c.Client, c.keys(resourceID), date, raw, version, c.TTL.Milliseconds()).Int()
	if err != nil {
		c.Logger.Warn("availability cache write failed", zap.String("resourceId", resourceID), zap.Error(err))
		return
	}
	if stored == 0 {
		c.Logger.Debug("stale availability view dropped",
			zap.String("resourceId", resourceID),
			zap.String("date", date),
			zap.Int("version", version))
	}
}

func (c *RedisViewCache) Invalidate(ctx context.Context, resourceID string, version int) {
	if err := invalidateScript.Run(ctx, c.Client, c.keys(resourceID), version).Err(); err != nil {
		c.Logger.Warn("availability cache invalidation failed", zap.String("resourceId", resourceID), zap.Error(err))
	}
}
