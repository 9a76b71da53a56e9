package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache keys for the dashboard snapshot lists.
const (
	cacheKeyRooms    = "snapshot:rooms"
	cacheKeyBookings = "snapshot:bookings"
	cacheKeyPayments = "snapshot:payments"
)

const snapshotTTL = 15 * time.Second

// SnapshotCache is a short-TTL Redis cache in front of the snapshot list
// endpoints the dashboards poll. It is advisory display state only: writes
// never consult it and always re-validate against locked DB rows. A nil
// cache (Redis unreachable at startup) degrades to straight DB reads.
type SnapshotCache struct {
	rdb *redis.Client
}

func NewSnapshotCache(rdb *redis.Client) *SnapshotCache {
	if rdb == nil {
		return nil
	}
	return &SnapshotCache{rdb: rdb}
}

// Get unmarshals a cached snapshot into dest. Returns false on miss or any
// Redis/decode error; callers fall through to the database.
func (c *SnapshotCache) Get(ctx context.Context, key string, dest interface{}) bool {
	if c == nil {
		return false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

// Set stores a snapshot, best-effort.
func (c *SnapshotCache) Set(ctx context.Context, key string, value interface{}) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, key, raw, snapshotTTL).Err()
}

// Invalidate drops snapshots after a write so polls converge quickly.
func (c *SnapshotCache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}
	_ = c.rdb.Del(ctx, keys...).Err()
}
