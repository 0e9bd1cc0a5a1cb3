package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/talentbase/talentbase/internal/domain/directory"
)

const (
	snapshotKey = "directory:snapshot"
	snapshotTTL = 5 * time.Minute
)

// redisSnapshotCache holds the serialized directory snapshot between
// requests. Writes to any profile invalidate it, so the TTL is only a
// backstop.
type redisSnapshotCache struct {
	rdb *redis.Client
}

func NewRedisSnapshotCache(rdb *redis.Client) directory.SnapshotCache {
	return &redisSnapshotCache{rdb: rdb}
}

func (c *redisSnapshotCache) Get(ctx context.Context) ([]directory.Entry, bool, error) {
	data, err := c.rdb.Get(ctx, snapshotKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var entries []directory.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, false, err
	}
	return entries, true, nil
}

func (c *redisSnapshotCache) Set(ctx context.Context, entries []directory.Entry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, snapshotKey, data, snapshotTTL).Err()
}

func (c *redisSnapshotCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, snapshotKey).Err()
}
