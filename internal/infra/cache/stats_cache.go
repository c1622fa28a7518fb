package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"meeting-room-reservation/internal/domain/reservation"
	"meeting-room-reservation/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

var ErrCacheMiss = errors.New("cache miss")

const statsVersionKey = "stats:version"

// StatsCache stores aggregated reservation stats. Entries are keyed under a version
// counter, so Invalidate drops every filter combination at once by bumping it.
type StatsCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewStatsCache(client redis.Cmdable, ttl time.Duration) *StatsCache {
	return &StatsCache{client: client, ttl: ttl}
}

type cachedStats struct {
	Total        int `json:"total"`
	Pending      int `json:"pending"`
	Approved     int `json:"approved"`
	Rejected     int `json:"rejected"`
	Cancelled    int `json:"cancelled"`
	Unrecognized int `json:"unrecognized"`
}

func (c *StatsCache) Get(ctx context.Context, filterKey string) (reservation.Stats, error) {
	key, err := c.entryKey(ctx, filterKey)
	if err != nil {
		return reservation.Stats{}, err
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return reservation.Stats{}, ErrCacheMiss
		}
		return reservation.Stats{}, errs.Wrap(err, "failed to read stats cache")
	}

	var v cachedStats
	if err := json.Unmarshal(raw, &v); err != nil {
		return reservation.Stats{}, errs.Wrap(err, "failed to decode cached stats")
	}
	return reservation.Stats(v), nil
}

func (c *StatsCache) Set(ctx context.Context, filterKey string, stats reservation.Stats) error {
	key, err := c.entryKey(ctx, filterKey)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(cachedStats(stats))
	if err != nil {
		return errs.Wrap(err, "failed to encode stats")
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to write stats cache")
	}
	return nil
}

func (c *StatsCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, statsVersionKey).Err(); err != nil {
		return errs.Wrap(err, "failed to invalidate stats cache")
	}
	return nil
}

func (c *StatsCache) entryKey(ctx context.Context, filterKey string) (string, error) {
	version, err := c.client.Get(ctx, statsVersionKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", errs.Wrap(err, "failed to read stats cache version")
	}
	return fmt.Sprintf("stats:v%d:%s", version, filterKey), nil
}
