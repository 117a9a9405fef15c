package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	dom "challengeboard/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	keyFull      = "leaderboard:full"
	keyTopPrefix = "leaderboard:top:"
)

// LeaderboardCache caches ranked user lists in Redis. The TTL bounds
// staleness between award-time invalidations.
type LeaderboardCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewLeaderboardCache returns a new LeaderboardCache.
func NewLeaderboardCache(rdb *redis.Client, ttl time.Duration) *LeaderboardCache {
	return &LeaderboardCache{rdb: rdb, ttl: ttl}
}

// GetFull returns the cached full ranking or nil if miss.
func (c *LeaderboardCache) GetFull(ctx context.Context) ([]dom.User, error) {
	return c.get(ctx, keyFull)
}

// SetFull stores the full ranking.
func (c *LeaderboardCache) SetFull(ctx context.Context, list []dom.User) error {
	return c.set(ctx, keyFull, list)
}

// GetTop returns the cached top-N ranking or nil if miss.
func (c *LeaderboardCache) GetTop(ctx context.Context, limit int) ([]dom.User, error) {
	return c.get(ctx, keyTopPrefix+strconv.Itoa(limit))
}

// SetTop stores a top-N ranking.
func (c *LeaderboardCache) SetTop(ctx context.Context, limit int, list []dom.User) error {
	return c.set(ctx, keyTopPrefix+strconv.Itoa(limit), list)
}

// Invalidate removes the full ranking and every top-N key. Called after a
// point award; best-effort, the TTL covers missed invalidations.
func (c *LeaderboardCache) Invalidate(ctx context.Context) error {
	if err := c.rdb.Del(ctx, keyFull).Err(); err != nil {
		return err
	}
	iter := c.rdb.Scan(ctx, 0, keyTopPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// cachedUser is the wire form stored in Redis. Password hashes stay out
// of the cache.
type cachedUser struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Points    int       `json:"points"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *LeaderboardCache) get(ctx context.Context, key string) ([]dom.User, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeRanking(b)
}

func (c *LeaderboardCache) set(ctx context.Context, key string, list []dom.User) error {
	b, err := encodeRanking(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, b, c.ttl).Err()
}

func encodeRanking(list []dom.User) ([]byte, error) {
	entries := make([]cachedUser, len(list))
	for i, u := range list {
		entries[i] = cachedUser{ID: u.ID, Username: u.Username, Points: u.Points, CreatedAt: u.CreatedAt}
	}
	return json.Marshal(entries)
}

func decodeRanking(b []byte) ([]dom.User, error) {
	var entries []cachedUser
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, err
	}
	list := make([]dom.User, len(entries))
	for i, e := range entries {
		list[i] = dom.User{ID: e.ID, Username: e.Username, Points: e.Points, CreatedAt: e.CreatedAt}
	}
	return list, nil
}
