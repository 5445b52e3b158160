package data

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"tinylink/internal/conf"
	"tinylink/internal/domain"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/redis/go-redis/v9"
)

const (
	linkCachePrefix     = "link:"
	defaultLinkCacheTTL = 10 * time.Minute
)

// LinkCache defines the interface for link caching operations.
// Implementations handle cache misses and backend errors by returning nil, nil.
type LinkCache interface {
	// Get retrieves a link by code. Returns nil, nil on a miss.
	Get(ctx context.Context, code string) (*domain.Link, error)

	// Set stores a link in the cache.
	Set(ctx context.Context, l *domain.Link) error

	// Invalidate removes a link from the cache.
	Invalidate(ctx context.Context, code string) error
}

// Compile-time interface checks
var (
	_ LinkCache = (*RedisLinkCache)(nil)
	_ LinkCache = (*noopLinkCache)(nil)
)

// RedisLinkCache implements LinkCache using Redis.
type RedisLinkCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *log.Helper
}

// NewLinkCache returns a Redis cache when a Redis client is configured and
// a no-op cache otherwise.
func NewLinkCache(data *Data, c *conf.Data, logger log.Logger) LinkCache {
	ttl := c.GetRedis().GetTtl()
	return NewRedisLinkCache(data.rdb, ttl, logger)
}

// NewRedisLinkCache creates a new Redis-based link cache.
// Returns a no-op cache if the Redis client is nil.
func NewRedisLinkCache(rdb *redis.Client, ttl time.Duration, logger log.Logger) LinkCache {
	if rdb == nil {
		return &noopLinkCache{}
	}
	if ttl <= 0 {
		ttl = defaultLinkCacheTTL
	}
	return &RedisLinkCache{
		rdb: rdb,
		ttl: ttl,
		log: log.NewHelper(logger),
	}
}

// cachedLink is the serialization format for cached links.
type cachedLink struct {
	ID          int64      `json:"id"`
	Code        string     `json:"code"`
	TargetURL   string     `json:"target_url"`
	TotalClicks int64      `json:"total_clicks"`
	LastClicked *time.Time `json:"last_clicked,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (c *RedisLinkCache) cacheKey(code string) string {
	return linkCachePrefix + code
}

// Get retrieves a link from Redis.
func (c *RedisLinkCache) Get(ctx context.Context, code string) (*domain.Link, error) {
	data, err := c.rdb.Get(ctx, c.cacheKey(code)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		c.log.WithContext(ctx).Warnf("Failed to get link from cache: %v", err)
		return nil, nil
	}

	var cached cachedLink
	if err := json.Unmarshal(data, &cached); err != nil {
		c.log.WithContext(ctx).Warnf("Failed to unmarshal cached link: %v", err)
		return nil, nil
	}

	return domain.ReconstructLink(
		cached.ID,
		cached.Code,
		cached.TargetURL,
		cached.TotalClicks,
		cached.LastClicked,
		cached.CreatedAt,
		cached.UpdatedAt,
	), nil
}

// Set stores a link in Redis.
func (c *RedisLinkCache) Set(ctx context.Context, l *domain.Link) error {
	cached := cachedLink{
		ID:          l.ID(),
		Code:        l.Code(),
		TargetURL:   l.TargetURL(),
		TotalClicks: l.TotalClicks(),
		LastClicked: l.LastClicked(),
		CreatedAt:   l.CreatedAt(),
		UpdatedAt:   l.UpdatedAt(),
	}

	data, err := json.Marshal(cached)
	if err != nil {
		c.log.WithContext(ctx).Warnf("Failed to marshal link for cache: %v", err)
		return nil
	}

	if err := c.rdb.Set(ctx, c.cacheKey(l.Code()), data, c.ttl).Err(); err != nil {
		c.log.WithContext(ctx).Warnf("Failed to cache link: %v", err)
	}
	return nil
}

// Invalidate removes a link from Redis.
func (c *RedisLinkCache) Invalidate(ctx context.Context, code string) error {
	if err := c.rdb.Del(ctx, c.cacheKey(code)).Err(); err != nil {
		c.log.WithContext(ctx).Warnf("Failed to invalidate link cache: %v", err)
	}
	return nil
}

// noopLinkCache is used when Redis is not configured.
type noopLinkCache struct{}

func (c *noopLinkCache) Get(context.Context, string) (*domain.Link, error) {
	return nil, nil
}

func (c *noopLinkCache) Set(context.Context, *domain.Link) error {
	return nil
}

func (c *noopLinkCache) Invalidate(context.Context, string) error {
	return nil
}
