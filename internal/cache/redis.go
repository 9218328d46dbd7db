package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Ahmad-Raza810/blog-application/internal/models"
)

const (
	pageKeyPattern = "posts:page:*"
	postKeyPrefix  = "posts:id:"
)

// RedisPostCache implements PostCache on top of Redis with JSON values.
type RedisPostCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisPostCache creates a RedisPostCache. Entries expire after ttl.
func NewRedisPostCache(rdb *redis.Client, ttl time.Duration) *RedisPostCache {
	return &RedisPostCache{rdb: rdb, ttl: ttl}
}

// GetPage returns a cached listing window, or nil on a miss.
func (c *RedisPostCache) GetPage(ctx context.Context, key string) (*models.PageResponse, error) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get %s: %w", key, err)
	}
	var page models.PageResponse
	if err := json.Unmarshal(raw, &page); err != nil {
		// A corrupt entry behaves like a miss after being dropped.
		c.rdb.Del(ctx, key)
		return nil, nil
	}
	return &page, nil
}

// PutPage stores a listing window.
func (c *RedisPostCache) PutPage(ctx context.Context, key string, page *models.PageResponse) error {
	raw, err := json.Marshal(page)
	if err != nil {
		return fmt.Errorf("cache marshal page: %w", err)
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache put %s: %w", key, err)
	}
	return nil
}

// GetPost returns a cached post view, or nil on a miss.
func (c *RedisPostCache) GetPost(ctx context.Context, postID string) (*models.PostResponse, error) {
	key := postKeyPrefix + postID
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get %s: %w", key, err)
	}
	var post models.PostResponse
	if err := json.Unmarshal(raw, &post); err != nil {
		c.rdb.Del(ctx, key)
		return nil, nil
	}
	return &post, nil
}

// PutPost stores a single post view.
func (c *RedisPostCache) PutPost(ctx context.Context, postID string, post *models.PostResponse) error {
	raw, err := json.Marshal(post)
	if err != nil {
		return fmt.Errorf("cache marshal post: %w", err)
	}
	key := postKeyPrefix + postID
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache put %s: %w", key, err)
	}
	return nil
}

// InvalidatePages deletes every cached listing window.
func (c *RedisPostCache) InvalidatePages(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, pageKeyPattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("cache invalidate %s: %w", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("cache scan pages: %w", err)
	}
	return nil
}

// InvalidatePost deletes one cached post view.
func (c *RedisPostCache) InvalidatePost(ctx context.Context, postID string) error {
	if err := c.rdb.Del(ctx, postKeyPrefix+postID).Err(); err != nil {
		return fmt.Errorf("cache invalidate post %s: %w", postID, err)
	}
	return nil
}
