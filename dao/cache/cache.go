package cache

import (
	"context"
	"encoding/json"
	"time"

	"zhihuer/pkg/log"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Cache 读路径上的旁路缓存。
// 条目只有三种去向: TTL 到期、显式 Invalidate、被新 Set 覆盖。
// 任何后端故障在读侧都按未命中处理，绝不把错误抛到页面请求上。
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

// RedisCache go-redis 实现
type RedisCache struct {
	rdb *redis.Client
}

func NewRedisCache(rdb *redis.Client) *RedisCache {
	return &RedisCache{rdb: rdb}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		// 缓存故障降级成未命中，走实时计算
		log.L.Warn("cache get failed, fallthrough", zap.String("key", key), zap.Error(err))
		return nil, false, nil
	}
	return val, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := c.rdb.Set(ctx, key, value, ttl).Err()
	if err != nil {
		log.L.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
	return err
}

func (c *RedisCache) Invalidate(ctx context.Context, key string) error {
	err := c.rdb.Del(ctx, key).Err()
	if err != nil {
		log.L.Warn("cache invalidate failed", zap.String("key", key), zap.Error(err))
	}
	return err
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryCache 进程内实现，测试和无 Redis 部署用。
// 底层 LRU 自带过期淘汰，这里再按条目粒度校验一次 TTL。
type MemoryCache struct {
	lru *expirable.LRU[string, memoryEntry]
	now func() time.Time
}

func NewMemoryCache(size int) *MemoryCache {
	if size <= 0 {
		size = 1024
	}
	return &MemoryCache{
		lru: expirable.NewLRU[string, memoryEntry](size, nil, 0),
		now: time.Now,
	}
}

// NewMemoryCacheWithClock 测试里注入假时钟
func NewMemoryCacheWithClock(size int, now func() time.Time) *MemoryCache {
	c := NewMemoryCache(size)
	c.now = now
	return c
}

func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	entry, ok := c.lru.Get(key)
	if !ok {
		return nil, false, nil
	}
	if c.now().After(entry.expiresAt) {
		c.lru.Remove(key)
		return nil, false, nil
	}
	return entry.value, true, nil
}

func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.lru.Add(key, memoryEntry{value: value, expiresAt: c.now().Add(ttl)})
	return nil
}

func (c *MemoryCache) Invalidate(ctx context.Context, key string) error {
	c.lru.Remove(key)
	return nil
}

// GetOrLoad 读穿辅助: 未命中时执行 loader 并回填。
// 回填失败只记日志，不影响本次结果。
func GetOrLoad[T any](ctx context.Context, c Cache, key string, ttl time.Duration, loader func(ctx context.Context) (T, error)) (T, error) {
	var result T

	if raw, hit, _ := c.Get(ctx, key); hit {
		if err := json.Unmarshal(raw, &result); err == nil {
			return result, nil
		}
		// 坏数据当未命中处理，顺手清掉
		_ = c.Invalidate(ctx, key)
	}

	result, err := loader(ctx)
	if err != nil {
		return result, err
	}

	if raw, err := json.Marshal(result); err == nil {
		_ = c.Set(ctx, key, raw, ttl)
	}
	return result, nil
}
