package config

import "time"

// Cache 缓存TTL配置，聚合结果默认 5~10 分钟内允许读到旧值
type Cache struct {
	// DefaultTTLSeconds 聚合查询缓存的默认有效期
	DefaultTTLSeconds int `json:"default_ttl_seconds" yaml:"default_ttl_seconds"`
	// ExploreTTLSeconds 发现页缓存有效期
	ExploreTTLSeconds int `json:"explore_ttl_seconds" yaml:"explore_ttl_seconds"`
	// PageTTLSeconds 匿名整页缓存有效期
	PageTTLSeconds int `json:"page_ttl_seconds" yaml:"page_ttl_seconds"`
}

func (c *Cache) DefaultTTL() time.Duration {
	if c == nil || c.DefaultTTLSeconds <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(c.DefaultTTLSeconds) * time.Second
}

func (c *Cache) ExploreTTL() time.Duration {
	if c == nil || c.ExploreTTLSeconds <= 0 {
		return 10 * time.Minute
	}
	return time.Duration(c.ExploreTTLSeconds) * time.Second
}

func (c *Cache) PageTTL() time.Duration {
	if c == nil || c.PageTTLSeconds <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(c.PageTTLSeconds) * time.Second
}
