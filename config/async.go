package config

import "time"

// Async 协程池配置，只用于异步任务执行
type Async struct {
	PoolSize       int `json:"pool_size" yaml:"pool_size"`
	ReleaseSeconds int `json:"release_seconds" yaml:"release_seconds"`
}

func (a *Async) Size() int {
	if a == nil || a.PoolSize <= 0 {
		return 64
	}
	return a.PoolSize
}

func (a *Async) ReleaseTimeout() time.Duration {
	if a == nil || a.ReleaseSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(a.ReleaseSeconds) * time.Second
}
