package client

import (
	"context"
	"fmt"

	"zhihuer/config"
	"zhihuer/pkg/log"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func NewRedisClient(conf *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", conf.Redis.Address, conf.Redis.Port),
		Password: conf.Redis.Password,
		Username: conf.Redis.Username,
		DB:       conf.Redis.Database,
	})
	// 缓存挂了只影响命中率，不能拦着服务启动
	if _, err := client.Ping(context.TODO()).Result(); err != nil {
		log.L.Warn("connect redis error, cache will degrade to miss", zap.Error(err))
	} else {
		log.L.Info("redis client success")
	}
	return client
}
