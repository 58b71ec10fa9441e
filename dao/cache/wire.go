package cache

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewRedisCache,
	wire.Bind(new(Cache), new(*RedisCache)),
)
