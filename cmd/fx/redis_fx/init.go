package redis_fx

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"recyclemart/internal/infra"
	"recyclemart/pkg/cache"
)

var Module = fx.Provide(
	provideRedis, provideCache)

func provideRedis() *redis.Client {
	return infra.InitRedis()
}

func provideCache(client *redis.Client) cache.Store {
	return cache.NewRedisStore(client, "recyclemart")
}
