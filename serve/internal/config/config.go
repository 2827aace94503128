package config

import (
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf
	Shape string `json:",default=two-by-two"`
	Seed  int64  `json:",optional"`

	// Redis is optional; without it the service plays games but archives
	// nothing.
	Redis redis.RedisConf `json:",optional"`
}
