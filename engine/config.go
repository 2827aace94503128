package main

import (
	"flag"
	"fmt"

	"github.com/Spyder-19/Fragmented-Squares/pkg/env"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

var (
	ConfigFile = flag.String("f", "etc/engine.yaml", "engine config file path")

	c           Config
	RedisClient *redis.Redis
)

type Config struct {
	Redis     redis.RedisConf
	MongoConf struct {
		Url          string
		DataBaseName string
		PassWord     string `json:",optional"`
	}
}

func initConfig() {
	flag.Parse()
	conf.MustLoad(*ConfigFile, &c)

	if c.Redis.Pass == "" {
		c.Redis.Pass = env.RedisPassWord
	}

	if c.MongoConf.PassWord == "" {
		c.MongoConf.PassWord = env.MongoPassWord
	}

	c.MongoConf.Url = fmt.Sprintf(c.MongoConf.Url, c.MongoConf.PassWord)

	RedisClient = redis.MustNewRedis(c.Redis)
}
