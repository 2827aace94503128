package main

import (
	"time"

	"github.com/Spyder-19/Fragmented-Squares/pkg/models/message"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

// GetFreePartition claims the first unowned non-empty archive partition,
// leasing it through its owner key so workers never drain the same list.
func GetFreePartition(RedisClient *redis.Redis) (partition message.RedisPartition, err error) {
	for {
		for _, p := range message.RedisPartitions {
			value, err := RedisClient.Get(p.OwnerKey())
			if err != nil {
				return -1, err
			}

			length, err := RedisClient.Llen(p.ListKey())
			if err != nil {
				return -1, err
			}

			if value == "" && length > 0 {
				if err = RedisClient.Setex(p.OwnerKey(), string(message.Now()), 600); err != nil {
					return -1, err
				}
				return p, nil
			}

			time.Sleep(time.Second)
		}
	}
}
