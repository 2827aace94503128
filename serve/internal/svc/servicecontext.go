package svc

import (
	"github.com/Spyder-19/Fragmented-Squares/pkg/env"
	"github.com/Spyder-19/Fragmented-Squares/pkg/models/board"
	"github.com/Spyder-19/Fragmented-Squares/pkg/models/message"
	"github.com/Spyder-19/Fragmented-Squares/pkg/models/model"
	"github.com/Spyder-19/Fragmented-Squares/pkg/models/pusher"
	"github.com/Spyder-19/Fragmented-Squares/serve/internal/config"
	"github.com/Spyder-19/Fragmented-Squares/serve/internal/session"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

const archiveListTTL = 600 // seconds

type ServiceContext struct {
	Config          config.Config
	Shape           board.Shape
	Sessions        *session.Store
	RedisClient     *redis.Redis
	PartitionPusher map[message.RedisPartition]*pusher.Pusher[string]
}

func NewServiceContext(c config.Config) *ServiceContext {
	shape := board.MustShape(c.Shape)

	svcCtx := &ServiceContext{
		Config:   c,
		Shape:    shape,
		Sessions: session.NewStore(shape, c.Seed),
	}

	if len(c.Redis.Host) == 0 {
		return svcCtx
	}

	if c.Redis.Pass == "" {
		c.Redis.Pass = env.RedisPassWord
	}

	svcCtx.RedisClient = redis.MustNewRedis(c.Redis)
	svcCtx.PartitionPusher = make(map[message.RedisPartition]*pusher.Pusher[string])

	partitionListPushLock := make(map[message.RedisPartition]*model.RedisLock)

	for _, redisPartition := range message.RedisPartitions {
		partitionListPushLock[redisPartition] = model.NewLock(svcCtx.RedisClient, redisPartition.LockName())

		redisPartition := redisPartition
		svcCtx.PartitionPusher[redisPartition] = pusher.NewPusher(pusher.WithPushLogic(func(pushMessages ...string) error {
			if len(pushMessages) == 0 {
				return nil
			}

			return partitionListPushLock[redisPartition].Do(func() (err error) {
				var messages []any
				for _, m := range pushMessages {
					messages = append(messages, m)
				}

				if _, err = svcCtx.RedisClient.Lpush(redisPartition.ListKey(), messages...); err != nil {
					return err
				}

				if err = svcCtx.RedisClient.Expire(redisPartition.ListKey(), archiveListTTL); err != nil {
					return err
				}

				return nil
			})
		}))

		svcCtx.PartitionPusher[redisPartition].Start()
	}

	return svcCtx
}
