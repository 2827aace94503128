package logic

import (
	"strconv"

	"github.com/Spyder-19/Fragmented-Squares/pkg/models/message"
	"github.com/Spyder-19/Fragmented-Squares/pkg/models/pusher"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

const sessionStepTTL = 120 // seconds

// PushArchiveMessages spreads messages over the archive partitions, always
// appending to the currently shortest list. A nil redis client disables
// archiving entirely.
func PushArchiveMessages(redisClient *redis.Redis, partitionPusher map[message.RedisPartition]*pusher.Pusher[string], messages ...message.ArchiveMessage) error {
	if redisClient == nil || len(partitionPusher) == 0 {
		return nil
	}

	partitionListLen := make(map[message.RedisPartition]int)
	for _, p := range message.RedisPartitions {
		length, err := redisClient.Llen(p.ListKey())
		if err != nil {
			return err
		}
		partitionListLen[p] = length
	}

	for _, m := range messages {
		minPartition := message.RedisPartition(-1)
		minLen := 0
		for p, length := range partitionListLen {
			if minPartition == -1 || length < minLen {
				minLen = length
				minPartition = p
			}
		}

		partitionListLen[minPartition]++
		partitionPusher[minPartition].AddMessages(m.String())
	}

	return nil
}

// MarkSessionStep publishes the session's committed step count as liveness
// metadata; the TTL reaps finished or abandoned sessions.
func MarkSessionStep(redisClient *redis.Redis, uid message.SessionUid, step int) error {
	if redisClient == nil {
		return nil
	}
	return redisClient.Setex(string(uid), strconv.Itoa(step), sessionStepTTL)
}

func ClearSession(redisClient *redis.Redis, uid message.SessionUid) error {
	if redisClient == nil {
		return nil
	}
	_, err := redisClient.Del(string(uid))
	return err
}
