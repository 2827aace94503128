package main

import (
	"log"
	"time"

	"github.com/Spyder-19/Fragmented-Squares/pkg/models/message"
)

func RollBack(t, m string) {
	for range 20 {
		if _, err := RedisClient.Lpush(t, m); err != nil {
			time.Sleep(time.Second / 2)
			continue
		}
		return
	}
}

// OnceIntervalWorking drains the claimed partition until its list is empty,
// skipping events that were already archived by an earlier run.
func OnceIntervalWorking(NowPartition message.RedisPartition) (err error) {
	log.Printf("Start Working At Partition: %d\n", NowPartition)

	defer func() {
		if _, err = RedisClient.Del(NowPartition.OwnerKey()); err != nil {
			log.Panicf("Release Partition Error: %s\n", err)
		}
	}()

	for {
		if err = RedisClient.Expire(NowPartition.OwnerKey(), OnceWorkingTime); err != nil {
			return err
		}

		l, err := RedisClient.Llen(NowPartition.ListKey())
		if err != nil {
			return err
		}

		if l == 0 {
			return nil
		}

		m, err := RedisClient.Rpop(NowPartition.ListKey())
		if err != nil {
			return err
		}

		if m == "" {
			continue
		}

		mess, err := message.NewArchiveMessage(m)
		if err != nil {
			return err
		}

		archivedKey := message.ArchivedKey{
			SessionUid: mess.SessionUid,
			Kind:       mess.Kind,
			Step:       mess.Step,
			MoveEdge:   mess.MoveEdge,
		}

		b, err := RedisClient.Get(archivedKey.String())
		if err != nil {
			RollBack(NowPartition.ListKey(), m)
			return err
		}

		if b != "" {
			continue
		}

		Pusher.AddMessages(ArchiveTask{
			ArchiveMessage: mess,
			RollBackFunc: func() {
				RollBack(NowPartition.ListKey(), m)
			},
		})

		if err = RedisClient.Setex(archivedKey.String(), string(message.Now()), ArchivedTTL); err != nil {
			return err
		}
	}
}
