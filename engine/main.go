// The engine worker drains archive partitions filled by the serving layer and
// writes the session records into mongo.
package main

import (
	"log"
	"time"

	_ "github.com/Spyder-19/Fragmented-Squares/pkg/pprof"
)

const (
	OnceWorkingTime = 180                 // second
	ArchivedTTL     = OnceWorkingTime * 3 // second
)

func main() {
	initConfig()
	Pusher.Start()

	for {
		NowPartition, err := GetFreePartition(RedisClient)
		if err != nil {
			log.Fatalln(err)
		}

		if err = OnceIntervalWorking(NowPartition); err != nil {
			log.Fatalln(err)
		}

		time.Sleep(time.Second)
	}
}
