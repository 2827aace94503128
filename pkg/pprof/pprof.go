// Package pprof starts a profiling side server on a random local port when
// imported for side effects by the service and worker binaries.
package pprof

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
)

func run() {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	pprof.Register(router)
	addr := fmt.Sprintf("localhost:%d", 1024+rand.New(rand.NewSource(time.Now().UnixNano())).Intn(0xffff-1024))
	if err := router.Run(addr); err != nil {
		run()
	}
	time.Sleep(time.Second)
}

func init() {
	go run()
}
