package main

import (
	"flag"
	"fmt"

	"github.com/Spyder-19/Fragmented-Squares/serve/internal/config"
	"github.com/Spyder-19/Fragmented-Squares/serve/internal/handler"
	"github.com/Spyder-19/Fragmented-Squares/serve/internal/svc"

	_ "github.com/Spyder-19/Fragmented-Squares/pkg/pprof"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"
)

var configFile = flag.String("f", "etc/serve.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)
	ctx := svc.NewServiceContext(c)

	server := rest.MustNewServer(c.RestConf)
	defer server.Stop()

	handler.RegisterHandlers(server, ctx)

	fmt.Printf("Starting server at %s:%d, shape %q...\n", c.Host, c.Port, c.Shape)
	server.Start()
}
