package main

import (
	"flag"

	"github.com/Spyder-19/Fragmented-Squares/pkg/models/model"
)

var (
	ServerAddress = flag.String("server", "http://127.0.0.1:8000", "serve address")
	Games         = flag.Int("games", 1, "number of games to play")
	MoveDelay     = flag.Duration("delay", 0, "delay between moves")
	VerboseConf   = flag.String("verbose", "On", "print the board after every move")

	Verbose model.Config
)

func initConfig() {
	flag.Parse()
	Verbose = model.NewConfig(*VerboseConf)

	if *Games > 1 {
		Verbose = model.Off
	}
}
