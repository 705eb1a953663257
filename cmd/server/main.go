package main

import (
	"github.com/handover-hq/atlas/internal/server"
	"github.com/handover-hq/atlas/internal/util"
	"github.com/handover-hq/atlas/pkg/logger"
	"github.com/handover-hq/atlas/pkg/logger/console"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	logger.Init(console.New(console.Params{
		Debug: debug,
	}))

	server.Init()
}
