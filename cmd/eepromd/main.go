package main

//go-build: CGO_ENABLED=0

import (
	"flag"

	"github.com/golang/glog"

	env "github.com/robotalks/eeprom.go/pkg/env/daemon"
	fx "github.com/robotalks/eeprom.go/pkg/framework"
)

func init() {
	env.SetupFlags()
}

func main() {
	flag.Parse()
	defer glog.Flush()

	e := env.NewConfig().MustNewEnv()
	runner := fx.NewRunner().HandleSignals()
	if err := e.Run(runner.Context); err != nil {
		glog.Exit(err)
	}
}
