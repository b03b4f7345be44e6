package main

import (
	"github.com/robotalks/eeprom.go/pkg/cli/sh"
	env "github.com/robotalks/eeprom.go/pkg/env/client"
)

//go-build: CGO_ENABLED=0

func init() {
	env.SetupFlags()
}

func main() {
	sh.Main()
}
