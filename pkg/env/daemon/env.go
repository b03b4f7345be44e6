package daemon

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/golang/glog"

	"github.com/robotalks/eeprom.go/pkg/eeprom"
	"github.com/robotalks/eeprom.go/pkg/env"
	fx "github.com/robotalks/eeprom.go/pkg/framework"
	"github.com/robotalks/eeprom.go/pkg/remote"
	"github.com/robotalks/eeprom.go/pkg/remote/mqtt"
	"github.com/robotalks/eeprom.go/pkg/remote/stream"
	"github.com/robotalks/eeprom.go/pkg/remote/websocket"
)

// Config provides options to setup the daemon owning the adapters.
type Config struct {
	// ConfigFile is the attach configuration.
	ConfigFile string
	// Sim serves a simulated AT24C32 when no ConfigFile is given.
	Sim bool

	// Node is the name the daemon is published under.
	Node string
	// MQTTBrokerURL specifies the MQTT broker to use.
	// e.g. mqtt://host:port/topic-prefix
	MQTTBrokerURL string
	// TCPAddr is the listen address for packet streams.
	TCPAddr string
	// WSAddr is the listen address for websocket connections.
	WSAddr string
	// WSPath is the HTTP path of the websocket endpoint.
	WSPath string
}

var defaultConfig = Config{
	WSPath: "/eeprom",
}

func init() {
	if val := os.Getenv("EEPROM_CONFIG"); val != "" {
		defaultConfig.ConfigFile = val
	}
	if val := os.Getenv("EEPROM_MQTT_URL"); val != "" {
		defaultConfig.MQTTBrokerURL = val
	}
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.ConfigFile, "config", defaultConfig.ConfigFile, "Attach configuration file")
	flag.BoolVar(&defaultConfig.Sim, "sim", defaultConfig.Sim, "Serve a simulated AT24C32 without config file")
	flag.StringVar(&defaultConfig.Node, "node", defaultConfig.Node, "Node name, derived from machine id by default")
	flag.StringVar(&defaultConfig.MQTTBrokerURL, "mqtt", defaultConfig.MQTTBrokerURL, "MQTT broker URL")
	flag.StringVar(&defaultConfig.TCPAddr, "tcp", defaultConfig.TCPAddr, "TCP listen address")
	flag.StringVar(&defaultConfig.WSAddr, "ws", defaultConfig.WSAddr, "Websocket listen address")
	flag.StringVar(&defaultConfig.WSPath, "ws-path", defaultConfig.WSPath, "Websocket HTTP path")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// Env is the env of the daemon.
type Env struct {
	Config    *Config
	Adapters  eeprom.Adapters
	Server    *remote.Server
	Runnables []fx.Runnable
}

// NewEnv attaches the devices and creates the configured transports.
func (c *Config) NewEnv() (*Env, error) {
	var file *env.File
	switch {
	case c.ConfigFile != "":
		f, err := env.LoadFile(c.ConfigFile)
		if err != nil {
			return nil, err
		}
		file = f
	case c.Sim:
		file = env.SimFile()
	default:
		return nil, fmt.Errorf("either -config or -sim is required")
	}

	adapters, err := file.Attach(nil)
	if err != nil {
		glog.Warningf("not all devices attached: %v", err)
	}
	devices := adapters.Devices()
	if len(devices) == 0 {
		adapters.Close()
		return nil, fmt.Errorf("no device attached")
	}

	e := &Env{
		Config:   c,
		Adapters: adapters,
		Server:   remote.NewServer(remote.NewLocal(adapters...)),
	}
	if c.MQTTBrokerURL != "" {
		meta := mqtt.NodeMeta{Node: c.Node, MachineID: env.MachineID()}
		if meta.Node == "" {
			meta.Node = env.DefaultNode()
		}
		for _, d := range devices {
			meta.Devices = append(meta.Devices, d.Label().String())
		}
		server, err := mqtt.NewServer(c.MQTTBrokerURL, meta, e.Server.Serve)
		if err != nil {
			adapters.Close()
			return nil, fmt.Errorf("create MQTT server error: %w", err)
		}
		e.Runnables = append(e.Runnables, server)
	}
	if c.TCPAddr != "" {
		e.Runnables = append(e.Runnables, fx.NamedRun("tcp", &stream.Listener{
			Addr: c.TCPAddr,
			Serve: func(ctx context.Context, rw *stream.ReadWriter) error {
				return e.Server.Serve(ctx, rw)
			},
		}))
	}
	if c.WSAddr != "" {
		e.Runnables = append(e.Runnables, fx.NamedRun("websocket", &websocket.Listener{
			Addr: c.WSAddr,
			Path: c.WSPath,
			Serve: func(ctx context.Context, rw *websocket.ReadWriter) error {
				return e.Server.Serve(ctx, rw)
			},
		}))
	}
	if len(e.Runnables) == 0 {
		adapters.Close()
		return nil, fmt.Errorf("at least one of -mqtt, -tcp, -ws is required")
	}
	return e, nil
}

// MustNewEnv creates Env and fails on error.
func (c *Config) MustNewEnv() *Env {
	e, err := c.NewEnv()
	if err != nil {
		log.Fatalln(err)
	}
	return e
}

// Run serves until ctx is canceled and releases the adapters.
func (e *Env) Run(ctx context.Context) error {
	defer e.Adapters.Close()
	return fx.NewRunnerWith(ctx).Run(e.Runnables...)
}
