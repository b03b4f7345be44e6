package client

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/url"
	"os"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/eeprom.go/pkg/env"
	"github.com/robotalks/eeprom.go/pkg/remote"
	"github.com/robotalks/eeprom.go/pkg/remote/mqtt"
	"github.com/robotalks/eeprom.go/pkg/remote/stream"
	"github.com/robotalks/eeprom.go/pkg/remote/websocket"
)

// Config provides common options to reach devices, either through a
// daemon or by attaching them locally.
type Config struct {
	// RemoteURL specifies the daemon to connect.
	// e.g. tcp://host:port, ws://host:port/eeprom, mqtt://host:port/topic-prefix
	RemoteURL string
	// Node is the daemon node name, required for mqtt.
	Node string
	// ConfigFile attaches devices locally when RemoteURL is empty.
	ConfigFile string
	// Timeout is the expiration of remote commands.
	Timeout time.Duration
}

var defaultConfig = Config{
	Timeout: remote.DefaultCommandExpiration,
}

func init() {
	if val := os.Getenv("EEPROM_REMOTE"); val != "" {
		defaultConfig.RemoteURL = val
	}
	if val := os.Getenv("EEPROM_NODE"); val != "" {
		defaultConfig.Node = val
	}
	if val := os.Getenv("EEPROM_CONFIG"); val != "" {
		defaultConfig.ConfigFile = val
	}
}

// SetupFlags sets up command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.RemoteURL, "remote", defaultConfig.RemoteURL, "Daemon URL (tcp://, ws://, mqtt://)")
	flag.StringVar(&defaultConfig.Node, "node", defaultConfig.Node, "Daemon node name for mqtt")
	flag.StringVar(&defaultConfig.ConfigFile, "config", defaultConfig.ConfigFile, "Attach devices locally with configuration file")
	flag.DurationVar(&defaultConfig.Timeout, "timeout", defaultConfig.Timeout, "Remote command timeout")
}

// Default gets the default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// Dial connects a packet transport according to RemoteURL.
func (c *Config) Dial(ctx context.Context) (remote.PacketReadWriter, error) {
	u, err := url.Parse(c.RemoteURL)
	if err != nil {
		return nil, fmt.Errorf("invalid remote URL: %w", err)
	}
	switch u.Scheme {
	case "tcp":
		return stream.Dial(ctx, u.Host)
	case "ws", "wss":
		return websocket.Dial(c.RemoteURL)
	case "mqtt", "mqtts":
		return mqtt.Dial(ctx, c.RemoteURL, c.Node)
	default:
		return nil, fmt.Errorf("unknown remote URL scheme: %q", u.Scheme)
	}
}

// Connect connects to the daemon. The returned Client is running
// until ctx is canceled or the client is closed.
func (c *Config) Connect(ctx context.Context) (*remote.Client, error) {
	rw, err := c.Dial(ctx)
	if err != nil {
		return nil, err
	}
	cli := remote.NewClient(rw)
	if c.Timeout > 0 {
		cli.Expiration = c.Timeout
	}
	go func() {
		if err := cli.Run(ctx); err != nil && err != context.Canceled {
			glog.V(1).Infof("connection to %s closed: %v", c.RemoteURL, err)
		}
	}()
	return cli, nil
}

// Open returns Storage from a daemon when RemoteURL is set, or from
// locally attached devices otherwise.
func (c *Config) Open(ctx context.Context) (remote.Storage, io.Closer, error) {
	if c.RemoteURL != "" {
		cli, err := c.Connect(ctx)
		if err != nil {
			return nil, nil, err
		}
		return cli, cli, nil
	}
	if c.ConfigFile == "" {
		return nil, nil, fmt.Errorf("either -remote or -config is required")
	}
	f, err := env.LoadFile(c.ConfigFile)
	if err != nil {
		return nil, nil, err
	}
	adapters, err := f.Attach(nil)
	if err != nil {
		glog.Warningf("not all devices attached: %v", err)
	}
	return remote.NewLocal(adapters...), adapters, nil
}

// MustOpen opens Storage and fails on error.
func (c *Config) MustOpen(ctx context.Context) (remote.Storage, io.Closer) {
	s, closer, err := c.Open(ctx)
	if err != nil {
		log.Fatalln(err)
	}
	return s, closer
}
