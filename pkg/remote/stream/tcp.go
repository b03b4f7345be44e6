package stream

import (
	"context"
	"errors"
	"net"

	"github.com/golang/glog"

	fx "github.com/robotalks/eeprom.go/pkg/framework"
)

// MaxPacketSize limits the length prefix accepted from peers.
const MaxPacketSize = 1 << 16

// ErrPacketTooLarge indicates the length prefix exceeds MaxPacketSize.
var ErrPacketTooLarge = errors.New("packet too large")

// ServeFunc serves one packet connection.
type ServeFunc func(context.Context, *ReadWriter) error

// Listener accepts TCP connections and serves each as a packet stream.
type Listener struct {
	Addr  string
	Serve ServeFunc
}

// Run implements Runnable.
func (l *Listener) Run(ctx context.Context) error {
	ln, err := l.listen()
	if err != nil {
		return err
	}
	return l.serve(ctx, ln)
}

func (l *Listener) listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", l.Addr)
	if err != nil {
		return nil, err
	}
	glog.Infof("listening on tcp %s", ln.Addr())
	return ln, nil
}

func (l *Listener) serve(ctx context.Context, ln net.Listener) error {
	return fx.RunWithContextCloser(ctx, ln, func() error {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return err
			}
			go func(conn net.Conn) {
				glog.V(1).Infof("tcp client %s connected", conn.RemoteAddr())
				err := l.Serve(ctx, New(conn))
				glog.V(1).Infof("tcp client %s disconnected: %v", conn.RemoteAddr(), err)
			}(conn)
		}
	})
}

// Dial connects to a Listener.
func Dial(ctx context.Context, addr string) (*ReadWriter, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	return New(conn), nil
}
