package websocket

import (
	"context"
	"net"
	"net/http"

	"github.com/golang/glog"
	"golang.org/x/net/websocket"

	fx "github.com/robotalks/eeprom.go/pkg/framework"
)

// ReadWriter implements PacketReadWriter using binary frames.
type ReadWriter websocket.Conn

// New wraps websocket.Conn.
func New(conn *websocket.Conn) *ReadWriter {
	return (*ReadWriter)(conn)
}

// ReadPacket implements PacketReader.
func (p *ReadWriter) ReadPacket() (pkt []byte, err error) {
	err = websocket.Message.Receive((*websocket.Conn)(p), &pkt)
	return
}

// WritePacket implements PacketWriter.
func (p *ReadWriter) WritePacket(pkt []byte) error {
	return websocket.Message.Send((*websocket.Conn)(p), pkt)
}

// Close implements io.Closer.
func (p *ReadWriter) Close() error {
	return (*websocket.Conn)(p).Close()
}

// ServeFunc serves one packet connection.
type ServeFunc func(context.Context, *ReadWriter) error

// Handler returns an http.Handler serving each websocket connection.
func Handler(ctx context.Context, serve ServeFunc) http.Handler {
	return websocket.Handler(func(conn *websocket.Conn) {
		glog.V(1).Infof("websocket client %s connected", conn.Request().RemoteAddr)
		err := serve(ctx, New(conn))
		glog.V(1).Infof("websocket client %s disconnected: %v", conn.Request().RemoteAddr, err)
	})
}

// Listener serves websocket connections on Path.
type Listener struct {
	Addr  string
	Path  string
	Serve ServeFunc
}

// Run implements Runnable.
func (l *Listener) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", l.Addr)
	if err != nil {
		return err
	}
	path := l.Path
	if path == "" {
		path = "/"
	}
	mux := http.NewServeMux()
	mux.Handle(path, Handler(ctx, l.Serve))
	server := &http.Server{Handler: mux}
	glog.Infof("listening on ws://%s%s", ln.Addr(), path)
	return fx.RunWithContextCloser(ctx, server, func() error {
		return server.Serve(ln)
	})
}

// Dial connects to a websocket url, e.g. ws://host:port/path.
func Dial(url string) (*ReadWriter, error) {
	conn, err := websocket.Dial(url, "", "http://localhost/")
	if err != nil {
		return nil, err
	}
	return New(conn), nil
}
