package remote

import (
	"context"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/eeprom.go/pkg/eeprom"
	"github.com/robotalks/eeprom.go/pkg/eeprom/bus"
	"github.com/robotalks/eeprom.go/pkg/remote/msgs"
	"github.com/robotalks/eeprom.go/pkg/remote/stream"
	"github.com/robotalks/eeprom.go/pkg/sim"
)

type remoteTestEnv struct {
	bus     *sim.Bus
	adapter *eeprom.Adapter
	server  *Server
}

func newRemoteTestEnv(t *testing.T) *remoteTestEnv {
	env := &remoteTestEnv{bus: sim.NewBus()}
	env.bus.AddChip(0x50, 4096, 2)
	env.adapter = eeprom.NewAdapter("i2c-test", env.bus)
	_, err := env.adapter.Attach(eeprom.DeviceConfig{
		Label:        "at24c32",
		Addr:         0x50,
		Size:         eeprom.IntProp(4096),
		PageSize:     eeprom.IntProp(32),
		AddressWidth: eeprom.IntProp(2),
	})
	require.NoError(t, err)
	env.server = NewServer(NewLocal(env.adapter))
	return env
}

func (env *remoteTestEnv) connect(t *testing.T, eventHandler func(msgs.Message)) *Client {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	serverConn, clientConn := net.Pipe()
	go env.server.Serve(ctx, stream.New(serverConn))
	c := NewClient(stream.New(clientConn))
	c.EventHandler = eventHandler
	go c.Run(ctx)
	return c
}

func TestRemotePageAccess(t *testing.T) {
	env := newRemoteTestEnv(t)
	c := env.connect(t, nil)
	ctx := context.Background()

	infos, err := c.Devices(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	require.Equal(t, "at24c32", infos[0].Label)
	require.Equal(t, uint16(0x50), infos[0].Addr)
	require.Equal(t, 128, infos[0].Pages())

	require.NoError(t, c.SetPage(ctx, "at24c32", 5))
	cur, pages, err := c.Page(ctx, "at24c32")
	require.NoError(t, err)
	require.Equal(t, 5, cur)
	require.Equal(t, 128, pages)

	data := []byte{0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa}
	page, n, err := c.Write(ctx, "at24c32", data)
	require.NoError(t, err)
	require.Equal(t, 5, page)
	require.Equal(t, len(data), n)
	require.Equal(t, data, env.bus.Chip(0x50).Mem[160:170])

	p, err := c.ReadPage(ctx, "at24c32")
	require.NoError(t, err)
	require.Equal(t, 5, p.Number)
	require.Equal(t, 32, p.Filled)
	require.Equal(t, data, p.Data[:10])
}

func TestRemoteErrors(t *testing.T) {
	env := newRemoteTestEnv(t)
	// no chip answers at 0x51.
	_, err := env.adapter.Attach(eeprom.DeviceConfig{
		Label:        "ghost",
		Addr:         0x51,
		Size:         eeprom.IntProp(256),
		PageSize:     eeprom.IntProp(16),
		AddressWidth: eeprom.IntProp(1),
	})
	require.NoError(t, err)
	c := env.connect(t, nil)
	ctx := context.Background()

	err = c.SetPage(ctx, "at24c32", 128)
	require.True(t, errors.Is(err, eeprom.ErrOutOfRange), "%v", err)
	page, _, err := c.Page(ctx, "at24c32")
	require.NoError(t, err)
	require.Zero(t, page)

	_, _, err = c.Write(ctx, "at24c32", make([]byte, 33))
	require.True(t, errors.Is(err, eeprom.ErrTooLarge), "%v", err)
	require.Zero(t, env.bus.Calls())

	_, err = c.ReadPage(ctx, "nothing")
	require.True(t, errors.Is(err, eeprom.ErrNoDevice), "%v", err)

	_, err = c.ReadPage(ctx, "ghost")
	require.True(t, errors.Is(err, eeprom.ErrTimedOut), "%v", err)
	var cmdErr *msgs.CommandErr
	require.True(t, errors.As(err, &cmdErr))
	require.Equal(t, msgs.CodeTimedOut, cmdErr.Code)
}

func TestRemoteWriteBroadcast(t *testing.T) {
	env := newRemoteTestEnv(t)
	events := make(chan msgs.Message, 1)
	writer := env.connect(t, nil)
	watcher := env.connect(t, func(msg msgs.Message) { events <- msg })
	ctx := context.Background()

	// make sure the watcher connection is registered.
	_, err := watcher.Devices(ctx)
	require.NoError(t, err)

	require.NoError(t, writer.SetPage(ctx, "at24c32", 3))
	_, _, err = writer.Write(ctx, "at24c32", []byte{1, 2, 3})
	require.NoError(t, err)

	select {
	case msg := <-events:
		ev, ok := msg.(*msgs.PageWritten)
		require.True(t, ok)
		require.Equal(t, "at24c32", ev.Device)
		require.Equal(t, uint32(3), ev.Page)
		require.Equal(t, uint32(3), ev.Written)
	case <-time.After(time.Second):
		t.Fatal("no PageWritten event")
	}
}

func TestRemoteWriteReportsPageWritten(t *testing.T) {
	env := newRemoteTestEnv(t)
	ctx := context.Background()
	events := make(chan msgs.Message, 1)
	writer := env.connect(t, func(msg msgs.Message) { events <- msg })
	other := env.connect(t, nil)

	// another connection moves the cursor while the write is on the bus.
	setErr := make(chan error, 1)
	var once sync.Once
	env.bus.Fault = func(call int, addr uint16, m []bus.Msg) *sim.Outcome {
		if len(m) == 1 && len(m[0].Buf) > 2 {
			once.Do(func() {
				go func() { setErr <- other.SetPage(ctx, "at24c32", 9) }()
				time.Sleep(20 * time.Millisecond)
			})
		}
		return nil
	}

	require.NoError(t, writer.SetPage(ctx, "at24c32", 5))
	page, n, err := writer.Write(ctx, "at24c32", []byte{4, 5, 6})
	require.NoError(t, err)
	require.Equal(t, 5, page)
	require.Equal(t, 3, n)
	require.Equal(t, []byte{4, 5, 6}, env.bus.Chip(0x50).Mem[160:163])

	select {
	case msg := <-events:
		ev, ok := msg.(*msgs.PageWritten)
		require.True(t, ok)
		require.Equal(t, uint32(5), ev.Page)
	case <-time.After(time.Second):
		t.Fatal("no PageWritten event")
	}

	require.NoError(t, <-setErr)
	cur, _, err := writer.Page(ctx, "at24c32")
	require.NoError(t, err)
	require.Equal(t, 9, cur)
}

func TestStalledPeerDoesNotBlockWrites(t *testing.T) {
	env := newRemoteTestEnv(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// a peer which stops reading after its first reply.
	serverConn, peerConn := net.Pipe()
	defer peerConn.Close()
	go env.server.Serve(ctx, stream.New(serverConn))
	peer := stream.New(peerConn)
	query, err := msgs.TypedFrom(&msgs.DeviceQuery{})
	require.NoError(t, err)
	query.Sequence = 1
	pkt, err := query.Encode()
	require.NoError(t, err)
	go peer.WritePacket(pkt)
	_, err = peer.ReadPacket()
	require.NoError(t, err)

	writer := env.connect(t, nil)
	done := make(chan error, 1)
	go func() {
		for i := 0; i < EventQueueSize+4; i++ {
			if _, _, err := writer.Write(ctx, "at24c32", []byte{byte(i)}); err != nil {
				done <- err
				return
			}
		}
		done <- nil
	}()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("writes blocked by a peer not reading")
	}
}

func TestClientClosed(t *testing.T) {
	serverConn, clientConn := net.Pipe()
	c := NewClient(stream.New(clientConn))
	done := make(chan error, 1)
	go func() { done <- c.Run(context.Background()) }()
	serverConn.Close()
	<-done
	_, err := c.Devices(context.Background())
	require.True(t, errors.Is(err, ErrClosed))
}

func TestClientExpiration(t *testing.T) {
	serverConn, clientConn := net.Pipe()
	defer serverConn.Close()
	// drain without replying
	go func() {
		rw := stream.New(serverConn)
		for {
			if _, err := rw.ReadPacket(); err != nil {
				return
			}
		}
	}()
	c := NewClient(stream.New(clientConn))
	c.Expiration = 10 * time.Millisecond
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go c.Run(ctx)
	_, err := c.Devices(context.Background())
	require.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestUnsupportedCommand(t *testing.T) {
	env := newRemoteTestEnv(t)
	serverConn, clientConn := net.Pipe()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go env.server.Serve(ctx, stream.New(serverConn))
	rw := stream.New(clientConn)
	typed := &msgs.Typed{}
	typed.TypeId = msgs.GroupEEPROM | 0x0100
	typed.Sequence = 9
	pkt, err := typed.Encode()
	require.NoError(t, err)
	go rw.WritePacket(pkt)
	pkt, err = rw.ReadPacket()
	require.NoError(t, err)
	reply, err := msgs.DecodeTyped(pkt)
	require.NoError(t, err)
	require.Equal(t, uint32(9), reply.Sequence)
	msg, err := reply.Decode()
	require.NoError(t, err)
	require.Equal(t, msgs.CodeUnsupported, msg.(*msgs.CommandErr).Code)
}
