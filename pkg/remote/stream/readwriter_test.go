package stream

import (
	"bytes"
	"context"
	"encoding/binary"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFraming(t *testing.T) {
	var buf bytes.Buffer
	rw := New(&buf)
	require.NoError(t, rw.WritePacket([]byte{0xaa, 0xbb}))
	require.Equal(t, []byte{2, 0, 0, 0, 0xaa, 0xbb}, buf.Bytes())
	require.NoError(t, rw.WritePacket(nil))

	pkt, err := rw.ReadPacket()
	require.NoError(t, err)
	require.Equal(t, []byte{0xaa, 0xbb}, pkt)
	pkt, err = rw.ReadPacket()
	require.NoError(t, err)
	require.Empty(t, pkt)
	require.NoError(t, rw.Close())
}

func TestPacketTooLarge(t *testing.T) {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, uint32(MaxPacketSize+1))
	_, err := New(&buf).ReadPacket()
	require.Equal(t, ErrPacketTooLarge, err)
}

func TestListener(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	served := make(chan []byte, 1)
	l := &Listener{
		Addr: "127.0.0.1:0",
		Serve: func(ctx context.Context, rw *ReadWriter) error {
			defer rw.Close()
			pkt, err := rw.ReadPacket()
			if err == nil {
				served <- pkt
			}
			return err
		},
	}
	ln, err := l.listen()
	require.NoError(t, err)
	done := make(chan error, 1)
	go func() { done <- l.serve(ctx, ln) }()

	rw, err := Dial(ctx, ln.Addr().String())
	require.NoError(t, err)
	defer rw.Close()
	require.NoError(t, rw.WritePacket([]byte("hello")))
	select {
	case pkt := <-served:
		require.Equal(t, []byte("hello"), pkt)
	case <-time.After(time.Second):
		t.Fatal("packet not served")
	}
	cancel()
	<-done
}
