package websocket

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEcho(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	server := httptest.NewServer(Handler(ctx, func(ctx context.Context, rw *ReadWriter) error {
		for {
			pkt, err := rw.ReadPacket()
			if err != nil {
				return err
			}
			if err = rw.WritePacket(append([]byte{0xee}, pkt...)); err != nil {
				return err
			}
		}
	}))
	defer server.Close()

	rw, err := Dial("ws" + strings.TrimPrefix(server.URL, "http"))
	require.NoError(t, err)
	defer rw.Close()
	require.NoError(t, rw.WritePacket([]byte{1, 2, 3}))
	pkt, err := rw.ReadPacket()
	require.NoError(t, err)
	require.Equal(t, []byte{0xee, 1, 2, 3}, pkt)
}
