package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/eeprom.go/pkg/eeprom/bus"
)

func TestChipReadWrite(t *testing.T) {
	b := NewBus()
	b.AddChip(0x50, 4096, 2)

	n, err := b.Transfer(0x50, []bus.Msg{{Buf: []byte{0x00, 0xa0, 1, 2, 3}}})
	require.NoError(t, err)
	require.Equal(t, 1, n)

	buf := make([]byte, 4)
	n, err = b.Transfer(0x50, []bus.Msg{{Buf: []byte{0x00, 0xa0}}, {Read: true, Buf: buf}})
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, []byte{1, 2, 3, 0xff}, buf)
	require.Equal(t, 2, b.Calls())

	_, err = b.Transfer(0x51, []bus.Msg{{Buf: []byte{0, 0}}})
	require.Equal(t, ErrNACK, err)
}

func TestChipWraps(t *testing.T) {
	b := NewBus()
	c := b.AddChip(0x50, 256, 1)
	_, err := b.Transfer(0x50, []bus.Msg{{Buf: []byte{0xff, 1, 2}}})
	require.NoError(t, err)
	require.Equal(t, byte(1), c.Mem[0xff])
	require.Equal(t, byte(2), c.Mem[0])
}

func TestWriteCycle(t *testing.T) {
	now := time.Unix(0, 0)
	b := NewBus()
	b.WriteCycle = 5 * time.Millisecond
	b.Now = func() time.Time { return now }
	b.AddChip(0x50, 256, 1)

	_, err := b.Transfer(0x50, []bus.Msg{{Buf: []byte{0, 1}}})
	require.NoError(t, err)
	_, err = b.Transfer(0x50, []bus.Msg{{Buf: []byte{0}}, {Read: true, Buf: make([]byte, 1)}})
	require.Equal(t, ErrNACK, err)
	now = now.Add(5 * time.Millisecond)
	_, err = b.Transfer(0x50, []bus.Msg{{Buf: []byte{0}}, {Read: true, Buf: make([]byte, 1)}})
	require.NoError(t, err)
}

func TestFaults(t *testing.T) {
	b := NewBus()
	b.AddChip(0x50, 256, 1)
	b.Fault = FailFirst(2)
	for i := 0; i < 2; i++ {
		_, err := b.Transfer(0x50, []bus.Msg{{Buf: []byte{0}}})
		require.Equal(t, ErrNACK, err)
	}
	_, err := b.Transfer(0x50, []bus.Msg{{Buf: []byte{0}}})
	require.NoError(t, err)

	b.Fault = ShortTransfer()
	n, err := b.Transfer(0x50, []bus.Msg{{Buf: []byte{0}}, {Read: true, Buf: make([]byte, 1)}})
	require.NoError(t, err)
	require.Equal(t, 1, n)

	b.ResetCalls()
	require.Zero(t, b.Calls())
}
