package eeprom

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/robotalks/eeprom.go/pkg/eeprom/bus"
)

type mockTransport struct {
	mock.Mock
}

func (m *mockTransport) Transfer(addr uint16, msgs []bus.Msg) (int, error) {
	args := m.Called(addr, msgs)
	return args.Int(0), args.Error(1)
}

func TestHeader(t *testing.T) {
	testCases := []struct {
		name   string
		offset int
		width  int
		expect []byte
	}{
		{"one byte", 0x5a, 1, []byte{0x5a}},
		{"one byte truncates", 0x15a, 1, []byte{0x5a}},
		{"two bytes", 160, 2, []byte{0x00, 0xa0}},
		{"two bytes high", 0x0fe0, 2, []byte{0x0f, 0xe0}},
		{"zero", 0, 2, []byte{0, 0}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expect, Header(tc.offset, tc.width))
		})
	}
}

func TestXferWriteFraming(t *testing.T) {
	m := &mockTransport{}
	x := &xfer{bus: m, addr: 0x50, width: 2, limits: Limits{Read: 32, Write: 32}}
	data := []byte{0xaa, 0xaa, 0xaa}
	m.On("Transfer", uint16(0x50), []bus.Msg{{Buf: []byte{0x00, 0xa0, 0xaa, 0xaa, 0xaa}}}).Return(1, nil).Once()

	n, err := x.write(160, data)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	m.AssertExpectations(t)
}

func TestXferWriteTruncates(t *testing.T) {
	m := &mockTransport{}
	x := &xfer{bus: m, addr: 0x50, width: 1, limits: Limits{Read: 8, Write: 4}}
	m.On("Transfer", uint16(0x50), mock.MatchedBy(func(msgs []bus.Msg) bool {
		return len(msgs) == 1 && len(msgs[0].Buf) == 5 && msgs[0].Buf[0] == 0x10
	})).Return(1, nil).Once()

	n, err := x.write(0x10, []byte{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	require.Equal(t, 4, n)
	m.AssertExpectations(t)
}

func TestXferReadFraming(t *testing.T) {
	m := &mockTransport{}
	x := &xfer{bus: m, addr: 0x51, width: 2, limits: Limits{Read: 4, Write: 32}}
	m.On("Transfer", uint16(0x51), mock.MatchedBy(func(msgs []bus.Msg) bool {
		return len(msgs) == 2 &&
			!msgs[0].Read && len(msgs[0].Buf) == 2 && msgs[0].Buf[0] == 0x01 && msgs[0].Buf[1] == 0x20 &&
			msgs[1].Read && len(msgs[1].Buf) == 4
	})).Run(func(args mock.Arguments) {
		copy(args.Get(1).([]bus.Msg)[1].Buf, []byte{1, 2, 3, 4})
	}).Return(2, nil).Once()

	buf := make([]byte, 8)
	n, err := x.read(0x120, buf)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, []byte{1, 2, 3, 4, 0, 0, 0, 0}, buf)
	m.AssertExpectations(t)
}

func TestXferErrors(t *testing.T) {
	transportErr := errors.New("arbitration lost")
	testCases := []struct {
		name   string
		phases int
		err    error
		expect error
	}{
		{"transport error", 0, transportErr, transportErr},
		{"phase mismatch", 1, nil, ErrShortTransfer},
		{"no phases", 0, nil, ErrShortTransfer},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := &mockTransport{}
			m.On("Transfer", uint16(0x50), mock.Anything).Return(tc.phases, tc.err)
			x := &xfer{bus: m, addr: 0x50, width: 2, limits: DefaultLimits}

			_, err := x.read(0, make([]byte, 4))
			require.True(t, errors.Is(err, tc.expect), "read: %v", err)
			var busErr *BusError
			require.True(t, errors.As(err, &busErr))
			require.Equal(t, "read", busErr.Op)

			if tc.phases == 1 {
				// a single phase is complete for writes.
				return
			}
			_, err = x.write(32, []byte{1})
			require.True(t, errors.Is(err, tc.expect), "write: %v", err)
			require.True(t, errors.As(err, &busErr))
			require.Equal(t, 32, busErr.Offset)
		})
	}
}
