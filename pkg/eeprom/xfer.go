package eeprom

import (
	"github.com/golang/glog"

	"github.com/robotalks/eeprom.go/pkg/eeprom/bus"
)

// Header encodes offset into width bytes, most significant first.
func Header(offset, width int) []byte {
	h := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		h[i] = byte(offset)
		offset >>= 8
	}
	return h
}

// xfer issues single bounded transactions for one device.
// It keeps no state across calls.
type xfer struct {
	bus    bus.Transport
	addr   uint16
	width  int
	limits Limits
}

// read receives up to the read limit into buf at offset and returns
// the number of bytes received.
func (x *xfer) read(offset int, buf []byte) (int, error) {
	n := len(buf)
	if n > x.limits.Read {
		n = x.limits.Read
	}
	msgs := []bus.Msg{
		{Buf: Header(offset, x.width)},
		{Read: true, Buf: buf[:n]},
	}
	if err := x.transfer("read", offset, msgs); err != nil {
		return 0, err
	}
	return n, nil
}

// write sends up to the write limit from buf at offset, trailing bytes
// beyond the limit are dropped.
func (x *xfer) write(offset int, buf []byte) (int, error) {
	n := len(buf)
	if n > x.limits.Write {
		n = x.limits.Write
	}
	frame := make([]byte, x.width+n)
	copy(frame, Header(offset, x.width))
	copy(frame[x.width:], buf[:n])
	if err := x.transfer("write", offset, []bus.Msg{{Buf: frame}}); err != nil {
		return 0, err
	}
	return n, nil
}

func (x *xfer) transfer(op string, offset int, msgs []bus.Msg) error {
	phases, err := x.bus.Transfer(x.addr, msgs)
	if err == nil && phases != len(msgs) {
		err = ErrShortTransfer
	}
	if err != nil {
		if glog.V(2) {
			glog.Infof("%s 0x%02x@0x%04x failed: %v", op, x.addr, offset, err)
		}
		return &BusError{Op: op, Addr: x.addr, Offset: offset, Err: err}
	}
	return nil
}
