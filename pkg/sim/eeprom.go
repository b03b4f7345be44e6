// Package sim simulates serial EEPROM chips on an I2C bus.
package sim

import (
	"errors"
	"sync"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/eeprom.go/pkg/eeprom/bus"
)

// ErrNACK is reported when no device acknowledges its address.
var ErrNACK = errors.New("no acknowledgment")

// Chip is a simulated serial EEPROM. Erased cells read as 0xff.
type Chip struct {
	Mem          []byte
	AddressWidth int

	ptr       int
	busyUntil time.Time
}

// NewChip creates an erased chip.
func NewChip(size, addressWidth int) *Chip {
	c := &Chip{Mem: make([]byte, size), AddressWidth: addressWidth}
	c.Erase()
	return c
}

// Erase sets all cells to 0xff.
func (c *Chip) Erase() {
	for i := range c.Mem {
		c.Mem[i] = 0xff
	}
}

func (c *Chip) seek(header []byte) {
	ptr := 0
	for _, b := range header {
		ptr = ptr<<8 | int(b)
	}
	c.ptr = ptr % len(c.Mem)
}

func (c *Chip) put(data []byte) {
	for _, b := range data {
		c.Mem[c.ptr] = b
		c.ptr = (c.ptr + 1) % len(c.Mem)
	}
}

func (c *Chip) get(data []byte) {
	for i := range data {
		data[i] = c.Mem[c.ptr]
		c.ptr = (c.ptr + 1) % len(c.Mem)
	}
}

// Outcome overrides the result of a transfer.
type Outcome struct {
	Phases int
	Err    error
}

// FaultFunc is consulted before a transfer reaches the chips. call is
// the 1-based transfer count. Returning nil lets the transfer through.
type FaultFunc func(call int, addr uint16, msgs []bus.Msg) *Outcome

// Bus is a simulated I2C bus, it implements bus.Transport.
type Bus struct {
	// Fault injects failures, optional.
	Fault FaultFunc
	// WriteCycle is how long a chip ignores its address after a write.
	WriteCycle time.Duration
	// Now is the clock, time.Now when nil.
	Now func() time.Time

	chips map[uint16]*Chip
	calls int
	lock  sync.Mutex
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{chips: make(map[uint16]*Chip)}
}

// AddChip attaches an erased chip at addr.
func (b *Bus) AddChip(addr uint16, size, addressWidth int) *Chip {
	c := NewChip(size, addressWidth)
	b.lock.Lock()
	if b.chips == nil {
		b.chips = make(map[uint16]*Chip)
	}
	b.chips[addr] = c
	b.lock.Unlock()
	return c
}

// Chip returns the chip at addr.
func (b *Bus) Chip(addr uint16) *Chip {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.chips[addr]
}

// Calls returns the number of transfers issued so far.
func (b *Bus) Calls() int {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.calls
}

// ResetCalls clears the transfer counter.
func (b *Bus) ResetCalls() {
	b.lock.Lock()
	b.calls = 0
	b.lock.Unlock()
}

func (b *Bus) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return time.Now()
}

// Transfer implements bus.Transport.
func (b *Bus) Transfer(addr uint16, msgs []bus.Msg) (int, error) {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.calls++
	if f := b.Fault; f != nil {
		if o := f(b.calls, addr, msgs); o != nil {
			return o.Phases, o.Err
		}
	}
	c := b.chips[addr]
	if c == nil {
		return 0, ErrNACK
	}
	now := b.now()
	if now.Before(c.busyUntil) {
		glog.V(3).Infof("sim 0x%02x busy", addr)
		return 0, ErrNACK
	}
	for n, m := range msgs {
		if m.Read {
			c.get(m.Buf)
			continue
		}
		if len(m.Buf) < c.AddressWidth {
			return n, ErrNACK
		}
		c.seek(m.Buf[:c.AddressWidth])
		if data := m.Buf[c.AddressWidth:]; len(data) > 0 {
			c.put(data)
			c.busyUntil = now.Add(b.WriteCycle)
		}
	}
	return len(msgs), nil
}

// FailFirst fails the first n transfers with ErrNACK.
func FailFirst(n int) FaultFunc {
	return func(call int, addr uint16, msgs []bus.Msg) *Outcome {
		if call <= n {
			return &Outcome{Err: ErrNACK}
		}
		return nil
	}
}

// ShortTransfer always reports one phase less than issued without error.
func ShortTransfer() FaultFunc {
	return func(call int, addr uint16, msgs []bus.Msg) *Outcome {
		return &Outcome{Phases: len(msgs) - 1}
	}
}
