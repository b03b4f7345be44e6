//go:build linux
// +build linux

package bus

import (
	"fmt"
	"os"
	"runtime"
	"unsafe"

	"github.com/golang/glog"
	"golang.org/x/sys/unix"
)

// I2CDev is a Transport over a Linux i2c-dev character device.
type I2CDev struct {
	file *os.File
	path string
}

// OpenI2CDev opens an i2c-dev node, e.g. /dev/i2c-1.
func OpenI2CDev(path string) (*I2CDev, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0600)
	if err != nil {
		return nil, err
	}
	d := &I2CDev{file: f, path: path}
	var funcs uint64
	if errno := d.ioctl(iocFUNCS, unsafe.Pointer(&funcs)); errno != 0 {
		d.file.Close()
		return nil, fmt.Errorf("%s: query functionality: %v", path, errno)
	}
	if funcs&funcI2C == 0 {
		d.file.Close()
		return nil, fmt.Errorf("%s: adapter does not support combined transfers", path)
	}
	glog.V(2).Infof("opened %s funcs=%#x", path, funcs)
	return d, nil
}

// OpenI2CBus opens /dev/i2c-<bus>.
func OpenI2CBus(bus int) (*I2CDev, error) {
	return OpenI2CDev(fmt.Sprintf("/dev/i2c-%d", bus))
}

// Path returns the device node path.
func (d *I2CDev) Path() string {
	return d.path
}

// Close implements io.Closer.
func (d *I2CDev) Close() error {
	return d.file.Close()
}

// Transfer implements Transport.
func (d *I2CDev) Transfer(addr uint16, msgs []Msg) (int, error) {
	if len(msgs) == 0 {
		return 0, nil
	}
	raw := make([]i2cMsg, len(msgs))
	for n, m := range msgs {
		raw[n].addr = addr
		raw[n].len = uint16(len(m.Buf))
		if m.Read {
			raw[n].flags = flagRD
		}
		if len(m.Buf) > 0 {
			raw[n].buf = &m.Buf[0]
		}
	}
	data := i2cRdwrData{msgs: &raw[0], nmsgs: uint32(len(raw))}
	r, _, errno := unix.Syscall(unix.SYS_IOCTL, d.file.Fd(), uintptr(iocRDWR), uintptr(unsafe.Pointer(&data)))
	runtime.KeepAlive(raw)
	runtime.KeepAlive(msgs)
	if errno != 0 {
		return 0, errno
	}
	return int(r), nil
}

func (d *I2CDev) ioctl(req uint, ptr unsafe.Pointer) unix.Errno {
	_, _, err := unix.Syscall(unix.SYS_IOCTL, d.file.Fd(), uintptr(req), uintptr(ptr))
	return err
}

// mirrors struct i2c_msg from linux/i2c.h
type i2cMsg struct {
	addr  uint16
	flags uint16
	len   uint16
	buf   *byte
}

// mirrors struct i2c_rdwr_ioctl_data from linux/i2c-dev.h
type i2cRdwrData struct {
	msgs  *i2cMsg
	nmsgs uint32
}

const (
	iocFUNCS uint = 0x0705
	iocRDWR  uint = 0x0707

	flagRD  uint16 = 0x0001
	funcI2C uint64 = 0x00000001
)
