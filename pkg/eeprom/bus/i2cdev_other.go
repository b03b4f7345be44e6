//go:build !linux
// +build !linux

package bus

import "errors"

// ErrUnsupported indicates i2c-dev is not available on this platform.
var ErrUnsupported = errors.New("i2c-dev is only supported on linux")

// I2CDev is a Transport over a Linux i2c-dev character device.
type I2CDev struct{}

// OpenI2CDev opens an i2c-dev node, e.g. /dev/i2c-1.
func OpenI2CDev(path string) (*I2CDev, error) {
	return nil, ErrUnsupported
}

// OpenI2CBus opens /dev/i2c-<bus>.
func OpenI2CBus(bus int) (*I2CDev, error) {
	return nil, ErrUnsupported
}

// Path returns the device node path.
func (d *I2CDev) Path() string {
	return ""
}

// Close implements io.Closer.
func (d *I2CDev) Close() error {
	return ErrUnsupported
}

// Transfer implements Transport.
func (d *I2CDev) Transfer(addr uint16, msgs []Msg) (int, error) {
	return 0, ErrUnsupported
}
