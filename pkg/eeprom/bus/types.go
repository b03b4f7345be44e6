// Package bus defines the I2C transport consumed by the eeprom package.
package bus

// Msg is one phase of a combined bus transaction.
type Msg struct {
	// Read receives len(Buf) bytes from the device when set,
	// otherwise Buf is sent to the device.
	Read bool
	Buf  []byte
}

// Transport executes combined transactions against a device address.
type Transport interface {
	// Transfer issues all msgs to the device at addr as a single
	// transaction (repeated start between phases) and returns the
	// number of completed phases.
	Transfer(addr uint16, msgs []Msg) (int, error)
}

// TransferFunc is the func form of Transport.
type TransferFunc func(addr uint16, msgs []Msg) (int, error)

// Transfer implements Transport.
func (f TransferFunc) Transfer(addr uint16, msgs []Msg) (int, error) {
	return f(addr, msgs)
}
