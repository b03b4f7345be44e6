package eeprom

import "fmt"

// Geometry describes the capacity of a device.
type Geometry struct {
	// Size is the total capacity in bytes.
	Size int
	// PageSize is the unit callers address, in bytes.
	PageSize int
	// AddressWidth is the number of offset bytes in the bus header.
	AddressWidth int
}

// Pages returns the number of addressable pages.
func (g Geometry) Pages() int {
	if g.PageSize <= 0 {
		return 0
	}
	return g.Size / g.PageSize
}

// Offset translates a page number into a byte offset.
func (g Geometry) Offset(page int) int {
	return page * g.PageSize
}

// Contains checks the page is within capacity.
func (g Geometry) Contains(page int) bool {
	return page >= 0 && page < g.Pages()
}

// Validate checks the geometry is usable, label is used for diagnostics.
func (g Geometry) Validate(label string) error {
	if g.Size <= 0 {
		return &ConfigError{Device: label, Property: PropSize, Reason: "must be positive"}
	}
	if g.PageSize <= 0 {
		return &ConfigError{Device: label, Property: PropPageSize, Reason: "must be positive"}
	}
	if g.Size%g.PageSize != 0 {
		return &ConfigError{Device: label, Property: PropPageSize,
			Reason: fmt.Sprintf("size %d is not a multiple of %d", g.Size, g.PageSize)}
	}
	if g.AddressWidth != 1 && g.AddressWidth != 2 {
		return &ConfigError{Device: label, Property: PropAddressWidth, Reason: "must be 1 or 2"}
	}
	if max := 1 << (8 * uint(g.AddressWidth)); g.Size > max {
		return &ConfigError{Device: label, Property: PropAddressWidth,
			Reason: fmt.Sprintf("%d bytes cannot address size %d", g.AddressWidth, g.Size)}
	}
	return nil
}

// Limits are the payload bounds the bus moves without corruption
// in one transaction.
type Limits struct {
	Read  int
	Write int
}

// DefaultLimits matches the common 32-byte controller buffer.
var DefaultLimits = Limits{Read: 32, Write: 32}

// Validate checks limits are positive.
func (l Limits) Validate() error {
	if l.Read <= 0 || l.Write <= 0 {
		return fmt.Errorf("bus limits must be positive: read=%d write=%d", l.Read, l.Write)
	}
	return nil
}

// Property names of a device configuration.
const (
	PropSize         = "size"
	PropPageSize     = "pagesize"
	PropAddressWidth = "address-width"
)
