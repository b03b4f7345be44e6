package eeprom

import (
	"fmt"
)

// Adapters is a set of bus adapters, typically everything a daemon owns.
type Adapters []*Adapter

// Lookup finds a device by label across all adapters.
func (s Adapters) Lookup(label string) (*Device, error) {
	for _, a := range s {
		if d, err := a.Lookup(label); err == nil {
			return d, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNoDevice, label)
}

// Devices lists devices of all adapters in adapter order.
func (s Adapters) Devices() []*Device {
	var devs []*Device
	for _, a := range s {
		devs = append(devs, a.Devices()...)
	}
	return devs
}

// Close closes all adapters.
func (s Adapters) Close() error {
	var firstErr error
	for _, a := range s {
		if err := a.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
