package eeprom

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/eeprom.go/pkg/sim"
)

func TestAttachConfigErrors(t *testing.T) {
	testCases := []struct {
		name     string
		mutate   func(*DeviceConfig)
		expect   error
		property string
	}{
		{"missing size", func(c *DeviceConfig) { c.Size = nil }, ErrMissingConfig, PropSize},
		{"missing pagesize", func(c *DeviceConfig) { c.PageSize = nil }, ErrMissingConfig, PropPageSize},
		{"missing address-width", func(c *DeviceConfig) { c.AddressWidth = nil }, ErrMissingConfig, PropAddressWidth},
		{"zero size", func(c *DeviceConfig) { c.Size = IntProp(0) }, ErrInvalidConfig, PropSize},
		{"pagesize not divisor", func(c *DeviceConfig) { c.PageSize = IntProp(48) }, ErrInvalidConfig, PropPageSize},
		{"address-width 3", func(c *DeviceConfig) { c.AddressWidth = IntProp(3) }, ErrInvalidConfig, PropAddressWidth},
		{"size not addressable", func(c *DeviceConfig) { c.AddressWidth = IntProp(1) }, ErrInvalidConfig, PropAddressWidth},
		{"10-bit address", func(c *DeviceConfig) { c.Addr = 0x150 }, ErrInvalidConfig, "addr"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := NewAdapter("i2c-test", sim.NewBus())
			conf := at24c32Config()
			tc.mutate(&conf)
			d, err := a.Attach(conf)
			require.Nil(t, d)
			require.True(t, errors.Is(err, tc.expect), "%v", err)
			var confErr *ConfigError
			require.True(t, errors.As(err, &confErr))
			require.Equal(t, tc.property, confErr.Property)
			require.Empty(t, a.Devices())
		})
	}
}

func TestAttachDetach(t *testing.T) {
	b := sim.NewBus()
	b.AddChip(0x50, 4096, 2)
	b.AddChip(0x51, 4096, 2)
	a := NewAdapter("i2c-1", b)

	conf := at24c32Config()
	d0, err := a.Attach(conf)
	require.NoError(t, err)
	require.Equal(t, "at24c32", d0.Label().String())

	_, err = a.Attach(conf)
	require.True(t, errors.Is(err, ErrAddrInUse))

	conf.Addr = 0x51
	_, err = a.Attach(conf)
	require.True(t, errors.Is(err, ErrInvalidLabel))

	conf.Label = ""
	d1, err := a.Attach(conf)
	require.NoError(t, err)
	require.Equal(t, "i2c-1-51", d1.Label().String())

	devs := a.Devices()
	require.Len(t, devs, 2)
	require.Equal(t, uint16(0x50), devs[0].Addr())
	require.Equal(t, uint16(0x51), devs[1].Addr())

	found, err := a.Lookup("i2c-1-51")
	require.NoError(t, err)
	require.Equal(t, d1, found)
	found, err = a.Device(0x50)
	require.NoError(t, err)
	require.Equal(t, d0, found)

	info := d1.Info()
	require.Equal(t, "i2c-1", info.Adapter)
	require.Equal(t, 128, info.Pages())
	require.Equal(t, DefaultLimits, info.Limits)

	require.NoError(t, a.Detach(0x50))
	require.True(t, errors.Is(a.Detach(0x50), ErrNoDevice))
	_, err = a.Lookup("at24c32")
	require.True(t, errors.Is(err, ErrNoDevice))
	require.True(t, errors.Is(d0.SetPage(1), ErrNoDevice))
	_, err = d0.ReadPage()
	require.True(t, errors.Is(err, ErrNoDevice))
	_, err = d0.Write([]byte{1})
	require.True(t, errors.Is(err, ErrNoDevice))

	require.NoError(t, a.Close())
	require.Empty(t, a.Devices())
}

func TestAttachDefaultLabel(t *testing.T) {
	testCases := []struct {
		adapter string
		label   string
	}{
		{"i2c-1", "i2c-1-50"},
		{"bus 1/left", "bus1left-50"},
		{strings.Repeat("a", 40), strings.Repeat("a", MaxLabelLen)},
	}
	for _, tc := range testCases {
		t.Run(tc.label, func(t *testing.T) {
			a := NewAdapter(tc.adapter, sim.NewBus())
			conf := at24c32Config()
			conf.Label = ""
			d, err := a.Attach(conf)
			require.NoError(t, err)
			require.Equal(t, tc.label, d.Label().String())
			found, err := a.Lookup(tc.label)
			require.NoError(t, err)
			require.Equal(t, d, found)
		})
	}
}

func TestAttachInvalidLimits(t *testing.T) {
	a := NewAdapter("i2c-test", sim.NewBus())
	a.Limits = Limits{Read: 0, Write: 32}
	_, err := a.Attach(at24c32Config())
	require.Error(t, err)
	require.Empty(t, a.Devices())
}
