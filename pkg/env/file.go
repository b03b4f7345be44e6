package env

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/golang/glog"
	"gopkg.in/yaml.v3"

	"github.com/robotalks/eeprom.go/pkg/eeprom"
	"github.com/robotalks/eeprom.go/pkg/eeprom/bus"
	fx "github.com/robotalks/eeprom.go/pkg/framework"
	"github.com/robotalks/eeprom.go/pkg/sim"
)

// SimDevice is the adapter device name selecting the simulated bus.
const SimDevice = "sim"

// SimWriteCycle is the internal write time of simulated chips.
const SimWriteCycle = 5 * time.Millisecond

// File is the attach configuration file.
//
//	retry:
//	  timeout: 25ms
//	  backoff: 1ms
//	limits:
//	  read: 32
//	  write: 32
//	adapters:
//	  - name: i2c-1
//	    device: /dev/i2c-1
//	    devices:
//	      - label: at24c32
//	        addr: 0x50
//	        size: 4096
//	        pagesize: 32
//	        address-width: 2
type File struct {
	Retry    *RetryConfig    `yaml:"retry"`
	Limits   *eeprom.Limits  `yaml:"limits"`
	Adapters []AdapterConfig `yaml:"adapters"`
}

// RetryConfig overrides the retry policy.
type RetryConfig struct {
	Timeout time.Duration `yaml:"timeout"`
	Backoff time.Duration `yaml:"backoff"`
}

// AdapterConfig describes one bus and the devices on it.
type AdapterConfig struct {
	Name string `yaml:"name"`
	// Device is the i2c-dev node, a bus number or "sim".
	Device  string                `yaml:"device"`
	Devices []eeprom.DeviceConfig `yaml:"devices"`
}

// LoadFile reads the attach configuration from path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := ParseFile(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// ParseFile decodes the attach configuration.
func ParseFile(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if len(f.Adapters) == 0 {
		return nil, fmt.Errorf("no adapters")
	}
	names := make(map[string]bool)
	for n := range f.Adapters {
		a := &f.Adapters[n]
		if a.Device == "" {
			return nil, fmt.Errorf("adapter %d: device is required", n)
		}
		if a.Name == "" {
			a.Name = adapterName(a.Device)
		}
		if names[a.Name] {
			return nil, fmt.Errorf("adapter %q: duplicated name", a.Name)
		}
		names[a.Name] = true
	}
	return &f, nil
}

func adapterName(device string) string {
	if device == SimDevice {
		return SimDevice
	}
	if n, ok := busNumber(device); ok {
		return fmt.Sprintf("i2c-%d", n)
	}
	return device[strings.LastIndex(device, "/")+1:]
}

// busNumber accepts a bare bus number as adapter device.
func busNumber(device string) (int, bool) {
	n, err := strconv.Atoi(device)
	return n, err == nil && n >= 0
}

// Retrier returns the retry policy from the file.
func (f *File) Retrier() *eeprom.Retrier {
	r := eeprom.NewRetrier()
	if f.Retry != nil {
		if f.Retry.Timeout > 0 {
			r.Timeout = f.Retry.Timeout
		}
		if f.Retry.Backoff > 0 {
			r.Backoff = f.Retry.Backoff
		}
	}
	return r
}

// BusOpener opens the transport of an adapter.
type BusOpener func(AdapterConfig) (bus.Transport, error)

// OpenBus is the default BusOpener: "sim" creates a simulated bus with
// an erased chip for every configured device, a bus number N opens
// /dev/i2c-N, anything else is opened as an i2c-dev node.
func OpenBus(conf AdapterConfig) (bus.Transport, error) {
	if conf.Device != SimDevice {
		var dev *bus.I2CDev
		var err error
		if n, ok := busNumber(conf.Device); ok {
			dev, err = bus.OpenI2CBus(n)
		} else {
			dev, err = bus.OpenI2CDev(conf.Device)
		}
		if err != nil {
			return nil, err
		}
		glog.Infof("adapter %s: opened %s", conf.Name, dev.Path())
		return dev, nil
	}
	b := sim.NewBus()
	b.WriteCycle = SimWriteCycle
	for _, d := range conf.Devices {
		if d.Size != nil && d.AddressWidth != nil && *d.Size > 0 {
			b.AddChip(d.Addr, *d.Size, *d.AddressWidth)
		}
	}
	return b, nil
}

// Attach opens all adapters and attaches the configured devices.
// A device failing to attach is reported in the returned error and
// skipped, other devices are still attached. The error is nil only
// if everything is attached.
func (f *File) Attach(open BusOpener) (eeprom.Adapters, error) {
	if open == nil {
		open = OpenBus
	}
	var adapters eeprom.Adapters
	var errs fx.AggregatedError
	for _, conf := range f.Adapters {
		t, err := open(conf)
		if err != nil {
			glog.Errorf("adapter %s: %v", conf.Name, err)
			errs.Add(fmt.Errorf("adapter %s: %w", conf.Name, err))
			continue
		}
		a := eeprom.NewAdapter(conf.Name, t)
		a.Retrier = f.Retrier()
		if f.Limits != nil {
			a.Limits = *f.Limits
		}
		for _, dev := range conf.Devices {
			if _, err := a.Attach(dev); err != nil {
				glog.Errorf("adapter %s: %v", conf.Name, err)
				errs.Add(err)
			}
		}
		adapters = append(adapters, a)
	}
	return adapters, errs.Aggregate()
}

// SimFile creates the configuration of one simulated AT24C32.
func SimFile() *File {
	return &File{
		Adapters: []AdapterConfig{
			{
				Name:   SimDevice,
				Device: SimDevice,
				Devices: []eeprom.DeviceConfig{
					{
						Label:        "at24c32",
						Addr:         0x50,
						Size:         eeprom.IntProp(4096),
						PageSize:     eeprom.IntProp(32),
						AddressWidth: eeprom.IntProp(2),
					},
				},
			},
		},
	}
}
