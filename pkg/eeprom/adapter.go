package eeprom

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/golang/glog"

	"github.com/robotalks/eeprom.go/pkg/eeprom/bus"
)

// MaxAddr is the highest 7-bit bus address.
const MaxAddr uint16 = 0x7f

// Adapter is one bus instance and the registry of devices attached to it.
type Adapter struct {
	Name      string
	Transport bus.Transport
	Limits    Limits
	Retrier   *Retrier

	lock    sync.RWMutex
	devices map[uint16]*Device
	labels  map[string]*Device
}

// NewAdapter creates an Adapter with default limits and retry policy.
func NewAdapter(name string, t bus.Transport) *Adapter {
	return &Adapter{
		Name:      name,
		Transport: t,
		Limits:    DefaultLimits,
		Retrier:   NewRetrier(),
		devices:   make(map[uint16]*Device),
		labels:    make(map[string]*Device),
	}
}

// Attach brings up a device from its configuration. Missing properties
// are fatal for the device and nothing is registered.
func (a *Adapter) Attach(conf DeviceConfig) (*Device, error) {
	if conf.Addr > MaxAddr {
		return nil, &ConfigError{Device: a.Name, Property: "addr", Reason: fmt.Sprintf("0x%x is not a 7-bit address", conf.Addr)}
	}
	if conf.Label == "" {
		l, cut := TruncateLabel(fmt.Sprintf("%s-%02x", a.Name, conf.Addr))
		if cut {
			glog.Warningf("%s: default label of %s shortened to %q", a.Name, formatAddr(conf.Addr), l)
		}
		conf.Label = l.String()
	}
	label, err := NewLabel(conf.Label)
	if err != nil {
		return nil, err
	}
	geo, err := conf.Geometry()
	if err != nil {
		return nil, err
	}
	if err = a.Limits.Validate(); err != nil {
		return nil, err
	}

	a.lock.Lock()
	defer a.lock.Unlock()
	if a.devices == nil {
		a.devices = make(map[uint16]*Device)
		a.labels = make(map[string]*Device)
	}
	if _, ok := a.devices[conf.Addr]; ok {
		return nil, fmt.Errorf("%s: %w: %s", a.Name, ErrAddrInUse, formatAddr(conf.Addr))
	}
	if _, ok := a.labels[label.String()]; ok {
		return nil, fmt.Errorf("%w: %q already attached", ErrInvalidLabel, label)
	}
	retrier := a.Retrier
	if retrier == nil {
		retrier = NewRetrier()
	}
	d := &Device{
		label:   label,
		adapter: a.Name,
		geo:     geo,
		retrier: retrier,
		x: xfer{
			bus:    a.Transport,
			addr:   conf.Addr,
			width:  geo.AddressWidth,
			limits: a.Limits,
		},
	}
	a.devices[conf.Addr] = d
	a.labels[label.String()] = d

	glog.Infof("%s: attached %s at %s", a.Name, label, formatAddr(conf.Addr))
	glog.Infof("    SIZE          : %d", geo.Size)
	glog.Infof("    PAGESIZE      : %d", geo.PageSize)
	glog.Infof("    address-width : %d", geo.AddressWidth)
	if geo.PageSize > a.Limits.Read {
		glog.Warningf("%s: pagesize %d exceeds bus read limit %d, only %d bytes of each page are read",
			label, geo.PageSize, a.Limits.Read, a.Limits.Read)
	}
	return d, nil
}

// Detach removes the device at addr. Further operations on its handle
// fail with ErrNoDevice.
func (a *Adapter) Detach(addr uint16) error {
	a.lock.Lock()
	d, ok := a.devices[addr]
	if ok {
		delete(a.devices, addr)
		delete(a.labels, d.label.String())
	}
	a.lock.Unlock()
	if !ok {
		return fmt.Errorf("%s: %w at %s", a.Name, ErrNoDevice, formatAddr(addr))
	}
	d.detach()
	glog.Infof("%s: detached %s", a.Name, d.label)
	return nil
}

// Device finds the device at addr.
func (a *Adapter) Device(addr uint16) (*Device, error) {
	a.lock.RLock()
	defer a.lock.RUnlock()
	if d, ok := a.devices[addr]; ok {
		return d, nil
	}
	return nil, fmt.Errorf("%s: %w at %s", a.Name, ErrNoDevice, formatAddr(addr))
}

// Lookup finds the device by label.
func (a *Adapter) Lookup(label string) (*Device, error) {
	a.lock.RLock()
	defer a.lock.RUnlock()
	if d, ok := a.labels[label]; ok {
		return d, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrNoDevice, label)
}

// Devices lists attached devices ordered by address.
func (a *Adapter) Devices() []*Device {
	a.lock.RLock()
	devs := make([]*Device, 0, len(a.devices))
	for _, d := range a.devices {
		devs = append(devs, d)
	}
	a.lock.RUnlock()
	sort.Slice(devs, func(i, j int) bool { return devs[i].Addr() < devs[j].Addr() })
	return devs
}

// Close detaches all devices and closes the transport if it's closable.
func (a *Adapter) Close() error {
	for _, d := range a.Devices() {
		a.Detach(d.Addr())
	}
	if closer, ok := a.Transport.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func formatAddr(addr uint16) string {
	return fmt.Sprintf("0x%02x", addr)
}
