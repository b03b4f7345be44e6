package eeprom

import (
	"sync"

	"github.com/golang/glog"
)

// DeviceConfig holds the properties read once when a device is attached.
// Size, PageSize and AddressWidth are required.
type DeviceConfig struct {
	Label        string `yaml:"label"`
	Addr         uint16 `yaml:"addr"`
	Size         *int   `yaml:"size"`
	PageSize     *int   `yaml:"pagesize"`
	AddressWidth *int   `yaml:"address-width"`
}

// Geometry validates the properties and returns the device geometry.
func (c *DeviceConfig) Geometry() (g Geometry, err error) {
	name := c.Label
	if name == "" {
		name = formatAddr(c.Addr)
	}
	props := []struct {
		name string
		val  *int
		out  *int
	}{
		{PropSize, c.Size, &g.Size},
		{PropPageSize, c.PageSize, &g.PageSize},
		{PropAddressWidth, c.AddressWidth, &g.AddressWidth},
	}
	for _, p := range props {
		if p.val == nil {
			return g, &ConfigError{Device: name, Property: p.name, Missing: true}
		}
		*p.out = *p.val
	}
	return g, g.Validate(name)
}

// IntProp is a helper to set optional properties in DeviceConfig.
func IntProp(v int) *int {
	return &v
}

// DeviceInfo is a snapshot of a device.
type DeviceInfo struct {
	Label   string
	Adapter string
	Addr    uint16
	Geometry
	Limits Limits
	Page   int
}

// Page is the content of one page.
type Page struct {
	Number int
	// Data is always PageSize long.
	Data []byte
	// Filled is the number of leading bytes of Data received from the
	// device, less than PageSize when the bus read limit is smaller.
	Filled int
}

// Device is a handle to an attached EEPROM.
// All operations are serialized per device.
type Device struct {
	label   Label
	adapter string
	geo     Geometry
	x       xfer
	retrier *Retrier

	lock     sync.Mutex
	page     int
	detached bool
}

// Label returns the device label.
func (d *Device) Label() Label {
	return d.label
}

// Addr returns the bus address of the device.
func (d *Device) Addr() uint16 {
	return d.x.addr
}

// Geometry returns the device geometry.
func (d *Device) Geometry() Geometry {
	return d.geo
}

// Limits returns the bus limits applied to the device.
func (d *Device) Limits() Limits {
	return d.x.limits
}

// Info returns a snapshot of the device.
func (d *Device) Info() DeviceInfo {
	d.lock.Lock()
	defer d.lock.Unlock()
	return DeviceInfo{
		Label:    d.label.String(),
		Adapter:  d.adapter,
		Addr:     d.x.addr,
		Geometry: d.geo,
		Limits:   d.x.limits,
		Page:     d.page,
	}
}

// Page returns the current page cursor.
func (d *Device) Page() int {
	d.lock.Lock()
	defer d.lock.Unlock()
	return d.page
}

// SetPage moves the page cursor. An out-of-range page is rejected with
// a *RangeError and the cursor is unchanged.
func (d *Device) SetPage(page int) error {
	d.lock.Lock()
	defer d.lock.Unlock()
	if d.detached {
		return ErrNoDevice
	}
	if !d.geo.Contains(page) {
		return &RangeError{Page: page, Pages: d.geo.Pages()}
	}
	d.page = page
	glog.V(1).Infof("%s: page 0x%x", d.label, page)
	return nil
}

// Offset returns the byte offset of the current page.
func (d *Device) Offset() int {
	d.lock.Lock()
	defer d.lock.Unlock()
	return d.geo.Offset(d.page)
}

// ReadPage reads the current page.
func (d *Device) ReadPage() (*Page, error) {
	d.lock.Lock()
	defer d.lock.Unlock()
	if d.detached {
		return nil, ErrNoDevice
	}
	p := &Page{Number: d.page, Data: make([]byte, d.geo.PageSize)}
	offset := d.geo.Offset(d.page)
	want := d.geo.PageSize
	if want > d.x.limits.Read {
		want = d.x.limits.Read
	}
	n, err := d.retrier.Do(func() (int, error) {
		return d.x.read(offset, p.Data)
	}, want)
	if err != nil {
		glog.Warningf("%s: read page 0x%x: %v", d.label, d.page, err)
		return nil, err
	}
	p.Filled = n
	return p, nil
}

// Write writes buf at the start of the current page and returns the
// number of bytes written. Payloads longer than the bus write limit are
// rejected with a *SizeError before any bus transaction.
// The page cursor is not advanced.
func (d *Device) Write(buf []byte) (int, error) {
	_, n, err := d.WriteCurrent(buf)
	return n, err
}

// WriteCurrent is Write also returning the page written, taken under
// the same lock as the write.
func (d *Device) WriteCurrent(buf []byte) (page, n int, err error) {
	d.lock.Lock()
	defer d.lock.Unlock()
	if d.detached {
		return 0, 0, ErrNoDevice
	}
	page = d.page
	if len(buf) > d.x.limits.Write {
		return page, 0, &SizeError{Len: len(buf), Limit: d.x.limits.Write}
	}
	offset := d.geo.Offset(page)
	n, err = d.retrier.Do(func() (int, error) {
		return d.x.write(offset, buf)
	}, len(buf))
	if err != nil {
		glog.Warningf("%s: write page 0x%x: %v", d.label, page, err)
		return page, 0, err
	}
	return page, n, nil
}

func (d *Device) detach() {
	d.lock.Lock()
	d.detached = true
	d.lock.Unlock()
}
