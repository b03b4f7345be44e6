package remote

import (
	"context"

	"github.com/robotalks/eeprom.go/pkg/eeprom"
)

// Local implements Storage on adapters owned by this process.
type Local struct {
	Adapters eeprom.Adapters
}

// NewLocal creates a Local Storage.
func NewLocal(adapters ...*eeprom.Adapter) *Local {
	return &Local{Adapters: adapters}
}

// Devices implements Storage.
func (l *Local) Devices(ctx context.Context) ([]eeprom.DeviceInfo, error) {
	devs := l.Adapters.Devices()
	infos := make([]eeprom.DeviceInfo, 0, len(devs))
	for _, d := range devs {
		infos = append(infos, d.Info())
	}
	return infos, nil
}

// Page implements Storage.
func (l *Local) Page(ctx context.Context, device string) (int, int, error) {
	d, err := l.Adapters.Lookup(device)
	if err != nil {
		return 0, 0, err
	}
	return d.Page(), d.Geometry().Pages(), nil
}

// SetPage implements Storage.
func (l *Local) SetPage(ctx context.Context, device string, page int) error {
	d, err := l.Adapters.Lookup(device)
	if err != nil {
		return err
	}
	return d.SetPage(page)
}

// ReadPage implements Storage.
func (l *Local) ReadPage(ctx context.Context, device string) (*eeprom.Page, error) {
	d, err := l.Adapters.Lookup(device)
	if err != nil {
		return nil, err
	}
	return d.ReadPage()
}

// Write implements Storage.
func (l *Local) Write(ctx context.Context, device string, data []byte) (int, int, error) {
	d, err := l.Adapters.Lookup(device)
	if err != nil {
		return 0, 0, err
	}
	return d.WriteCurrent(data)
}
