package remote

import (
	"context"

	"github.com/robotalks/eeprom.go/pkg/eeprom"
)

// PacketReader reads packets in bytes.
type PacketReader interface {
	ReadPacket() ([]byte, error)
}

// PacketWriter writes packets in bytes.
type PacketWriter interface {
	WritePacket([]byte) error
}

// PacketReadWriter reads/writes packets in bytes.
type PacketReadWriter interface {
	PacketReader
	PacketWriter
}

// Storage is the page oriented access to named devices, either
// attached locally or served by a remote daemon.
type Storage interface {
	// Devices lists attached devices.
	Devices(ctx context.Context) ([]eeprom.DeviceInfo, error)
	// Page returns the page cursor and the number of pages.
	Page(ctx context.Context, device string) (page, pages int, err error)
	// SetPage moves the page cursor.
	SetPage(ctx context.Context, device string, page int) error
	// ReadPage reads the current page.
	ReadPage(ctx context.Context, device string) (*eeprom.Page, error)
	// Write writes at the start of the current page and returns
	// the page written.
	Write(ctx context.Context, device string, data []byte) (page, n int, err error)
}
