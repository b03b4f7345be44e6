package sh

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/robotalks/eeprom.go/pkg/eeprom"
)

// DefaultBase is the default base of page numbers.
const DefaultBase = 16

// ParsePage parses a page number in base, 0x prefix is accepted for base 16.
func ParsePage(s string, base int) (int, error) {
	if base == 16 {
		s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	}
	page, err := strconv.ParseInt(s, base, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid page %q: %w", s, err)
	}
	return int(page), nil
}

// FormatPage formats a page number in base.
func FormatPage(page, base int) string {
	if base == 16 {
		return "0x" + strconv.FormatInt(int64(page), 16)
	}
	return strconv.FormatInt(int64(page), base)
}

// ParseBytes parses hex bytes, each argument is either a single byte
// (aa, 0xaa) or a hex string (aabbcc).
func ParseBytes(args []string) ([]byte, error) {
	var data []byte
	for _, arg := range args {
		s := strings.TrimPrefix(strings.TrimPrefix(arg, "0x"), "0X")
		if len(s)%2 != 0 {
			s = "0" + s
		}
		b, err := hex.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("invalid bytes %q: %w", arg, err)
		}
		data = append(data, b...)
	}
	return data, nil
}

// FormatInfo prints DeviceInfo into friendly string for display.
func FormatInfo(info eeprom.DeviceInfo, base int) string {
	return fmt.Sprintf("%s: %s@0x%02x size=%d pagesize=%d address-width=%d page=%s/%s",
		info.Label, info.Adapter, info.Addr, info.Size, info.PageSize, info.AddressWidth,
		FormatPage(info.Page, base), FormatPage(info.Pages(), base))
}

// FormatPageData dumps the bytes received from the device, addressed
// from the page offset.
func FormatPageData(p *eeprom.Page, pageSize int) string {
	var w bytes.Buffer
	offset := p.Number * pageSize
	data := p.Data[:p.Filled]
	for n := 0; n < len(data); n += 16 {
		end := n + 16
		if end > len(data) {
			end = len(data)
		}
		fmt.Fprintf(&w, "%04x:", offset+n)
		for _, b := range data[n:end] {
			fmt.Fprintf(&w, " %02x", b)
		}
		w.WriteString("\n")
	}
	if p.Filled < len(p.Data) {
		fmt.Fprintf(&w, "(%d of %d bytes read)\n", p.Filled, len(p.Data))
	}
	return w.String()
}
