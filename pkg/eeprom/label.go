package eeprom

import "fmt"

// MaxLabelLen bounds the length of a device label.
const MaxLabelLen = 32

// Label is a bounded device name, safe to use in topics and prompts.
// The zero value is not a valid label.
type Label struct {
	s string
}

// NewLabel validates s as a label.
func NewLabel(s string) (Label, error) {
	if s == "" {
		return Label{}, fmt.Errorf("%w: empty", ErrInvalidLabel)
	}
	if len(s) > MaxLabelLen {
		return Label{}, fmt.Errorf("%w: %q exceeds %d characters", ErrInvalidLabel, s, MaxLabelLen)
	}
	for i := 0; i < len(s); i++ {
		if !labelChar(s[i]) {
			return Label{}, fmt.Errorf("%w: %q contains %q", ErrInvalidLabel, s, s[i])
		}
	}
	return Label{s: s}, nil
}

// TruncateLabel drops invalid characters and cuts s to MaxLabelLen.
// It reports whether anything was dropped.
func TruncateLabel(s string) (Label, bool) {
	buf := make([]byte, 0, MaxLabelLen)
	for i := 0; i < len(s) && len(buf) < MaxLabelLen; i++ {
		if labelChar(s[i]) {
			buf = append(buf, s[i])
		}
	}
	return Label{s: string(buf)}, len(buf) != len(s)
}

// String implements fmt.Stringer.
func (l Label) String() string {
	return l.s
}

// IsValid indicates the label is not empty.
func (l Label) IsValid() bool {
	return l.s != ""
}

func labelChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_' || c == '-' || c == '.':
		return true
	}
	return false
}
