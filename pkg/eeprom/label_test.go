package eeprom

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLabel(t *testing.T) {
	testCases := []struct {
		in    string
		valid bool
	}{
		{"at24c32", true},
		{"at24c32_eeprom", true},
		{"i2c-1-50", true},
		{"board.id", true},
		{strings.Repeat("a", MaxLabelLen), true},
		{strings.Repeat("a", MaxLabelLen+1), false},
		{"", false},
		{"has space", false},
		{"slash/topic", false},
		{"wild+", false},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			l, err := NewLabel(tc.in)
			if tc.valid {
				require.NoError(t, err)
				require.Equal(t, tc.in, l.String())
				require.True(t, l.IsValid())
			} else {
				require.True(t, errors.Is(err, ErrInvalidLabel))
				require.False(t, l.IsValid())
			}
		})
	}
}

func TestTruncateLabel(t *testing.T) {
	l, dropped := TruncateLabel("at24c32")
	require.False(t, dropped)
	require.Equal(t, "at24c32", l.String())

	l, dropped = TruncateLabel("my eeprom/0")
	require.True(t, dropped)
	require.Equal(t, "myeeprom0", l.String())

	l, dropped = TruncateLabel(strings.Repeat("b", 40))
	require.True(t, dropped)
	require.Len(t, l.String(), MaxLabelLen)
}
