package msgs

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/golang/protobuf/proto"
	"github.com/stretchr/testify/require"

	"github.com/robotalks/eeprom.go/pkg/eeprom"
)

func TestTypedRoundTrip(t *testing.T) {
	msg := &PageWrite{}
	msg.Device = "at24c32"
	msg.Data = []byte{0xaa, 0xbb}
	typed, err := TypedFrom(msg)
	require.NoError(t, err)
	typed.Sequence = 7
	require.True(t, typed.IsCommand())
	require.False(t, typed.IsReply())
	require.False(t, typed.IsEvent())

	pkt, err := typed.Encode()
	require.NoError(t, err)
	decodedTyped, err := DecodeTyped(pkt)
	require.NoError(t, err)
	require.Equal(t, uint32(7), decodedTyped.Sequence)
	decoded, err := decodedTyped.Decode()
	require.NoError(t, err)
	pw, ok := decoded.(*PageWrite)
	require.True(t, ok)
	require.Equal(t, "at24c32", pw.Device)
	require.Equal(t, []byte{0xaa, 0xbb}, pw.Data)
}

func TestTypeKinds(t *testing.T) {
	testCases := []struct {
		msg     Message
		command bool
		reply   bool
		event   bool
	}{
		{&DeviceQuery{}, true, false, false},
		{&DeviceList{}, true, true, false},
		{&PageSet{}, true, false, false},
		{&PageReply{}, true, true, false},
		{&PageData{}, true, true, false},
		{&WriteReply{}, true, true, false},
		{&CommandOK{}, true, true, false},
		{&CommandErr{}, true, true, false},
		{&PageWritten{}, false, false, true},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%T", tc.msg), func(t *testing.T) {
			typed, err := TypedFrom(tc.msg)
			require.NoError(t, err)
			require.Equal(t, tc.command, typed.IsCommand())
			require.Equal(t, tc.reply, typed.IsReply())
			require.Equal(t, tc.event, typed.IsEvent())
			require.Contains(t, MessageTypes, tc.msg.TypeID())
		})
	}
}

func TestRegisteredMessageNames(t *testing.T) {
	for typeID, msgType := range MessageTypes {
		msg := msgType.NewMessage()
		name := strings.TrimPrefix(fmt.Sprintf("%T", msg), "*msgs.")
		t.Run(name, func(t *testing.T) {
			require.Equal(t, typeID, msg.TypeID())
			require.Equal(t, "eeprom.v1."+name, proto.MessageName(msg.Serializable()))
		})
	}
}

func TestDecodeUnknownType(t *testing.T) {
	typed := &Typed{}
	typed.TypeId = GroupEEPROM | 0x7fff
	_, err := typed.Decode()
	var unknown *ErrUnknownType
	require.True(t, errors.As(err, &unknown))
	require.Equal(t, CodeUnsupported, ErrorCode(err))
}

func TestCommandErrCodes(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		code int32
	}{
		{"timeout", &eeprom.TimeoutError{Attempts: 3}, CodeTimedOut},
		{"range", &eeprom.RangeError{Page: 128, Pages: 128}, CodeOutOfRange},
		{"size", &eeprom.SizeError{Len: 33, Limit: 32}, CodeTooLarge},
		{"no device", fmt.Errorf("%w: %q", eeprom.ErrNoDevice, "x"), CodeNoDevice},
		{"missing", &eeprom.ConfigError{Property: "size", Missing: true}, CodeMissingConfig},
		{"invalid", &eeprom.ConfigError{Property: "size"}, CodeInvalidConfig},
		{"label", eeprom.ErrInvalidLabel, CodeBadRequest},
		{"unsupported", ErrUnsupportedCommand, CodeUnsupported},
		{"other", errors.New("boom"), CodeUnknown},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cmdErr := NewCommandErr(tc.err)
			require.Equal(t, tc.code, cmdErr.Code)
			require.Equal(t, tc.err.Error(), cmdErr.Error())

			typed, err := TypedFrom(cmdErr)
			require.NoError(t, err)
			decoded, err := typed.Decode()
			require.NoError(t, err)
			remoteErr := decoded.(*CommandErr)
			require.Equal(t, tc.code, remoteErr.Code)
			if tc.code != CodeUnknown {
				require.True(t, errors.Is(remoteErr, codeErrorOf(tc.code)))
			}
		})
	}
}

func TestDeviceListConversion(t *testing.T) {
	infos := []eeprom.DeviceInfo{
		{
			Label:    "at24c32",
			Adapter:  "i2c-1",
			Addr:     0x50,
			Geometry: eeprom.Geometry{Size: 4096, PageSize: 32, AddressWidth: 2},
			Limits:   eeprom.DefaultLimits,
			Page:     5,
		},
	}
	list := NewDeviceList(infos)
	typed, err := TypedFrom(list)
	require.NoError(t, err)
	decoded, err := typed.Decode()
	require.NoError(t, err)
	require.Equal(t, infos, decoded.(*DeviceList).Infos())
}

func codeErrorOf(code int32) error {
	for _, c := range codeErrors {
		if c.code == code {
			return c.err
		}
	}
	return nil
}
