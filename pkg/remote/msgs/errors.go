package msgs

import (
	"errors"

	"github.com/golang/protobuf/proto"

	"github.com/robotalks/eeprom.go/pkg/eeprom"
	pb "github.com/robotalks/eeprom.go/pkg/proto/eeprom/v1"
)

// Error codes carried by CommandErr.
const (
	CodeUnknown int32 = iota
	CodeTimedOut
	CodeOutOfRange
	CodeTooLarge
	CodeNoDevice
	CodeMissingConfig
	CodeInvalidConfig
	CodeUnsupported
	CodeBadRequest
)

var codeErrors = []struct {
	code int32
	err  error
}{
	{CodeTimedOut, eeprom.ErrTimedOut},
	{CodeOutOfRange, eeprom.ErrOutOfRange},
	{CodeTooLarge, eeprom.ErrTooLarge},
	{CodeNoDevice, eeprom.ErrNoDevice},
	{CodeMissingConfig, eeprom.ErrMissingConfig},
	{CodeInvalidConfig, eeprom.ErrInvalidConfig},
	{CodeUnsupported, ErrUnsupportedCommand},
	{CodeBadRequest, eeprom.ErrInvalidLabel},
}

// CommandErr is the generic message representing command error.
type CommandErr struct {
	pb.CommandErr
}

// NewCommandErr creates a CommandErr from an error.
func NewCommandErr(err error) *CommandErr {
	m := NewCommandErrFromMsg(err.Error())
	m.Code = ErrorCode(err)
	return m
}

// NewCommandErrFromMsg creates a CommandErr.
func NewCommandErrFromMsg(message string) *CommandErr {
	return &CommandErr{
		CommandErr: pb.CommandErr{
			Message: message,
		},
	}
}

// ErrorCode classifies err.
func ErrorCode(err error) int32 {
	var unknownType *ErrUnknownType
	if errors.As(err, &unknownType) {
		return CodeUnsupported
	}
	for _, c := range codeErrors {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return CodeUnknown
}

// NewMessage implements Message.
func (m *CommandErr) NewMessage() Message { return &CommandErr{} }

// TypeID implements Message.
func (m *CommandErr) TypeID() uint32 { return CommandErrTypeID }

// Serializable implements Message.
func (m *CommandErr) Serializable() proto.Message { return &m.CommandErr }

// Error implements error.
func (m *CommandErr) Error() string { return m.Message }

// Is matches the sentinel error corresponding to the code,
// so errors.Is works the same way on both sides of a connection.
func (m *CommandErr) Is(target error) bool {
	for _, c := range codeErrors {
		if c.code == m.Code {
			return target == c.err
		}
	}
	return false
}
