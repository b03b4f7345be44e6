package eeprom

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrTimedOut indicates the retry budget is exhausted.
	ErrTimedOut = errors.New("timed out")
	// ErrOutOfRange indicates a page outside device capacity.
	ErrOutOfRange = errors.New("page out of range")
	// ErrTooLarge indicates a write payload exceeds the bus write limit.
	ErrTooLarge = errors.New("write too large")
	// ErrMissingConfig indicates a required device property is absent.
	ErrMissingConfig = errors.New("missing configuration")
	// ErrInvalidConfig indicates a device property is present but unusable.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrShortTransfer indicates the bus completed fewer phases than issued.
	ErrShortTransfer = errors.New("short transfer")
	// ErrNoDevice indicates no device is attached with the given address or label.
	ErrNoDevice = errors.New("no such device")
	// ErrAddrInUse indicates a device is already attached at the address.
	ErrAddrInUse = errors.New("address in use")
	// ErrInvalidLabel indicates a device label is empty, too long or
	// contains characters outside [A-Za-z0-9_.-].
	ErrInvalidLabel = errors.New("invalid label")
)

// BusError wraps a transport level failure of one transaction.
type BusError struct {
	Op     string
	Addr   uint16
	Offset int
	Err    error
}

// Error implements error.
func (e *BusError) Error() string {
	return fmt.Sprintf("%s 0x%02x@0x%04x: %v", e.Op, e.Addr, e.Offset, e.Err)
}

// Unwrap returns the transport error.
func (e *BusError) Unwrap() error {
	return e.Err
}

// TimeoutError is returned when a transfer keeps failing until the deadline.
type TimeoutError struct {
	Attempts int
	Elapsed  time.Duration
	// Last is the error of the final attempt.
	Last error
}

// Error implements error.
func (e *TimeoutError) Error() string {
	msg := fmt.Sprintf("timed out after %d attempts in %v", e.Attempts, e.Elapsed)
	if e.Last != nil {
		msg += ": " + e.Last.Error()
	}
	return msg
}

// Is matches ErrTimedOut.
func (e *TimeoutError) Is(target error) bool {
	return target == ErrTimedOut
}

// Unwrap returns the last attempt error.
func (e *TimeoutError) Unwrap() error {
	return e.Last
}

// RangeError reports a rejected page cursor.
type RangeError struct {
	Page  int
	Pages int
}

// Error implements error.
func (e *RangeError) Error() string {
	return fmt.Sprintf("page 0x%x out of range, choose pages from 0x0 - 0x%x", e.Page, e.Pages-1)
}

// Is matches ErrOutOfRange.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// SizeError reports a rejected write payload.
type SizeError struct {
	Len   int
	Limit int
}

// Error implements error.
func (e *SizeError) Error() string {
	return fmt.Sprintf("write length %d must be <= %d", e.Len, e.Limit)
}

// Is matches ErrTooLarge.
func (e *SizeError) Is(target error) bool {
	return target == ErrTooLarge
}

// ConfigError reports a missing or invalid device property.
type ConfigError struct {
	Device   string
	Property string
	// Missing is set when the property is absent rather than invalid.
	Missing bool
	Reason  string
}

// Error implements error.
func (e *ConfigError) Error() string {
	if e.Missing {
		return fmt.Sprintf("%s: missing %q property", e.Device, e.Property)
	}
	return fmt.Sprintf("%s: invalid %q property: %s", e.Device, e.Property, e.Reason)
}

// Is matches ErrMissingConfig or ErrInvalidConfig.
func (e *ConfigError) Is(target error) bool {
	if e.Missing {
		return target == ErrMissingConfig
	}
	return target == ErrInvalidConfig
}
