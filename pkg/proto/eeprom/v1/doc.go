// Package v1 contains the wire messages of the EEPROM remote protocol.
package v1

//go:generate protoc -I ../.. --go_out=paths=source_relative:../.. eeprom/v1/eeprom.proto
