// Package eeprom provides paged access to I2C EEPROMs.
package eeprom

// An EEPROM is reached through small bus transactions: an address header
// of 1 or 2 bytes (big-endian byte offset) followed either by the payload
// to write, or by a repeated start and a receive phase for reads. The bus
// controller only guarantees a limited payload per transaction (32 bytes
// by default), so callers address the device by page: the page cursor is
// set first, then the current page is read or written.
//
// While the chip is busy with an internal write cycle it does not
// acknowledge its address. Every transaction is therefore retried with a
// fixed backoff until it succeeds or a fixed deadline passes.
//
// Producer: Adapter.Attach
// Consumer: remote server, cli shell
