// Package msgs provides the remote storage protocol and all message schemas.
package msgs

// The protocol is communicated between a daemon owning the bus adapters
// and remote clients (CLI, monitor), carried by any packet transport.
//
// Every packet is a Typed envelope. Commands carry a non-zero sequence
// which is echoed by the reply (the command's type ID with the reply bit,
// CommandOK or CommandErr). Events are broadcast without sequence.
//
// Producer: eepromd
// Consumer: eepromcli, eeprommon
