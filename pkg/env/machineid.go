package env

import (
	"os"

	"github.com/denisbrodbeck/machineid"
	"github.com/golang/glog"
)

// MachineID retrieves the unique ID identifying the machine.
// The host name is used when the machine ID is not available.
func MachineID() string {
	id, err := machineid.ID()
	if err == nil {
		return id
	}
	glog.Warningf("machine id unavailable: %v", err)
	if id, err = os.Hostname(); err == nil {
		return id
	}
	return "unknown"
}

// DefaultNode derives a node name from MachineID.
func DefaultNode() string {
	id := MachineID()
	if len(id) > 8 {
		id = id[:8]
	}
	return "eeprom-" + id
}
