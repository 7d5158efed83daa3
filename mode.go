package serial

import (
	"strings"

	gobug "go.bug.st/serial"
)

// allow tests to override the port enumeration
var getPortsList = gobug.GetPortsList

// Mode converts the parameters into the transport library's port mode.
// Flow control, encoding and echo have no Mode representation; the
// transport and protocol layers read those through the accessors.
func (p *Parameters) Mode() *gobug.Mode {
	return &gobug.Mode{
		BaudRate: p.baudRate.Int(),
		DataBits: p.dataBits.Int(),
		Parity:   p.parity.Get(),
		StopBits: p.stopBits.Get(),
	}
}

// AvailablePorts lists the serial ports known to the operating system.
func AvailablePorts() ([]string, error) {
	ports, err := getPortsList()
	if err != nil {
		return nil, err
	}
	return ports, nil
}

// IsValidPortName reports whether a name looks like a serial device:
// COM1-COM999 on Windows, /dev/tty* or /dev/cu* elsewhere. Names containing
// path traversal are rejected outright.
func IsValidPortName(portName string) bool {
	if strings.Contains(portName, "..") {
		return false
	}
	if strings.HasPrefix(portName, "COM") && len(portName) >= 4 && len(portName) <= 6 {
		return true
	}
	return strings.HasPrefix(portName, "/dev/tty") || strings.HasPrefix(portName, "/dev/cu")
}
