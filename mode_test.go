package serial

import (
	"testing"

	gobug "go.bug.st/serial"
)

func TestMode(t *testing.T) {
	p := NewParametersWith("/dev/ttyUSB0", Baud115200, FlowControlDisabled, FlowControlDisabled, DataBits7, StopBits2, ParityOdd, false)

	mode := p.Mode()
	if mode.BaudRate != 115200 {
		t.Errorf("BaudRate = %d, want 115200", mode.BaudRate)
	}
	if mode.DataBits != 7 {
		t.Errorf("DataBits = %d, want 7", mode.DataBits)
	}
	if mode.Parity != gobug.OddParity {
		t.Errorf("Parity = %d, want odd", mode.Parity)
	}
	if mode.StopBits != gobug.TwoStopBits {
		t.Errorf("StopBits = %d, want two", mode.StopBits)
	}
}

func TestAvailablePorts(t *testing.T) {
	orig := getPortsList
	defer func() { getPortsList = orig }()

	getPortsList = func() ([]string, error) {
		return []string{"/dev/ttyUSB0", "/dev/ttyACM0"}, nil
	}

	ports, err := AvailablePorts()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ports) != 2 || ports[0] != "/dev/ttyUSB0" {
		t.Errorf("unexpected ports: %v", ports)
	}
}

func TestIsValidPortName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"/dev/ttyUSB0", true},
		{"/dev/ttyS1", true},
		{"/dev/cu.usbserial", true},
		{"COM1", true},
		{"COM999", true},
		{"COM", false},
		{"/dev/../etc/passwd", false},
		{"/tmp/fake", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidPortName(tt.name); got != tt.want {
				t.Errorf("IsValidPortName(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
