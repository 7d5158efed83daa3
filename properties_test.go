package serial

import "testing"

func TestNewParametersFromPropertiesWithPrefix(t *testing.T) {
	props := Properties{
		"dev1.baudRate": "19200",
	}

	p, err := NewParametersFromProperties(props, "dev1.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.BaudRate() != Baud19200 {
		t.Errorf("baudRate = %d, want 19200", p.BaudRate())
	}

	// every other field keeps its default
	if p.PortName() != "" {
		t.Errorf("portName = %q, want empty", p.PortName())
	}
	if p.FlowControlIn() != FlowControlDisabled || p.FlowControlOut() != FlowControlDisabled {
		t.Errorf("flow control = %d/%d, want disabled", p.FlowControlIn(), p.FlowControlOut())
	}
	if p.DataBits() != DataBits8 {
		t.Errorf("dataBits = %d, want 8", p.DataBits())
	}
	if p.StopBits() != StopBits1 {
		t.Errorf("stopBits = %d, want one", p.StopBits())
	}
	if p.Parity() != ParityNone {
		t.Errorf("parity = %d, want none", p.Parity())
	}
	if p.Encoding() != DefaultEncoding {
		t.Errorf("encoding = %q, want default", p.Encoding())
	}
	if p.Echo() {
		t.Error("echo = true, want false")
	}
}

func TestNewParametersFromPropertiesFull(t *testing.T) {
	props := Properties{
		"portName":       "/dev/ttyUSB1",
		"baudRate":       "57600",
		"flowControlIn":  "xon/xoff in",
		"flowControlOut": "rts/cts",
		"parity":         "Even",
		"databits":       "7",
		"stopbits":       "2",
		"encoding":       "ASCII",
		"echo":           "true",
	}

	p, err := NewParametersFromProperties(props, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.PortName() != "/dev/ttyUSB1" {
		t.Errorf("portName = %q", p.PortName())
	}
	if p.BaudRate() != Baud57600 {
		t.Errorf("baudRate = %d", p.BaudRate())
	}
	if p.FlowControlIn() != FlowControlXonXoffIn {
		t.Errorf("flowControlIn = %d", p.FlowControlIn())
	}
	if p.FlowControlOut() != FlowControlRTSCTS {
		t.Errorf("flowControlOut = %d", p.FlowControlOut())
	}
	if p.Parity() != ParityEven {
		t.Errorf("parity = %d", p.Parity())
	}
	if p.DataBits() != DataBits7 {
		t.Errorf("dataBits = %d", p.DataBits())
	}
	if p.StopBits() != StopBits2 {
		t.Errorf("stopBits = %d", p.StopBits())
	}
	if p.Encoding() != EncodingASCII {
		t.Errorf("encoding = %q", p.Encoding())
	}
	if !p.Echo() {
		t.Error("echo = false, want true")
	}
}

func TestNewParametersFromPropertiesBadBaudRate(t *testing.T) {
	props := Properties{"baudRate": "nine-six-hundred"}

	if _, err := NewParametersFromProperties(props, ""); err == nil {
		t.Fatal("expected error for malformed baudRate value")
	}
}

func TestEchoRequiresExactTrue(t *testing.T) {
	for _, value := range []string{"True", "TRUE", "1", "yes", "on", ""} {
		t.Run(value, func(t *testing.T) {
			props := Properties{}
			if value != "" {
				props["echo"] = value
			}
			p, err := NewParametersFromProperties(props, "")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Echo() {
				t.Errorf("echo = true for value %q, want false", value)
			}
		})
	}

	p, err := NewParametersFromProperties(Properties{"echo": "true"}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.Echo() {
		t.Error("echo = false for literal \"true\", want true")
	}
}

func TestPropertiesFromINI(t *testing.T) {
	data := []byte(`
portName = /dev/ttyS1
baudRate = 115200

[dev1]
portName = /dev/ttyUSB0
baudRate = 19200
parity   = even
`)

	props, err := PropertiesFromINI(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// default-section keys stay bare, section keys get the section prefix
	if got := props.Get("portName", ""); got != "/dev/ttyS1" {
		t.Errorf("portName = %q", got)
	}
	if got := props.Get("dev1.portName", ""); got != "/dev/ttyUSB0" {
		t.Errorf("dev1.portName = %q", got)
	}

	p, err := NewParametersFromProperties(props, "dev1.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.PortName() != "/dev/ttyUSB0" {
		t.Errorf("portName = %q", p.PortName())
	}
	if p.BaudRate() != Baud19200 {
		t.Errorf("baudRate = %d", p.BaudRate())
	}
	if p.Parity() != ParityEven {
		t.Errorf("parity = %d", p.Parity())
	}
}

func TestPropertiesGetDefault(t *testing.T) {
	props := Properties{"present": "value"}

	if got := props.Get("present", "fallback"); got != "value" {
		t.Errorf("Get(present) = %q", got)
	}
	if got := props.Get("absent", "fallback"); got != "fallback" {
		t.Errorf("Get(absent) = %q", got)
	}
}
