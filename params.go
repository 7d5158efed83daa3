package serial

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// Parameters holds every setting needed to describe a serial communication
// endpoint: device name, line speed, character framing, flow control, the
// protocol encoding and the RS-485 echo mode.
//
// It is a plain mutable value with no synchronization of its own; callers
// sharing one across goroutines must coordinate access themselves.
//
// Every string setter except SetBaudRateString follows the same policy: a
// token that cannot be interpreted silently falls back to the field's
// default instead of reporting an error. Defaulting is the recovery
// mechanism.
type Parameters struct {
	portName       string
	baudRate       BaudRate
	flowControlIn  FlowControl
	flowControlOut FlowControl
	dataBits       DataBits
	stopBits       StopBits
	parity         Parity
	encoding       Encoding
	echo           bool
}

// NewParameters returns a Parameters with the conventional 9600-8-N-1
// defaults, flow control disabled in both directions, RTU encoding and echo
// off.
func NewParameters() *Parameters {
	return &Parameters{
		portName:       "",
		baudRate:       DefaultBaudRate,
		flowControlIn:  DefaultFlowControl,
		flowControlOut: DefaultFlowControl,
		dataBits:       DefaultDataBits,
		stopBits:       DefaultStopBits,
		parity:         DefaultParity,
		encoding:       DefaultEncoding,
		echo:           false,
	}
}

// NewParametersWith returns a Parameters populated with the given values,
// stored verbatim. The caller is trusted to supply sensible ones. The
// encoding starts at DefaultEncoding.
func NewParametersWith(portName string, baudRate BaudRate, flowControlIn, flowControlOut FlowControl, dataBits DataBits, stopBits StopBits, parity Parity, echo bool) *Parameters {
	return &Parameters{
		portName:       portName,
		baudRate:       baudRate,
		flowControlIn:  flowControlIn,
		flowControlOut: flowControlOut,
		dataBits:       dataBits,
		stopBits:       stopBits,
		parity:         parity,
		encoding:       DefaultEncoding,
		echo:           echo,
	}
}

// PortName returns the device name, e.g. /dev/ttyUSB0 or COM3.
func (p *Parameters) PortName() string {
	return p.portName
}

// SetPortName sets the device name.
func (p *Parameters) SetPortName(name string) {
	p.portName = name
}

func (p *Parameters) BaudRate() BaudRate {
	return p.baudRate
}

func (p *Parameters) SetBaudRate(rate BaudRate) {
	p.baudRate = rate
}

// BaudRateString returns the baud rate as a decimal literal.
func (p *Parameters) BaudRateString() string {
	return p.baudRate.String()
}

// SetBaudRateString parses a decimal baud rate. Unlike every other string
// setter this one does not fall back to a default: a token that is not an
// integer literal returns the underlying parse error and leaves the stored
// rate unchanged.
func (p *Parameters) SetBaudRateString(rate string) error {
	n, err := strconv.Atoi(rate)
	if err != nil {
		return errors.Wrap(err, "serial: parsing baud rate")
	}
	p.baudRate = BaudRate(n)
	return nil
}

// FlowControlIn returns the flow-control code for the receive direction.
func (p *Parameters) FlowControlIn() FlowControl {
	return p.flowControlIn
}

func (p *Parameters) SetFlowControlIn(fc FlowControl) {
	p.flowControlIn = fc
}

// FlowControlInString returns the canonical token for the receive
// flow-control code. Combined codes render as "none"; see FlowControl.
func (p *Parameters) FlowControlInString() string {
	return p.flowControlIn.String()
}

// SetFlowControlInString parses a flow-control token for the receive
// direction, falling back to DefaultFlowControl on unrecognized input.
func (p *Parameters) SetFlowControlInString(token string) {
	p.flowControlIn = ParseFlowControl(token)
}

// FlowControlOut returns the flow-control code for the transmit direction.
func (p *Parameters) FlowControlOut() FlowControl {
	return p.flowControlOut
}

func (p *Parameters) SetFlowControlOut(fc FlowControl) {
	p.flowControlOut = fc
}

// FlowControlOutString returns the canonical token for the transmit
// flow-control code. Combined codes render as "none"; see FlowControl.
func (p *Parameters) FlowControlOutString() string {
	return p.flowControlOut.String()
}

// SetFlowControlOutString parses a flow-control token for the transmit
// direction, falling back to DefaultFlowControl on unrecognized input.
func (p *Parameters) SetFlowControlOutString(token string) {
	p.flowControlOut = ParseFlowControl(token)
}

func (p *Parameters) DataBits() DataBits {
	return p.dataBits
}

func (p *Parameters) SetDataBits(bits DataBits) {
	p.dataBits = bits
}

// DataBitsString returns the data bit count as a decimal literal.
func (p *Parameters) DataBitsString() string {
	return p.dataBits.String()
}

// SetDataBitsString parses a decimal data bit count, falling back to
// DefaultDataBits on anything that is not a non-negative integer literal.
func (p *Parameters) SetDataBitsString(bits string) {
	p.dataBits = ParseDataBits(bits)
}

func (p *Parameters) StopBits() StopBits {
	return p.stopBits
}

func (p *Parameters) SetStopBits(sb StopBits) {
	p.stopBits = sb
}

// StopBitsString returns the canonical token for the stop-bits code.
func (p *Parameters) StopBitsString() string {
	return p.stopBits.String()
}

// SetStopBitsString parses a stop-bits token, falling back to
// DefaultStopBits on unrecognized input.
func (p *Parameters) SetStopBitsString(token string) {
	p.stopBits = ParseStopBits(token)
}

func (p *Parameters) Parity() Parity {
	return p.parity
}

func (p *Parameters) SetParity(pa Parity) {
	p.parity = pa
}

// ParityString returns the canonical token for the parity code.
func (p *Parameters) ParityString() string {
	return p.parity.String()
}

// SetParityString parses a parity token, case-insensitively, falling back
// to DefaultParity on unrecognized input.
func (p *Parameters) SetParityString(token string) {
	p.parity = ParseParity(token)
}

func (p *Parameters) Encoding() Encoding {
	return p.encoding
}

// SetEncoding stores the encoding, folding it to its canonical lowercase
// token. Unrecognized values reset to DefaultEncoding so the field can
// never hold an arbitrary string.
func (p *Parameters) SetEncoding(enc Encoding) {
	p.encoding = ParseEncoding(string(enc))
}

// EncodingString returns the stored encoding token.
func (p *Parameters) EncodingString() string {
	return string(p.encoding)
}

// SetEncodingString parses an encoding token, case-insensitively, falling
// back to DefaultEncoding on unrecognized input.
func (p *Parameters) SetEncodingString(token string) {
	p.encoding = ParseEncoding(token)
}

// Echo returns the RS-485 echo mode: when true, transmitted data is
// expected back on the receive line and must be suppressed by the
// application.
func (p *Parameters) Echo() bool {
	return p.echo
}

func (p *Parameters) SetEcho(echo bool) {
	p.echo = echo
}

// String renders a one-line diagnostic dump of every field, numeric codes
// in their raw form. The format is not a stable interface.
func (p *Parameters) String() string {
	return fmt.Sprintf("Parameters{portName='%s', baudRate=%d, flowControlIn=%d, flowControlOut=%d, databits=%d, stopbits=%d, parity=%d, encoding='%s', echo=%t}",
		p.portName, p.baudRate, p.flowControlIn, p.flowControlOut, p.dataBits, p.stopBits, p.parity, p.encoding, p.echo)
}
