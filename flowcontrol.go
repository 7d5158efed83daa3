package serial

import "strings"

// FlowControl is a bit set describing the pacing mechanism for one
// direction of a serial link.
//
// The parse and render directions are deliberately asymmetric: "rts/cts"
// and "dsr/dtr" parse to a combined code with both lines enabled even
// though the value is stored per direction, while the render table only
// matches the single-flag CTS and DTR codes. A combined code therefore
// renders as "none". Consumers of the packed codes exist, so this behavior
// is kept as-is.
type FlowControl int

// FlowControlDisabled turns flow control off for the direction it is
// assigned to.
const FlowControlDisabled FlowControl = 0

const (
	// FlowControlRTS enables the Request To Send line.
	FlowControlRTS FlowControl = 1 << iota
	// FlowControlCTS enables the Clear To Send line.
	FlowControlCTS
	// FlowControlDSR enables the Data Set Ready line.
	FlowControlDSR
	// FlowControlDTR enables the Data Terminal Ready line.
	FlowControlDTR
	// FlowControlXonXoffIn enables software flow control on receive.
	FlowControlXonXoffIn
	// FlowControlXonXoffOut enables software flow control on transmit.
	FlowControlXonXoffOut
)

// Combined codes produced when parsing the hardware flow-control tokens.
const (
	FlowControlRTSCTS = FlowControlRTS | FlowControlCTS
	FlowControlDSRDTR = FlowControlDSR | FlowControlDTR
)

// DefaultFlowControl is applied when a flow-control token cannot be
// interpreted.
const DefaultFlowControl = FlowControlDisabled

var flowControlFromToken = map[string]FlowControl{
	"none":         FlowControlDisabled,
	"xon/xoff out": FlowControlXonXoffOut,
	"xon/xoff in":  FlowControlXonXoffIn,
	"rts/cts":      FlowControlRTSCTS,
	"dsr/dtr":      FlowControlDSRDTR,
}

var flowControlToToken = map[FlowControl]string{
	FlowControlDisabled:   "none",
	FlowControlXonXoffOut: "xon/xoff out",
	FlowControlXonXoffIn:  "xon/xoff in",
	FlowControlCTS:        "rts/cts",
	FlowControlDTR:        "dsr/dtr",
}

// ParseFlowControl maps a token, case-insensitively, to a flow-control
// code. Blank or unrecognized tokens yield DefaultFlowControl.
func ParseFlowControl(token string) FlowControl {
	if fc, ok := flowControlFromToken[strings.ToLower(strings.TrimSpace(token))]; ok {
		return fc
	}
	return DefaultFlowControl
}

// String returns the canonical token for the flow-control code. Only the
// single-flag codes have tokens; combined codes and anything else render as
// "none" (see the type comment).
func (fc FlowControl) String() string {
	if s, ok := flowControlToToken[fc]; ok {
		return s
	}
	return "none"
}
