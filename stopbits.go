package serial

import (
	"strings"

	gobug "go.bug.st/serial"
)

type StopBits gobug.StopBits

func (sb StopBits) Get() gobug.StopBits {
	return gobug.StopBits(sb)
}

const (
	// StopBits1 represents 1 stop bit
	StopBits1 = StopBits(gobug.OneStopBit)
	// StopBits1Half represents 1.5 stop bits
	StopBits1Half = StopBits(gobug.OnePointFiveStopBits)
	// StopBits2 represents 2 stop bits
	StopBits2 = StopBits(gobug.TwoStopBits)
)

// DefaultStopBits is applied when a stop-bits token cannot be interpreted.
const DefaultStopBits = StopBits1

var stopBitsFromToken = map[string]StopBits{
	"1":   StopBits1,
	"1.5": StopBits1Half,
	"2":   StopBits2,
}

var stopBitsToToken = map[StopBits]string{
	StopBits1:     "1",
	StopBits1Half: "1.5",
	StopBits2:     "2",
}

// ParseStopBits maps a token to a stop-bits code. Blank or unrecognized
// tokens yield DefaultStopBits.
func ParseStopBits(token string) StopBits {
	if sb, ok := stopBitsFromToken[strings.TrimSpace(token)]; ok {
		return sb
	}
	return DefaultStopBits
}

// String returns the canonical token for the stop-bits code, "1" for any
// code outside the table.
func (sb StopBits) String() string {
	if s, ok := stopBitsToToken[sb]; ok {
		return s
	}
	return "1"
}
