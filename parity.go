package serial

import (
	"strings"

	gobug "go.bug.st/serial"
)

type Parity gobug.Parity

func (pa Parity) Get() gobug.Parity {
	return gobug.Parity(pa)
}

const (
	// ParityNone represents no parity bit
	ParityNone = Parity(gobug.NoParity)
	// ParityOdd represents odd parity bit
	ParityOdd = Parity(gobug.OddParity)
	// ParityEven represents even parity bit
	ParityEven = Parity(gobug.EvenParity)
	// ParityMark represents mark parity bit (always 1)
	ParityMark = Parity(gobug.MarkParity)
	// ParitySpace represents space parity bit (always 0)
	ParitySpace = Parity(gobug.SpaceParity)
)

// DefaultParity is applied when a parity token cannot be interpreted.
const DefaultParity = ParityNone

var parityFromToken = map[string]Parity{
	"none":  ParityNone,
	"even":  ParityEven,
	"odd":   ParityOdd,
	"mark":  ParityMark,
	"space": ParitySpace,
}

var parityToToken = map[Parity]string{
	ParityNone:  "none",
	ParityEven:  "even",
	ParityOdd:   "odd",
	ParityMark:  "mark",
	ParitySpace: "space",
}

// ParseParity maps a token, case-insensitively, to a parity code. Blank or
// unrecognized tokens yield DefaultParity.
func ParseParity(token string) Parity {
	if pa, ok := parityFromToken[strings.ToLower(strings.TrimSpace(token))]; ok {
		return pa
	}
	return DefaultParity
}

// String returns the canonical token for the parity code, "none" for any
// code outside the table.
func (pa Parity) String() string {
	if s, ok := parityToToken[pa]; ok {
		return s
	}
	return "none"
}
