package serial

import "strings"

// Encoding selects the frame format the protocol layer applies on the wire.
type Encoding string

const (
	// EncodingASCII selects ASCII framing.
	EncodingASCII Encoding = "ascii"
	// EncodingRTU selects RTU framing.
	EncodingRTU Encoding = "rtu"
)

// DefaultEncoding is applied whenever an encoding token cannot be
// interpreted.
const DefaultEncoding = EncodingRTU

// ParseEncoding folds a token, case-insensitively, to its canonical
// lowercase encoding. Blank or unrecognized tokens yield DefaultEncoding, so
// a Parameters value can never hold an arbitrary encoding string.
func ParseEncoding(token string) Encoding {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case string(EncodingASCII):
		return EncodingASCII
	case string(EncodingRTU):
		return EncodingRTU
	default:
		return DefaultEncoding
	}
}

func (e Encoding) String() string {
	return string(e)
}
