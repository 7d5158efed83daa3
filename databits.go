package serial

import "strconv"

type DataBits int

func (d DataBits) Int() int {
	return int(d)
}

// String returns the bit count as a decimal literal.
func (d DataBits) String() string {
	return strconv.Itoa(int(d))
}

const (
	DataBits5 DataBits = 5
	DataBits6 DataBits = 6
	DataBits7 DataBits = 7
	DataBits8 DataBits = 8
)

// DefaultDataBits is applied when a data-bits token cannot be interpreted.
const DefaultDataBits = DataBits8

// ParseDataBits maps a decimal token to a data bit count. Anything that is
// not a plain non-negative integer literal yields DefaultDataBits.
func ParseDataBits(token string) DataBits {
	if !isDigits(token) {
		return DefaultDataBits
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		// out of int range
		return DefaultDataBits
	}
	return DataBits(n)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
