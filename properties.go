package serial

import (
	"github.com/go-ini/ini"
	"github.com/pkg/errors"
)

// Property keys recognized by NewParametersFromProperties, each optionally
// preceded by a caller-supplied prefix. The lowercase databits/stopbits
// spelling is part of the inherited key scheme.
const (
	KeyPortName       = "portName"
	KeyBaudRate       = "baudRate"
	KeyFlowControlIn  = "flowControlIn"
	KeyFlowControlOut = "flowControlOut"
	KeyParity         = "parity"
	KeyDataBits       = "databits"
	KeyStopBits       = "stopbits"
	KeyEncoding       = "encoding"
	KeyEcho           = "echo"
)

// Properties is the flat text key/value source the properties constructor
// consumes.
type Properties map[string]string

// Get returns the value stored under key, or def when the key is absent.
func (pr Properties) Get(key, def string) string {
	if v, ok := pr[key]; ok {
		return v
	}
	return def
}

// NewParametersFromProperties builds a Parameters from a flat property
// source. Each field is looked up under prefix+key; absent keys keep the
// field's default, and present values go through the field's string setter
// so malformed values silently default. The single exception is baudRate,
// whose parse failure is returned to the caller.
//
// echo is true only when the stored value is exactly the literal "true";
// any other value, including absence, leaves it false.
func NewParametersFromProperties(props Properties, prefix string) (*Parameters, error) {
	p := NewParameters()
	p.SetPortName(props.Get(prefix+KeyPortName, ""))
	if err := p.SetBaudRateString(props.Get(prefix+KeyBaudRate, DefaultBaudRate.String())); err != nil {
		return nil, err
	}
	p.SetFlowControlInString(props.Get(prefix+KeyFlowControlIn, ""))
	p.SetFlowControlOutString(props.Get(prefix+KeyFlowControlOut, ""))
	p.SetParityString(props.Get(prefix+KeyParity, ""))
	p.SetDataBitsString(props.Get(prefix+KeyDataBits, DefaultDataBits.String()))
	p.SetStopBitsString(props.Get(prefix+KeyStopBits, ""))
	p.SetEncodingString(props.Get(prefix+KeyEncoding, string(DefaultEncoding)))
	p.SetEcho(props.Get(prefix+KeyEcho, "") == "true")
	return p, nil
}

// LoadProperties reads a property file from disk. See PropertiesFromINI for
// the flattening rules.
func LoadProperties(path string) (Properties, error) {
	f, err := ini.Load(path)
	if err != nil {
		return nil, errors.Wrap(err, "serial: loading properties")
	}
	return flattenINI(f), nil
}

// PropertiesFromINI parses property data held in memory.
func PropertiesFromINI(data []byte) (Properties, error) {
	f, err := ini.Load(data)
	if err != nil {
		return nil, errors.Wrap(err, "serial: parsing properties")
	}
	return flattenINI(f), nil
}

// flattenINI folds an ini file into the flat key space the properties
// constructor expects. Keys in the default section keep their bare name;
// keys in a named section get "section." prepended, so a key prefix like
// "dev1." selects the [dev1] section.
func flattenINI(f *ini.File) Properties {
	props := Properties{}
	for _, section := range f.Sections() {
		prefix := ""
		if section.Name() != ini.DEFAULT_SECTION {
			prefix = section.Name() + "."
		}
		for _, key := range section.Keys() {
			props[prefix+key.Name()] = key.Value()
		}
	}
	return props
}
