// Package serial models the configuration of a serial communication
// endpoint: port name, baud rate, data and stop bits, parity, flow control,
// protocol encoding and the RS-485 echo mode.
//
// The package holds settings, supplies sane defaults and converts between
// enumerated codes and their canonical string tokens, the form used by
// property files and UI-driven configuration. It opens no ports and does no
// I/O; a transport layer consumes the resulting Parameters, typically
// through Mode, to establish the physical connection.
package serial
