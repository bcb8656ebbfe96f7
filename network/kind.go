package network

import "fmt"

//go:generate go tool stringer -type=ByteOrder -output=byteorder_string.go
//go:generate go tool stringer -type=Sign -output=sign_string.go

// ByteOrder is the byte-order/format flag of a signal. The numeric values
// match the flag digit in the signal grammar.
type ByteOrder int

const (
	OrderMotorola ByteOrder = iota // flag 0, big endian
	OrderIntel                     // flag 1, little endian
)

// ByteOrderFromFlag converts the grammar's format digit to a ByteOrder.
func ByteOrderFromFlag(flag int) (ByteOrder, error) {
	switch flag {
	case 0:
		return OrderMotorola, nil
	case 1:
		return OrderIntel, nil
	default:
		return 0, fmt.Errorf("invalid byte order flag %d", flag)
	}
}

// Flag returns the grammar's format digit for the byte order.
func (o ByteOrder) Flag() int {
	return int(o)
}

// Sign is the sign/type flag of a signal.
type Sign int

const (
	SignUnsigned Sign = iota // '+'
	SignSigned               // '-'
)

// SignFromChar converts the grammar's sign character to a Sign.
func SignFromChar(c byte) (Sign, error) {
	switch c {
	case '+':
		return SignUnsigned, nil
	case '-':
		return SignSigned, nil
	default:
		return 0, fmt.Errorf("invalid sign character %q", c)
	}
}

// Char returns the grammar's sign character.
func (s Sign) Char() byte {
	if s == SignSigned {
		return '-'
	}

	return '+'
}
