package utils

import "fmt"

// MalformedInputError is returned when the number of bits is not a multiple
// of 8 and the packing policy does not allow a partial byte.
type MalformedInputError struct {
	Bits int
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input: %d bits is not a multiple of 8 (%d trailing bits)",
		e.Bits, e.Bits%8)
}
