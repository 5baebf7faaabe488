package utils

import (
	"fmt"
	"strings"
	"unicode"
)

// BitSequence stores one bit per record. Every element is 0 or 1.
type BitSequence []byte

// String returns the bits as a string of '0' and '1'
func (b BitSequence) String() string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, bit := range b {
		if bit == 0 {
			sb.WriteByte('0')
		} else {
			sb.WriteByte('1')
		}
	}

	return sb.String()
}

// ParseBitSequence reads a string of '0' and '1'. Whitespace is ignored so
// grouped dumps like "01000100 01010101" are accepted.
func ParseBitSequence(s string) (BitSequence, error) {
	bits := make(BitSequence, 0, len(s))
	for i, c := range s {
		switch {
		case c == '0':
			bits = append(bits, 0)
		case c == '1':
			bits = append(bits, 1)
		case unicode.IsSpace(c):
		default:
			return nil, fmt.Errorf("invalid bit %q at offset %d", c, i)
		}
	}

	return bits, nil
}
