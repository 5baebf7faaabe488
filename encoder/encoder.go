// Package encoder hides a message in a cover text, one bit per line, using
// the trailing space convention understood by the default decoder.
package encoder

import (
	"fmt"
	"strings"

	"github.com/redBorder/linebits/utils"
)

// Bits returns the bits of the message, most significant bit first
func Bits(message []byte) utils.BitSequence {
	bits := make(utils.BitSequence, 0, len(message)*8)
	for _, b := range message {
		for i := 7; i >= 0; i-- {
			bits = append(bits, (b>>uint(i))&1)
		}
	}

	return bits
}

// Lines writes one bit in every cover line. Trailing spaces and terminators
// of the cover are removed first; a 1 is a space before the new terminator.
// Cover lines after the last bit are not emitted.
func Lines(bits utils.BitSequence, cover []string) ([]string, error) {
	if len(cover) < len(bits) {
		return nil, fmt.Errorf("cover has %d lines, %d are needed", len(cover), len(bits))
	}

	lines := make([]string, len(bits))
	for i, bit := range bits {
		line := strings.TrimRight(cover[i], " \r\n")
		if bit != 0 {
			lines[i] = line + " \n"
		} else {
			lines[i] = line + "\n"
		}
	}

	return lines, nil
}

// Encode hides the message in the cover text
func Encode(message []byte, cover []string) ([]string, error) {
	return Lines(Bits(message), cover)
}
