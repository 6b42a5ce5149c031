// Package bitstring maps bytes to fixed-width '0'/'1' text and back.
//
// Every byte becomes exactly eight characters, most significant bit first,
// so byte values above 127 survive the round trip unchanged.
package bitstring

import (
	"fmt"
	"strings"

	"github.com/arloliu/linecode/errs"
)

// BitsPerByte is the width of one byte in a bit sequence.
const BitsPerByte = 8

// FromBytes returns the MSB-first bit sequence of data.
func FromBytes(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data) * BitsPerByte)

	for _, b := range data {
		for shift := BitsPerByte - 1; shift >= 0; shift-- {
			sb.WriteByte('0' + (b>>shift)&1)
		}
	}

	return sb.String()
}

// ToBytes parses an MSB-first bit sequence.
//
// Returns:
//   - []byte: Decoded bytes
//   - error: errs.ErrInvalidBitLength if len(bits) is not a multiple of 8,
//     errs.ErrInvalidBit for characters other than '0' and '1'
func ToBytes(bits string) ([]byte, error) {
	if len(bits)%BitsPerByte != 0 {
		return nil, fmt.Errorf("%w: %d bits", errs.ErrInvalidBitLength, len(bits))
	}

	out := make([]byte, len(bits)/BitsPerByte)
	for i := 0; i < len(bits); i++ {
		var bit byte
		switch bits[i] {
		case '0':
		case '1':
			bit = 1
		default:
			return nil, fmt.Errorf("%w: %q at offset %d", errs.ErrInvalidBit, bits[i], i)
		}
		out[i/BitsPerByte] = out[i/BitsPerByte]<<1 | bit
	}

	return out, nil
}

// Group splits bits into space separated groups of width characters.
// A width below 1 returns bits unchanged; the last group may be shorter.
func Group(bits string, width int) string {
	if width < 1 || len(bits) <= width {
		return bits
	}

	var sb strings.Builder
	sb.Grow(len(bits) + len(bits)/width)
	for i := 0; i < len(bits); i += width {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(bits[i:min(i+width, len(bits))])
	}

	return sb.String()
}

// Strip removes whitespace from a grouped bit sequence.
func Strip(grouped string) string {
	return strings.Join(strings.Fields(grouped), "")
}
