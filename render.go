package bcalc

import (
	"fmt"
	"strconv"
	"strings"
)

func FormatDecimal(n int64) string {
	return strconv.FormatInt(n, 10)
}

// FormatHex renders n as 0x-prefixed upper-case hex. Negative values show
// their two's-complement bit pattern.
func FormatHex(n int64) string {
	return fmt.Sprintf("0x%X", uint64(n))
}

// PaddedBinary renders n in base 2, zero-padded on the left to a multiple
// of 4 bits.
func PaddedBinary(n int64) string {
	s := strconv.FormatUint(uint64(n), 2)
	if pad := (4 - len(s)%4) % 4; pad > 0 {
		s = strings.Repeat("0", pad) + s
	}
	return s
}

// FormatBinary renders n as space-separated 4-bit groups plus a second line
// giving, under each group, the bit index of its least significant bit
// right-justified to width 4.
func FormatBinary(n int64) (groups, indexes string) {
	padded := PaddedBinary(n)
	parts := make([]string, 0, len(padded)/4)
	labels := make([]string, 0, len(padded)/4)
	for i := 0; i < len(padded); i += 4 {
		parts = append(parts, padded[i:i+4])
		labels = append(labels, fmt.Sprintf("%4d", len(padded)-4-i))
	}
	return strings.Join(parts, " "), strings.Join(labels, " ")
}
