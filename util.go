package huffman

import (
	mathbits "math/bits"
)

// compareSymbols orders Symbols by their natural order.
func compareSymbols[S Symbol](a, b S) int {
	switch {
	case a < b:
		return -1
	case b < a:
		return 1
	default:
		return 0
	}
}

func log2uint32(x uint32) uint32 {
	if x == 0 {
		x = 1
	}
	return uint32(32 - mathbits.LeadingZeros32(x))
}
