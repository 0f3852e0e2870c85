package huffman

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// MaxCodeLength is the longest code, in bits, that a canonical code may
// contain.  Canonical code values are computed as uint64.
const MaxCodeLength = 64

// Code represents a sequence of bits.  Code[0] is the first bit, i.e. the
// decision taken at the root of the tree: false is "0" (left) and true is "1"
// (right).
type Code []bool

// MakeCode constructs a Code of exactly size bits holding value, most
// significant bit first.  Bits of value above size are discarded.
func MakeCode(size int, value uint64) Code {
	hc := make(Code, size)
	for i := 0; i < size; i++ {
		shift := uint(size - 1 - i)
		if shift < 64 {
			hc[i] = (value>>shift)&1 != 0
		}
	}
	return hc
}

// ParseCode parses a string of '0' and '1' characters into a Code.
func ParseCode(str string) (Code, error) {
	hc := make(Code, len(str))
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '0':
			hc[i] = false
		case '1':
			hc[i] = true
		default:
			return nil, fmt.Errorf("huffman: invalid character %q at offset %d in code %q", str[i], i, str)
		}
	}
	return hc, nil
}

// MustParseCode is like ParseCode but panics on error.
func MustParseCode(str string) Code {
	hc, err := ParseCode(str)
	if err != nil {
		panic(err)
	}
	return hc
}

// Len returns the number of bits in this Code.
func (hc Code) Len() int {
	return len(hc)
}

// Uint64 returns the numeric value of this Code, most significant bit first.
// The second result is false if the Code is longer than 64 bits.
func (hc Code) Uint64() (uint64, bool) {
	if len(hc) > 64 {
		return 0, false
	}
	var value uint64
	for _, bit := range hc {
		value <<= 1
		if bit {
			value |= 1
		}
	}
	return value, true
}

// HasPrefix returns true iff prefix is a prefix of this Code.  Every Code is
// a prefix of itself.
func (hc Code) HasPrefix(prefix Code) bool {
	return len(prefix) <= len(hc) && slices.Equal(hc[:len(prefix)], prefix)
}

// Equal returns true iff both Codes hold the same bits.
func (hc Code) Equal(other Code) bool {
	return slices.Equal(hc, other)
}

// Append returns a new Code consisting of this Code followed by bit.  The
// receiver is never modified.
func (hc Code) Append(bit bool) Code {
	out := make(Code, len(hc)+1)
	copy(out, hc)
	out[len(hc)] = bit
	return out
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(hc.bitString())
}

// bitString returns the unquoted "0101" form, which also serves as a map key.
func (hc Code) bitString() string {
	var sb strings.Builder
	sb.Grow(len(hc))
	for _, bit := range hc {
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// compareCodes orders Codes lexicographically, with a proper prefix sorting
// before any of its extensions.
func compareCodes(a, b Code) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

var _ fmt.Stringer = Code(nil)
