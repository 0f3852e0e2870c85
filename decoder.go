package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"golang.org/x/exp/slices"
)

// Decoder implements a decoder for canonical Huffman codes.
type Decoder[S Symbol] struct {
	table   map[string]decoderData[S]
	lengths map[S]int
	minSize int
	maxSize int
}

// Init initializes this Decoder.  The argument holds the bit length of each
// Symbol in the code, which is used to construct the canonical Huffman code
// exactly as CanonicalizeLengths does.
//
// Not all inputs are valid for constructing a canonical Huffman code.  In
// particular, this method will reject lengths that violate the Kraft
// inequality.  A code consisting of 0 symbols is permitted and decodes
// nothing.  A code consisting of 1 symbol with a length of 0 is treated as
// the one-bit code "0", matching Canonicalize.
func (d *Decoder[S]) Init(lengths map[S]int) error {
	if len(lengths) == 0 {
		*d = Decoder[S]{}
		return nil
	}

	codes, err := CanonicalizeLengths(lengths, nil)
	if err != nil {
		return err
	}

	numSymbols := uint32(len(codes))

	// len(table) is approximately n×log2(n) when filled.
	numTableSlots := numSymbols * log2uint32(numSymbols)

	*d = Decoder[S]{
		table:   make(map[string]decoderData[S], numTableSlots),
		lengths: make(map[S]int, len(lengths)),
	}

	first := true
	for symbol, hc := range codes {
		size := len(hc)
		if first {
			d.minSize = size
			d.maxSize = size
			first = false
		} else if d.minSize > size {
			d.minSize = size
		} else if d.maxSize < size {
			d.maxSize = size
		}
		d.lengths[symbol] = lengths[symbol]
		fillTable(d.table, symbol, hc)
	}
	return nil
}

// Decode attempts to decode a Huffman code into a Symbol.
//
// If the Decode is completely successful, ok is true and minSize == maxSize
// == len(hc).
//
// If the Decode fails due to insufficient bits, ok is false and at least
// (minSize - len(hc)) additional bits are required to decode this symbol.  No
// more than (maxSize - len(hc)) additional bits will be required.
//
// If the Decode fails due to unreasonable input, ok is false and
// minSize == maxSize == 0.
func (d Decoder[S]) Decode(hc Code) (symbol S, minSize int, maxSize int, ok bool) {
	dd, found := d.table[hc.bitString()]
	if !found {
		return symbol, 0, 0, false
	}
	return dd.symbol, dd.minSize, dd.maxSize, dd.valid
}

// MinSize is the bit length of the shortest legal code.
func (d Decoder[S]) MinSize() int {
	return d.minSize
}

// MaxSize is the bit length of the longest legal code.
func (d Decoder[S]) MaxSize() int {
	return d.maxSize
}

// Lengths returns a copy of the original bit length map used to initialize
// this Decoder.
func (d Decoder[S]) Lengths() map[S]int {
	out := make(map[S]int, len(d.lengths))
	for symbol, size := range d.lengths {
		out[symbol] = size
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d Decoder[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", d.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.maxSize)
	keys := make([]Code, 0, len(d.table))
	for key := range d.table {
		keys = append(keys, MustParseCode(key))
	}
	slices.SortFunc(keys, compareCodesBySize)
	for _, hc := range keys {
		dd := d.table[hc.bitString()]
		if dd.valid {
			fmt.Fprintf(&buf, "\tDecode(%s) = {%v, %d, %d}\n", hc, dd.symbol, dd.minSize, dd.maxSize)
		} else {
			fmt.Fprintf(&buf, "\tDecode(%s) = {-, %d, %d}\n", hc, dd.minSize, dd.maxSize)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

type decoderData[S Symbol] struct {
	symbol  S
	minSize int
	maxSize int
	valid   bool
}

// fillTable records hc → symbol, then widens the size range of every proper
// prefix of hc so that a partial code reports how many more bits it needs.
func fillTable[S Symbol](table map[string]decoderData[S], symbol S, hc Code) {
	size := len(hc)
	key := hc.bitString()
	_, found := table[key]
	assert.Assertf(!found, "code %s for symbol %v collides with an earlier code", hc, symbol)
	table[key] = decoderData[S]{symbol: symbol, minSize: size, maxSize: size, valid: true}

	for prefixLen := size - 1; prefixLen >= 0; prefixLen-- {
		prefixKey := key[:prefixLen]
		dd, found := table[prefixKey]
		assert.Assertf(!dd.valid, "code %q for symbol %v is a prefix of code %s", prefixKey, dd.symbol, hc)
		if !found {
			dd = decoderData[S]{minSize: size, maxSize: size}
		} else if dd.minSize > size {
			dd.minSize = size
		} else if dd.maxSize < size {
			dd.maxSize = size
		}
		table[prefixKey] = dd
	}
}

// compareCodesBySize orders Codes by length first, then by numeric value.
func compareCodesBySize(a, b Code) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return compareCodes(a, b)
}
