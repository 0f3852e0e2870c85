package huffman

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Canonicalize converts a prefix code into the canonical prefix code with the
// same bit length for every symbol.  Only the lengths of the input codes are
// used; their bit values are ignored.
//
// Within each bit length, symbols receive consecutive codes in their natural
// order.  The first code of each length follows the RFC 1951 recurrence (see
// Histogram.FirstCodes), so the result depends only on the symbol → length
// pairing and can be rebuilt from the lengths alone.
//
// Canonicalize returns ErrEmptyInput if codes is empty, and an
// *InvalidLengthError if the lengths cannot form a prefix code: a zero-length
// code among several symbols, a code longer than MaxCodeLength, or a set of
// lengths that violates the Kraft inequality.
//
// As a special case, a lone symbol with an empty code is assigned "0".
func Canonicalize[S Symbol](codes map[S]Code) (map[S]Code, error) {
	return CanonicalizeTrace(codes, nil)
}

// CanonicalizeTrace is like Canonicalize, but reports its intermediate tables
// to tr.  A nil tr is permitted.
func CanonicalizeTrace[S Symbol](codes map[S]Code, tr Tracer) (map[S]Code, error) {
	return CanonicalizeLengths(Lengths(codes), tr)
}

// CanonicalizeLengths computes the canonical prefix code for the given bit
// lengths.  It is the receiving end's counterpart of Canonicalize: given the
// same symbol → length pairing, both produce the same codes.  A nil tr is
// permitted.
func CanonicalizeLengths[S Symbol](lengths map[S]int, tr Tracer) (map[S]Code, error) {
	numSymbols := len(lengths)
	if numSymbols == 0 {
		return nil, ErrEmptyInput
	}

	// Step 1: sort the symbols by their natural order and reject lengths
	// that no prefix code could have.

	sorted := make([]symbolAndSize[S], 0, numSymbols)
	for symbol, size := range lengths {
		sorted = append(sorted, symbolAndSize[S]{symbol, size})
	}
	slices.SortFunc(sorted, func(a, b symbolAndSize[S]) int {
		return compareSymbols(a.symbol, b.symbol)
	})
	for _, item := range sorted {
		size := item.size
		if size < 0 || size > MaxCodeLength || (size == 0 && numSymbols > 1) {
			return nil, newLengthError(item.symbol, size)
		}
	}

	// permit degenerate code with 1 symbol
	if numSymbols == 1 && sorted[0].size == 0 {
		sorted[0].size = 1
	}

	// Step 2: count the symbols of each length and check that they fit.

	sizes := make([]int, numSymbols)
	for index, item := range sorted {
		sizes[index] = item.size
	}
	h := NewHistogram(sizes)
	if err := h.Validate(); err != nil {
		return nil, err
	}
	if tr != nil {
		tr.Histogram(h)
	}

	// Step 3: compute the first code of each length.

	nextCode := h.FirstCodes()
	if tr != nil {
		tr.FirstCodes(slices.Clone(nextCode))
	}

	// Step 4: assign the codes sequentially in symbol order.

	out := make(map[S]Code, numSymbols)
	for _, item := range sorted {
		out[item.symbol] = MakeCode(item.size, nextCode[item.size])
		nextCode[item.size]++
	}
	return out, nil
}

func newLengthError[S Symbol](symbol S, size int) *InvalidLengthError {
	var err error
	switch {
	case size < 0:
		err = fmt.Errorf("%w: negative", ErrInvalidLength)
	case size == 0:
		err = fmt.Errorf("%w: empty code in an alphabet of several symbols", ErrInvalidLength)
	default:
		err = fmt.Errorf("%w: longer than %d bits", ErrInvalidLength, MaxCodeLength)
	}
	return &InvalidLengthError{
		Symbol:    fmt.Sprintf("%v", symbol),
		HasSymbol: true,
		Length:    size,
		Err:    err,
	}
}

// type symbolAndSize {{{

type symbolAndSize[S Symbol] struct {
	symbol S
	size   int
}

// }}}
