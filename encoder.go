package huffman

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/exp/slices"
)

// Encoder implements an encoder for canonical Huffman codes.
type Encoder[S Symbol] struct {
	codes   map[S]Code
	symbols []S
	minSize int
	maxSize int
}

// Init initializes this Encoder.  The argument lists the weight (i.e. the
// frequency or probability) of each Symbol in the code's alphabet.  Every
// Symbol present in the map receives a code, even if its weight is 0.
//
// Init builds a Huffman tree for the weights, extracts the bit length of each
// Symbol from it, and then assigns canonical codes to those lengths.  An
// alphabet with a single Symbol is given the one-bit code "0".
//
// Init returns ErrEmptyInput if weights is empty, and an *InvalidLengthError
// if the tree is deeper than MaxCodeLength.
func (e *Encoder[S]) Init(weights map[S]float64) error {
	root, err := BuildTreeFromMap(weights)
	if err != nil {
		return err
	}

	codes, err := Canonicalize(Extract(root))
	if err != nil {
		return err
	}

	symbols := make([]S, 0, len(codes))
	var minSize, maxSize int
	for symbol, hc := range codes {
		size := len(hc)
		if len(symbols) == 0 {
			minSize = size
			maxSize = size
		} else if minSize > size {
			minSize = size
		} else if maxSize < size {
			maxSize = size
		}
		symbols = append(symbols, symbol)
	}
	slices.Sort(symbols)

	*e = Encoder[S]{
		codes:   codes,
		symbols: symbols,
		minSize: minSize,
		maxSize: maxSize,
	}
	return nil
}

// Encode returns the canonical Huffman code for a Symbol.  The second result
// is false if the Symbol is not part of the code's alphabet.
func (e Encoder[S]) Encode(symbol S) (Code, bool) {
	hc, found := e.codes[symbol]
	return hc, found
}

// MinSize is the bit length of the shortest legal code.
func (e Encoder[S]) MinSize() int {
	return e.minSize
}

// MaxSize is the bit length of the longest legal code.
func (e Encoder[S]) MaxSize() int {
	return e.maxSize
}

// Symbols returns the code's alphabet in natural order.
func (e Encoder[S]) Symbols() []S {
	return slices.Clone(e.symbols)
}

// Lengths returns the bit length of each Symbol's code.  This map can be
// transmitted to another party and used by Decoder to reconstruct this
// Huffman code on the receiving end.
func (e Encoder[S]) Lengths() map[S]int {
	return Lengths(e.codes)
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e Encoder[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for _, symbol := range e.symbols {
		fmt.Fprintf(&buf, "\tEncode(%v) = %s\n", symbol, e.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
