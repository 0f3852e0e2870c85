package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// Histogram counts how many symbols have each bit length: Histogram[L] is the
// number of symbols whose code is L bits long.  Histogram[0] is always 0; it
// is the base case of the canonical first-code recurrence.
type Histogram []int

// NewHistogram computes the Histogram for a list of bit lengths.  Lengths of
// 0 are not counted.  Negative lengths must be rejected before calling.
func NewHistogram(lengths []int) Histogram {
	var maxLength int
	for _, length := range lengths {
		if maxLength < length {
			maxLength = length
		}
	}
	h := make(Histogram, maxLength+1)
	for _, length := range lengths {
		if length > 0 {
			h[length]++
		}
	}
	return h
}

// MaxLength returns the longest bit length with a non-zero count.
func (h Histogram) MaxLength() int {
	for length := len(h) - 1; length > 0; length-- {
		if h[length] != 0 {
			return length
		}
	}
	return 0
}

// NumSymbols returns the total number of symbols counted.
func (h Histogram) NumSymbols() int {
	var sum int
	for length := 1; length < len(h); length++ {
		sum += h[length]
	}
	return sum
}

// Validate checks that the counted lengths satisfy the Kraft inequality, i.e.
// that Σ 2^-L ≤ 1 and therefore a prefix code with these lengths exists.  It
// also rejects lengths above MaxCodeLength.  The error, if any, is an
// *InvalidLengthError.
func (h Histogram) Validate() error {
	maxLength := h.MaxLength()
	if maxLength > MaxCodeLength {
		return &InvalidLengthError{
			Length: maxLength,
			Err:    fmt.Errorf("%w: longer than %d bits", ErrInvalidLength, MaxCodeLength),
		}
	}

	// available is the number of unused codes of the current length.
	// Once it reaches the number of remaining symbols it can never run
	// out, so it is clamped there to stay clear of overflow.
	remaining := uint64(h.NumSymbols())
	available := uint64(1)
	for length := 1; length <= maxLength; length++ {
		available <<= 1
		if available > remaining {
			available = remaining
		}
		count := uint64(h[length])
		if count > available {
			return &InvalidLengthError{Length: length, Err: ErrKraft}
		}
		available -= count
		remaining -= count
	}
	return nil
}

// FirstCodes computes the numerically smallest canonical code of each bit
// length, per RFC 1951 Section 3.2.2:
//
//	code = 0
//	for L = 1 .. MaxLength:
//		code = (code + h[L-1]) << 1
//		first[L] = code
//
// first[0] is always 0.  The Histogram should be validated first; otherwise
// the results may not fit in their bit lengths.
func (h Histogram) FirstCodes() []uint64 {
	maxLength := h.MaxLength()
	first := make([]uint64, maxLength+1)
	var code uint64
	for length := 1; length <= maxLength; length++ {
		code = (code + uint64(h[length-1])) << 1
		first[length] = code
	}
	return first
}

// Dump writes a programmer-readable debugging dump of the Histogram to the
// given writer.
func (h Histogram) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Histogram{\n")
	maxLength := h.MaxLength()
	for length := 0; length < len(h) && length <= maxLength; length++ {
		fmt.Fprintf(&buf, "\tCount(%d) = %d\n", length, h[length])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// Tracer receives the intermediate tables computed by the canonicalizer.  It
// is meant for debugging; the canonical result does not depend on it.
type Tracer interface {
	// Histogram is called once the bit lengths have been counted and
	// validated.
	Histogram(h Histogram)

	// FirstCodes is called with the smallest code of each bit length,
	// before any code has been assigned.
	FirstCodes(first []uint64)
}

// DumpTracer is a Tracer that writes each table to W.  Write errors are
// ignored.
type DumpTracer struct {
	W io.Writer
}

// Histogram fulfills the Tracer interface.
func (tr DumpTracer) Histogram(h Histogram) {
	_, _ = h.Dump(tr.W)
}

// FirstCodes fulfills the Tracer interface.
func (tr DumpTracer) FirstCodes(first []uint64) {
	var buf bytes.Buffer
	buf.WriteString("FirstCodes{\n")
	for length := 1; length < len(first); length++ {
		fmt.Fprintf(&buf, "\tFirstCode(%d) = %s\n", length, MakeCode(length, first[length]))
	}
	buf.WriteString("}\n")
	_, _ = buf.WriteTo(tr.W)
}

var _ Tracer = DumpTracer{}
