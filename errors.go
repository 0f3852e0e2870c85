package huffman

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when an operation is given no symbols.
	ErrEmptyInput = errors.New("huffman: no symbols")

	// ErrInvalidLength is the root of every error about bit lengths that
	// cannot form a valid prefix code.
	ErrInvalidLength = errors.New("huffman: invalid bit length")

	// ErrKraft indicates that a set of bit lengths violates the Kraft
	// inequality, i.e. there are too many short codes.
	ErrKraft = fmt.Errorf("%w: Kraft inequality violated", ErrInvalidLength)

	// ErrNotPrefixFree indicates that one code is a prefix of another.
	ErrNotPrefixFree = fmt.Errorf("%w: code is not prefix-free", ErrInvalidLength)

	// ErrDecode is the root of every decoding error.
	ErrDecode = errors.New("huffman: decode failure")

	// ErrShortCode indicates that the bits ran out before reaching a leaf.
	ErrShortCode = fmt.Errorf("%w: incomplete code", ErrDecode)

	// ErrTrailingBits indicates that bits remained after reaching a leaf.
	ErrTrailingBits = fmt.Errorf("%w: trailing bits after code", ErrDecode)
)

// InvalidLengthError reports a symbol whose declared bit length cannot be
// part of a valid prefix code.
type InvalidLengthError struct {
	// Symbol is the offending symbol, formatted with %v.  It is only
	// meaningful if HasSymbol is true.
	Symbol string

	// HasSymbol is false when the problem concerns the length table as a
	// whole, e.g. a Kraft inequality violation.
	HasSymbol bool

	// Length is the offending bit length.
	Length int

	// Err is ErrInvalidLength or one of the errors wrapping it.
	Err error
}

// Error fulfills the error interface.
func (err *InvalidLengthError) Error() string {
	if !err.HasSymbol {
		return fmt.Sprintf("%v (length %d)", err.Err, err.Length)
	}
	return fmt.Sprintf("%v (symbol %q, length %d)", err.Err, err.Symbol, err.Length)
}

// Unwrap returns the underlying sentinel error.
func (err *InvalidLengthError) Unwrap() error {
	return err.Err
}

// DecodeError reports a bit sequence that is inconsistent with the shape of
// the tree used to decode it.
type DecodeError struct {
	// Code is the bit sequence being decoded.
	Code Code

	// Consumed is the number of bits consumed when the failure occurred.
	Consumed int

	// Err is ErrShortCode or ErrTrailingBits.
	Err error
}

// Error fulfills the error interface.
func (err *DecodeError) Error() string {
	return fmt.Sprintf("%v: code %s, consumed %d of %d bits", err.Err, err.Code, err.Consumed, len(err.Code))
}

// Unwrap returns the underlying sentinel error.
func (err *DecodeError) Unwrap() error {
	return err.Err
}

var (
	_ error = (*InvalidLengthError)(nil)
	_ error = (*DecodeError)(nil)
)
