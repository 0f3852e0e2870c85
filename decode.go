package huffman

// Decode decodes exactly one Symbol by walking the tree rooted at root: at
// each internal node it consumes one bit of bits, going left on false and
// right on true, until it reaches a leaf.
//
// The returned error is a *DecodeError wrapping ErrShortCode if bits runs out
// before a leaf is reached, or ErrTrailingBits if a leaf is reached before
// all of bits has been consumed.
//
// A tree consisting of a single leaf decodes the empty Code.
func Decode[S Symbol](bits Code, root *Node[S]) (S, error) {
	symbol, consumed, err := DecodePrefix(bits, root)
	if err == nil && consumed != len(bits) {
		var zero S
		return zero, &DecodeError{Code: bits, Consumed: consumed, Err: ErrTrailingBits}
	}
	return symbol, err
}

// DecodePrefix is like Decode, but stops at the first leaf and ignores any
// bits that follow.  It returns the decoded Symbol along with the number of
// bits consumed, so that the caller can resume after the code.
func DecodePrefix[S Symbol](bits Code, root *Node[S]) (symbol S, consumed int, err error) {
	node := root
	for !node.IsLeaf() {
		if consumed >= len(bits) {
			return symbol, consumed, &DecodeError{Code: bits, Consumed: consumed, Err: ErrShortCode}
		}
		if bits[consumed] {
			node = node.right
		} else {
			node = node.left
		}
		consumed++
	}
	return node.symbol, consumed, nil
}
