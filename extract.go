package huffman

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Extract walks the tree rooted at root and returns the prefix code it
// describes: each leaf's Symbol maps to the path from the root to that leaf,
// with false for each left turn and true for each right turn.
//
// A tree consisting of a single leaf yields an empty Code for its Symbol.
// Such a code cannot be transmitted; Canonicalize turns it into "0".
//
// Extract does not modify the tree, so it remains usable with Decode.
func Extract[S Symbol](root *Node[S]) map[S]Code {
	out := make(map[S]Code)

	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children
	//
	// path always holds the bits leading to the top of the stack, so a
	// copy of it is taken whenever a leaf is recorded.

	type stackItem struct {
		node *Node[S]
		x    byte
	}

	var stack []stackItem
	var path Code

	processChild := func(child *Node[S], bit bool) {
		path = append(path, bit)
		if !child.IsLeaf() {
			stack = append(stack, stackItem{node: child})
			return
		}
		hc := make(Code, len(path))
		copy(hc, path)
		out[child.symbol] = hc
		path = path[:len(path)-1]
	}

	if root.IsLeaf() {
		out[root.symbol] = Code{}
		return out
	}

	stack = append(stack, stackItem{node: root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(top.node.left, false)
		case 1:
			processChild(top.node.right, true)
		case 2:
			stack = stack[:len(stack)-1]
			if len(path) != 0 {
				path = path[:len(path)-1]
			}
		}
	}
	return out
}

// Lengths returns the bit length of each Code in codes.
func Lengths[S Symbol](codes map[S]Code) map[S]int {
	out := make(map[S]int, len(codes))
	for symbol, hc := range codes {
		out[symbol] = len(hc)
	}
	return out
}

// CheckPrefixFree verifies that no Code in codes is a prefix of another.  A
// mapping from an arbitrary source should pass this check before it is
// trusted as a prefix code.  The error, if any, is an *InvalidLengthError
// wrapping ErrNotPrefixFree.
func CheckPrefixFree[S Symbol](codes map[S]Code) error {
	type symbolAndCode struct {
		symbol S
		code   Code
	}

	sorted := make([]symbolAndCode, 0, len(codes))
	for symbol, hc := range codes {
		sorted = append(sorted, symbolAndCode{symbol, hc})
	}
	slices.SortFunc(sorted, func(a, b symbolAndCode) int {
		if cmp := compareCodes(a.code, b.code); cmp != 0 {
			return cmp
		}
		return compareSymbols(a.symbol, b.symbol)
	})

	// In lexicographic order, any code that has a prefix elsewhere in the
	// set sorts immediately after some code with that prefix, so comparing
	// neighbours is sufficient.
	for i := 1; i < len(sorted); i++ {
		a, b := sorted[i-1], sorted[i]
		if b.code.HasPrefix(a.code) {
			return &InvalidLengthError{
				Symbol:    fmt.Sprintf("%v", b.symbol),
				HasSymbol: true,
				Length:    len(b.code),
				Err:       fmt.Errorf("%w: %s (symbol %v) is a prefix of %s", ErrNotPrefixFree, a.code, a.symbol, b.code),
			}
		}
	}
	return nil
}
