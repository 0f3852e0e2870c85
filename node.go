package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Node is a node in a Huffman tree.  A Node is either a leaf, which holds a
// Symbol, or an internal node, which holds exactly two children.  The weight
// of an internal node is always the sum of the weights of its children.
//
// Trees never share nodes: every Node has at most one parent.
type Node[S Symbol] struct {
	weight float64
	symbol S
	left   *Node[S]
	right  *Node[S]
}

// NewLeaf constructs a leaf Node.
func NewLeaf[S Symbol](weight float64, symbol S) *Node[S] {
	return &Node[S]{weight: weight, symbol: symbol}
}

// NewInternal constructs an internal Node whose weight is the sum of the
// weights of its two children.  The children must not be nil and must not
// already belong to another tree.
func NewInternal[S Symbol](left *Node[S], right *Node[S]) *Node[S] {
	assert.Assertf(left != nil && right != nil, "internal node requires two children, got left=%v right=%v", left, right)
	return &Node[S]{
		weight: left.weight + right.weight,
		left:   left,
		right:  right,
	}
}

// Weight returns the weight of this Node.
func (n *Node[S]) Weight() float64 {
	return n.weight
}

// IsLeaf returns true iff this Node is a leaf.
func (n *Node[S]) IsLeaf() bool {
	return n.left == nil
}

// Symbol returns the Symbol held by a leaf.  For internal nodes it returns
// the zero value.
func (n *Node[S]) Symbol() S {
	return n.symbol
}

// Left returns the "0" child of an internal node, or nil for a leaf.
func (n *Node[S]) Left() *Node[S] {
	return n.left
}

// Right returns the "1" child of an internal node, or nil for a leaf.
func (n *Node[S]) Right() *Node[S] {
	return n.right
}

// Cost returns the total weighted code length of the tree rooted at this
// Node, i.e. the sum of weight × depth over all leaves.  This equals the sum
// of the weights of all internal nodes.
func (n *Node[S]) Cost() float64 {
	var sum float64
	stack := []*Node[S]{n}
	for len(stack) != 0 {
		last := len(stack) - 1
		node := stack[last]
		stack[last] = nil
		stack = stack[:last]
		if node.IsLeaf() {
			continue
		}
		sum += node.weight
		stack = append(stack, node.right, node.left)
	}
	return sum
}

// String returns a short description of this Node.
func (n *Node[S]) String() string {
	if n.IsLeaf() {
		return fmt.Sprintf("Leaf(%v, %v)", n.weight, n.symbol)
	}
	return fmt.Sprintf("Internal(%v)", n.weight)
}

// Dump writes a programmer-readable debugging dump of the tree rooted at this
// Node to the given writer, one node per line, children indented beneath
// their parent with the left child first.
func (n *Node[S]) Dump(w io.Writer) (int64, error) {
	type stackItem struct {
		node  *Node[S]
		depth int
	}

	var buf bytes.Buffer
	stack := []stackItem{{n, 0}}
	for len(stack) != 0 {
		last := len(stack) - 1
		item := stack[last]
		stack = stack[:last]

		buf.WriteString(strings.Repeat("\t", item.depth))
		buf.WriteString(item.node.String())
		buf.WriteByte('\n')

		if !item.node.IsLeaf() {
			stack = append(stack, stackItem{item.node.right, item.depth + 1})
			stack = append(stack, stackItem{item.node.left, item.depth + 1})
		}
	}
	return buf.WriteTo(w)
}

var _ fmt.Stringer = (*Node[int])(nil)
