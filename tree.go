package huffman

import (
	"container/heap"
	"math"

	"github.com/chronos-tachyon/assert"
	"golang.org/x/exp/slices"
)

// BuildTree constructs a Huffman tree for the given weighted symbols.  Each
// Symbol must appear at most once, and each weight must be finite and
// non-negative.
//
// The tree is built by repeatedly removing the two lightest nodes from a
// min-heap and merging them into a new internal node, the first removed
// becoming the left child and the second the right child.  Ties between equal
// weights are broken deterministically: leaves come before internal nodes,
// leaves are ordered by Symbol, and internal nodes are ordered by creation.
// The resulting tree therefore depends only on the set of (Symbol, weight)
// pairs, not on the order of the input.
//
// With exactly one symbol, the result is a lone leaf.  With no symbols at all,
// BuildTree returns ErrEmptyInput.
func BuildTree[S Symbol](symbols []WeightedSymbol[S]) (*Node[S], error) {
	if len(symbols) == 0 {
		return nil, ErrEmptyInput
	}

	sorted := make([]WeightedSymbol[S], len(symbols))
	copy(sorted, symbols)
	slices.SortFunc(sorted, func(a, b WeightedSymbol[S]) int {
		return compareSymbols(a.Symbol, b.Symbol)
	})

	// Step 1: build a minheap of leaves.

	h := nodeHeap[S]{list: make([]heapItem[S], 0, len(sorted))}
	for index, ws := range sorted {
		w := ws.Weight
		assert.Assertf(!math.IsNaN(w) && !math.IsInf(w, 0), "weight of symbol %v is %v, must be finite", ws.Symbol, w)
		assert.Assertf(w >= 0, "weight of symbol %v is %v, must be non-negative", ws.Symbol, w)
		h.list = append(h.list, heapItem[S]{NewLeaf(w, ws.Symbol), uint64(index)})
	}
	h.Init()

	// Step 2: process the minheap by popping two nodes, combining them
	// into a new internal node, and pushing the new node back onto the
	// minheap.  Internal nodes are numbered after all the leaves.

	nextSeq := uint64(len(sorted))
	for h.Len() > 1 {
		a := heap.Pop(&h).(heapItem[S])
		b := heap.Pop(&h).(heapItem[S])
		heap.Push(&h, heapItem[S]{NewInternal(a.node, b.node), nextSeq})
		nextSeq++
	}

	root := heap.Pop(&h).(heapItem[S])
	return root.node, nil
}

// BuildTreeFromMap is a convenience wrapper around BuildTree for callers that
// keep their weights in a map.
func BuildTreeFromMap[S Symbol](weights map[S]float64) (*Node[S], error) {
	symbols := make([]WeightedSymbol[S], 0, len(weights))
	for symbol, weight := range weights {
		symbols = append(symbols, WeightedSymbol[S]{symbol, weight})
	}
	return BuildTree(symbols)
}

// type heapItem + type nodeHeap {{{

type heapItem[S Symbol] struct {
	node *Node[S]
	seq  uint64
}

type nodeHeap[S Symbol] struct {
	list []heapItem[S]
}

func (h *nodeHeap[S]) Init() {
	heap.Init(h)
}

func (h *nodeHeap[S]) Len() int {
	return len(h.list)
}

func (h *nodeHeap[S]) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap[S]) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.weight != b.node.weight {
		return a.node.weight < b.node.weight
	}
	return a.seq < b.seq
}

func (h *nodeHeap[S]) Push(x interface{}) {
	h.list = append(h.list, x.(heapItem[S]))
}

func (h *nodeHeap[S]) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = heapItem[S]{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap[int])(nil)

// }}}
