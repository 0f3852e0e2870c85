package huffman

import (
	"golang.org/x/exp/constraints"
)

// Symbol is the constraint satisfied by every alphabet this package can
// encode.  The natural order of the type is used to break ties, both when
// building trees and when assigning canonical codes.
type Symbol interface {
	constraints.Ordered
}

// WeightedSymbol pairs a Symbol with its weight, i.e. its frequency or
// probability mass.  Weights must be finite and non-negative.
type WeightedSymbol[S Symbol] struct {
	Symbol S
	Weight float64
}
