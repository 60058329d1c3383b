// SPDX-License-Identifier: MIT

package expr

import "github.com/katalvlaran/matchain/matrix"

// Kind enumerates the closed set of node variants.
type Kind uint8

const (
	// Leaf holds a concrete matrix.
	Leaf Kind = iota
	// Product multiplies its two children.
	Product
	// Sum adds its two children element-wise.
	Sum
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case Leaf:
		return "Leaf"
	case Product:
		return "Product"
	case Sum:
		return "Sum"
	default:
		return "Kind(?)"
	}
}

// Expr is one node of an expression tree.
//
// Only the fields of its Kind are populated: m and label for leaves,
// left and right for products and sums. rows/cols are cached for every
// kind at construction time so Dims is O(1).
type Expr struct {
	kind        Kind
	rows, cols  int
	left, right *Expr         // Product, Sum
	m           matrix.Matrix // Leaf
	label       string        // Leaf, display only
}

// Counts tallies the nodes of a tree per kind.
type Counts struct {
	Leaves   int
	Products int
	Sums     int
}
