// SPDX-License-Identifier: MIT

package expr

import (
	"fmt"

	"github.com/katalvlaran/matchain/matrix"
)

const (
	opLeaf     = "NewLeaf"
	opMultiply = "Multiply"
	opAdd      = "Add"
)

// NewLeaf wraps m as a leaf node, caching its dimensions.
// The matrix is referenced, not copied; callers must not mutate it while the
// tree is in use. label is used only by String.
//
// Errors:
//   - ErrNilOperand when m is nil.
//
// Complexity: O(1).
func NewLeaf(m matrix.Matrix, label string) (*Expr, error) {
	if m == nil {
		return nil, fmt.Errorf("%s: %w", opLeaf, ErrNilOperand)
	}

	return &Expr{kind: Leaf, rows: m.Rows(), cols: m.Cols(), m: m, label: label}, nil
}

// Multiply returns the Product node a × b with dimensions (a.rows, b.cols).
//
// Errors:
//   - ErrNilOperand when a or b is nil.
//   - ErrDimensionMismatch when a.cols != b.rows; no node is produced.
//
// Complexity: O(1).
func Multiply(a, b *Expr) (*Expr, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%s: %w", opMultiply, ErrNilOperand)
	}
	if a.cols != b.rows {
		return nil, mismatchErrorf(opMultiply, a, b)
	}

	return &Expr{kind: Product, rows: a.rows, cols: b.cols, left: a, right: b}, nil
}

// Add returns the Sum node a + b with the operands' common dimensions.
//
// Errors:
//   - ErrNilOperand when a or b is nil.
//   - ErrDimensionMismatch when the shapes differ; no node is produced.
//
// Complexity: O(1).
func Add(a, b *Expr) (*Expr, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%s: %w", opAdd, ErrNilOperand)
	}
	if a.rows != b.rows || a.cols != b.cols {
		return nil, mismatchErrorf(opAdd, a, b)
	}

	return &Expr{kind: Sum, rows: a.rows, cols: a.cols, left: a, right: b}, nil
}

// MustMultiply is like Multiply but panics on error.
// It is meant for callers that already hold the adjacency invariant, such as
// the chain optimizer regrouping operands of a validated chain; a panic there
// is a programming error, not an input error.
func MustMultiply(a, b *Expr) *Expr {
	e, err := Multiply(a, b)
	if err != nil {
		panic(err)
	}

	return e
}

// MustAdd is like Add but panics on error.
func MustAdd(a, b *Expr) *Expr {
	e, err := Add(a, b)
	if err != nil {
		panic(err)
	}

	return e
}

// Kind reports the node variant.
func (e *Expr) Kind() Kind { return e.kind }

// Dims returns the cached (rows, cols) of the value e denotes. O(1).
func (e *Expr) Dims() (rows, cols int) { return e.rows, e.cols }

// Rows returns the cached row count. O(1).
func (e *Expr) Rows() int { return e.rows }

// Cols returns the cached column count. O(1).
func (e *Expr) Cols() int { return e.cols }

// Left returns the left child of a Product or Sum, nil for a Leaf.
func (e *Expr) Left() *Expr { return e.left }

// Right returns the right child of a Product or Sum, nil for a Leaf.
func (e *Expr) Right() *Expr { return e.right }

// Matrix returns the stored matrix of a Leaf, nil otherwise.
func (e *Expr) Matrix() matrix.Matrix { return e.m }

// Label returns the display label of a Leaf ("" otherwise).
func (e *Expr) Label() string { return e.label }
