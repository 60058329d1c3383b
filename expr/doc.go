// SPDX-License-Identifier: MIT

// Package expr models matrix-algebra expressions as immutable trees.
//
// A tree has three node kinds:
//
//   - Leaf:    a concrete matrix operand with cached dimensions and a label.
//   - Product: left × right, valid only when left.cols == right.rows.
//   - Sum:     left + right, valid only when both operands share a shape.
//
// Every invariant is enforced by the constructors (NewLeaf, Multiply, Add):
// an incompatible operand pair fails with ErrDimensionMismatch and no node is
// produced. Nodes are never mutated after construction, so a tree may be read
// by many goroutines at once; rewriting (see package chain) builds new trees
// that reuse untouched subtrees.
//
// Quick example:
//
//	a, _ := expr.NewLeaf(A, "A") // 10×20
//	b, _ := expr.NewLeaf(B, "B") // 20×10
//	ab, err := expr.Multiply(a, b)
//	fmt.Println(ab, ab.Rows(), ab.Cols()) // ([A] * [B]) 10 10
package expr
