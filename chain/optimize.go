// SPDX-License-Identifier: MIT

package chain

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/matchain/expr"
	"github.com/katalvlaran/matchain/matrix"
)

// Optimize returns a tree computing the same value as e in which every
// maximal multiplication chain has a minimal-cost grouping.
//
// Algorithm:
//  1. Leaf: returned unchanged.
//  2. Sum: both operands are optimized independently; chains never cross a
//     Sum. The Sum node itself is reused when neither operand changed.
//  3. Product: the chain is flattened, each operand (a Leaf or Sum) is
//     optimized first, then the chain is regrouped by OptimizeChain.
//
// e is never mutated; untouched subtrees are shared with the result.
// Optimize is total over trees built by package expr and returns nil for nil.
func Optimize(e *expr.Expr, opts ...Option) *expr.Expr {
	o := gatherOptions(opts...)

	return optimize(e, &o)
}

func optimize(e *expr.Expr, o *Options) *expr.Expr {
	if e == nil {
		return nil
	}
	switch e.Kind() {
	case expr.Sum:
		l, r := optimize(e.Left(), o), optimize(e.Right(), o)
		if l == e.Left() && r == e.Right() {
			return e
		}
		return expr.MustAdd(l, r)
	case expr.Product:
		ops := Flatten(e)
		for i, op := range ops {
			ops[i] = optimize(op, o)
		}
		return optimizeChain(ops, o)
	default:
		return e
	}
}

// OptimizeChain groups the operands ops[0]·ops[1]·…·ops[n-1] with minimal
// scalar multiply count, breaking ties toward the leftmost split.
// ops must be pairwise adjacent-compatible, as returned by Flatten; the
// operands themselves are reused as the leaves of the result.
//
// A single operand is returned unchanged without building a table; an empty
// slice yields nil.
//
// Complexity: O(n³) time, O(n²) space.
func OptimizeChain(ops []*expr.Expr, opts ...Option) *expr.Expr {
	o := gatherOptions(opts...)

	return optimizeChain(ops, &o)
}

func optimizeChain(ops []*expr.Expr, o *Options) *expr.Expr {
	switch len(ops) {
	case 0:
		return nil
	case 1:
		return ops[0]
	}
	t := buildTable(chainDims(ops))
	o.logger.WithFields(logrus.Fields{
		"operands": t.Len(),
		"cost":     t.Min(),
		"naive":    t.NaiveCost(),
	}).Debug("chain: regrouped multiplication chain")

	return rebuild(t, ops)
}

// frame is one pending interval of the reconstruction.
type frame struct {
	i, j     int
	expanded bool // children already scheduled; combine their results
}

// rebuild reconstructs the optimal tree for t from interval (0, n-1).
// An explicit work stack replaces recursion: an interval is first expanded
// into its two halves at t.split, and once both halves are built their
// results are joined with a Product node. Left halves are always finished
// before right halves, so operand order is preserved.
func rebuild(t *CostTable, ops []*expr.Expr) *expr.Expr {
	work := arraystack.New()
	built := arraystack.New()
	work.Push(frame{i: 0, j: t.n - 1})

	for !work.Empty() {
		v, _ := work.Pop()
		f := v.(frame)
		switch {
		case f.i == f.j:
			built.Push(ops[f.i])
		case f.expanded:
			r, _ := built.Pop()
			l, _ := built.Pop()
			built.Push(expr.MustMultiply(l.(*expr.Expr), r.(*expr.Expr)))
		default:
			k := t.split[f.i][f.j]
			work.Push(frame{i: f.i, j: f.j, expanded: true})
			work.Push(frame{i: k + 1, j: f.j})
			work.Push(frame{i: f.i, j: k})
		}
	}
	root, _ := built.Pop()

	return root.(*expr.Expr)
}

// Cost returns the scalar multiply count of evaluating e exactly as grouped:
// the sum over its Product nodes of rows(left)*cols(left)*cols(right).
// Sum nodes and leaves contribute nothing. The total saturates at math.MaxInt64.
//
// Complexity: O(nodes).
func Cost(e *expr.Expr) int64 {
	var total int64
	expr.Walk(e, func(n *expr.Expr) bool {
		if n.Kind() == expr.Product {
			total = addCost(total, matrix.MulCost(n.Left().Rows(), n.Left().Cols(), n.Right().Cols()))
		}
		return true
	})

	return total
}

// LeftToRight groups ops as ((ops[0]·ops[1])·ops[2])·…, the order a naive
// evaluator would use. A single operand is returned unchanged; an empty slice
// yields nil.
func LeftToRight(ops []*expr.Expr) *expr.Expr {
	if len(ops) == 0 {
		return nil
	}
	acc := ops[0]
	for _, op := range ops[1:] {
		acc = expr.MustMultiply(acc, op)
	}

	return acc
}

// Table builds the cost table of the chain rooted at e, for inspection.
// It returns nil when e is not a Product (no multiplication to plan).
func Table(e *expr.Expr) *CostTable {
	if e == nil || e.Kind() != expr.Product {
		return nil
	}

	return buildTable(chainDims(Flatten(e)))
}
