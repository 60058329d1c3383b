// SPDX-License-Identifier: MIT

package eval

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/matchain/chain"
	"github.com/katalvlaran/matchain/expr"
	"github.com/katalvlaran/matchain/matrix"
)

// Stats describes the arithmetic performed by one Evaluate call.
type Stats struct {
	// Multiplies is the number of scalar multiplications; it equals
	// chain.Cost of the tree that was actually evaluated.
	Multiplies int64
	// Products and Sums count the matrix operations executed.
	Products int
	Sums     int
}

// Evaluate returns the matrix denoted by e.
//
// Unless WithoutOptimization is given, the tree is first rewritten by
// chain.Optimize so that every multiplication chain is evaluated in its
// cheapest grouping. The input tree is never modified.
//
// For a bare Leaf the stored matrix itself is returned, not a copy.
//
// Errors:
//   - expr.ErrNilOperand for a nil tree.
//   - errors from matrix.Mul / matrix.Add, wrapped with the failing node.
//   - expr.ErrDimensionMismatch if a Sum meets operands of different
//     shapes, which a tree built by package expr never produces.
//
// Complexity: O(n³) per chain for planning plus the arithmetic itself.
func Evaluate(e *expr.Expr, opts ...Option) (matrix.Matrix, error) {
	if e == nil {
		return nil, errors.Wrap(expr.ErrNilOperand, "eval")
	}
	o := gatherOptions(opts...)

	tree := e
	if o.optimize {
		tree = chain.Optimize(e, chain.WithLogger(o.logger))
	}

	var st Stats
	m, err := evaluate(tree, &st)
	if o.stats != nil {
		*o.stats = st
	}
	if err != nil {
		return nil, err
	}
	o.logger.WithFields(logrus.Fields{
		"multiplies": st.Multiplies,
		"products":   st.Products,
		"sums":       st.Sums,
		"optimized":  o.optimize,
	}).Debug("eval: expression evaluated")

	return m, nil
}

// evaluate walks the tree post-order. Recursion depth is bounded by the
// tree height, and optimized chains are balanced where shapes allow it.
func evaluate(e *expr.Expr, st *Stats) (matrix.Matrix, error) {
	if e.Kind() == expr.Leaf {
		return e.Matrix(), nil
	}

	l, err := evaluate(e.Left(), st)
	if err != nil {
		return nil, err
	}
	r, err := evaluate(e.Right(), st)
	if err != nil {
		return nil, err
	}

	switch e.Kind() {
	case expr.Product:
		m, err := matrix.Mul(l, r)
		if err != nil {
			return nil, errors.Wrapf(err, "eval: product %s", e)
		}
		st.Products++
		st.Multiplies += matrix.MulCost(l.Rows(), l.Cols(), r.Cols())
		return m, nil
	default:
		if l.Rows() != r.Rows() || l.Cols() != r.Cols() {
			return nil, errors.Wrapf(expr.ErrDimensionMismatch,
				"eval: sum %s: (%d×%d) and (%d×%d)", e, l.Rows(), l.Cols(), r.Rows(), r.Cols())
		}
		m, err := matrix.Add(l, r)
		if err != nil {
			return nil, errors.Wrapf(err, "eval: sum %s", e)
		}
		st.Sums++
		return m, nil
	}
}
