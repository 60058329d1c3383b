// SPDX-License-Identifier: MIT

package chain

import (
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/katalvlaran/matchain/expr"
)

// Flatten returns the operands of the chain rooted at e, left to right.
//
// Only Product nodes are descended into; every Leaf or Sum met along the way
// is one operand. A non-Product e yields the single operand e. Adjacent
// operands are compatible (ops[i].Cols() == ops[i+1].Rows()) because the
// chain was built by expr.Multiply.
//
// Complexity: O(n) time and space for n operands.
func Flatten(e *expr.Expr) []*expr.Expr {
	if e == nil {
		return nil
	}
	var ops []*expr.Expr
	stack := arraystack.New()
	stack.Push(e)
	for !stack.Empty() {
		v, _ := stack.Pop()
		n := v.(*expr.Expr)
		if n.Kind() != expr.Product {
			ops = append(ops, n)
			continue
		}
		// Right first so the left subtree is popped, and emitted, first.
		stack.Push(n.Right())
		stack.Push(n.Left())
	}

	return ops
}

// chainDims derives the dimension list of adjacent operands:
// dims[0] = rows of the first operand, dims[i+1] = cols of operand i.
func chainDims(ops []*expr.Expr) []int {
	dims := make([]int, len(ops)+1)
	dims[0] = ops[0].Rows()
	for i, op := range ops {
		dims[i+1] = op.Cols()
	}

	return dims
}
