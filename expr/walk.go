// SPDX-License-Identifier: MIT

package expr

// Walk visits e and its descendants in pre-order (node, left, right).
// Returning false from fn skips the children of that node.
func Walk(e *Expr, fn func(*Expr) bool) {
	if e == nil || !fn(e) {
		return
	}
	if e.kind != Leaf {
		Walk(e.left, fn)
		Walk(e.right, fn)
	}
}

// Leaves returns the leaf nodes of e in left-to-right order.
func Leaves(e *Expr) []*Expr {
	var out []*Expr
	Walk(e, func(n *Expr) bool {
		if n.kind == Leaf {
			out = append(out, n)
		}
		return true
	})

	return out
}

// Count tallies the nodes of e per kind.
func Count(e *Expr) Counts {
	var c Counts
	Walk(e, func(n *Expr) bool {
		switch n.kind {
		case Leaf:
			c.Leaves++
		case Product:
			c.Products++
		case Sum:
			c.Sums++
		}
		return true
	})

	return c
}

// Equal reports whether a and b have the same structure: the same kinds in the
// same positions, the same dimensions, and the very same leaf nodes.
// Leaves are compared by identity, so two trees built over the same operands
// are Equal exactly when they group them the same way.
func Equal(a, b *Expr) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.kind != b.kind || a.rows != b.rows || a.cols != b.cols {
		return false
	}
	if a.kind == Leaf {
		return false // distinct leaf nodes
	}

	return Equal(a.left, b.left) && Equal(a.right, b.right)
}
