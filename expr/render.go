// SPDX-License-Identifier: MIT

package expr

import (
	"fmt"
	"strings"
)

// Rendering literals.
const (
	_opProduct = " * "
	_opSum     = " + "
)

// String renders e fully parenthesized, e.g. "([A] * [B])" or
// "(([A] * [B]) + [C])". Leaves without a label render their shape, "[3×4]".
// The output is deterministic and has no side effects; it is diagnostic only.
//
// Complexity: O(nodes).
func (e *Expr) String() string {
	if e == nil {
		return "<nil>"
	}
	var b strings.Builder
	e.render(&b)

	return b.String()
}

func (e *Expr) render(b *strings.Builder) {
	switch e.kind {
	case Leaf:
		b.WriteByte('[')
		if e.label != "" {
			b.WriteString(e.label)
		} else {
			fmt.Fprintf(b, "%d×%d", e.rows, e.cols)
		}
		b.WriteByte(']')
	case Product, Sum:
		op := _opProduct
		if e.kind == Sum {
			op = _opSum
		}
		b.WriteByte('(')
		e.left.render(b)
		b.WriteString(op)
		e.right.render(b)
		b.WriteByte(')')
	}
}
