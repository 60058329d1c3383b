// SPDX-License-Identifier: MIT

package expr

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/matchain/matrix"
)

var (
	// ErrDimensionMismatch is returned by Multiply when a.cols != b.rows and by
	// Add when the operand shapes differ. It wraps matrix.ErrDimensionMismatch,
	// so errors.Is matches either sentinel.
	ErrDimensionMismatch = fmt.Errorf("expr: %w", matrix.ErrDimensionMismatch)

	// ErrNilOperand indicates a nil matrix or nil sub-expression was passed to a constructor.
	ErrNilOperand = errors.New("expr: nil operand")
)

// mismatchErrorf reports the offending shapes of a rejected construction.
func mismatchErrorf(op string, a, b *Expr) error {
	return fmt.Errorf("%s: (%d×%d) and (%d×%d): %w", op, a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch)
}
