// SPDX-License-Identifier: MIT

package matrix

import "errors"

// Sentinel errors. Kernels wrap them with the operation name; match with errors.Is.
var (
	// ErrInvalidDimensions is returned for a requested shape with rows or cols ≤ 0.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange is returned by At and Set for an index outside the matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch is returned when operand shapes do not fit the
	// operation: unequal shapes for Add and AllClose, a.Cols != b.Rows for Mul.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf is returned when a value is NaN or ±Inf. Dense never stores
	// such values, whether they come from the caller or from overflow in a kernel.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix is returned when a kernel receives a nil operand.
	ErrNilMatrix = errors.New("matrix: nil operand")
)
