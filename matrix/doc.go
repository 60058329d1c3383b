// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra primitives that matchain
// expression trees are evaluated with.
//
// The matrix package provides:
//
//   - Matrix, a small interface over two-dimensional float64 arrays.
//   - Dense, a row-major implementation with bounds-checked At/Set.
//   - Add and Mul kernels with strict, fail-fast shape validation.
//   - AllClose for tolerance-based comparison of floating-point results.
//   - MulCost, the scalar multiply count of a single product, shared by the
//     chain optimizer and the evaluator so both count the same way.
//
// All user-triggered failures are reported as sentinel errors (see errors.go)
// that callers match with errors.Is. Kernels never mutate their operands and
// always allocate a fresh *Dense result.
//
// See the examples in this package for usage patterns.
package matrix
