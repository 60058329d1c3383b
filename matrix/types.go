// SPDX-License-Identifier: MIT

package matrix

// Matrix is a rows×cols grid of float64 values addressed by (row, col).
//
// Implementations report out-of-range indices as ErrOutOfRange rather than
// panicking. Dense is the only implementation in this module; kernels take
// the interface so that expression leaves can hold any storage.
type Matrix interface {
	Rows() int
	Cols() int
	At(row, col int) (float64, error)
	Set(row, col int, v float64) error
	// Clone returns an independent deep copy.
	Clone() Matrix
}
