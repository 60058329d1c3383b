// SPDX-License-Identifier: MIT

package chain

import "errors"

var (
	// ErrEmptyChain indicates a dimension list describing no operand (fewer than two entries).
	ErrEmptyChain = errors.New("chain: chain needs at least one operand")

	// ErrInvalidDims indicates a non-positive dimension in a dimension list.
	ErrInvalidDims = errors.New("chain: dimensions must be > 0")

	// ErrCostOverflow indicates a chain whose multiply counts do not fit in an int64.
	ErrCostOverflow = errors.New("chain: multiply count overflows int64")
)
