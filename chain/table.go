// SPDX-License-Identifier: MIT

package chain

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/matchain/matrix"
)

// CostTable holds the interval dynamic program for one chain of n operands.
//
// Operand i (0-based) has shape dims[i] × dims[i+1]. For 0 ≤ i ≤ j < n:
//
//	cost[i][i] = 0
//	cost[i][j] = min over k in [i, j) of
//	             cost[i][k] + cost[k+1][j] + dims[i]*dims[k+1]*dims[j+1]
//
// split[i][j] holds the smallest k reaching that minimum, so equal-cost
// groupings always resolve to the leftmost split.
type CostTable struct {
	n     int
	dims  []int
	cost  [][]int64
	split [][]int
}

// NewCostTable validates a dimension list and builds its table.
// dims must hold n+1 positive entries for a chain of n ≥ 1 operands.
//
// Errors:
//   - ErrEmptyChain when len(dims) < 2.
//   - ErrInvalidDims when any entry is ≤ 0.
//   - ErrCostOverflow when a sub-chain cost or the left-to-right cost
//     reaches math.MaxInt64, so the table would not hold exact counts.
//
// Complexity: O(n³) time, O(n²) space.
func NewCostTable(dims []int) (*CostTable, error) {
	if len(dims) < 2 {
		return nil, ErrEmptyChain
	}
	for i, d := range dims {
		if d <= 0 {
			return nil, fmt.Errorf("dims[%d]=%d: %w", i, d, ErrInvalidDims)
		}
	}
	cp := make([]int, len(dims))
	copy(cp, dims)

	t := buildTable(cp)
	if t.saturated() {
		return nil, ErrCostOverflow
	}

	return t, nil
}

// addCost adds two non-negative counts, saturating at math.MaxInt64.
func addCost(a, b int64) int64 {
	if a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}

// saturated reports whether any cell or the naive cost hit the int64 bound.
func (t *CostTable) saturated() bool {
	if t.NaiveCost() == math.MaxInt64 {
		return true
	}
	for i := 0; i < t.n; i++ {
		for j := i + 1; j < t.n; j++ {
			if t.cost[i][j] == math.MaxInt64 {
				return true
			}
		}
	}

	return false
}

// buildTable fills the table for already-validated dims (len ≥ 2).
// Intervals are processed by increasing length so both halves of every
// split are final before they are read. Costs saturate at math.MaxInt64, so a
// candidate that would overflow never beats one that fits.
func buildTable(dims []int) *CostTable {
	n := len(dims) - 1
	t := &CostTable{
		n:     n,
		dims:  dims,
		cost:  make([][]int64, n),
		split: make([][]int, n),
	}
	for i := 0; i < n; i++ {
		t.cost[i] = make([]int64, n)
		t.split[i] = make([]int, n)
		t.split[i][i] = i
	}

	var (
		length, i, j, k int
		best, c         int64
		bestK           int
	)
	for length = 2; length <= n; length++ {
		for i = 0; i+length-1 < n; i++ {
			j = i + length - 1
			best, bestK = math.MaxInt64, i
			for k = i; k < j; k++ {
				c = addCost(addCost(t.cost[i][k], t.cost[k+1][j]), matrix.MulCost(dims[i], dims[k+1], dims[j+1]))
				if c < best { // strict: keeps the leftmost k on ties
					best, bestK = c, k
				}
			}
			t.cost[i][j] = best
			t.split[i][j] = bestK
		}
	}

	return t
}

// Len returns the number of operands in the chain.
func (t *CostTable) Len() int { return t.n }

// Dims returns a copy of the dimension list the table was built from.
func (t *CostTable) Dims() []int {
	out := make([]int, len(t.dims))
	copy(out, t.dims)

	return out
}

// Cost returns the minimal multiply count for operands i..j (inclusive, 0-based).
// Panics when the interval is outside the chain.
func (t *CostTable) Cost(i, j int) int64 {
	t.mustInterval(i, j)
	return t.cost[i][j]
}

// Split returns the leftmost optimal split k of operands i..j: the product is
// (i..k)·(k+1..j). For i == j it returns i.
// Panics when the interval is outside the chain.
func (t *CostTable) Split(i, j int) int {
	t.mustInterval(i, j)
	return t.split[i][j]
}

// Min returns the minimal multiply count of the whole chain.
func (t *CostTable) Min() int64 { return t.cost[0][t.n-1] }

// NaiveCost returns the multiply count of the left-to-right grouping
// ((A·B)·C)·… of the same chain, saturating at math.MaxInt64.
func (t *CostTable) NaiveCost() int64 {
	var total int64
	for k := 1; k < t.n; k++ {
		total = addCost(total, matrix.MulCost(t.dims[0], t.dims[k], t.dims[k+1]))
	}

	return total
}

// Parenthesize renders the optimal grouping with the given operand labels,
// in the same "([A] * [B])" form as expr rendering. Missing labels fall back
// to the operand's shape.
func (t *CostTable) Parenthesize(labels []string) string {
	var b strings.Builder
	t.writeGroup(&b, labels, 0, t.n-1)

	return b.String()
}

func (t *CostTable) writeGroup(b *strings.Builder, labels []string, i, j int) {
	if i == j {
		b.WriteByte('[')
		if i < len(labels) && labels[i] != "" {
			b.WriteString(labels[i])
		} else {
			fmt.Fprintf(b, "%d×%d", t.dims[i], t.dims[i+1])
		}
		b.WriteByte(']')
		return
	}
	k := t.split[i][j]
	b.WriteByte('(')
	t.writeGroup(b, labels, i, k)
	b.WriteString(" * ")
	t.writeGroup(b, labels, k+1, j)
	b.WriteByte(')')
}

func (t *CostTable) mustInterval(i, j int) {
	if i < 0 || j >= t.n || i > j {
		panic(fmt.Sprintf("chain: interval [%d,%d] outside chain of %d operands", i, j, t.n))
	}
}
