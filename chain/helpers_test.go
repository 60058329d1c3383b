// SPDX-License-Identifier: MIT

package chain_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/matchain/chain"
	"github.com/katalvlaran/matchain/expr"
	"github.com/katalvlaran/matchain/matrix"
	"github.com/stretchr/testify/require"
)

// leaf builds a labeled zero leaf of shape r×c.
func leaf(t testing.TB, label string, r, c int) *expr.Expr {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	e, err := expr.NewLeaf(m, label)
	require.NoError(t, err)

	return e
}

// operands builds leaves A, B, C, … for the dimension list dims.
func operands(t testing.TB, dims ...int) []*expr.Expr {
	t.Helper()
	ops := make([]*expr.Expr, len(dims)-1)
	for i := range ops {
		ops[i] = leaf(t, string(rune('A'+i%26))+suffix(i), dims[i], dims[i+1])
	}

	return ops
}

func suffix(i int) string {
	if i < 26 {
		return ""
	}
	return fmt.Sprint(i / 26)
}

// randomDims draws n+1 dimensions in [1, maxDim].
func randomDims(rng *rand.Rand, n, maxDim int) []int {
	dims := make([]int, n+1)
	for i := range dims {
		dims[i] = 1 + rng.Intn(maxDim)
	}

	return dims
}

// allGroupings enumerates every parenthesization of ops[i..j].
func allGroupings(ops []*expr.Expr, i, j int) []*expr.Expr {
	if i == j {
		return []*expr.Expr{ops[i]}
	}
	var out []*expr.Expr
	for k := i; k < j; k++ {
		for _, l := range allGroupings(ops, i, k) {
			for _, r := range allGroupings(ops, k+1, j) {
				out = append(out, expr.MustMultiply(l, r))
			}
		}
	}

	return out
}

// bruteMin returns the cheapest cost among all parenthesizations of ops.
func bruteMin(ops []*expr.Expr) int64 {
	best := int64(-1)
	for _, g := range allGroupings(ops, 0, len(ops)-1) {
		if c := chain.Cost(g); best < 0 || c < best {
			best = c
		}
	}

	return best
}
