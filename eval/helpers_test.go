// SPDX-License-Identifier: MIT

package eval_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matchain/expr"
	"github.com/katalvlaran/matchain/matrix"
)

const tol = 1e-9

// leafOf wraps an r×c matrix holding vals (row-major) in a labeled leaf.
func leafOf(t testing.TB, label string, r, c int, vals ...float64) *expr.Expr {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(t, err)
	e, err := expr.NewLeaf(m, label)
	require.NoError(t, err)

	return e
}

// randomLeaves builds leaves A, B, … with uniform entries for the dimension list dims.
func randomLeaves(t testing.TB, rng *rand.Rand, dims ...int) []*expr.Expr {
	t.Helper()
	ops := make([]*expr.Expr, len(dims)-1)
	for i := range ops {
		m, err := matrix.NewRandom(dims[i], dims[i+1], rng)
		require.NoError(t, err)
		ops[i], err = expr.NewLeaf(m, string(rune('A'+i)))
		require.NoError(t, err)
	}

	return ops
}

func requireClose(t *testing.T, want, got matrix.Matrix) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, tol, tol)
	require.NoError(t, err)
	require.Truef(t, ok, "want\n%v\ngot\n%v", want, got)
}

// faultyMatrix reports a fixed shape but fails every element read.
type faultyMatrix struct{ r, c int }

func (f *faultyMatrix) Rows() int { return f.r }
func (f *faultyMatrix) Cols() int { return f.c }
func (f *faultyMatrix) At(int, int) (float64, error) { return 0, matrix.ErrOutOfRange }
func (f *faultyMatrix) Set(int, int, float64) error { return matrix.ErrOutOfRange }
func (f *faultyMatrix) Clone() matrix.Matrix { return &faultyMatrix{f.r, f.c} }
