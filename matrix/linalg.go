// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

const (
	opAdd      = "Add"
	opMul      = "Mul"
	opAllClose = "AllClose"
)

// checkSameShape rejects nil operands and operands of different shapes.
func checkSameShape(op string, a, b Matrix) error {
	if a == nil || b == nil {
		return fmt.Errorf("%s: %w", op, ErrNilMatrix)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return fmt.Errorf("%s: (%d×%d) vs (%d×%d): %w",
			op, a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch)
	}

	return nil
}

// checkMulShape rejects nil operands and a.Cols != b.Rows.
func checkMulShape(a, b Matrix) error {
	if a == nil || b == nil {
		return fmt.Errorf("%s: %w", opMul, ErrNilMatrix)
	}
	if a.Cols() != b.Rows() {
		return fmt.Errorf("%s: (%d×%d) · (%d×%d): %w",
			opMul, a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch)
	}

	return nil
}

// Add returns a + b as a new *Dense. Operands are not modified.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, and ErrNaNInf when a sum
// overflows to ±Inf.
//
// Complexity: O(r*c).
func Add(a, b Matrix) (Matrix, error) {
	if err := checkSameShape(opAdd, a, b); err != nil {
		return nil, err
	}
	res, err := NewDense(a.Rows(), a.Cols())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opAdd, err)
	}

	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		for idx := range res.data {
			res.data[idx] = da.data[idx] + db.data[idx]
		}
		if err = res.checkFinite(opAdd); err != nil {
			return nil, err
		}
		return res, nil
	}

	for i := 0; i < res.r; i++ {
		for j := 0; j < res.c; j++ {
			av, err := a.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", opAdd, err)
			}
			bv, err := b.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", opAdd, err)
			}
			if err = res.Set(i, j, av+bv); err != nil {
				return nil, fmt.Errorf("%s: %w", opAdd, err)
			}
		}
	}

	return res, nil
}

// Mul returns the product a·b as a new *Dense.
//
// Two *Dense operands take an i-k-j loop over the flat slices; any other
// Matrix goes through At. Both paths perform every one of the
// MulCost(a.Rows(), a.Cols(), b.Cols()) scalar multiplies, with no zero
// skipping, and both report an overflowed cell as ErrNaNInf.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf.
//
// Complexity: O(r*n*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := checkMulShape(a, b); err != nil {
		return nil, err
	}
	n := a.Cols()
	res, err := NewDense(a.Rows(), b.Cols())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMul, err)
	}

	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		for i := 0; i < res.r; i++ {
			out := res.data[i*res.c : (i+1)*res.c]
			for k, av := range da.data[i*n : (i+1)*n] {
				for j, bv := range db.data[k*res.c : (k+1)*res.c] {
					out[j] += av * bv
				}
			}
		}
		if err = res.checkFinite(opMul); err != nil {
			return nil, err
		}
		return res, nil
	}

	for i := 0; i < res.r; i++ {
		for j := 0; j < res.c; j++ {
			var sum float64
			for k := 0; k < n; k++ {
				av, err := a.At(i, k)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", opMul, err)
				}
				bv, err := b.At(k, j)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", opMul, err)
				}
				sum += av * bv
			}
			if err = res.Set(i, j, sum); err != nil {
				return nil, fmt.Errorf("%s: %w", opMul, err)
			}
		}
	}

	return res, nil
}

// MulCost returns rows*inner*cols, the scalar multiply count of an
// (rows×inner)·(inner×cols) product. The result saturates at math.MaxInt64
// instead of wrapping; non-positive arguments yield 0.
func MulCost(rows, inner, cols int) int64 {
	r, k, c := int64(rows), int64(inner), int64(cols)
	if r <= 0 || k <= 0 || c <= 0 {
		return 0
	}
	if k > math.MaxInt64/r {
		return math.MaxInt64
	}
	rk := r * k
	if c > math.MaxInt64/rk {
		return math.MaxInt64
	}

	return rk * c
}
