// SPDX-License-Identifier: MIT

package matrix

import "math"

// AllClose reports whether |a[i,j] - b[i,j]| ≤ atol + rtol*|b[i,j]| holds for
// every cell. Tolerances are taken by absolute value and must be finite.
//
// Errors: ErrNaNInf for a non-finite tolerance, ErrNilMatrix, ErrDimensionMismatch.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if !finite(rtol) || !finite(atol) {
		return false, ErrNaNInf
	}
	if err := checkSameShape(opAllClose, a, b); err != nil {
		return false, err
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	within := func(x, y float64) bool { return math.Abs(x-y) <= atol+rtol*math.Abs(y) }

	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		for idx, x := range da.data {
			if !within(x, db.data[idx]) {
				return false, nil
			}
		}
		return true, nil
	}

	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			x, err := a.At(i, j)
			if err != nil {
				return false, err
			}
			y, err := b.At(i, j)
			if err != nil {
				return false, err
			}
			if !within(x, y) {
				return false, nil
			}
		}
	}

	return true, nil
}
