// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Dense stores an r×c matrix in one row-major slice: element (i, j) lives at
// data[i*c+j]. Every stored value is finite.
type Dense struct {
	r, c int
	data []float64
}

var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// cellErrorf tags err with the operation and the offending cell.
func cellErrorf(op string, row, col int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", op, row, col, err)
}

// NewDense returns a zero-filled rows×cols matrix, or ErrInvalidDimensions.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFrom returns a rows×cols matrix holding a copy of values, given in
// row-major order. len(values) must equal rows*cols (ErrDimensionMismatch)
// and every value must be finite (ErrNaNInf).
func NewDenseFrom(rows, cols int, values []float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(values) != rows*cols {
		return nil, fmt.Errorf("NewDenseFrom: %d×%d needs %d values, got %d: %w",
			rows, cols, rows*cols, len(values), ErrDimensionMismatch)
	}
	for idx, v := range values {
		if !finite(v) {
			return nil, cellErrorf("NewDenseFrom", idx/cols, idx%cols, ErrNaNInf)
		}
	}
	copy(m.data, values)

	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape returns (Rows, Cols).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

func (m *Dense) offset(row, col int) (int, bool) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, false
	}
	return row*m.c + col, true
}

// At returns element (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	off, ok := m.offset(row, col)
	if !ok {
		return 0, cellErrorf("Dense.At", row, col, ErrOutOfRange)
	}

	return m.data[off], nil
}

// Set stores v at (row, col). A NaN or ±Inf v is rejected and the cell keeps
// its previous value.
func (m *Dense) Set(row, col int, v float64) error {
	off, ok := m.offset(row, col)
	if !ok {
		return cellErrorf("Dense.Set", row, col, ErrOutOfRange)
	}
	if !finite(v) {
		return cellErrorf("Dense.Set", row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a copy with its own backing slice.
func (m *Dense) Clone() Matrix {
	return &Dense{r: m.r, c: m.c, data: append([]float64(nil), m.data...)}
}

// checkFinite scans a freshly computed result; the first non-finite cell is
// reported as ErrNaNInf.
func (m *Dense) checkFinite(op string) error {
	for idx, v := range m.data {
		if !finite(v) {
			return cellErrorf(op+": result", idx/m.c, idx%m.c, ErrNaNInf)
		}
	}

	return nil
}

// String prints one bracketed row per line, e.g. "[1, 2.5]\n[-3, 4]\n".
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteByte('[')
		for j, v := range m.data[i*m.c : (i+1)*m.c] {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		b.WriteString("]\n")
	}

	return b.String()
}
