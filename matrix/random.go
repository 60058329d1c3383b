// SPDX-License-Identifier: MIT

package matrix

import "math/rand"

// NewRandom returns a rows×cols Dense filled with U(-1,1) values drawn from rng
// in row-major order, so a fixed seed reproduces the same matrix.
func NewRandom(rows, cols int, rng *rand.Rand) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for idx := range m.data {
		m.data[idx] = rng.Float64()*2 - 1
	}

	return m, nil
}
