// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/matchain/expr"
)

var errInvalidShape = errors.New("invalid shape")

// shape is one parsed operand argument.
type shape struct {
	label      string
	rows, cols int
}

func (s shape) String() string {
	return fmt.Sprintf("%s=%dx%d", s.label, s.rows, s.cols)
}

// defaultLabel names operand idx A, B, …, Z, then M26, M27, ….
func defaultLabel(idx int) string {
	if idx < 26 {
		return string(rune('A' + idx))
	}
	return "M" + strconv.Itoa(idx)
}

// parseShape accepts "RxC", "R×C" or "LABEL=RxC".
func parseShape(arg string, idx int) (shape, error) {
	s := shape{label: defaultLabel(idx)}
	body := arg
	if label, rest, ok := strings.Cut(arg, "="); ok {
		if label = strings.TrimSpace(label); label == "" {
			return s, errors.Wrapf(errInvalidShape, "%q: empty label", arg)
		}
		s.label, body = label, rest
	}
	body = strings.NewReplacer("×", "x", "X", "x").Replace(strings.TrimSpace(body))
	r, c, ok := strings.Cut(body, "x")
	if !ok {
		return s, errors.Wrapf(errInvalidShape, "%q: want RxC", arg)
	}

	var err error
	if s.rows, err = strconv.Atoi(r); err != nil || s.rows <= 0 {
		return s, errors.Wrapf(errInvalidShape, "%q: rows must be a positive integer", arg)
	}
	if s.cols, err = strconv.Atoi(c); err != nil || s.cols <= 0 {
		return s, errors.Wrapf(errInvalidShape, "%q: cols must be a positive integer", arg)
	}

	return s, nil
}

// parseChain parses every argument and checks that neighbors can be multiplied.
func parseChain(args []string) ([]shape, error) {
	shapes := make([]shape, 0, len(args))
	for i, arg := range args {
		s, err := parseShape(arg, i)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			prev := shapes[i-1]
			if prev.cols != s.rows {
				return nil, errors.Wrapf(expr.ErrDimensionMismatch,
					"%s (%d×%d) cannot be multiplied by %s (%d×%d)", prev.label, prev.rows, prev.cols, s.label, s.rows, s.cols)
			}
		}
		shapes = append(shapes, s)
	}

	return shapes, nil
}

// chainDims returns the n+1 dimensions and the labels of a parsed chain.
func chainDims(shapes []shape) (dims []int, labels []string) {
	dims = make([]int, 0, len(shapes)+1)
	labels = make([]string, 0, len(shapes))
	for i, s := range shapes {
		if i == 0 {
			dims = append(dims, s.rows)
		}
		dims = append(dims, s.cols)
		labels = append(labels, s.label)
	}

	return dims, labels
}
