// SPDX-License-Identifier: MIT

// Package adjacency pads the ragged weight rows produced by the frontier
// builder into a dense N×N weighted-adjacency matrix indexed by visitation
// order (position 0 is the start item).
//
// Row i holds the outgoing costs of the i-th visited item; 0 means no edge,
// including on the diagonal.
package adjacency

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/simroute/matrix"
)

// Sentinel errors for normalization.
var (
	// ErrEmpty is returned when there are no rows at all.
	ErrEmpty = errors.New("adjacency: no rows")

	// ErrOverflow is returned when trimming to N columns would drop a
	// non-zero weight (an edge to a node that has no row).
	ErrOverflow = errors.New("adjacency: edge beyond the last node")
)

// Normalize pads and trims rows into an N×N matrix, N = len(rows).
//
// Implementation:
//   - Stage 1: width = length of the last row (the longest for builder
//     output), never less than N.
//   - Stage 2: pad every row with trailing zeros to width.
//   - Stage 3: trim the trailing width-N columns of every row; a non-zero
//     in the trimmed tail is ErrOverflow.
//   - Stage 4: copy into a Dense and check non-negative entries and a zero
//     diagonal (matrix.ErrNegative, matrix.ErrNonZeroDiagonal).
//
// The input rows are not modified.
//
// Complexity: O(N²) time and space.
func Normalize(rows [][]float64) (*matrix.Dense, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrEmpty
	}

	width := len(rows[n-1])
	if width < n {
		width = n
	}

	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		if len(rows[i]) > width {
			return nil, fmt.Errorf("%w: row %d has %d columns, last row has %d",
				ErrOverflow, i, len(rows[i]), width)
		}
		for j, v = range rows[i] {
			if j >= n {
				if v != 0 {
					return nil, fmt.Errorf("%w: row %d column %d = %g with N=%d", ErrOverflow, i, j, v, n)
				}
				continue
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, err
			}
		}
		// Columns len(rows[i])..n-1 stay zero: that is the padding.
	}

	if err = matrix.ValidateNonNegative(out); err != nil {
		return nil, fmt.Errorf("adjacency: %w", err)
	}
	if err = matrix.ValidateZeroDiagonal(out); err != nil {
		return nil, fmt.Errorf("adjacency: %w", err)
	}

	return out, nil
}

// Edges counts the directed edges (non-zero entries) of m.
// Complexity: O(N²).
func Edges(m *matrix.Dense) int {
	var count int
	m.Do(func(_, _ int, v float64) bool {
		if v != 0 {
			count++
		}

		return true
	})

	return count
}
