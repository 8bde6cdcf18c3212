// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for the structural checks the
//     route pipeline depends on (square, non-negative, finite, zero diagonal).
//   - Return sentinel errors tagged with the validator name so call sites can
//     wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Element scans run in row-major order and stop at the first violation,
//     so the reported coordinate is always the lowest (row, col).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Both an untyped nil and a typed nil *Dense are rejected.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf(fmt.Sprintf("ValidateSquare: %dx%d", m.Rows(), m.Cols()), ErrNonSquare)
	}

	return nil
}

// ValidateNonNegative rejects any entry < 0.
// Complexity: O(r*c).
func ValidateNonNegative(m Matrix) error {
	return scan(m, "ValidateNonNegative", func(_, _ int, v float64) error {
		if v < 0 {
			return ErrNegative
		}

		return nil
	})
}

// ValidateFinite rejects NaN and ±Inf entries.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	return scan(m, "ValidateFinite", func(_, _ int, v float64) error {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaNInf
		}

		return nil
	})
}

// ValidateZeroDiagonal requires m[i][i] == 0 for every i < min(r, c).
// Complexity: O(min(r, c)).
func ValidateZeroDiagonal(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	n := m.Rows()
	if m.Cols() < n {
		n = m.Cols()
	}
	var v float64
	var err error
	for i := 0; i < n; i++ {
		if v, err = m.At(i, i); err != nil {
			return err
		}
		if v != 0 {
			return validatorErrorf(fmt.Sprintf("ValidateZeroDiagonal: (%d,%d)=%g", i, i, v), ErrNonZeroDiagonal)
		}
	}

	return nil
}

// scan runs check over every element in row-major order and tags the first
// failure with its coordinates. *Dense takes the flat-buffer fast path.
func scan(m Matrix, tag string, check func(i, j int, v float64) error) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	var failed error
	if d, ok := m.(*Dense); ok {
		d.Do(func(i, j int, v float64) bool {
			if err := check(i, j, v); err != nil {
				failed = validatorErrorf(fmt.Sprintf("%s: (%d,%d)=%g", tag, i, j, v), err)
				return false
			}

			return true
		})

		return failed
	}

	var v float64
	var err error
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return err
			}
			if err = check(i, j, v); err != nil {
				return validatorErrorf(fmt.Sprintf("%s: (%d,%d)=%g", tag, i, j, v), err)
			}
		}
	}

	return nil
}
