// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every algorithm in this package returns one of these sentinels, possibly
// wrapped with call-site context; callers match them with errors.Is.
// No exported function panics on user-triggered error conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." so logs stay greppable.
// Context is attached with fmt.Errorf("ctx: %w", ErrX) at the detection site.

var (
	// ErrBadShape is returned when a shape is invalid (r<=0, c<=0 or ragged rows).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row) return this, they never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNonZeroDiagonal signals that a diagonal entry is non-zero where
	// self-loops are forbidden.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrNegative signals a negative entry where only non-negative values
	// (similarities, edge costs) are meaningful.
	ErrNegative = errors.New("matrix: negative entry")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")
)
