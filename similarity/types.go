package similarity

import (
	"errors"
	"fmt"
	"runtime"
)

// Sentinel errors returned by the similarity package.
var (
	// ErrInvalidInput wraps every structural problem found while loading a
	// similarity (or rating) matrix. The matrix sentinel that triggered it is
	// wrapped as well, so errors.Is works for both.
	ErrInvalidInput = errors.New("similarity: invalid input")

	// ErrIndexOutOfRange indicates a row or column outside [0, N).
	ErrIndexOutOfRange = errors.New("similarity: index out of range")
)

// invalidf wraps cause under ErrInvalidInput.
func invalidf(cause error) error {
	return fmt.Errorf("%w: %w", ErrInvalidInput, cause)
}

// Options configures New and Cosine.
type Options struct {
	// StrictDiagonal rejects a non-zero diagonal instead of zeroing it.
	StrictDiagonal bool

	// Workers bounds the goroutines Cosine runs at once.
	Workers int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions zeroes the diagonal silently and uses one worker per CPU.
func DefaultOptions() Options {
	return Options{
		StrictDiagonal: false,
		Workers:        runtime.GOMAXPROCS(0),
	}
}

// WithStrictDiagonal makes New fail on a non-zero diagonal entry.
func WithStrictDiagonal() Option {
	return func(o *Options) {
		o.StrictDiagonal = true
	}
}

// WithWorkers sets the Cosine worker pool size; n < 1 keeps the default.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.Workers = n
		}
	}
}

// CostRow is the cost-transformed view of one similarity row: an explicit
// column → cost mapping, iterable in ascending column order.
type CostRow struct {
	cols  []int
	costs map[int]float64
}

// Columns returns the columns that carry an edge, ascending.
func (r CostRow) Columns() []int {
	out := make([]int, len(r.cols))
	copy(out, r.cols)

	return out
}

// Cost returns 1/similarity for column j, or false when there is no edge.
func (r CostRow) Cost(j int) (float64, bool) {
	c, ok := r.costs[j]

	return c, ok
}

// Len is the number of edges in the row.
func (r CostRow) Len() int { return len(r.cols) }
