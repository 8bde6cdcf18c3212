// Package frontier provides tunable options, the inclusion band and error
// definitions for the round-based frontier expansion.
package frontier

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"
)

// Sentinel errors for frontier expansion.
var (
	// ErrNoItems is returned when the cost rows are empty.
	ErrNoItems = errors.New("frontier: no items")

	// ErrStartOutOfRange is returned when the start index is outside [0, N).
	ErrStartOutOfRange = errors.New("frontier: start index out of range")

	// ErrBadBand is returned for a band with NaN bounds or Low >= High.
	ErrBadBand = errors.New("frontier: invalid inclusion band")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("frontier: invalid option supplied")
)

// Band is the open interval (Low, High) a cost must fall in for its edge to
// be traversed during expansion. Values on either bound are excluded.
type Band struct {
	Low  float64
	High float64
}

// DefaultBand admits costs in (1, 2), i.e. similarities in (0.5, 1).
var DefaultBand = Band{Low: 1, High: 2}

// Contains reports Low < v < High.
func (b Band) Contains(v float64) bool {
	return b.Low < v && v < b.High
}

// Validate rejects NaN bounds and empty intervals.
func (b Band) Validate() error {
	if math.IsNaN(b.Low) || math.IsNaN(b.High) || b.Low >= b.High {
		return fmt.Errorf("%w: (%g, %g)", ErrBadBand, b.Low, b.High)
	}

	return nil
}

// String renders the band as "(low, high)".
func (b Band) String() string {
	return fmt.Sprintf("(%g, %g)", b.Low, b.High)
}

// Option configures Build via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation (or
// ErrBadBand) when Build is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize expansion.
type Options struct {
	// Ctx allows cancellation between candidates.
	Ctx context.Context

	// Start is the original index of the start item. Default 0.
	Start int

	// Band gates which edges are traversable.
	Band Band

	// OnVisit is called after an item is appended to the visitation order,
	// with its original index and its position in the order. Returning an
	// error aborts the expansion.
	OnVisit func(item, position int) error

	// Logger receives per-round debug events.
	Logger zerolog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - Start 0
//   - DefaultBand
//   - a no-op OnVisit
//   - a disabled logger.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Start:   0,
		Band:    DefaultBand,
		OnVisit: func(int, int) error { return nil },
		Logger:  zerolog.Nop(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStart sets the start item. Negative values are an option violation;
// values >= N are reported as ErrStartOutOfRange by Build.
func WithStart(i int) Option {
	return func(o *Options) {
		if i < 0 {
			o.err = fmt.Errorf("%w: start cannot be negative (%d)", ErrOptionViolation, i)
			return
		}
		o.Start = i
	}
}

// WithBand overrides the inclusion band.
func WithBand(b Band) Option {
	return func(o *Options) {
		if err := b.Validate(); err != nil {
			o.err = err
			return
		}
		o.Band = b
	}
}

// WithOnVisit registers a callback to run after each visit.
func WithOnVisit(fn func(item, position int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithLogger routes per-round debug events to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// Result holds the outcome of an expansion:
//   - Order:  original item indices in visitation order; Order[0] is the start.
//   - Rows:   one ragged weight row per visited item, aligned with Order.
//     Column k of any row refers to Order[k]; 0 means no edge.
//   - Rounds: number of expansion rounds run after the seed row.
type Result struct {
	Order  []int
	Rows   [][]float64
	Rounds int
}

// Len is the number of visited items, i.e. the adjacency dimension N.
func (r *Result) Len() int { return len(r.Order) }

// Position returns the visitation position of an original item index.
func (r *Result) Position(item int) (int, bool) {
	for p, it := range r.Order {
		if it == item {
			return p, true
		}
	}

	return -1, false
}
