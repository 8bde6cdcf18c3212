// Package dijkstra defines core types and configuration options
// for the dense-matrix shortest-path solver.
//
// Options:
//
//	– Source:           position of the start node (default 0).
//	– MaxDistance:      optional cap; nodes whose distance would exceed it stay unreached.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//	– OnSettle:         hook invoked once per settled node, in settle order.
//
// Errors (sentinel):
//
//	– ErrNilMatrix        if the adjacency matrix is nil.
//	– ErrNonSquare        if the adjacency matrix is not square.
//	– ErrSourceOutOfRange if Source is outside [0, N).
//	– ErrNegativeWeight   if a negative (or NaN) edge weight is detected.
//	– ErrBadMaxDistance   if MaxDistance < 0 or NaN.
//	– ErrBadInfThreshold  if InfEdgeThreshold <= 0 or NaN.
//	– ErrTargetOutOfRange if a path is requested for a node outside [0, N).
//	– ErrUnreachable      if the target has no path from the source.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilMatrix indicates that a nil adjacency matrix was passed to Dijkstra.
	ErrNilMatrix = errors.New("dijkstra: adjacency matrix is nil")

	// ErrNonSquare indicates that the adjacency matrix is not N×N.
	ErrNonSquare = errors.New("dijkstra: adjacency matrix is not square")

	// ErrSourceOutOfRange indicates that Source is not a node of the matrix.
	ErrSourceOutOfRange = errors.New("dijkstra: source out of range")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or
	// a negative value, which would make every edge impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrTargetOutOfRange indicates a path request for a node outside [0, N).
	ErrTargetOutOfRange = errors.New("dijkstra: target out of range")

	// ErrUnreachable indicates that no path from the source reaches the target,
	// or that the predecessor chain does not lead back to the source.
	ErrUnreachable = errors.New("dijkstra: target unreachable")
)

// NoPredecessor marks the source and every unreached node in Result.Prev.
const NoPredecessor = -1

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – start node position, 0 ≤ Source < N.
// MaxDistance      – optional cap on distances to explore. Default +Inf.
// InfEdgeThreshold – edges with weight ≥ this threshold are obstacles. Default +Inf.
// OnSettle         – called once for every node as it leaves the unsettled set.
type Options struct {
	Source           int
	MaxDistance      float64
	InfEdgeThreshold float64
	OnSettle         func(node int, dist float64)

	err error // first invalid option, surfaced by Dijkstra
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the start node. Negative values surface as ErrSourceOutOfRange.
func Source(i int) Option {
	return func(o *Options) {
		o.Source = i
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose shortest distance would exceed this value keep +Inf.
// Negative or NaN values cause ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = ErrBadMaxDistance
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats every edge with weight ≥ threshold as absent.
// Zero, negative or NaN values cause ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 || math.IsNaN(threshold) {
			o.err = ErrBadInfThreshold
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithOnSettle registers a hook run once per settled node.
func WithOnSettle(fn func(node int, dist float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - Source:           0.
//   - MaxDistance:      +Inf (explore all reachable).
//   - InfEdgeThreshold: +Inf (no edge is an obstacle).
//   - OnSettle:         no-op.
func DefaultOptions() Options {
	return Options{
		Source:           0,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
		OnSettle:         func(int, float64) {},
	}
}
