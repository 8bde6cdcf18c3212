// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults and Dense construction options.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: invalid values surface as errors, not panics.
package matrix

// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
const DefaultValidateNaNInf = true

// Option configures a Dense at construction time.
type Option func(*Options)

// Options holds the per-instance numeric policy of a Dense.
type Options struct {
	// ValidateNaNInf rejects NaN and ±Inf on Set and NewDenseFrom.
	ValidateNaNInf bool
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{ValidateNaNInf: DefaultValidateNaNInf}
}

// WithValidateNaNInf overrides the finite-only policy.
// Disabling it is meant for distance-like matrices that store +Inf on purpose.
func WithValidateNaNInf(on bool) Option {
	return func(o *Options) {
		o.ValidateNaNInf = on
	}
}

// gatherOptions applies opts over the defaults in order; later options win.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
