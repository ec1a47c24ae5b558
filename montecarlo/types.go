// Package montecarlo defines options and error definitions for the
// Monte Carlo π estimator.
package montecarlo

import (
	"errors"
	"math/rand"
)

// Sentinel errors for estimator execution.
var (
	// ErrNonPositiveSamples is returned when the sample count is < 1.
	ErrNonPositiveSamples = errors.New("montecarlo: sample count must be >= 1")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("montecarlo: invalid option supplied")
)

// Option configures the estimator via functional arguments.
// If an Option is invalid (e.g. a nil *rand.Rand), it is recorded
// internally and surfaced as ErrOptionViolation when Pi is invoked.
type Option func(*Options)

// Options holds parameters that customize estimator execution.
type Options struct {
	// Seed selects the deterministic random stream. A value of 0 means
	// "use the fixed default seed"; any other value is used verbatim.
	Seed int64

	// Rand, when non-nil, overrides Seed with a caller-owned stream.
	// The estimator advances its state; the caller keeps ownership.
	Rand *rand.Rand

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an Options with sane defaults:
//   - Seed == 0 (fixed default stream)
//   - no caller-supplied Rand
//   - error slot clear.
func DefaultOptions() Options {
	return Options{
		Seed: 0,
		Rand: nil,
		err:  nil,
	}
}

// WithSeed selects the deterministic stream used for sampling.
// Seed 0 keeps the documented default stream.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand supplies a caller-owned random stream, taking precedence over
// WithSeed. Passing nil is invalid and surfaces as ErrOptionViolation.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.err = ErrOptionViolation

			return
		}
		o.Rand = r
	}
}
