// Package viral defines the options and sentinel errors shared by the
// Centrality and ExpectedActivations routines.
package viral

import (
	"errors"
	"math"
)

// Uncapped is the MaxIterations sentinel meaning "no sweep cap":
// iteration runs until the tolerance criterion is met. Any negative
// MaxIterations value is treated as Uncapped.
const Uncapped = -1

// Default option values. The iteration-count and tolerance defaults
// follow the reference routine this package reproduces; the published
// replication run used Uncapped with Tolerance = 0.001 instead.
const (
	// DefaultMaxIterations caps a computation at five update sweeps.
	DefaultMaxIterations = 5

	// DefaultTolerance stops iteration once the per-sweep change is ≤ 1e-4.
	DefaultTolerance = 1e-4

	// DefaultTransmissionScale leaves edge weights unscaled.
	DefaultTransmissionScale = 1.0
)

// Sentinel errors returned by the viral routines.
var (
	// ErrNilAdjacency indicates that a nil *core.Adjacency was passed in.
	ErrNilAdjacency = errors.New("viral: adjacency is nil")

	// ErrInvalidGraphInput indicates malformed adjacency: a neighbor list
	// and its weight list disagree in length, a referenced node id lies
	// outside [0, N), or a weight is negative or non-finite. The wrapped
	// message names the offending node and field.
	ErrInvalidGraphInput = errors.New("viral: invalid graph input")

	// ErrBadTolerance indicates Options.Tolerance is negative or NaN.
	ErrBadTolerance = errors.New("viral: tolerance must be non-negative")

	// ErrBadTransmissionScale indicates Options.TransmissionScale is
	// negative or non-finite.
	ErrBadTransmissionScale = errors.New("viral: transmission scale must be finite and non-negative")
)

// Options configures a spread computation.
//
// MaxIterations     – hard cap on update sweeps; Uncapped (-1, or any
//
//	negative value) removes the cap. A cap of 0 performs
//	no sweeps and yields the zero vector.
//
// Tolerance         – per-sweep change at or below which iteration
//
//	stops. Must be ≥ 0; 0 demands an exact fixed point.
//
// TransmissionScale – multiplier applied uniformly to every edge
//
//	weight (the reference routine's "beta"). Must be
//	finite and ≥ 0; default 1.
type Options struct {
	MaxIterations     int     // sweep cap, or Uncapped
	Tolerance         float64 // convergence tolerance, ≥ 0
	TransmissionScale float64 // uniform weight multiplier, ≥ 0
}

// Option is a functional option for configuring a spread computation.
type Option func(*Options)

// WithMaxIterations caps the number of update sweeps. Any negative
// value is normalized to Uncapped.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = Uncapped
		}
		o.MaxIterations = n
	}
}

// WithUncapped removes the sweep cap; termination is then driven by
// Tolerance alone. See the package documentation for the
// non-contraction caveat.
func WithUncapped() Option {
	return func(o *Options) {
		o.MaxIterations = Uncapped
	}
}

// WithTolerance sets the convergence tolerance.
// Panics on a negative or NaN value to surface the misconfiguration at
// the call site; the kernels re-validate for Options built by hand.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) {
		panic(ErrBadTolerance.Error())
	}
	return func(o *Options) {
		o.Tolerance = tol
	}
}

// WithTransmissionScale sets the uniform edge-weight multiplier.
// Panics on a negative or non-finite value; the kernels re-validate
// for Options built by hand.
func WithTransmissionScale(scale float64) Option {
	if scale < 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		panic(ErrBadTransmissionScale.Error())
	}
	return func(o *Options) {
		o.TransmissionScale = scale
	}
}

// DefaultOptions returns Options initialized with the package defaults.
// Use it as a starting point and override fields or apply Option
// helpers on top.
//
// Defaults:
//   - MaxIterations:     DefaultMaxIterations (finite cap — the
//     recommended posture; opt in to Uncapped explicitly).
//   - Tolerance:         DefaultTolerance.
//   - TransmissionScale: DefaultTransmissionScale.
func DefaultOptions(opts ...Option) Options {
	o := Options{
		MaxIterations:     DefaultMaxIterations,
		Tolerance:         DefaultTolerance,
		TransmissionScale: DefaultTransmissionScale,
	}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
