// SPDX-License-Identifier: MIT
// Package: viralcent/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   - Options are functional (type Option func(*config)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     Build itself never panics.
//   - No hidden globals; everything flows through the resolved config.

package builder

// DefaultMinActivity is the inclusion threshold applied when no
// WithMinActivity option is given: a user must have authored at least
// this many posts in the observation window for their outgoing edges
// to survive pruning.
const DefaultMinActivity = 100

// Option customizes Build by mutating the resolved config before the
// pipeline runs. Applying N options costs O(N) time, O(1) space.
type Option func(*config)

// config aggregates all builder knobs. Passed by value to the pipeline
// phases (immutable to callers).
type config struct {
	minActivity int
}

// newConfig resolves deterministic defaults, then applies options in
// order (later overrides earlier).
func newConfig(opts ...Option) config {
	cfg := config{minActivity: DefaultMinActivity}
	for _, fn := range opts {
		fn(&cfg)
	}

	return cfg
}

// WithMinActivity sets the minimum authored-post count a user needs
// for their outgoing influence to be kept. Panics on values below 1
// to surface the misconfiguration at the call site (a threshold of 0
// would divide by a zero activity count during normalization).
func WithMinActivity(n int) Option {
	if n < 1 {
		panic("builder: WithMinActivity(n < 1)")
	}
	return func(c *config) {
		c.minActivity = n
	}
}
