// SPDX-License-Identifier: MIT
// Package: phylo2vec/vector
//
// options.go - functional options for Sample.
//
// Contract:
//   • Options are functional (type Option func(*SampleOptions)).
//   • Option constructors panic on meaningless inputs (WithRand(nil));
//     Sample itself never panics.
//   • Determinism is explicit: WithSeed or WithRand. Without either, Sample
//     draws from the shared process-wide source.

package vector

import "math/rand"

// Option customizes a single Sample call.
type Option func(*SampleOptions)

// SampleOptions holds the knobs consumed by Sample.
type SampleOptions struct {
	// Rand is the source of randomness. nil selects the shared process-wide
	// source (seeded once per process, mutex-guarded).
	Rand *rand.Rand
}

// DefaultOptions returns SampleOptions with the shared source selected.
func DefaultOptions() SampleOptions {
	return SampleOptions{Rand: nil}
}

// WithRand makes Sample draw from r. The caller owns r and must not share
// it across goroutines. Panics on nil.
// Complexity: O(1).
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("vector: WithRand(nil)")
	}
	return func(o *SampleOptions) {
		o.Rand = r
	}
}

// WithSeed makes Sample deterministic. Seed 0 maps to a fixed non-zero
// default seed, so WithSeed(0) is still reproducible.
// Complexity: O(1).
func WithSeed(seed int64) Option {
	return func(o *SampleOptions) {
		o.Rand = rngFromSeed(seed)
	}
}
