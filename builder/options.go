// SPDX-License-Identifier: MIT
// Package: homcount/builder
//
// options.go - functional options for BuildGraph.
//
// Options are applied in order; the last one wins. Option constructors that
// receive a meaningless value panic, as misuse is a programming error.

package builder

import "math/rand"

// BuilderOption mutates the builder configuration.
type BuilderOption func(*builderConfig)

// WithRand installs r as the randomness source. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed installs a fresh deterministic RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithDirected makes deterministic constructors emit each edge in one
// orientation only: along the path or cycle direction, from the hub, or from
// the lower to the higher index. RandomSparse instead samples every ordered
// pair i≠j independently, so both (i,j) and (j,i) may appear.
func WithDirected() BuilderOption {
	return func(c *builderConfig) { c.directed = true }
}

// WithLoops adds a self-loop on every vertex a constructor creates.
func WithLoops() BuilderOption {
	return func(c *builderConfig) { c.loops = true }
}
