// SPDX-License-Identifier: MIT
// Package: homcount/builder
//
// config.go - resolved, immutable builder configuration.

package builder

import "math/rand"

// builderConfig is resolved once per BuildGraph call and passed by value.
type builderConfig struct {
	// RNG for stochastic constructors; nil means no randomness.
	rng *rand.Rand
	// directed emits only u→v instead of both orientations.
	directed bool
	// loops adds (v,v) for every vertex a constructor creates.
	loops bool
}

// newBuilderConfig applies opts left to right over the defaults
// (no RNG, symmetric edges, no loops).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
