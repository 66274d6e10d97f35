// SPDX-License-Identifier: MIT
// Package: polytab/sampler
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • samplerConfig is the single source of truth for all knobs.
//   • newSamplerConfig applies options in order (later overrides earlier).
//
// Deterministic defaults:
//   • start      = 0.0
//   • step       = 1.0
//   • noiseSigma = 0.0   (noiseless)
//   • rng        = nil   (no randomness unless seeded)

package sampler

import "math/rand"

// samplerConfig aggregates all knobs used by the builders.
// It is passed by value so builders cannot leak changes back to callers.
type samplerConfig struct {
	start      float64    // first grid point x0
	step       float64    // grid increment h
	noiseSigma float64    // Gaussian noise stdev, ≥ 0
	rng        *rand.Rand // shared stream; nil → seeded per call
	seed       int64      // seed used when rng is nil
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultStart      = 0.0
	defaultStep       = 1.0
	defaultNoiseSigma = 0.0
	defaultSeed       = int64(1)
)

// newSamplerConfig returns the defaults with opts applied in order.
func newSamplerConfig(opts ...Option) samplerConfig {
	cfg := samplerConfig{
		start:      defaultStart,
		step:       defaultStep,
		noiseSigma: defaultNoiseSigma,
		seed:       defaultSeed,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// rngFrom returns cfg.rng if present (shared stream), else a local source
// seeded by cfg.seed, keeping composed calls deterministic.
func rngFrom(cfg samplerConfig) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(cfg.seed))
}
