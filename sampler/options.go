// SPDX-License-Identifier: MIT
// Package: polytab/sampler
//
// options.go — functional options for the sampler package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Builders themselves never panic.
//   • Determinism is explicit: noise is drawn from WithSeed or WithRand.

package sampler

import (
	"math"
	"math/rand"
)

// Option customizes a builder by mutating its samplerConfig.
type Option func(*samplerConfig)

// WithStart sets the first grid point x0. Panics on NaN or ±Inf.
func WithStart(x0 float64) Option {
	if !finite(x0) {
		panic("sampler: WithStart(non-finite)")
	}
	return func(c *samplerConfig) {
		c.start = x0
	}
}

// WithStep sets the grid increment h. Zero and negative steps are allowed;
// NaN and ±Inf panic.
func WithStep(h float64) Option {
	if !finite(h) {
		panic("sampler: WithStep(non-finite)")
	}
	return func(c *samplerConfig) {
		c.step = h
	}
}

// WithNoise sets the standard deviation of additive Gaussian noise.
// Panics if sigma < 0 or not finite; 0 disables noise.
func WithNoise(sigma float64) Option {
	if sigma < 0 || !finite(sigma) {
		panic("sampler: WithNoise(sigma<0 or non-finite)")
	}
	return func(c *samplerConfig) {
		c.noiseSigma = sigma
	}
}

// WithSeed seeds a fresh noise source per builder call.
func WithSeed(seed int64) Option {
	return func(c *samplerConfig) {
		c.seed = seed
		c.rng = nil
	}
}

// WithRand shares r across builder calls. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sampler: WithRand(nil)")
	}
	return func(c *samplerConfig) {
		c.rng = r
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
