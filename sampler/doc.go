// SPDX-License-Identifier: MIT

// Package sampler builds finite, reproducible sample series of a
// polynomial on a uniform grid, for tests, fixtures and tabulation.
//
// Every series is produced by a tabulate.Tabulator, so n samples of a
// degree-d polynomial cost O(d²) setup plus O(n·d) additions.
//
// ⚙️ Usage:
//
//	ys, err := sampler.BuildSeries(
//	    []float64{0, 0, 1},      // x²
//	    256,                     // samples
//	    sampler.WithStart(-1),   // x0
//	    sampler.WithStep(1.0/128),
//	    sampler.WithNoise(0.01), // optional Gaussian noise
//	    sampler.WithSeed(7),     // reproducible noise
//	)
//
// Defaults: start 0, step 1, no noise. Options validate eagerly and panic
// on nonsensical values (programmer error); builders never panic and
// report bad inputs through sentinel errors.
package sampler
