// SPDX-License-Identifier: MIT
// Package: polytab/sampler
//
// series.go — polynomial series on a uniform grid.
//
// Contract:
//   • Builders return exactly n values or an error; they never panic.
//   • Same (coefficients, n, options) ⇒ same output, noise included.
//   • Noise is added to the returned samples only; the tabulator state
//     stays exact, so noise does not accumulate along the series.

package sampler

import (
	"github.com/shopspring/decimal"

	"github.com/katalvlaran/polytab/tabulate"
)

// BuildPoints returns n (x, y) pairs with y = P(x) (+ noise) on the grid
// x0, x0+h, … configured by opts.
//
// Errors: ErrBadLength if n < 1, ErrEmptyPolynomial if coefficients is empty.
func BuildPoints(coefficients []float64, n int, opts ...Option) ([]tabulate.Point[float64], error) {
	if n < 1 {
		return nil, ErrBadLength
	}
	cfg := newSamplerConfig(opts...)

	tab, err := tabulate.New(coefficients, cfg.start, cfg.step)
	if err != nil {
		return nil, err
	}
	pts := tab.Take(n)

	if cfg.noiseSigma > 0 {
		rng := rngFrom(cfg)
		for i := range pts {
			pts[i].Y += cfg.noiseSigma * rng.NormFloat64()
		}
	}

	return pts, nil
}

// BuildSeries is BuildPoints without the x-coordinates.
func BuildSeries(coefficients []float64, n int, opts ...Option) ([]float64, error) {
	pts, err := BuildPoints(coefficients, n, opts...)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(pts))
	for i, p := range pts {
		out[i] = p.Y
	}

	return out, nil
}

// BuildDecimalSeries returns P(start), P(start+step), … as exact decimals.
// Noise options do not apply; the grid is given explicitly.
//
// Errors: ErrBadLength if n < 1, ErrEmptyPolynomial if coefficients is empty.
func BuildDecimalSeries(coefficients []decimal.Decimal, n int, start, step decimal.Decimal) ([]decimal.Decimal, error) {
	if n < 1 {
		return nil, ErrBadLength
	}
	tab, err := tabulate.NewRing(coefficients, start, step)
	if err != nil {
		return nil, err
	}

	out := make([]decimal.Decimal, n)
	for i := range out {
		_, out[i] = tab.Next()
	}

	return out, nil
}
