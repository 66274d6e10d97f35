package sampler_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polytab/sampler"
)

// TestBuildSeries_BadInput covers the two error classes.
func TestBuildSeries_BadInput(t *testing.T) {
	_, err := sampler.BuildSeries([]float64{1}, 0)
	assert.ErrorIs(t, err, sampler.ErrBadLength)

	_, err = sampler.BuildSeries(nil, 5)
	assert.ErrorIs(t, err, sampler.ErrEmptyPolynomial)

	_, err = sampler.BuildDecimalSeries([]decimal.Decimal{decimal.Zero}, -1, decimal.Zero, decimal.Zero)
	assert.ErrorIs(t, err, sampler.ErrBadLength)

	_, err = sampler.BuildDecimalSeries(nil, 3, decimal.Zero, decimal.Zero)
	assert.ErrorIs(t, err, sampler.ErrEmptyPolynomial)
}

// TestBuildSeries_Defaults samples at x = 0, 1, 2, … without noise.
func TestBuildSeries_Defaults(t *testing.T) {
	ys, err := sampler.BuildSeries([]float64{1, 2, 3}, 6)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 6, 17, 34, 57, 86}, ys)
}

// TestBuildPoints_Grid honours start and step, including a negative step.
func TestBuildPoints_Grid(t *testing.T) {
	pts, err := sampler.BuildPoints([]float64{0, 0, 1}, 5, sampler.WithStart(1), sampler.WithStep(-0.5))
	require.NoError(t, err)
	require.Len(t, pts, 5)

	wantX := []float64{1, 0.5, 0, -0.5, -1}
	for i, p := range pts {
		assert.Equal(t, wantX[i], p.X)
		assert.InDelta(t, p.X*p.X, p.Y, 1e-12)
	}
}

// TestBuildSeries_NoiseDeterministic checks that equal seeds give equal noise
// and that the noise is centred on the exact values.
func TestBuildSeries_NoiseDeterministic(t *testing.T) {
	c := []float64{2, -1}
	opts := []sampler.Option{sampler.WithNoise(0.1), sampler.WithSeed(99)}

	a, err := sampler.BuildSeries(c, 2000, opts...)
	require.NoError(t, err)
	b, err := sampler.BuildSeries(c, 2000, opts...)
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed ⇒ same series")

	var sum float64
	for i, y := range a {
		sum += y - (2 - float64(i))
	}
	assert.InDelta(t, 0, sum/float64(len(a)), 0.02, "noise mean ≈ 0")

	c2, err := sampler.BuildSeries(c, 2000, sampler.WithNoise(0.1), sampler.WithSeed(100))
	require.NoError(t, err)
	assert.NotEqual(t, a, c2, "different seed ⇒ different noise")
}

// TestBuildSeries_SharedRand advances one stream across calls.
func TestBuildSeries_SharedRand(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	a, err := sampler.BuildSeries([]float64{0}, 3, sampler.WithNoise(1), sampler.WithRand(r))
	require.NoError(t, err)
	b, err := sampler.BuildSeries([]float64{0}, 3, sampler.WithNoise(1), sampler.WithRand(r))
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "shared stream continues between calls")

	ref := rand.New(rand.NewSource(5))
	for i := range a {
		assert.Equal(t, ref.NormFloat64(), a[i])
	}
}

// TestOptions_Panics verifies eager validation of option values.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { sampler.WithStart(math.NaN()) })
	assert.Panics(t, func() { sampler.WithStep(math.Inf(1)) })
	assert.Panics(t, func() { sampler.WithNoise(-0.1) })
	assert.Panics(t, func() { sampler.WithRand(nil) })
	assert.NotPanics(t, func() { sampler.WithStep(0) })
}

// TestBuildDecimalSeries_Exact tabulates a cent-precise schedule.
func TestBuildDecimalSeries_Exact(t *testing.T) {
	c := []decimal.Decimal{decimal.RequireFromString("100"), decimal.RequireFromString("0.05")}
	ys, err := sampler.BuildDecimalSeries(c, 4, decimal.Zero, decimal.RequireFromString("0.1"))
	require.NoError(t, err)

	want := []string{"100", "100.005", "100.01", "100.015"}
	for i, y := range ys {
		assert.Equal(t, want[i], y.String())
	}
}
