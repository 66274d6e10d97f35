package horner_test

import (
	"testing"

	"github.com/katalvlaran/polytab/horner"
)

// benchmarkEvaluate runs Horner on a degree-d float polynomial.
func benchmarkEvaluate(b *testing.B, d int) {
	c := make([]float64, d+1)
	for i := range c {
		c[i] = float64(i + 1)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := horner.Evaluate(c, 0.999); err != nil {
			b.Fatalf("Evaluate failed: %v", err)
		}
	}
}

// BenchmarkEvaluate_Degree3 benchmarks a cubic.
func BenchmarkEvaluate_Degree3(b *testing.B) { benchmarkEvaluate(b, 3) }

// BenchmarkEvaluate_Degree32 benchmarks a degree-32 polynomial.
func BenchmarkEvaluate_Degree32(b *testing.B) { benchmarkEvaluate(b, 32) }
