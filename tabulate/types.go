// SPDX-License-Identifier: MIT

package tabulate

import (
	"github.com/katalvlaran/polytab/arith"
	"github.com/katalvlaran/polytab/horner"
)

// Sentinel errors, shared with package horner so errors.Is matches either name.
var (
	// ErrEmptyPolynomial indicates a polynomial with no coefficients.
	ErrEmptyPolynomial = horner.ErrEmptyPolynomial

	// ErrNilArithmetic indicates that NewWith got a nil arithmetic.
	ErrNilArithmetic = horner.ErrNilArithmetic
)

// Point is one tabulated pair: Y = P(X).
type Point[T any] struct {
	X T
	Y T
}

// Tabulator walks a polynomial along an arithmetic progression.
// Build it with New, NewRing or NewWith; the zero Tabulator has no table
// and panics on Next.
//
// Invariants:
//   - len(state) == degree+1 ≥ 1, fixed for the lifetime of the value.
//   - once pulled, state[0] == P(input).
//   - state[j], j ≥ 1, holds the j-th difference needed for the next step.
type Tabulator[T any] struct {
	ar    arith.Arithmetic[T]
	state []T
	input T
	step  T
	fresh bool // no pull yet; the next pull returns (x0, P(x0)) unchanged
}
