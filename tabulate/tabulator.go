// SPDX-License-Identifier: MIT

package tabulate

import (
	"iter"

	"github.com/katalvlaran/polytab/arith"
	"github.com/katalvlaran/polytab/horner"
)

// New builds a Tabulator for a polynomial over a built-in numeric type.
// See NewWith for the algorithm and errors.
func New[T arith.Number](coefficients []T, initial, step T) (*Tabulator[T], error) {
	return NewWith[T](arith.Native[T]{}, coefficients, initial, step)
}

// NewRing builds a Tabulator for a value type with its own Add/Sub/Mul.
func NewRing[T arith.Ring[T]](coefficients []T, initial, step T) (*Tabulator[T], error) {
	return NewWith[T](arith.Methods[T]{}, coefficients, initial, step)
}

// NewWith builds a Tabulator that yields (x, P(x)) for
// x = initial, initial+step, initial+2·step, …
//
// Steps:
//  1. n = len(coefficients); sample s[k] = P(x0 + k·h), k = 0..n−1, where
//     each point is the previous one plus step.
//  2. Difference in place: for k = 1..n−1, for j = n−1 down to k,
//     s[j] = s[j] − s[j−1]. The descending j keeps s[j−1] at order k−1
//     until s[j] has consumed it. s[0] is never touched.
//
// coefficients is read only during the call and not retained. When ar
// implements arith.Cloner (arith.BigInt), initial, step and a degree-0
// value are copied, so later mutation of the caller's values does not
// reach the Tabulator.
//
// Complexity: O(n²) time, O(n) memory.
// Errors: ErrNilArithmetic, ErrEmptyPolynomial (from horner, unwrapped),
// or the Validate error of ar (arith.ErrBadModulus for a zero arith.Modular).
func NewWith[T any](ar arith.Arithmetic[T], coefficients []T, initial, step T) (*Tabulator[T], error) {
	y0, err := horner.EvaluateWith(ar, coefficients, initial)
	if err != nil {
		return nil, err
	}

	n := len(coefficients)
	state := make([]T, n)
	state[0] = y0
	x := initial
	for k := 1; k < n; k++ {
		x = ar.Add(x, step)
		if state[k], err = horner.EvaluateWith(ar, coefficients, x); err != nil {
			return nil, err
		}
	}

	if c, ok := ar.(arith.Cloner[T]); ok {
		initial, step = c.Clone(initial), c.Clone(step)
		if n == 1 {
			state[0] = c.Clone(state[0])
		}
	}

	for k := 1; k < n; k++ {
		for j := n - 1; j >= k; j-- {
			state[j] = ar.Sub(state[j], state[j-1])
		}
	}

	return &Tabulator[T]{
		ar:    ar,
		state: state,
		input: initial,
		step:  step,
		fresh: true,
	}, nil
}

// Next returns the next (x, P(x)) pair.
//
// The first call returns (x0, P(x0)) without computation. Every later call
// folds the table forward, s[j] = s[j] + s[j+1] for j = 0..n−2 in ascending
// order so each sum reads the previous step's s[j+1], then advances x by
// step.
//
// Complexity: O(n) additions, no multiplications, no allocation for
// built-in types.
func (t *Tabulator[T]) Next() (x, y T) {
	if t.fresh {
		t.fresh = false
	} else {
		for j := 0; j < len(t.state)-1; j++ {
			t.state[j] = t.ar.Add(t.state[j], t.state[j+1])
		}
		t.input = t.ar.Add(t.input, t.step)
	}

	return t.input, t.state[0]
}

// All returns an endless sequence of pairs pulled with Next. The consumer
// stops by breaking out of the range loop; pulls already made stay made.
func (t *Tabulator[T]) All() iter.Seq2[T, T] {
	return func(yield func(T, T) bool) {
		for {
			if !yield(t.Next()) {
				return
			}
		}
	}
}

// Take pulls the next n pairs. n ≤ 0 pulls nothing and returns nil.
func (t *Tabulator[T]) Take(n int) []Point[T] {
	if n <= 0 {
		return nil
	}
	out := make([]Point[T], n)
	for i := range out {
		out[i].X, out[i].Y = t.Next()
	}

	return out
}

// Degree returns the degree of the tabulated polynomial.
func (t *Tabulator[T]) Degree() int { return len(t.state) - 1 }

// Step returns the fixed grid increment.
func (t *Tabulator[T]) Step() T { return t.step }
