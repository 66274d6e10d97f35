// SPDX-License-Identifier: MIT

package horner

import "github.com/katalvlaran/polytab/arith"

// Evaluate returns P(x) for a polynomial over a built-in numeric type.
func Evaluate[T arith.Number](coefficients []T, x T) (T, error) {
	return EvaluateWith[T](arith.Native[T]{}, coefficients, x)
}

// EvaluateRing returns P(x) for a value type with its own Add/Sub/Mul,
// e.g. decimal.Decimal.
func EvaluateRing[T arith.Ring[T]](coefficients []T, x T) (T, error) {
	return EvaluateWith[T](arith.Methods[T]{}, coefficients, x)
}

// EvaluateWith returns P(x) using the operations of ar.
//
// Algorithm:
//  1. len(coefficients) == 1 → return coefficients[0] as-is.
//  2. acc = coefficients[d].
//  3. For i = d−1 down to 0: acc = acc·x + coefficients[i].
//
// Complexity: O(d) time, O(1) extra memory. Pure; coefficients are only read.
// For reference types the degree-0 result is coefficients[0] itself.
// Errors: ErrNilArithmetic, ErrEmptyPolynomial, or the Validate error of ar
// (e.g. arith.ErrBadModulus for a zero arith.Modular).
func EvaluateWith[T any](ar arith.Arithmetic[T], coefficients []T, x T) (T, error) {
	var zero T
	if ar == nil {
		return zero, ErrNilArithmetic
	}
	if v, ok := ar.(arith.Validator); ok {
		if err := v.Validate(); err != nil {
			return zero, err
		}
	}
	d := len(coefficients) - 1
	if d < 0 {
		return zero, ErrEmptyPolynomial
	}
	if d == 0 {
		return coefficients[0], nil
	}

	acc := coefficients[d]
	for i := d - 1; i >= 0; i-- {
		acc = ar.Add(ar.Mul(acc, x), coefficients[i])
	}

	return acc, nil
}
