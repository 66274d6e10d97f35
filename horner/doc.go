// SPDX-License-Identifier: MIT

// Package horner evaluates a single-variable polynomial at one point.
//
// Coefficients are ordered low to high: coefficients[i] multiplies x^i.
//
//	P(x) = c0 + c1·x + c2·x² + … + cd·x^d
//	     = c0 + x·(c1 + x·(c2 + … + x·cd))
//
// The nested form costs d multiplications and d additions, which is
// optimal for one point. For many points on an arithmetic grid see
// package tabulate, which uses this evaluator only for its setup.
//
// Usage:
//
//	y, err := horner.Evaluate([]int{1, 2, 3}, 7) // 1 + 2·7 + 3·49 = 162
//
// Errors:
//   - ErrEmptyPolynomial — coefficients is empty.
//   - ErrNilArithmetic   — EvaluateWith got a nil arith.Arithmetic.
package horner
