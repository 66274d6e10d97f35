// SPDX-License-Identifier: MIT

package horner

import "errors"

var (
	// ErrEmptyPolynomial indicates a polynomial with no coefficients.
	// It is a usage error and is never retried or defaulted.
	ErrEmptyPolynomial = errors.New("horner: empty polynomial")

	// ErrNilArithmetic indicates that no arithmetic was supplied.
	ErrNilArithmetic = errors.New("horner: nil arithmetic")
)
