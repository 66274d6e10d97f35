// SPDX-License-Identifier: MIT

package sampler

import (
	"errors"

	"github.com/katalvlaran/polytab/tabulate"
)

var (
	// ErrBadLength indicates a requested series length below 1.
	ErrBadLength = errors.New("sampler: series length must be ≥ 1")

	// ErrEmptyPolynomial is propagated from tabulate unchanged.
	ErrEmptyPolynomial = tabulate.ErrEmptyPolynomial
)
