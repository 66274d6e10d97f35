// SPDX-License-Identifier: MIT

package arith

import "errors"

// ErrBadModulus is returned by NewModular for a modulus outside [2, 2^MaxModulusBits).
var ErrBadModulus = errors.New("arith: invalid modulus")
