// SPDX-License-Identifier: MIT

package arith

import "math/big"

// BigInt implements Arithmetic for *big.Int.
//
// Every operation allocates its result; operands are left untouched, so
// values handed out by an evaluator stay valid after further steps.
// Nil operands are not accepted.
type BigInt struct{}

var (
	_ Arithmetic[*big.Int] = BigInt{}
	_ Cloner[*big.Int]     = BigInt{}
)

// Clone returns a new copy of v.
func (BigInt) Clone(v *big.Int) *big.Int { return new(big.Int).Set(v) }

// Add returns a new a + b.
func (BigInt) Add(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) }

// Sub returns a new a − b.
func (BigInt) Sub(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) }

// Mul returns a new a · b.
func (BigInt) Mul(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) }

// BigInts converts int64 values to *big.Int, in order.
func BigInts(vals ...int64) []*big.Int {
	out := make([]*big.Int, len(vals))
	for i, v := range vals {
		out[i] = big.NewInt(v)
	}

	return out
}
