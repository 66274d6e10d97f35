// SPDX-License-Identifier: MIT

package arith

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v6/ring"
)

// MaxModulusBits bounds the modulus accepted by NewModular. Residue sums
// must fit a uint64 before conditional reduction.
const MaxModulusBits = 61

// subRingDegree is the smallest degree lattigo accepts for a SubRing.
// Only the modulus and its Barrett constant are used here.
const subRingDegree = 16

// Modular implements Arithmetic over Z/qZ. Values are uint64 residues in
// [0, q); feeding unreduced values is a programmer error (use Reduce).
//
// Multiplication is Barrett-reduced with lattigo's ring.BRed, addition and
// subtraction use a single conditional subtraction (ring.CRed).
//
// Only values returned by NewModular are usable. The zero Modular fails
// Validate, and the horner and tabulate entry points reject it with
// ErrBadModulus; calling its methods directly panics.
type Modular struct {
	sub *ring.SubRing
}

var (
	_ Arithmetic[uint64] = Modular{}
	_ Validator          = Modular{}
)

// NewModular returns the arithmetic of Z/qZ.
// Errors: ErrBadModulus if q < 2 or q ≥ 2^MaxModulusBits.
func NewModular(q uint64) (Modular, error) {
	if q < 2 || q >= 1<<MaxModulusBits {
		return Modular{}, fmt.Errorf("%w: q=%d", ErrBadModulus, q)
	}
	sub, err := ring.NewSubRing(subRingDegree, q)
	if err != nil {
		return Modular{}, fmt.Errorf("arith: subring for q=%d: %w", q, err)
	}

	return Modular{sub: sub}, nil
}

// Validate returns ErrBadModulus for a Modular not built by NewModular.
func (m Modular) Validate() error {
	if m.sub == nil {
		return fmt.Errorf("%w: zero Modular, use NewModular", ErrBadModulus)
	}

	return nil
}

// Modulus returns q.
func (m Modular) Modulus() uint64 { return m.sub.Modulus }

// IsField reports whether q is prime, i.e. whether Z/qZ is a field.
func (m Modular) IsField() bool { return ring.IsPrime(m.sub.Modulus) }

// Reduce maps a signed integer to its residue in [0, q).
func (m Modular) Reduce(v int64) uint64 {
	q := int64(m.sub.Modulus)
	r := v % q
	if r < 0 {
		r += q
	}

	return uint64(r)
}

// Residues reduces every value with Reduce, in order.
func (m Modular) Residues(vals ...int64) []uint64 {
	out := make([]uint64, len(vals))
	for i, v := range vals {
		out[i] = m.Reduce(v)
	}

	return out
}

// Add returns a + b mod q.
func (m Modular) Add(a, b uint64) uint64 {
	return ring.CRed(a+b, m.sub.Modulus)
}

// Sub returns a − b mod q.
func (m Modular) Sub(a, b uint64) uint64 {
	return ring.CRed(a+m.sub.Modulus-b, m.sub.Modulus)
}

// Mul returns a · b mod q.
func (m Modular) Mul(a, b uint64) uint64 {
	return ring.BRed(a, b, m.sub.Modulus, m.sub.BRedConstant)
}
