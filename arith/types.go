// SPDX-License-Identifier: MIT

package arith

import "golang.org/x/exp/constraints"

// Number is the set of types whose ring operations are Go's built-in
// +, − and * operators.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Ring is satisfied by value types that carry their own arithmetic,
// each operation returning a new value of the same type.
//
// decimal.Decimal from github.com/shopspring/decimal satisfies Ring as-is.
type Ring[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
}

// Arithmetic supplies addition, subtraction and multiplication for T.
// Implementations must not mutate their operands.
type Arithmetic[T any] interface {
	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
}

// Cloner is implemented by arithmetics whose values are references
// (*big.Int). Clone returns a value the caller may keep after the
// original is mutated.
type Cloner[T any] interface {
	Clone(v T) T
}

// Validator is implemented by arithmetics that carry parameters and are
// unusable in their zero form (Modular).
type Validator interface {
	Validate() error
}

// Native implements Arithmetic with the built-in operators.
type Native[T Number] struct{}

// Add returns a + b.
func (Native[T]) Add(a, b T) T { return a + b }

// Sub returns a − b.
func (Native[T]) Sub(a, b T) T { return a - b }

// Mul returns a · b.
func (Native[T]) Mul(a, b T) T { return a * b }

// Methods implements Arithmetic by delegating to T's own methods.
type Methods[T Ring[T]] struct{}

// Add returns a.Add(b).
func (Methods[T]) Add(a, b T) T { return a.Add(b) }

// Sub returns a.Sub(b).
func (Methods[T]) Sub(a, b T) T { return a.Sub(b) }

// Mul returns a.Mul(b).
func (Methods[T]) Mul(a, b T) T { return a.Mul(b) }

// compile-time interface checks
var (
	_ Arithmetic[int64]      = Native[int64]{}
	_ Arithmetic[float64]    = Native[float64]{}
	_ Arithmetic[complex128] = Native[complex128]{}
)
