// SPDX-License-Identifier: MIT

// Package arith defines the numeric contract shared by the polytab
// evaluators, plus a handful of ready-made arithmetics.
//
// 🚀 What is an Arithmetic?
//
//	Polynomial tabulation only ever needs three operations on its value
//	type: a+b, a−b and a·b. Go cannot spell "any type with + − ·" for
//	user-defined types, so the operations are supplied explicitly through
//	the Arithmetic[T] interface:
//
//	  type Arithmetic[T any] interface {
//	      Add(a, b T) T
//	      Sub(a, b T) T
//	      Mul(a, b T) T
//	  }
//
// ✨ Implementations:
//
//   - Native[T]  — built-in operators for every integer, float and complex type.
//   - Methods[T] — value types with their own Add/Sub/Mul (shopspring/decimal.Decimal).
//   - BigInt     — *big.Int, results are always freshly allocated.
//   - Modular    — residues in Z/qZ, Barrett-reduced via lattigo's ring package.
//
// None of the implementations detects overflow or rounding; whatever the
// underlying type does is what the evaluators inherit.
package arith
