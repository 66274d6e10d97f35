// SPDX-License-Identifier: MIT

// Package tabulate produces the values of a fixed polynomial on an
// arithmetic progression x0, x0+h, x0+2h, … using only additions per
// point after a one-time setup.
//
// 🚀 How it works (Knuth, TAOCP §4.6.4 "Tabulating polynomial values")
//
//	For a polynomial of degree d = n−1 the n-th finite difference is zero,
//	so n numbers describe the whole sequence:
//
//	  setup   sample P at x0 … x0+(n−1)h with Horner, then difference in place
//	          for k = 1..n−1, for j = n−1 down to k:  s[j] = s[j] − s[j−1]
//	  advance for j = 0..n−2 (ascending):            s[j] = s[j] + s[j+1]
//
//	After each advance s[0] is P at the next grid point. The two loops run
//	in opposite directions because each is the inverse of the other.
//
// ✨ Key features:
//   - any value type: built-in numbers (New), types with Add/Sub/Mul such
//     as decimal.Decimal (NewRing), or any arith.Arithmetic (NewWith),
//     including *big.Int and modular residues.
//   - setup: O(n²) multiplications; each step: O(n) additions, no multiplications.
//   - infinite range-over-func iteration via All; bounded pulls via Take.
//
// ⚙️ Usage:
//
//	tab, err := tabulate.New([]int{1, 2, 3}, 7, 5) // 1 + 2x + 3x² at 7, 12, 17, …
//	if err != nil {
//	    return err
//	}
//	for x, y := range tab.All() {
//	    if x > 100 {
//	        break
//	    }
//	    fmt.Println(x, y)
//	}
//
// The next point is computed by repeated addition of the step, never as
// x0 + k·h, so float grids accumulate rounding exactly as a hand-written
// loop would.
//
// A Tabulator is a one-way cursor: pulls mutate it and it cannot be
// rewound. It is not safe for concurrent pulls; wrap it with NewLocked
// when several goroutines share one sequence.
package tabulate
