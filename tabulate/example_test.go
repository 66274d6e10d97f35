package tabulate_test

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/polytab/arith"
	"github.com/katalvlaran/polytab/tabulate"
)

// ExampleNew tabulates P(x) = 1 + 2x + 3x² at x = 7, 12, 17, …
func ExampleNew() {
	tab, err := tabulate.New([]int{1, 2, 3}, 7, 5)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, p := range tab.Take(4) {
		fmt.Printf("P(%d)=%d\n", p.X, p.Y)
	}
	// Output:
	// P(7)=162
	// P(12)=457
	// P(17)=902
	// P(22)=1497
}

// ExampleTabulator_All walks the squares until the consumer stops.
func ExampleTabulator_All() {
	tab, _ := tabulate.New([]int{0, 0, 1}, 1, 1)
	for x, y := range tab.All() {
		if y > 30 {
			break
		}
		fmt.Print(x, ":", y, " ")
	}
	fmt.Println()
	// Output:
	// 1:1 2:4 3:9 4:16 5:25
}

// ExampleNewRing builds an exact decimal table on a 0.25 grid.
func ExampleNewRing() {
	c := []decimal.Decimal{decimal.NewFromInt(1), decimal.Zero, decimal.RequireFromString("0.5")}
	tab, _ := tabulate.NewRing(c, decimal.Zero, decimal.RequireFromString("0.25"))
	for _, p := range tab.Take(5) {
		fmt.Println(p.X.StringFixed(2), p.Y.StringFixed(5))
	}
	// Output:
	// 0.00 1.00000
	// 0.25 1.03125
	// 0.50 1.12500
	// 0.75 1.28125
	// 1.00 1.50000
}

// ExampleNewWith evaluates Shamir-style shares P(1), P(2), … over Z/257Z.
func ExampleNewWith() {
	field, err := arith.NewModular(257)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	secret := field.Residues(42, 166, 94) // P(0) = 42
	tab, _ := tabulate.NewWith[uint64](field, secret, 1, 1)
	for _, share := range tab.Take(5) {
		fmt.Printf("(%d,%d) ", share.X, share.Y)
	}
	fmt.Println()
	// Output:
	// (1,45) (2,236) (3,101) (4,154) (5,138)
}
