// Package polytab evaluates a fixed polynomial on an evenly spaced grid
// using additions only, after a one-time setup.
//
// 🚀 What is polytab?
//
//	A small, generic library for Newton forward-difference tabulation
//	(Knuth, TAOCP §4.6.4). Sampling P at x0, x0+h, x0+2h, … costs one
//	Horner evaluation per coefficient up front and then n−1 additions per
//	point, instead of d multiplications per point.
//
// ✨ Where it helps:
//
//   - Curve rasterization (walking y = P(x) across pixel columns)
//   - Numerical tables and fixtures
//   - Share generation P(1), P(2), … over a finite field
//
// Under the hood, everything is organized under four subpackages:
//
//	arith/    — the numeric contract: Native, Methods, BigInt, Modular (Z/qZ)
//	horner/   — single-point Horner evaluation
//	tabulate/ — the difference-table engine (Tabulator, Locked)
//	sampler/  — reproducible float/decimal series with functional options
//
// Quick example:
//
//	tab, _ := tabulate.New([]int{1, 2, 3}, 0, 1)
//	for _, p := range tab.Take(4) {
//	    fmt.Println(p.X, p.Y) // 0 1, 1 6, 2 17, 3 34
//	}
//
//	go get github.com/katalvlaran/polytab
package polytab
