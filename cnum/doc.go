// Package cnum provides Complex, the small complex-number value type that
// every amplitude and matrix entry in qlath is made of.
//
// 🚀 What is cnum?
//
//	A plain (re, im) pair of float64 with value semantics:
//	  • closed arithmetic: Add, Sub, Mul, Conj, Scale, Neg
//	  • magnitudes: Abs2 (|z|², the measurement probability), Abs
//	  • interop with the builtin complex128 (Complex128, FromComplex128)
//	  • tolerance comparisons for numeric invariants (ApproxEqual)
//
// Every operation is total: there are no error returns in this package.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/qlath/cnum"
//
//	a := cnum.New(1, 2)
//	b := a.Mul(a.Conj()) // (5+0i)
//	p := a.Abs2()        // 5
package cnum
