// SPDX-License-Identifier: MIT

package cnum

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats/scalar"
)

// Complex is an immutable complex number re + im·i.
// The zero value is 0+0i and ready to use.
type Complex struct {
	re float64 // real part
	im float64 // imaginary part
}

// Frequently used constants.
var (
	Zero = Complex{}       // 0
	One  = Complex{re: 1}  // 1
	I    = Complex{im: 1}  // i
	MOne = Complex{re: -1} // -1
	MI   = Complex{im: -1} // -i
)

// New returns re + im·i.
func New(re, im float64) Complex {
	return Complex{re: re, im: im}
}

// Real returns a Complex with zero imaginary part.
func Real(re float64) Complex {
	return Complex{re: re}
}

// Polar returns r·e^{iθ}.
// Complexity: O(1).
func Polar(r, theta float64) Complex {
	s, c := math.Sincos(theta)

	return Complex{re: r * c, im: r * s}
}

// FromComplex128 converts a builtin complex128.
func FromComplex128(c complex128) Complex {
	return Complex{re: real(c), im: imag(c)}
}

// Re returns the real part.
func (z Complex) Re() float64 { return z.re }

// Im returns the imaginary part.
func (z Complex) Im() float64 { return z.im }

// Complex128 converts z into the builtin complex128.
func (z Complex) Complex128() complex128 {
	return complex(z.re, z.im)
}

// Add returns z + w.
func (z Complex) Add(w Complex) Complex {
	return Complex{re: z.re + w.re, im: z.im + w.im}
}

// Sub returns z - w.
func (z Complex) Sub(w Complex) Complex {
	return Complex{re: z.re - w.re, im: z.im - w.im}
}

// Mul returns z·w = (ac - bd) + (ad + bc)i.
func (z Complex) Mul(w Complex) Complex {
	return Complex{
		re: z.re*w.re - z.im*w.im,
		im: z.re*w.im + z.im*w.re,
	}
}

// Scale returns f·z for a real factor f.
func (z Complex) Scale(f float64) Complex {
	return Complex{re: f * z.re, im: f * z.im}
}

// Neg returns -z.
func (z Complex) Neg() Complex {
	return Complex{re: -z.re, im: -z.im}
}

// Conj returns the complex conjugate re - im·i.
func (z Complex) Conj() Complex {
	return Complex{re: z.re, im: -z.im}
}

// Abs2 returns the squared magnitude re² + im².
// For an amplitude this is the probability of observing its basis state.
func (z Complex) Abs2() float64 {
	return z.re*z.re + z.im*z.im
}

// Abs returns the magnitude |z|.
func (z Complex) Abs() float64 {
	return math.Hypot(z.re, z.im)
}

// IsZero reports whether z is exactly 0+0i.
func (z Complex) IsZero() bool {
	return z.re == 0 && z.im == 0
}

// ApproxEqual reports whether both parts of z and w differ by at most eps.
func (z Complex) ApproxEqual(w Complex, eps float64) bool {
	return scalar.EqualWithinAbs(z.re, w.re, eps) && scalar.EqualWithinAbs(z.im, w.im, eps)
}

// String formats z as "(re+imi)", matching fmt's layout for complex128.
func (z Complex) String() string {
	return strconv.FormatComplex(z.Complex128(), 'g', -1, 128)
}
