// File: vecmath/complex.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package vecmath

import "math"

// Complex is a float32 complex number with explicit parts.
type Complex struct {
	Re, Im float32
}

func (a Complex) Add(b Complex) Complex { return Complex{a.Re + b.Re, a.Im + b.Im} }
func (a Complex) Sub(b Complex) Complex { return Complex{a.Re - b.Re, a.Im - b.Im} }

// Mul returns the complex product.
func (a Complex) Mul(b Complex) Complex {
	return Complex{
		a.Re*b.Re - a.Im*b.Im,
		a.Re*b.Im + a.Im*b.Re,
	}
}

// Abs returns the modulus.
func (a Complex) Abs() float32 {
	return float32(math.Hypot(float64(a.Re), float64(a.Im)))
}

// Conj returns the complex conjugate.
func (a Complex) Conj() Complex { return Complex{a.Re, -a.Im} }
