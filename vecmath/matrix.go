// File: vecmath/matrix.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package vecmath

import (
	"github.com/momentics/parfor"
	"github.com/momentics/parfor/control"
)

// Mat4 is a column-major 4x4 float32 matrix.
type Mat4 [16]float32

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation returns a translation matrix.
func Translation(v Vec3) Mat4 {
	m := Identity()
	m[12], m[13], m[14] = v.X, v.Y, v.Z
	return m
}

// Scaling returns a scaling matrix.
func Scaling(v Vec3) Mat4 {
	m := Identity()
	m[0], m[5], m[10] = v.X, v.Y, v.Z
	return m
}

// Mul returns a*b.
func (a Mat4) Mul(b Mat4) Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a[k*4+r] * b[c*4+k]
			}
			out[c*4+r] = sum
		}
	}
	return out
}

// MulVec4 returns a*v.
func (a Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		a[0]*v.X + a[4]*v.Y + a[8]*v.Z + a[12]*v.W,
		a[1]*v.X + a[5]*v.Y + a[9]*v.Z + a[13]*v.W,
		a[2]*v.X + a[6]*v.Y + a[10]*v.Z + a[14]*v.W,
		a[3]*v.X + a[7]*v.Y + a[11]*v.Z + a[15]*v.W,
	}
}

// TransformBatch applies a to every vector of src, writing into dst, which
// must be at least as long. Batches above the configured cutoff run through
// the range engine.
func (a Mat4) TransformBatch(dst, src []Vec4) {
	n := len(src)
	if len(dst) < n {
		n = len(dst)
	}
	parfor.For64(0, int64(n), 1, control.DefaultCutoff(), 0, func(i int64) {
		dst[i] = a.MulVec4(src[i])
	})
}
