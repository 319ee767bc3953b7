package prism

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// degenerateEpsilon bounds the homogeneous divisors (|w|, |ray_dir.z|)
// below which a divide is treated as degenerate instead of performed.
const degenerateEpsilon = 1e-6

// singularEpsilon is the determinant magnitude below which the world
// matrix is treated as not invertible.
const singularEpsilon = 1e-10

// then returns the matrix that applies a's effect first, then b's.
//
// mgl32 matrices use the column-vector convention (point on the right), so
// "a then b" is the product b·a. All composition in this package goes
// through this helper to keep the left-to-right reading order of the CSS
// transform model.
func then(a, b mgl32.Mat4) mgl32.Mat4 {
	return b.Mul4(a)
}

// invert returns the inverse of m, or ErrNotInvertible if its determinant
// is numerically zero.
func invert(m mgl32.Mat4) (mgl32.Mat4, error) {
	if math32.Abs(m.Det()) < singularEpsilon {
		return mgl32.Mat4{}, ErrNotInvertible
	}
	return m.Inv(), nil
}

// perspectiveDivide projects a homogeneous point to Cartesian coordinates.
// Returns ErrDegenerate when |w| is too small to divide by.
func perspectiveDivide(h mgl32.Vec4) (mgl32.Vec3, error) {
	w := h.W()
	if math32.Abs(w) < degenerateEpsilon {
		return mgl32.Vec3{}, ErrDegenerate
	}
	return mgl32.Vec3{h.X() / w, h.Y() / w, h.Z() / w}, nil
}

// flatten exports a matrix as 16 values in CSS matrix3d() argument order
// (column-major), for interop with downstream rendering or persistence.
func flatten(m mgl32.Mat4) [16]float32 {
	return [16]float32(m)
}

// LocalMatrix3D returns the accumulated local operation matrix as 16 values
// in CSS matrix3d() argument order.
func (t *Transform) LocalMatrix3D() [16]float32 {
	return flatten(t.Local)
}

// WorldMatrix3D returns the composed world matrix as 16 values in CSS
// matrix3d() argument order. Meaningful only after [Transform.Compose].
func (t *Transform) WorldMatrix3D() [16]float32 {
	return flatten(t.World)
}
