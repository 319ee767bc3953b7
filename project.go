package prism

import (
	"errors"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrNotInvertible reports that the world matrix has no inverse
	// (numerically zero determinant), so no world→local mapping exists.
	ErrNotInvertible = errors.New("prism: world transform is not invertible")

	// ErrDegenerate reports a degenerate projection: a homogeneous divide
	// or ray/plane intersection with a near-zero denominator.
	ErrDegenerate = errors.New("prism: degenerate projection")
)

// LocalToWorld maps a point on this element's local z=0 plane to world
// coordinates through the composed world matrix, including the perspective
// divide.
//
// If the divide is degenerate (the point lands at or beyond the plane at
// infinity), LocalToWorld returns (0, 0). That clamp is indistinguishable
// from a legitimate result at the origin; use [Transform.LocalToWorld3]
// when the caller needs to tell them apart.
func (t *Transform) LocalToWorld(x, y float32) (wx, wy float32) {
	h := t.World.Mul4x1(mgl32.Vec4{x, y, 0, 1})
	w := h.W()
	if math32.Abs(w) < degenerateEpsilon {
		return 0, 0
	}
	return h.X() / w, h.Y() / w
}

// LocalToWorld3 is the fallible form of [Transform.LocalToWorld]. It also
// returns the world-space depth of the mapped point, which is exactly the z
// that [Transform.WorldToLocal] needs to invert a point known to originate
// on this element's local z=0 plane.
func (t *Transform) LocalToWorld3(x, y float32) (wx, wy, wz float32, err error) {
	p, err := perspectiveDivide(t.World.Mul4x1(mgl32.Vec4{x, y, 0, 1}))
	if err != nil {
		return 0, 0, 0, err
	}
	return p.X(), p.Y(), p.Z(), nil
}

// WorldToLocal maps a world-space point back to this element's local space.
//
// Perspective is not affine: a world (x, y) alone does not identify a
// unique local point, so the caller must supply the correct world-space z.
// For a point that originated on the local z=0 plane, read the z back from
// [Transform.LocalToWorld3]; for a pointer position with no known depth,
// use [Transform.ScreenToLocal] instead.
//
// Returns ErrNotInvertible if the world matrix is singular and
// ErrDegenerate if the homogeneous divide has a near-zero denominator.
func (t *Transform) WorldToLocal(x, y, z float32) (lx, ly float32, err error) {
	inv, err := invert(t.World)
	if err != nil {
		return 0, 0, err
	}
	p, err := perspectiveDivide(inv.Mul4x1(mgl32.Vec4{x, y, z, 1}))
	if err != nil {
		return 0, 0, err
	}
	return p.X(), p.Y(), nil
}

// ScreenToLocal maps a 2D screen position with unknown depth to this
// element's local space, the way browsers hit-test a perspective-
// transformed element: the screen point is pulled back through the inverse
// world transform at two depths to form the viewing ray in local space, and
// that ray is intersected with the element's local z=0 plane.
//
// Returns ErrNotInvertible if the world matrix is singular, and
// ErrDegenerate if either pull-back divide is near zero or the ray is
// parallel to the plane (element viewed edge-on).
func (t *Transform) ScreenToLocal(x, y float32) (lx, ly float32, err error) {
	inv, err := invert(t.World)
	if err != nil {
		return 0, 0, err
	}

	rayOrigin, err := perspectiveDivide(inv.Mul4x1(mgl32.Vec4{x, y, 0, 1}))
	if err != nil {
		return 0, 0, err
	}
	rayEnd, err := perspectiveDivide(inv.Mul4x1(mgl32.Vec4{x, y, 1, 1}))
	if err != nil {
		return 0, 0, err
	}

	rayDir := rayEnd.Sub(rayOrigin)
	if math32.Abs(rayDir.Z()) < degenerateEpsilon {
		// Parallel to the z=0 plane: no intersection.
		return 0, 0, ErrDegenerate
	}

	s := -rayOrigin.Z() / rayDir.Z()
	return rayOrigin.X() + s*rayDir.X(), rayOrigin.Y() + s*rayDir.Y(), nil
}
