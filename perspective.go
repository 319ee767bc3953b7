package prism

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// perspectiveDepthOffset is an empirical Z offset folded into the
// perspective projection. It was calibrated against Chrome's rendering of
// the equivalent CSS-transformed elements (the reference fixtures imply the
// element sits at z ≈ 78) and is not derived from first principles. Do not
// re-derive without new reference measurements.
const perspectiveDepthOffset = 78.0

// minPerspectiveDistance is the smallest focal distance magnitude accepted
// by [Transform.SetPerspective]. Smaller distances (including zero) are
// clamped to it, keeping the depth divisor finite.
const minPerspectiveDistance = 1e-6

// SetPerspective gives this element the perspective projection of its
// parent container: focal distance and a 2D vanishing-point origin, the
// CSS perspective/perspective-origin pair. In CSS the property sits on the
// parent element; storing it on the child lets one fluent chain configure
// an element without a handle to its parent.
//
// The projection is built as translate(-origin) -> translate(0,0,+78)
// (see perspectiveDepthOffset) -> depth divisor -1/distance ->
// translate(+origin).
func (t *Transform) SetPerspective(distance, originX, originY float32) {
	d := distance
	if math32.Abs(d) < minPerspectiveDistance {
		if math32.Signbit(d) {
			d = -minPerspectiveDistance
		} else {
			d = minPerspectiveDistance
		}
	}

	proj := mgl32.Ident4()
	proj.Set(3, 2, -1/d)

	m := then(mgl32.Translate3D(-originX, -originY, 0), mgl32.Translate3D(0, 0, perspectiveDepthOffset))
	m = then(m, proj)
	m = then(m, mgl32.Translate3D(originX, originY, 0))
	t.perspective = &m
}

// WithPerspective sets the parent-container perspective and returns t for
// chaining.
func (t *Transform) WithPerspective(distance, originX, originY float32) *Transform {
	t.SetPerspective(distance, originX, originY)
	return t
}

// ClearPerspective removes the injected perspective; composition then
// treats it as identity.
func (t *Transform) ClearPerspective() {
	t.perspective = nil
}

// Perspective returns the injected perspective matrix and whether one is
// set.
func (t *Transform) Perspective() (mgl32.Mat4, bool) {
	if t.perspective == nil {
		return mgl32.Mat4{}, false
	}
	return *t.perspective, true
}
