package prism

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func TestPerspectiveMatrixShape(t *testing.T) {
	tr := NewTransform().WithPerspective(500, 0, 0)
	p, ok := tr.Perspective()
	if !ok {
		t.Fatal("Perspective() reported absent after SetPerspective")
	}

	// With a zero origin the projection reduces to depth-offset followed by
	// the -1/distance divisor: (0,0,0,1) lands at z=+78 with
	// w = 1 - 78/500.
	h := p.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assertNear(t, "z", h.Z(), perspectiveDepthOffset, epsilon)
	assertNear(t, "w", h.W(), 1-perspectiveDepthOffset/500, epsilon)
}

func TestPerspectiveOriginRecentered(t *testing.T) {
	// A point sitting exactly at the perspective origin (on z=0) is not
	// displaced by the projection, only scaled by the divide.
	tr := NewTransform().
		WithPerspective(500, 400, 300).
		ComposeWith(NewTransform())

	wx, wy := tr.LocalToWorld(400, 300)
	assertPoint(t, "origin point", wx, wy, 400, 300, 1e-3)
}

func TestPerspectiveZeroDistance(t *testing.T) {
	// A zero (or sub-epsilon) focal distance is clamped, never divided by:
	// composition and forward mapping stay finite and panic-free.
	for _, d := range []float32{0, 1e-9, -1e-9} {
		tr := NewTransform().
			WithPosition(350, 250).
			WithPerspective(d, 400, 300).
			ComposeWith(NewTransform())

		wx, wy := tr.LocalToWorld(50, 50)
		if math32.IsNaN(wx) || math32.IsInf(wx, 0) || math32.IsNaN(wy) || math32.IsInf(wy, 0) {
			t.Errorf("distance %v: LocalToWorld(50,50) = (%v, %v), want finite", d, wx, wy)
		}
	}
}

func TestClearPerspective(t *testing.T) {
	root := NewTransform()

	plain := NewTransform().WithPosition(10, 20).ComposeWith(root)

	cleared := NewTransform().
		WithPosition(10, 20).
		WithPerspective(500, 400, 300)
	cleared.ClearPerspective()
	cleared.Compose(root)

	assertMat4(t, "cleared vs never-set", cleared.World, plain.World)
	if _, ok := cleared.Perspective(); ok {
		t.Error("Perspective() reported present after ClearPerspective")
	}
}
