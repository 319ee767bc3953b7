package prism

import "github.com/go-gl/mathgl/mgl32"

// Transform holds one element's transform inputs and the world matrix
// produced by composing them with the element's ancestors. It is a plain
// value: builder and setter calls mutate it, [Transform.Compose] writes
// [Transform.World], and nothing else is owned.
type Transform struct {
	// Local accumulates this element's own translate/rotate/scale
	// operations, in call order, in the pre-pivot, pre-position frame.
	Local mgl32.Mat4

	// World maps this element's local space directly into root space,
	// with all ancestor transforms and perspective folded in. Valid only
	// after Compose has run against an already-composed parent.
	World mgl32.Mat4

	// PivotX, PivotY anchor the operations in Local: rotations and scales
	// apply around this point rather than the local origin.
	PivotX, PivotY float32

	// X, Y position this element relative to its parent's space, applied
	// after the pivoted local operations.
	X, Y float32

	// perspective is the optional projection of this element's parent
	// container. Stored here rather than on the parent so one fluent
	// chain can set up an element without a handle to its parent;
	// nil means no perspective.
	perspective *mgl32.Mat4
}

// NewTransform returns an identity transform: no operations, zero pivot and
// position, no perspective. A fresh transform also serves as the identity
// placeholder parent for composing tree roots.
func NewTransform() *Transform {
	return &Transform{
		Local: mgl32.Ident4(),
		World: mgl32.Ident4(),
	}
}

// SetPivot sets the point the local operations are anchored to.
func (t *Transform) SetPivot(px, py float32) {
	t.PivotX = px
	t.PivotY = py
}

// WithPivot sets the pivot and returns t for chaining.
func (t *Transform) WithPivot(px, py float32) *Transform {
	t.SetPivot(px, py)
	return t
}

// SetPosition sets this element's position relative to its parent.
func (t *Transform) SetPosition(x, y float32) {
	t.X = x
	t.Y = y
}

// WithPosition sets the position and returns t for chaining.
func (t *Transform) WithPosition(x, y float32) *Transform {
	t.SetPosition(x, y)
	return t
}

// Compose folds pivot, local operations, position, perspective and the
// parent's world matrix into this element's world matrix:
//
//	translate(-pivot) -> Local -> translate(+pivot)
//	-> translate(position) -> perspective (identity when absent)
//	-> parent.World
//
// parent.World must already be the parent's fully composed matrix; Compose
// performs no recursion and no traversal, so callers walk their tree
// parent-first. Pass [NewTransform] for tree roots. Compose never fails and
// may be called again after inputs change.
func (t *Transform) Compose(parent *Transform) {
	pivoted := then(mgl32.Translate3D(-t.PivotX, -t.PivotY, 0), t.Local)
	pivoted = then(pivoted, mgl32.Translate3D(t.PivotX, t.PivotY, 0))

	positioned := then(pivoted, mgl32.Translate3D(t.X, t.Y, 0))

	projected := positioned
	if t.perspective != nil {
		projected = then(positioned, *t.perspective)
	}

	t.World = then(projected, parent.World)
}

// ComposeWith composes against parent and returns t, so a transform can be
// built and composed in one chain.
func (t *Transform) ComposeWith(parent *Transform) *Transform {
	t.Compose(parent)
	return t
}
