// Package prism composes CSS-style hierarchical 3D transforms and solves
// the inverse problem needed for pointer hit testing.
//
// Prism computes, for each element in a tree of positioned visual elements,
// the single 4×4 matrix that maps the element's local coordinate space into
// a shared root ("world") space — translation, rotation, scaling,
// pivot-relative operation, and perspective projection, composed the way
// browsers compose CSS transforms. It also maps points back: from world
// space when the depth is known, and from a 2D screen position via ray
// casting when it is not.
//
// # Quick start
//
// Build a [Transform] with fluent calls, then compose it against its
// parent's already-composed transform (an identity root for top-level
// elements):
//
//	root := prism.NewTransform()
//
//	card := prism.NewTransform().
//		WithPosition(350, 250).
//		WithPerspective(500, 400, 300).
//		WithPivot(50, 50).
//		ThenRotateX(prism.Degrees(45)).
//		ComposeWith(root)
//
//	// Local corner -> screen position.
//	wx, wy := card.LocalToWorld(0, 0)
//
//	// Mouse position -> local coordinates (perspective-correct).
//	lx, ly, err := card.ScreenToLocal(mouseX, mouseY)
//
// # Composition model
//
// Each [Transform] holds a local operation accumulator ([Transform.Local]),
// a pivot, a position relative to its parent, and an optional perspective
// projection. [Transform.Compose] folds all of them, together with the
// parent's composed [Transform.World], into one world matrix. Composition
// performs no traversal: callers walk their own tree parent-first, composing
// every node against its already-composed parent.
//
// Builder calls read left to right, like a CSS transform function list:
//
//	t.ThenRotateZ(prism.Degrees(90)).ThenTranslateX(10)
//
// rotates first, then translates in the rotated frame.
//
// # Hit testing
//
// Perspective is not affine, so a world (x, y) alone does not identify a
// local point. [Transform.WorldToLocal] inverts a point whose world depth is
// known; [Transform.ScreenToLocal] handles the common pointer case by
// casting the screen-space view ray through the inverse transform and
// intersecting it with the element's local z=0 plane. Both report
// [ErrNotInvertible] or [ErrDegenerate] instead of fabricating coordinates.
//
// All operations are pure value computations over float32 fields; distinct
// transforms may be composed concurrently as long as every parent finishes
// before its children.
//
// Matrix arithmetic is provided by [mathgl]; see examples/card for a
// runnable [Ebitengine] demo.
//
// [mathgl]: https://github.com/go-gl/mathgl
// [Ebitengine]: https://ebitengine.org
package prism
