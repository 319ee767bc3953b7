package prism

import "github.com/go-gl/mathgl/mgl32"

// Builder methods append one operation each to [Transform.Local]. The
// newly appended operation applies after everything accumulated before it,
// in the frame already transformed by the prior operations — a chain reads
// left to right like a CSS transform function list. Every operation has a
// mutating form and a fluent Then* form; both accumulate identically.

// appendLocal applies op after the accumulated local operations.
func (t *Transform) appendLocal(op mgl32.Mat4) {
	t.Local = then(t.Local, op)
}

// --- Translations ---

// Translate appends a 2D translation.
func (t *Transform) Translate(tx, ty float32) {
	t.appendLocal(mgl32.Translate3D(tx, ty, 0))
}

// ThenTranslate appends a 2D translation and returns t.
func (t *Transform) ThenTranslate(tx, ty float32) *Transform {
	t.Translate(tx, ty)
	return t
}

// Translate3D appends a translation along all three axes.
func (t *Transform) Translate3D(tx, ty, tz float32) {
	t.appendLocal(mgl32.Translate3D(tx, ty, tz))
}

// ThenTranslate3D appends a 3D translation and returns t.
func (t *Transform) ThenTranslate3D(tx, ty, tz float32) *Transform {
	t.Translate3D(tx, ty, tz)
	return t
}

// TranslateX appends a translation along the X axis.
func (t *Transform) TranslateX(tx float32) {
	t.appendLocal(mgl32.Translate3D(tx, 0, 0))
}

// ThenTranslateX appends an X translation and returns t.
func (t *Transform) ThenTranslateX(tx float32) *Transform {
	t.TranslateX(tx)
	return t
}

// TranslateY appends a translation along the Y axis.
func (t *Transform) TranslateY(ty float32) {
	t.appendLocal(mgl32.Translate3D(0, ty, 0))
}

// ThenTranslateY appends a Y translation and returns t.
func (t *Transform) ThenTranslateY(ty float32) *Transform {
	t.TranslateY(ty)
	return t
}

// TranslateZ appends a translation along the Z axis.
func (t *Transform) TranslateZ(tz float32) {
	t.appendLocal(mgl32.Translate3D(0, 0, tz))
}

// ThenTranslateZ appends a Z translation and returns t.
func (t *Transform) ThenTranslateZ(tz float32) *Transform {
	t.TranslateZ(tz)
	return t
}

// --- Rotations ---

// RotateX appends a rotation about the X axis.
func (t *Transform) RotateX(angle Angle) {
	t.appendLocal(mgl32.HomogRotate3DX(angle.Radians()))
}

// ThenRotateX appends an X rotation and returns t.
func (t *Transform) ThenRotateX(angle Angle) *Transform {
	t.RotateX(angle)
	return t
}

// RotateY appends a rotation about the Y axis.
func (t *Transform) RotateY(angle Angle) {
	t.appendLocal(mgl32.HomogRotate3DY(angle.Radians()))
}

// ThenRotateY appends a Y rotation and returns t.
func (t *Transform) ThenRotateY(angle Angle) *Transform {
	t.RotateY(angle)
	return t
}

// RotateZ appends a rotation about the Z axis.
func (t *Transform) RotateZ(angle Angle) {
	t.appendLocal(mgl32.HomogRotate3DZ(angle.Radians()))
}

// ThenRotateZ appends a Z rotation and returns t.
func (t *Transform) ThenRotateZ(angle Angle) *Transform {
	t.RotateZ(angle)
	return t
}

// Rotate appends a rotation about an arbitrary axis. The axis need not be
// normalized; a near-zero axis is a no-op.
func (t *Transform) Rotate(axisX, axisY, axisZ float32, angle Angle) {
	axis := mgl32.Vec3{axisX, axisY, axisZ}
	if axis.Len() < degenerateEpsilon {
		return
	}
	t.appendLocal(mgl32.HomogRotate3D(angle.Radians(), axis.Normalize()))
}

// ThenRotate appends an arbitrary-axis rotation and returns t.
func (t *Transform) ThenRotate(axisX, axisY, axisZ float32, angle Angle) *Transform {
	t.Rotate(axisX, axisY, axisZ, angle)
	return t
}

// --- Scaling ---

// Scale appends a non-uniform 2D scale (Z is left at 1).
func (t *Transform) Scale(sx, sy float32) {
	t.appendLocal(mgl32.Scale3D(sx, sy, 1))
}

// ThenScale appends a 2D scale and returns t.
func (t *Transform) ThenScale(sx, sy float32) *Transform {
	t.Scale(sx, sy)
	return t
}

// Scale3D appends a non-uniform 3D scale.
func (t *Transform) Scale3D(sx, sy, sz float32) {
	t.appendLocal(mgl32.Scale3D(sx, sy, sz))
}

// ThenScale3D appends a 3D scale and returns t.
func (t *Transform) ThenScale3D(sx, sy, sz float32) *Transform {
	t.Scale3D(sx, sy, sz)
	return t
}
