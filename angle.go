package prism

import "github.com/chewxy/math32"

// Angle is a rotation amount stored in radians. Construct one with
// [Degrees] or [Radians]; rotation builders take an Angle so callers never
// pass a raw float in an ambiguous unit.
type Angle float32

// Degrees returns the angle for d degrees.
func Degrees(d float32) Angle {
	return Angle(d * (math32.Pi / 180))
}

// Radians returns the angle for r radians.
func Radians(r float32) Angle {
	return Angle(r)
}

// Radians returns the angle in radians.
func (a Angle) Radians() float32 {
	return float32(a)
}

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float32 {
	return float32(a) * (180 / math32.Pi)
}
