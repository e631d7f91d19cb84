package mathutil

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

// NormalizeAngle wraps an angle in degrees into [0, 360).
func NormalizeAngle(a float64) float64 {
	d := math.Mod(a, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// ModelRotateZ returns a model matrix rotating by angle degrees about the
// Z axis (counter-clockwise when looking down -Z).
func ModelRotateZ(angle float64) mgl64.Mat4 {
	return mgl64.HomogRotate3DZ(Deg2Rad(angle))
}
