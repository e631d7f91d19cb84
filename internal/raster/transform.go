package raster

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Default depth range used to remap NDC z into buffer depth.
const (
	DefaultNear = 0.1
	DefaultFar  = 50.0
)

// Viewport maps clip-space positions to screen pixels and buffer depth.
type Viewport struct {
	Width  int
	Height int
	Near   float64
	Far    float64
}

// Project transforms an object-space position by mvp, divides by w and maps
// the result into screen space:
//
//	x' = 0.5*width*(x+1)
//	y' = 0.5*height*(y+1)
//	z' = z*(far-near)/2 + (far+near)/2
//
// The returned vertex keeps its post-division w. ErrZeroW is returned when
// the clip-space w is exactly zero.
func (vp Viewport) Project(mvp mgl64.Mat4, p mgl64.Vec3) (mgl64.Vec4, error) {
	clip := mvp.Mul4x1(p.Vec4(1))
	w := clip.W()
	if w == 0 {
		return mgl64.Vec4{}, fmt.Errorf("raster: project %v: %w", p, ErrZeroW)
	}
	ndc := clip.Mul(1 / w)

	f1 := (vp.Far - vp.Near) / 2
	f2 := (vp.Far + vp.Near) / 2
	return mgl64.Vec4{
		0.5 * float64(vp.Width) * (ndc[0] + 1),
		0.5 * float64(vp.Height) * (ndc[1] + 1),
		ndc[2]*f1 + f2,
		ndc[3],
	}, nil
}
