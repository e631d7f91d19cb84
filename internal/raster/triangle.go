package raster

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// sampleOffsets are the 2x2 supersampling positions inside a pixel cell.
var sampleOffsets = [4][2]float64{
	{0.25, 0.25},
	{0.75, 0.25},
	{0.25, 0.75},
	{0.75, 0.75},
}

// Triangle is a screen-space primitive ready for rasterization.
// V holds (x, y, depth, w) per vertex; Colors holds RGB in 0..255.
type Triangle struct {
	V      [3]mgl64.Vec4
	Colors [3]mgl64.Vec3
}

// NewTriangle assembles a triangle, rejecting colors outside [0, 255]
// and vertices with w == 0.
func NewTriangle(v [3]mgl64.Vec4, colors [3]mgl64.Vec3) (Triangle, error) {
	for i := range v {
		if v[i].W() == 0 {
			return Triangle{}, fmt.Errorf("raster: vertex %d: %w", i, ErrZeroW)
		}
		if !validColor(colors[i]) {
			return Triangle{}, fmt.Errorf("raster: color %d %v: %w", i, colors[i], ErrInvalidColor)
		}
	}
	return Triangle{V: v, Colors: colors}, nil
}

func validColor(c mgl64.Vec3) bool {
	for _, ch := range c {
		if !(ch >= 0 && ch <= 255) {
			return false
		}
	}
	return true
}

// Color returns the flat shading color, which is the color of vertex 0.
func (t Triangle) Color() mgl64.Vec3 {
	return t.Colors[0]
}

// rasterize draws t into fb with 2x2 supersampling and a whole-pixel depth
// test. It returns the number of pixels written and false if t has zero area.
//
// Depth is perspective-correct and averaged over covered samples. Color is
// weighted by coverage: uncovered samples resolve to black, so an edge pixel
// gets covered/4 of the triangle color.
func rasterize(fb *FrameBuffer, t Triangle) (int, bool) {
	v := t.V
	if SignedArea(v) == 0 {
		return 0, false
	}

	// Bounding box, clamped to the buffer
	minX, maxX, okX := clampSpan(
		math.Min(math.Min(v[0][0], v[1][0]), v[2][0]),
		math.Max(math.Max(v[0][0], v[1][0]), v[2][0]),
		fb.Width)
	minY, maxY, okY := clampSpan(
		math.Min(math.Min(v[0][1], v[1][1]), v[2][1]),
		math.Max(math.Max(v[0][1], v[1][1]), v[2][1]),
		fb.Height)
	if !okX || !okY {
		return 0, true
	}

	color := t.Color()
	za, zb, zc := v[0][2], v[1][2], v[2][2]
	wa, wb, wc := v[0][3], v[1][3], v[2][3]
	resolve := 1.0 / float64(len(sampleOffsets))

	written := 0
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			var sumColor mgl64.Vec3
			var sumDepth float64
			covered := 0

			for _, off := range sampleOffsets {
				alpha, beta, gamma := Barycentric(float64(x)+off[0], float64(y)+off[1], v)
				if !Inside(alpha, beta, gamma) {
					continue
				}
				wr := 1 / (alpha/wa + beta/wb + gamma/wc)
				z := (alpha*za/wa + beta*zb/wb + gamma*zc/wc) * wr

				sumColor = sumColor.Add(color)
				sumDepth += z
				covered++
			}
			if covered == 0 {
				continue
			}

			depth := sumDepth / float64(covered)
			idx := fb.Index(x, y)
			if depth >= fb.Depth[idx] {
				continue
			}
			fb.Depth[idx] = depth
			fb.Color[idx] = sumColor.Mul(resolve)
			written++
		}
	}
	return written, true
}

// clampSpan clamps [floor(lo), ceil(hi)] to [0, n-1] before converting to int,
// so coordinates beyond the int range or NaN never reach buffer indexing.
// It reports false when the span misses the buffer.
func clampSpan(lo, hi float64, n int) (int, int, bool) {
	lo, hi = math.Floor(lo), math.Ceil(hi)
	if !(lo <= hi) || hi < 0 || lo > float64(n-1) {
		return 0, 0, false
	}
	return int(math.Max(lo, 0)), int(math.Min(hi, float64(n-1))), true
}
