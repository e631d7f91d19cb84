package raster

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Buffers selects the targets reset by Clear. Values combine with |.
type Buffers uint8

const (
	BufColor Buffers = 1 << iota
	BufDepth
)

// FrameBuffer holds the color and depth targets as flat slices.
// Row 0 of both slices is the topmost screen row; see Index.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []mgl64.Vec3 // RGB in 0..255, len = W*H
	Depth  []float64    // nearest depth seen so far, len = W*H, +inf when clear
}

// NewFrameBuffer allocates a black color buffer and a +inf depth buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	n := w * h
	fb := &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]mgl64.Vec3, n),
		Depth:  make([]float64, n),
	}
	fb.Clear(BufDepth)
	return fb
}

// Index maps pixel (x, y), with y measured upward from the bottom row, to
// its offset in Color and Depth.
func (fb *FrameBuffer) Index(x, y int) int {
	return (fb.Height-1-y)*fb.Width + x
}

// Contains reports whether (x, y) lies inside the buffer.
func (fb *FrameBuffer) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < fb.Width && y < fb.Height
}

// Clear resets the selected buffers. Color goes to (0,0,0), depth to +inf.
func (fb *FrameBuffer) Clear(b Buffers) {
	if b&BufColor != 0 {
		for i := range fb.Color {
			fb.Color[i] = mgl64.Vec3{}
		}
	}
	if b&BufDepth != 0 {
		inf := math.Inf(1)
		for i := range fb.Depth {
			fb.Depth[i] = inf
		}
	}
}
