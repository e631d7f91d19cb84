// Package output turns rasterizer frame buffers into encoded images.
package output

import (
	"image"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/draw"
)

// ToNRGBA converts a flat RGB frame buffer into an opaque image. Row 0 of
// pix is the top image row, matching the rasterizer's index mapping.
// Channels are clamped to 0..255 and rounded.
func ToNRGBA(pix []mgl64.Vec3, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := y * w
		off := y * img.Stride
		for x := 0; x < w; x++ {
			c := pix[row+x]
			i := off + x*4
			img.Pix[i] = clamp8(c[0])
			img.Pix[i+1] = clamp8(c[1])
			img.Pix[i+2] = clamp8(c[2])
			img.Pix[i+3] = 255
		}
	}
	return img
}

// Upscale enlarges img by an integer factor with nearest-neighbour
// sampling so individual pixels stay visible. factor <= 1 returns img.
func Upscale(img *image.NRGBA, factor int) *image.NRGBA {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

func clamp8(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
