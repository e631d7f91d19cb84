package raster

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"tri-rasterizer/internal/mathutil"
	"tri-rasterizer/internal/store"
)

// Primitive selects how an index buffer is interpreted by Draw.
type Primitive uint8

const (
	PrimitiveLine Primitive = iota
	PrimitiveTriangle
)

func (p Primitive) String() string {
	switch p {
	case PrimitiveLine:
		return "line"
	case PrimitiveTriangle:
		return "triangle"
	}
	return fmt.Sprintf("primitive(%d)", uint8(p))
}

// Buffer handles. Each kind has its own handle namespace.
type (
	PosBufID struct{ id int }
	IndBufID struct{ id int }
	ColBufID struct{ id int }
)

// DrawStats summarizes one Draw call.
type DrawStats struct {
	Triangles  int // index triples submitted
	Drawn      int // triangles rasterized
	Degenerate int // skipped: zero screen-space area
	ZeroW      int // skipped: a vertex had w == 0 after the MVP transform
	Pixels     int // pixels that passed the depth test
}

// Rasterizer renders indexed triangle lists into a frame buffer it owns.
//
// A Rasterizer is not safe for concurrent use. Draw calls share the frame
// and depth buffers until Clear is called.
type Rasterizer struct {
	fb *FrameBuffer
	vp Viewport

	model      mgl64.Mat4
	view       mgl64.Mat4
	projection mgl64.Mat4

	positions *store.Registry[mgl64.Vec3]
	indices   *store.Registry[[3]int]
	colors    *store.Registry[mgl64.Vec3]
}

// NewRasterizer allocates frame and depth buffers of w×h pixels.
// The transforms start as identity and the depth range as
// [DefaultNear, DefaultFar].
func NewRasterizer(w, h int) (*Rasterizer, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("raster: new %dx%d: %w", w, h, ErrInvalidSize)
	}
	return &Rasterizer{
		fb:         NewFrameBuffer(w, h),
		vp:         Viewport{Width: w, Height: h, Near: DefaultNear, Far: DefaultFar},
		model:      mgl64.Ident4(),
		view:       mgl64.Ident4(),
		projection: mgl64.Ident4(),
		positions:  store.NewRegistry[mgl64.Vec3](),
		indices:    store.NewRegistry[[3]int](),
		colors:     store.NewRegistry[mgl64.Vec3](),
	}, nil
}

// Width returns the frame width in pixels.
func (r *Rasterizer) Width() int { return r.fb.Width }

// Height returns the frame height in pixels.
func (r *Rasterizer) Height() int { return r.fb.Height }

// LoadPositions copies object-space vertex positions and returns their handle.
func (r *Rasterizer) LoadPositions(p []mgl64.Vec3) PosBufID {
	return PosBufID{r.positions.Load(p)}
}

// LoadIndices copies index triples and returns their handle. Indices are
// checked against the position and color buffers at Draw time.
func (r *Rasterizer) LoadIndices(ind [][3]int) IndBufID {
	return IndBufID{r.indices.Load(ind)}
}

// LoadColors copies per-vertex RGB colors, 0..255 per channel, and returns
// their handle.
func (r *Rasterizer) LoadColors(c []mgl64.Vec3) ColBufID {
	return ColBufID{r.colors.Load(c)}
}

// SetModel replaces the model matrix.
func (r *Rasterizer) SetModel(m mgl64.Mat4) { r.model = m }

// SetView replaces the view matrix.
func (r *Rasterizer) SetView(m mgl64.Mat4) { r.view = m }

// SetProjection replaces the projection matrix.
func (r *Rasterizer) SetProjection(m mgl64.Mat4) { r.projection = m }

// SetDepthRange sets the near/far planes used to remap NDC z.
func (r *Rasterizer) SetDepthRange(near, far float64) error {
	if near >= far {
		return fmt.Errorf("raster: depth range [%g, %g]: %w", near, far, ErrInvalidDepthRange)
	}
	r.vp.Near, r.vp.Far = near, far
	return nil
}

// Clear resets the selected buffers.
func (r *Rasterizer) Clear(b Buffers) {
	r.fb.Clear(b)
}

// Index maps pixel (x, y), y upward, to a frame buffer offset.
func (r *Rasterizer) Index(x, y int) int {
	return r.fb.Index(x, y)
}

// FrameBuffer returns the color buffer, row 0 being the top screen row.
// The slice is owned by the rasterizer and must be treated as read-only.
func (r *Rasterizer) FrameBuffer() []mgl64.Vec3 {
	return r.fb.Color
}

// Pixel returns the color at (x, y). Out-of-range pixels read as black.
func (r *Rasterizer) Pixel(x, y int) mgl64.Vec3 {
	if !r.fb.Contains(x, y) {
		return mgl64.Vec3{}
	}
	return r.fb.Color[r.fb.Index(x, y)]
}

// Depth returns the stored depth at (x, y). Out-of-range pixels read as +inf.
func (r *Rasterizer) Depth(x, y int) float64 {
	if !r.fb.Contains(x, y) {
		return math.Inf(1)
	}
	return r.fb.Depth[r.fb.Index(x, y)]
}

// DrawTriangle rasterizes a screen-space triangle. It returns the number of
// pixels written and false if the triangle was skipped as degenerate.
func (r *Rasterizer) DrawTriangle(t Triangle) (int, bool) {
	n, ok := rasterize(r.fb, t)
	if !ok {
		Logger().Debug("raster: skip degenerate triangle", "v", t.V)
	}
	return n, ok
}

// Draw transforms, assembles and rasterizes every index triple of ind.
//
// All handles, indices and referenced colors are validated before anything
// is drawn, so a failed call leaves the buffers untouched. Triangles with a
// zero-w vertex or zero screen-space area are skipped and counted in the
// returned stats.
func (r *Rasterizer) Draw(pos PosBufID, ind IndBufID, col ColBufID, prim Primitive) (DrawStats, error) {
	var stats DrawStats
	if prim != PrimitiveTriangle {
		err := fmt.Errorf("raster: draw %v: %w", prim, ErrUnsupportedPrimitive)
		Logger().Warn("raster: draw rejected", "err", err)
		return stats, err
	}

	positions, ok := r.positions.Get(pos.id)
	if !ok {
		return stats, fmt.Errorf("raster: position buffer %d: %w", pos.id, ErrInvalidHandle)
	}
	indices, ok := r.indices.Get(ind.id)
	if !ok {
		return stats, fmt.Errorf("raster: index buffer %d: %w", ind.id, ErrInvalidHandle)
	}
	colors, ok := r.colors.Get(col.id)
	if !ok {
		return stats, fmt.Errorf("raster: color buffer %d: %w", col.id, ErrInvalidHandle)
	}

	if err := validate(indices, len(positions), colors); err != nil {
		Logger().Warn("raster: draw rejected", "err", err)
		return stats, err
	}

	mvp := mathutil.MVP(r.model, r.view, r.projection)
	stats.Triangles = len(indices)

	for i, tri := range indices {
		var v [3]mgl64.Vec4
		var c [3]mgl64.Vec3
		skip := false
		for k, vi := range tri {
			p, err := r.vp.Project(mvp, positions[vi])
			if err != nil {
				if errors.Is(err, ErrZeroW) {
					skip = true
					break
				}
				return stats, fmt.Errorf("raster: triangle %d: %w", i, err)
			}
			v[k] = p
			c[k] = colors[vi]
		}
		if skip {
			stats.ZeroW++
			Logger().Debug("raster: skip triangle with zero w", "triangle", i)
			continue
		}

		t, err := NewTriangle(v, c)
		if err != nil {
			// unreachable: colors were checked by validate
			return stats, fmt.Errorf("raster: triangle %d: %w", i, err)
		}

		n, ok := r.DrawTriangle(t)
		if !ok {
			stats.Degenerate++
			continue
		}
		stats.Drawn++
		stats.Pixels += n
	}

	Logger().Debug("raster: draw",
		"triangles", stats.Triangles,
		"drawn", stats.Drawn,
		"degenerate", stats.Degenerate,
		"zero_w", stats.ZeroW,
		"pixels", stats.Pixels)
	return stats, nil
}

func validate(indices [][3]int, numPos int, colors []mgl64.Vec3) error {
	for i, tri := range indices {
		for _, vi := range tri {
			if vi < 0 || vi >= numPos {
				return fmt.Errorf("raster: triangle %d index %d (positions %d): %w", i, vi, numPos, ErrIndexOutOfRange)
			}
			if vi >= len(colors) {
				return fmt.Errorf("raster: triangle %d index %d (colors %d): %w", i, vi, len(colors), ErrIndexOutOfRange)
			}
			if !validColor(colors[vi]) {
				return fmt.Errorf("raster: triangle %d color %v: %w", i, colors[vi], ErrInvalidColor)
			}
		}
	}
	return nil
}
