package raster

import "github.com/go-gl/mathgl/mgl64"

// edge returns twice the signed area of the triangle (a, b, p).
func edge(ax, ay, bx, by, px, py float64) float64 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// SignedArea returns twice the signed screen-space area of v.
// Zero means the triangle is degenerate.
func SignedArea(v [3]mgl64.Vec4) float64 {
	return edge(v[0][0], v[0][1], v[1][0], v[1][1], v[2][0], v[2][1])
}

// Barycentric returns the barycentric coordinates of (x, y) relative to the
// x/y components of v. The result is undefined for degenerate triangles;
// check SignedArea first.
func Barycentric(x, y float64, v [3]mgl64.Vec4) (alpha, beta, gamma float64) {
	x0, y0 := v[0][0], v[0][1]
	x1, y1 := v[1][0], v[1][1]
	x2, y2 := v[2][0], v[2][1]

	invArea := 1 / edge(x0, y0, x1, y1, x2, y2)
	alpha = edge(x1, y1, x2, y2, x, y) * invArea
	beta = edge(x2, y2, x0, y0, x, y) * invArea
	gamma = edge(x0, y0, x1, y1, x, y) * invArea
	return alpha, beta, gamma
}

// Inside reports whether a point with the given barycentric coordinates lies
// in the triangle. Points on an edge or vertex count as inside.
func Inside(alpha, beta, gamma float64) bool {
	return alpha >= 0 && beta >= 0 && gamma >= 0
}
