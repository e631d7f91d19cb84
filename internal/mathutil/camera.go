package mathutil

import "github.com/go-gl/mathgl/mgl64"

// ViewTranslate returns a view matrix for a camera at eye looking down -Z.
func ViewTranslate(eye mgl64.Vec3) mgl64.Mat4 {
	return mgl64.Translate3D(-eye[0], -eye[1], -eye[2])
}

// Projection returns an OpenGL-style perspective matrix. fovY is the
// vertical field of view in degrees; near and far are positive distances.
// Points at -near map to NDC z = -1 and points at -far to z = +1.
func Projection(fovY, aspect, near, far float64) mgl64.Mat4 {
	return mgl64.Perspective(Deg2Rad(fovY), aspect, near, far)
}

// MVP returns projection × view × model.
func MVP(model, view, projection mgl64.Mat4) mgl64.Mat4 {
	return projection.Mul4(view).Mul4(model)
}
