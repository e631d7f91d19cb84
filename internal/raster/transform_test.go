package raster

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestViewportProject(t *testing.T) {
	vp := Viewport{Width: 4, Height: 4, Near: DefaultNear, Far: DefaultFar}

	halfW := mgl64.Ident4()
	halfW[15] = 2 // clip w = 2, so NDC is halved

	tests := []struct {
		name string
		mvp  mgl64.Mat4
		p    mgl64.Vec3
		want mgl64.Vec4
	}{
		{"origin", mgl64.Ident4(), mgl64.Vec3{0, 0, 0}, mgl64.Vec4{2, 2, 25.05, 1}},
		{"far corner", mgl64.Ident4(), mgl64.Vec3{1, 1, 1}, mgl64.Vec4{4, 4, 50, 1}},
		{"near corner", mgl64.Ident4(), mgl64.Vec3{-1, -1, -1}, mgl64.Vec4{0, 0, 0.1, 1}},
		{"perspective divide", halfW, mgl64.Vec3{1, 1, 1}, mgl64.Vec4{3, 3, 37.525, 1}},
		{"translate", mgl64.Translate3D(0.5, -0.5, 0), mgl64.Vec3{0, 0, 0}, mgl64.Vec4{3, 1, 25.05, 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := vp.Project(tc.mvp, tc.p)
			if err != nil {
				t.Fatalf("Project: %v", err)
			}
			if !got.ApproxEqualThreshold(tc.want, 1e-9) {
				t.Errorf("Project(%v) = %v, want %v", tc.p, got, tc.want)
			}
		})
	}
}

func TestViewportProjectZeroW(t *testing.T) {
	vp := Viewport{Width: 4, Height: 4, Near: DefaultNear, Far: DefaultFar}
	_, err := vp.Project(mgl64.Mat4{}, mgl64.Vec3{1, 2, 3})
	if !errors.Is(err, ErrZeroW) {
		t.Fatalf("Project with zero matrix: err = %v, want ErrZeroW", err)
	}
}

func TestViewportProjectDepthRange(t *testing.T) {
	vp := Viewport{Width: 10, Height: 10, Near: 1, Far: 3}
	got, err := vp.Project(mgl64.Ident4(), mgl64.Vec3{0, 0, 0})
	if err != nil {
		t.Fatal(err)
	}
	if got[2] != 2 {
		t.Errorf("depth of NDC z=0 = %v, want 2", got[2])
	}
}
