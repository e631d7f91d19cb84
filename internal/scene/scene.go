// Package scene describes the geometry handed to the rasterizer: vertex
// positions, triangle index triples and per-vertex colors.
package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
)

// Scene is an indexed triangle list. Colors are indexed like Positions and
// hold RGB channels in 0..255.
type Scene struct {
	Positions []mgl64.Vec3 `json:"positions"`
	Indices   [][3]int     `json:"indices"`
	Colors    []mgl64.Vec3 `json:"colors"`
}

// Default returns two overlapping triangles: a pale green one at z = -2 in
// front of a pale blue one at z = -5.
func Default() *Scene {
	return &Scene{
		Positions: []mgl64.Vec3{
			{2, 0, -2}, {0, 2, -2}, {-2, 0, -2},
			{3.5, -1, -5}, {2.5, 1.5, -5}, {-1, 0.5, -5},
		},
		Indices: [][3]int{
			{0, 1, 2},
			{3, 4, 5},
		},
		Colors: []mgl64.Vec3{
			{217, 238, 185}, {217, 238, 185}, {217, 238, 185},
			{185, 217, 238}, {185, 217, 238}, {185, 217, 238},
		},
	}
}

// Load reads a JSON scene file and validates it.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}

	var s Scene
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scene: parse %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scene: %s: %w", path, err)
	}
	return &s, nil
}

// Validate checks that the scene has at least one triangle, one color per
// position, in-range indices and colors within 0..255.
func (s *Scene) Validate() error {
	if len(s.Indices) == 0 {
		return errors.New("no triangles")
	}
	if len(s.Colors) != len(s.Positions) {
		return fmt.Errorf("%d colors for %d positions", len(s.Colors), len(s.Positions))
	}
	for i, tri := range s.Indices {
		for _, vi := range tri {
			if vi < 0 || vi >= len(s.Positions) {
				return fmt.Errorf("triangle %d: index %d out of range [0, %d)", i, vi, len(s.Positions))
			}
		}
	}
	for i, c := range s.Colors {
		for _, ch := range c {
			if !(ch >= 0 && ch <= 255) {
				return fmt.Errorf("color %d: %v outside 0..255", i, c)
			}
		}
	}
	return nil
}
