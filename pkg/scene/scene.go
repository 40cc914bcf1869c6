package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/material"
)

// ErrUnknownScene is returned when a scene name matches no built-in scene or file
var ErrUnknownScene = errors.New("unknown scene")

// Shape pairs a primitive with the material it is shaded with
type Shape struct {
	Geometry geometry.Geometry
	Material material.Material
}

// Scene contains all the elements needed for rendering.
// It is built once and treated as read-only while rendering.
type Scene struct {
	Name   string
	Camera *geometry.Camera
	Shapes []Shape // Order is kept stable for deterministic iteration
}

// NewScene creates an empty scene for the given view and image size
func NewScene(name string, view geometry.View, width, height int) (*Scene, error) {
	camera, err := geometry.NewCamera(view, width, height)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", name, err)
	}
	return &Scene{
		Name:   name,
		Camera: camera,
		Shapes: make([]Shape, 0),
	}, nil
}

// mustScene is used by built-in scenes whose camera parameters are constants
func mustScene(name string, view geometry.View, width, height int) *Scene {
	s, err := NewScene(name, view, width, height)
	if err != nil {
		panic(err)
	}
	return s
}

// AddShape appends a shape to the scene
func (s *Scene) AddShape(g geometry.Geometry, m material.Material) {
	s.Shapes = append(s.Shapes, Shape{Geometry: g, Material: m})
}

// AddSphere adds a sphere to the scene
func (s *Scene) AddSphere(center core.Vec3, radius float64, m material.Material) {
	s.AddShape(geometry.NewSphere(center, radius), m)
}

// AddTriangle adds a triangle to the scene
func (s *Scene) AddTriangle(v0, v1, v2 core.Vec3, m material.Material) {
	s.AddShape(geometry.NewTriangle(v0, v1, v2), m)
}

// AddTriangles adds a batch of triangles sharing one material
func (s *Scene) AddTriangles(triangles []geometry.Triangle, m material.Material) {
	for _, tri := range triangles {
		s.AddShape(tri, m)
	}
}

// GetPrimitiveCount returns the total number of primitives in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}

// Width returns the image width in pixels
func (s *Scene) Width() int { return s.Camera.Width }

// Height returns the image height in pixels
func (s *Scene) Height() int { return s.Camera.Height }

// Validate checks the scene is well formed before rendering starts
func (s *Scene) Validate() error {
	if s.Camera == nil {
		return fmt.Errorf("scene %s: missing camera", s.Name)
	}
	if s.Camera.Width <= 0 || s.Camera.Height <= 0 {
		return fmt.Errorf("scene %s: image dimensions must be positive, got %dx%d", s.Name, s.Camera.Width, s.Camera.Height)
	}

	for i, shape := range s.Shapes {
		if shape.Geometry == nil || shape.Material == nil {
			return fmt.Errorf("scene %s: shape %d is missing geometry or material", s.Name, i)
		}
		switch g := shape.Geometry.(type) {
		case geometry.Sphere:
			if !g.Center.IsFinite() || math.IsNaN(g.Radius) || math.IsInf(g.Radius, 0) {
				return fmt.Errorf("scene %s: shape %d: sphere parameters must be finite", s.Name, i)
			}
			if g.Radius < 0 {
				return fmt.Errorf("scene %s: shape %d: sphere radius must not be negative, got %g", s.Name, i, g.Radius)
			}
		case geometry.Triangle:
			if !g.V0.IsFinite() || !g.V1.IsFinite() || !g.V2.IsFinite() {
				return fmt.Errorf("scene %s: shape %d: triangle vertices must be finite", s.Name, i)
			}
		}
	}

	return nil
}

// Resize returns a copy of the scene rendered at a different image size.
// The shape slice is shared with s.
func (s *Scene) Resize(width, height int) (*Scene, error) {
	camera, err := geometry.NewCamera(s.Camera.View, width, height)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", s.Name, err)
	}
	resized := *s
	resized.Camera = camera
	return &resized, nil
}
