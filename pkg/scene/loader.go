package scene

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/material"
)

// FileConfig is the JSON layout of a scene file
type FileConfig struct {
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Group       string        `json:"group,omitempty"`
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	Camera      CameraConfig  `json:"camera"`
	Shapes      []ShapeConfig `json:"shapes"`
}

// CameraConfig selects a perspective or parallel view
type CameraConfig struct {
	Type       string  `json:"type"` // "perspective" or "parallel"
	FovX       float64 `json:"fovX,omitempty"`
	FovY       float64 `json:"fovY,omitempty"`
	ViewWidth  float64 `json:"viewWidth,omitempty"`
	ViewHeight float64 `json:"viewHeight,omitempty"`
}

// ShapeConfig describes a sphere, a triangle or an imported mesh
type ShapeConfig struct {
	Type     string         `json:"type"` // "sphere", "triangle" or "mesh"
	Center   [3]float64     `json:"center"`
	Radius   float64        `json:"radius,omitempty"`
	Vertices [][3]float64   `json:"vertices,omitempty"`
	Faces    []int          `json:"faces,omitempty"` // Inline mesh vertex indices, three per triangle
	File     string         `json:"file,omitempty"`
	Scale    float64        `json:"scale,omitempty"`
	Simplify float64        `json:"simplify,omitempty"`
	Material MaterialConfig `json:"material"`
}

// MaterialConfig selects normal shading or a flat color
type MaterialConfig struct {
	Type  string     `json:"type"` // "normal" or "flat"
	Color ColorValue `json:"color,omitempty"`
}

// ColorValue accepts either "#rrggbb" or [r, g, b]
type ColorValue struct {
	core.RGB
	Set bool
}

// UnmarshalJSON implements json.Unmarshaler
func (c *ColorValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		rgb, err := core.ParseHexRGB(s)
		if err != nil {
			return err
		}
		c.RGB, c.Set = rgb, true
		return nil
	}

	var channels []int
	if err := json.Unmarshal(data, &channels); err != nil {
		return fmt.Errorf("color must be \"#rrggbb\" or [r, g, b]: %w", err)
	}
	if len(channels) != 3 {
		return fmt.Errorf("color must have 3 channels, got %d", len(channels))
	}
	for _, ch := range channels {
		if ch < 0 || ch > 255 {
			return fmt.Errorf("color channel %d out of range 0-255", ch)
		}
	}
	c.RGB = core.NewRGB(uint8(channels[0]), uint8(channels[1]), uint8(channels[2]))
	c.Set = true
	return nil
}

// MarshalJSON implements json.Marshaler
func (c ColorValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Hex())
}

// LoadFile reads a JSON scene file. Mesh paths are resolved relative to the file.
func LoadFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file %s: %w", path, err)
	}

	var cfg FileConfig
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene file %s: %w", path, err)
	}

	if cfg.Name == "" {
		base := filepath.Base(path)
		cfg.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	s, err := cfg.Build(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("scene file %s: %w", path, err)
	}
	return s, nil
}

// Build converts the configuration into a validated scene.
// baseDir is used to resolve relative mesh paths.
func (c FileConfig) Build(baseDir string) (*Scene, error) {
	view, err := c.Camera.View()
	if err != nil {
		return nil, err
	}

	s, err := NewScene(c.Name, view, c.Width, c.Height)
	if err != nil {
		return nil, err
	}

	for i, sc := range c.Shapes {
		if err := sc.addTo(s, baseDir); err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// View returns the camera projection described by the config
func (c CameraConfig) View() (geometry.View, error) {
	switch strings.ToLower(c.Type) {
	case "", "perspective":
		return geometry.Perspective{FovX: c.FovX, FovY: c.FovY}, nil
	case "parallel", "orthographic":
		return geometry.Parallel{Width: c.ViewWidth, Height: c.ViewHeight}, nil
	default:
		return nil, fmt.Errorf("unknown camera type %q", c.Type)
	}
}

// Material returns the shading model described by the config
func (c MaterialConfig) Material() (material.Material, error) {
	switch strings.ToLower(c.Type) {
	case "", "normal":
		return material.NewNormal(), nil
	case "flat":
		if !c.Color.Set {
			return nil, fmt.Errorf("flat material requires a color")
		}
		return material.NewFlat(c.Color.RGB), nil
	default:
		return nil, fmt.Errorf("unknown material type %q", c.Type)
	}
}

func (sc ShapeConfig) addTo(s *Scene, baseDir string) error {
	mat, err := sc.Material.Material()
	if err != nil {
		return err
	}

	switch strings.ToLower(sc.Type) {
	case "sphere":
		s.AddSphere(vec(sc.Center), sc.Radius, mat)
	case "triangle":
		if len(sc.Vertices) != 3 {
			return fmt.Errorf("triangle needs 3 vertices, got %d", len(sc.Vertices))
		}
		s.AddTriangle(vec(sc.Vertices[0]), vec(sc.Vertices[1]), vec(sc.Vertices[2]), mat)
	case "mesh":
		if sc.File == "" {
			if len(sc.Faces) == 0 {
				return fmt.Errorf("mesh requires a file or faces")
			}
			vertices := make([]core.Vec3, len(sc.Vertices))
			for i, v := range sc.Vertices {
				vertices[i] = vec(v)
			}
			triangles, err := geometry.NewTriangleMesh(vertices, sc.Faces)
			if err != nil {
				return err
			}
			s.AddTriangles(triangles, mat)
			return nil
		}
		path := sc.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		triangles, err := LoadMesh(path, MeshOptions{
			Center:   vec(sc.Center),
			Scale:    sc.Scale,
			Simplify: sc.Simplify,
		})
		if err != nil {
			return err
		}
		s.AddTriangles(triangles, mat)
	default:
		return fmt.Errorf("unknown shape type %q", sc.Type)
	}
	return nil
}

func vec(a [3]float64) core.Vec3 {
	return core.NewVec3(a[0], a[1], a[2])
}
