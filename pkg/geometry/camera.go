package geometry

import (
	"fmt"

	"github.com/df07/go-raycaster/pkg/core"
)

// View is a closed set of projections: Perspective and Parallel
type View interface {
	isView()
}

func (Perspective) isView() {}
func (Parallel) isView()    {}

// Perspective projects from the world origin with the given horizontal and
// vertical fields of view in degrees
type Perspective struct {
	FovX float64
	FovY float64
}

// Parallel is an orthographic projection onto a view plane of the given size
// centred on the origin
type Parallel struct {
	Width  float64
	Height float64
}

// Camera generates one ray per pixel for a view and image size
type Camera struct {
	View   View
	Width  int
	Height int

	// perspective: direction through the top-left image corner and per-pixel steps
	topLeft core.Vec3
	xStep   float64
	yStep   float64
}

// NewCamera validates the view and image size and precomputes per-pixel steps
func NewCamera(view View, width, height int) (*Camera, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("image dimensions must be positive, got %dx%d", width, height)
	}

	c := &Camera{View: view, Width: width, Height: height}

	switch v := view.(type) {
	case Perspective:
		if !validFov(v.FovX) || !validFov(v.FovY) {
			return nil, fmt.Errorf("field of view must be in (0, 180) degrees, got %gx%g", v.FovX, v.FovY)
		}
		// Tilt up by half the vertical FOV, then turn left by half the horizontal FOV
		c.topLeft = core.Forward.
			Rotate(core.Radians(v.FovY/2), core.UnitX).
			Rotate(core.Radians(v.FovX/2), core.UnitY)
		c.xStep = c.topLeft.X * (-2.0 / float64(width))
		c.yStep = c.topLeft.Y * (-2.0 / float64(height))
	case Parallel:
		if !(v.Width > 0) || !(v.Height > 0) || !isFinite(v.Width) || !isFinite(v.Height) {
			return nil, fmt.Errorf("view plane must be positive and finite, got %gx%g", v.Width, v.Height)
		}
	case nil:
		return nil, fmt.Errorf("camera view is required")
	default:
		panic(fmt.Sprintf("geometry: unknown view %T", view))
	}

	return c, nil
}

// GetRay returns the ray through the centre of pixel (x, y), where (0, 0) is
// the top-left pixel
func (c *Camera) GetRay(x, y int) core.Ray {
	px := float64(x) + 0.5
	py := float64(y) + 0.5

	switch v := c.View.(type) {
	case Perspective:
		direction := core.NewVec3(
			c.topLeft.X+px*c.xStep,
			c.topLeft.Y+py*c.yStep,
			c.topLeft.Z,
		)
		return core.NewRay(core.NewVec3(0, 0, 0), direction.Normalize())
	case Parallel:
		origin := core.NewVec3(
			-v.Width/2+px*(v.Width/float64(c.Width)),
			v.Height/2-py*(v.Height/float64(c.Height)),
			0,
		)
		return core.NewRay(origin, core.Forward)
	default:
		panic(fmt.Sprintf("geometry: unknown view %T", c.View))
	}
}

// ViewName returns a short lowercase name for the projection
func ViewName(view View) string {
	switch view.(type) {
	case Perspective:
		return "perspective"
	case Parallel:
		return "parallel"
	default:
		panic(fmt.Sprintf("geometry: unknown view %T", view))
	}
}

func validFov(deg float64) bool {
	return deg > 0 && deg < 180
}

func isFinite(f float64) bool {
	return core.NewVec3(f, 0, 0).IsFinite()
}
