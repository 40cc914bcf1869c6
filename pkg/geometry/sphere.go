package geometry

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) Sphere {
	return Sphere{
		Center: center,
		Radius: radius,
	}
}

// IntersectSphere returns the near root of the ray/sphere quadratic.
// The far root is never returned, so a ray starting inside the sphere
// reports a negative distance.
func IntersectSphere(ray core.Ray, s Sphere) (float64, bool) {
	// Vector from ray origin to sphere center
	d := s.Center.Subtract(ray.Origin)

	a := ray.Direction.Dot(ray.Direction)
	h := ray.Direction.Dot(d)
	c := d.Dot(d) - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 || a == 0 {
		return 0, false
	}

	return (h - math.Sqrt(discriminant)) / a, true
}

// NormalAt returns the outward unit normal for a point on the surface
func (s Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}
