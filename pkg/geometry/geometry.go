package geometry

import (
	"fmt"

	"github.com/df07/go-raycaster/pkg/core"
)

// Geometry is a closed set of primitives: Sphere and Triangle.
// The unexported marker method keeps other packages from adding variants,
// so the type switches in this package are exhaustive.
type Geometry interface {
	isGeometry()
}

func (Sphere) isGeometry()   {}
func (Triangle) isGeometry() {}

// Intersect returns the distance along the ray to the geometry's surface.
// The distance may be negative for surfaces behind the ray origin; filtering
// those is the caller's job.
func Intersect(ray core.Ray, g Geometry) (float64, bool) {
	switch shape := g.(type) {
	case Sphere:
		return IntersectSphere(ray, shape)
	case Triangle:
		return IntersectTriangle(ray, shape)
	default:
		panic(fmt.Sprintf("geometry: unknown primitive %T", g))
	}
}

// Normal returns the unit surface normal of g at point
func Normal(g Geometry, point core.Vec3) core.Vec3 {
	switch shape := g.(type) {
	case Sphere:
		return shape.NormalAt(point)
	case Triangle:
		return shape.Normal()
	default:
		panic(fmt.Sprintf("geometry: unknown primitive %T", g))
	}
}

// TypeName returns a short lowercase name for the primitive
func TypeName(g Geometry) string {
	switch g.(type) {
	case Sphere:
		return "sphere"
	case Triangle:
		return "triangle"
	default:
		panic(fmt.Sprintf("geometry: unknown primitive %T", g))
	}
}
