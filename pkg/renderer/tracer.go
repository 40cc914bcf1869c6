package renderer

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/material"
	"github.com/df07/go-raycaster/pkg/scene"
)

// MinHitDistance is the smallest ray parameter accepted as a hit.
// Intersections behind the ray origin, or too close to it, are ignored.
const MinHitDistance = 0.001

// Hit describes the nearest surface found along a ray
type Hit struct {
	T     float64      // Ray parameter of the intersection
	Index int          // Position of the shape in the scene
	Shape *scene.Shape // Shape that was hit
	Point core.Vec3    // World-space intersection point
}

// Tracer resolves the nearest visible surface with a linear scan over all shapes
type Tracer struct {
	shapes []scene.Shape
}

// NewTracer creates a tracer over the given shapes
func NewTracer(shapes []scene.Shape) *Tracer {
	return &Tracer{shapes: shapes}
}

// ClosestHit returns the hit with the smallest ray parameter.
// Shapes are tested in order and a later shape replaces the current hit only
// when strictly closer, so the first shape wins ties.
func (tr *Tracer) ClosestHit(ray core.Ray) (Hit, bool) {
	closestSoFar := math.Inf(1)
	closestIndex := -1

	for i := range tr.shapes {
		t, ok := geometry.Intersect(ray, tr.shapes[i].Geometry)
		if !ok || t < MinHitDistance || math.IsNaN(t) {
			continue
		}
		if t < closestSoFar {
			closestSoFar = t
			closestIndex = i
		}
	}

	if closestIndex < 0 {
		return Hit{}, false
	}

	return Hit{
		T:     closestSoFar,
		Index: closestIndex,
		Shape: &tr.shapes[closestIndex],
		Point: ray.At(closestSoFar),
	}, true
}

// Trace returns the color seen along a ray, or black when nothing is hit
func (tr *Tracer) Trace(ray core.Ray) core.RGB {
	hit, ok := tr.ClosestHit(ray)
	if !ok {
		return core.Black
	}
	return tr.Shade(hit)
}

// Shade returns the color of the surface at a hit
func (tr *Tracer) Shade(hit Hit) core.RGB {
	return material.Shade(hit.Shape.Material, hit.Shape.Geometry, hit.Point)
}
