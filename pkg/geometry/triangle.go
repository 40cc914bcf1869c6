package geometry

import (
	"fmt"

	"github.com/df07/go-raycaster/pkg/core"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3) Triangle {
	return Triangle{V0: v0, V1: v1, V2: v2}
}

// IntersectTriangle solves o + t*dir = V0 + beta*(V1-V0) + gamma*(V2-V0)
// with Cramer's rule. A zero determinant means the ray is parallel to the
// triangle's plane or the triangle has no area.
func IntersectTriangle(ray core.Ray, tri Triangle) (float64, bool) {
	a := tri.V0.X - tri.V1.X
	b := tri.V0.Y - tri.V1.Y
	c := tri.V0.Z - tri.V1.Z
	d := tri.V0.X - tri.V2.X
	e := tri.V0.Y - tri.V2.Y
	f := tri.V0.Z - tri.V2.Z
	g := ray.Direction.X
	h := ray.Direction.Y
	i := ray.Direction.Z
	j := tri.V0.X - ray.Origin.X
	k := tri.V0.Y - ray.Origin.Y
	l := tri.V0.Z - ray.Origin.Z

	eihf := e*i - h*f
	gfdi := g*f - d*i
	dheg := d*h - e*g

	m := a*eihf + b*gfdi + c*dheg
	if m == 0 {
		return 0, false
	}

	beta := (j*eihf + k*gfdi + l*dheg) / m
	if beta < 0 || beta > 1 {
		return 0, false
	}

	akjb := a*k - j*b
	jcal := j*c - a*l
	blkc := b*l - k*c

	gamma := (i*akjb + h*jcal + g*blkc) / m
	if gamma < 0 || beta+gamma > 1 {
		return 0, false
	}

	return -(f*akjb + e*jcal + d*blkc) / m, true
}

// Normal returns the unit face normal (V1-V0) x (V2-V0).
// The sign follows the winding order.
func (t Triangle) Normal() core.Vec3 {
	return t.V1.Subtract(t.V0).Cross(t.V2.Subtract(t.V0)).Normalize()
}

// Area returns the triangle's area; zero for degenerate triangles
func (t Triangle) Area() float64 {
	return t.V1.Subtract(t.V0).Cross(t.V2.Subtract(t.V0)).Length() / 2
}

// NewTriangleMesh creates triangles from vertices and face indices.
// Each group of 3 indices in faces forms one triangle.
func NewTriangleMesh(vertices []core.Vec3, faces []int) ([]Triangle, error) {
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("face indices must be a multiple of 3, got %d", len(faces))
	}

	triangles := make([]Triangle, 0, len(faces)/3)
	for i := 0; i < len(faces); i += 3 {
		for _, idx := range faces[i : i+3] {
			if idx < 0 || idx >= len(vertices) {
				return nil, fmt.Errorf("face %d references vertex %d, have %d vertices", i/3, idx, len(vertices))
			}
		}
		triangles = append(triangles, NewTriangle(vertices[faces[i]], vertices[faces[i+1]], vertices[faces[i+2]]))
	}

	return triangles, nil
}
