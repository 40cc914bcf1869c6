package scene

import (
	"fmt"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/fogleman/fauxgl"
	"github.com/fogleman/simplify"
)

// MeshOptions controls how an imported model is placed in the scene
type MeshOptions struct {
	Center   core.Vec3 // Where the model's bounding box is centred
	Scale    float64   // Half-size of the fitted bounding cube
	Simplify float64   // Fraction of faces to keep; values outside (0,1) keep all faces
}

// LoadMesh reads an obj, stl, ply or 3ds model, fits it into a cube of
// half-size opts.Scale around opts.Center, and returns its triangles.
func LoadMesh(path string, opts MeshOptions) ([]geometry.Triangle, error) {
	mesh, err := fauxgl.LoadMesh(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load mesh %s: %w", path, err)
	}
	if len(mesh.Triangles) == 0 {
		return nil, fmt.Errorf("mesh %s has no triangles", path)
	}

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	// Fit to [-1,1]^3 first so scale and centre mean the same thing for every model
	mesh.BiUnitCube()
	mesh.Transform(fauxgl.Scale(fauxgl.V(scale, scale, scale)).
		Translate(fauxgl.V(opts.Center.X, opts.Center.Y, opts.Center.Z)))

	if opts.Simplify > 0 && opts.Simplify < 1 {
		return simplifyTriangles(mesh.Triangles, opts.Simplify), nil
	}

	triangles := make([]geometry.Triangle, 0, len(mesh.Triangles))
	for _, t := range mesh.Triangles {
		triangles = append(triangles, geometry.NewTriangle(
			fromFauxgl(t.V1.Position),
			fromFauxgl(t.V2.Position),
			fromFauxgl(t.V3.Position),
		))
	}
	return triangles, nil
}

// simplifyTriangles decimates a mesh by quadric error collapse
func simplifyTriangles(input []*fauxgl.Triangle, factor float64) []geometry.Triangle {
	tris := make([]*simplify.Triangle, len(input))
	for i, t := range input {
		tris[i] = simplify.NewTriangle(
			toSimplify(t.V1.Position),
			toSimplify(t.V2.Position),
			toSimplify(t.V3.Position),
		)
	}

	reduced := simplify.NewMesh(tris).Simplify(factor)

	triangles := make([]geometry.Triangle, 0, len(reduced.Triangles))
	for _, t := range reduced.Triangles {
		triangles = append(triangles, geometry.NewTriangle(
			core.NewVec3(t.V1.X, t.V1.Y, t.V1.Z),
			core.NewVec3(t.V2.X, t.V2.Y, t.V2.Z),
			core.NewVec3(t.V3.X, t.V3.Y, t.V3.Z),
		))
	}
	return triangles
}

func fromFauxgl(v fauxgl.Vector) core.Vec3 {
	return core.NewVec3(v.X, v.Y, v.Z)
}

func toSimplify(v fauxgl.Vector) simplify.Vector {
	return simplify.Vector{X: v.X, Y: v.Y, Z: v.Z}
}
