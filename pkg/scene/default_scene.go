package scene

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/material"
)

// NewDefaultScene creates a single normal-shaded sphere in front of a
// 90x67.5 degree perspective camera
func NewDefaultScene() *Scene {
	s := mustScene("default", geometry.Perspective{FovX: 90, FovY: 67.5}, 640, 480)
	s.AddSphere(core.NewVec3(0, 0, -1), 0.5, material.NewNormal())
	return s
}

// NewTrianglesScene mixes triangles and spheres with both material kinds
func NewTrianglesScene() *Scene {
	s := mustScene("triangles", geometry.Perspective{FovX: 90, FovY: 67.5}, 640, 480)

	// Floor made of two flat triangles
	floor := material.NewFlat(core.NewRGB(90, 90, 100))
	s.AddTriangle(core.NewVec3(-4, -1, -1), core.NewVec3(4, -1, -1), core.NewVec3(4, -1, -8), floor)
	s.AddTriangle(core.NewVec3(-4, -1, -1), core.NewVec3(4, -1, -8), core.NewVec3(-4, -1, -8), floor)

	// Normal-shaded pyramid face
	s.AddTriangle(core.NewVec3(-2, -1, -3), core.NewVec3(-0.5, -1, -3), core.NewVec3(-1.25, 0.5, -3.5), material.NewNormal())

	s.AddSphere(core.NewVec3(0.5, -0.25, -2.5), 0.75, material.NewNormal())
	s.AddSphere(core.NewVec3(1.75, 0, -4), 0.6, material.NewFlat(core.NewRGB(220, 60, 40)))
	return s
}

// NewParallelScene views a row of spheres through an orthographic camera
func NewParallelScene() *Scene {
	s := mustScene("parallel", geometry.Parallel{Width: 2.0, Height: 1.5}, 640, 480)
	s.AddSphere(core.NewVec3(-0.5, 0, -2), 0.4, material.NewNormal())
	s.AddSphere(core.NewVec3(0.5, 0, -6), 0.4, material.NewNormal())
	s.AddTriangle(core.NewVec3(-1, -0.75, -3), core.NewVec3(1, -0.75, -3), core.NewVec3(0, -0.25, -3), material.NewFlat(core.NewRGB(40, 160, 80)))
	return s
}

// NewOverlapScene nests a flat sphere inside a larger normal-shaded one so the
// nearest-hit rule decides what is visible
func NewOverlapScene() *Scene {
	s := mustScene("overlap", geometry.Perspective{FovX: 60, FovY: 45}, 320, 240)
	s.AddSphere(core.NewVec3(0, 0, -3), 0.5, material.NewFlat(core.NewRGB(255, 200, 0)))
	s.AddSphere(core.NewVec3(0.4, 0, -3.2), 0.8, material.NewNormal())
	return s
}
