package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	if dist, isHit := IntersectSphere(ray, sphere); isHit {
		t.Errorf("Expected miss, but got hit at t=%f", dist)
	}
}

func TestSphere_Hit_ZeroDirection(t *testing.T) {
	spheres := []Sphere{
		NewSphere(core.NewVec3(0, 0, -3), 1.0),
		NewSphere(core.NewVec3(0, 0, 0), 1.0), // origin inside the sphere
		NewSphere(core.NewVec3(1, 2, 3), 0),
	}
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 0))

	for _, sphere := range spheres {
		if dist, isHit := IntersectSphere(ray, sphere); isHit {
			t.Errorf("Expected zero-length direction to miss %v, got t=%f", sphere, dist)
		}
	}
}

func TestSphere_Hit_NearRoot(t *testing.T) {
	tests := []struct {
		name      string
		sphere    Sphere
		ray       core.Ray
		expectedT float64
	}{
		{
			name:      "origin at center returns negative radius",
			sphere:    NewSphere(core.NewVec3(0, 0, 0), 2.0),
			ray:       core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)),
			expectedT: -2.0,
		},
		{
			name:      "origin at center along diagonal",
			sphere:    NewSphere(core.NewVec3(1, 1, 1), 0.5),
			ray:       core.NewRay(core.NewVec3(1, 1, 1), core.NewVec3(1, 1, 1).Normalize()),
			expectedT: -0.5,
		},
		{
			name:      "outside aimed at center returns D minus r",
			sphere:    NewSphere(core.NewVec3(0, 0, -5), 1.5),
			ray:       core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)),
			expectedT: 3.5,
		},
		{
			name:      "behind origin still reports near root",
			sphere:    NewSphere(core.NewVec3(0, 0, 5), 1.0),
			ray:       core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)),
			expectedT: -6.0,
		},
		{
			name:      "unnormalized direction scales distance",
			sphere:    NewSphere(core.NewVec3(0, 0, -4), 1.0),
			ray:       core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -2)),
			expectedT: 1.5,
		},
		{
			name:      "glancing hit on tangent",
			sphere:    NewSphere(core.NewVec3(0, 0, 0), 1.0),
			ray:       core.NewRay(core.NewVec3(1, 0, 2), core.NewVec3(0, 0, -1)),
			expectedT: 2.0,
		},
		{
			name:      "zero radius point",
			sphere:    NewSphere(core.NewVec3(0, 0, -3), 0),
			ray:       core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)),
			expectedT: 3.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dist, isHit := IntersectSphere(tt.ray, tt.sphere)
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(dist-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, dist)
			}
		})
	}
}

func TestSphere_NormalAt(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -1), 0.5)

	normal := sphere.NormalAt(core.NewVec3(0, 0, -0.5))
	expected := core.NewVec3(0, 0, 1)
	if normal.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected normal %v, got %v", expected, normal)
	}

	normal = Normal(sphere, core.NewVec3(0.5, 0, -1))
	expected = core.NewVec3(1, 0, 0)
	if normal.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected normal %v, got %v", expected, normal)
	}
}
