package core

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

func vecNear(a, b Vec3, tolerance float64) bool {
	return scalar.EqualWithinAbs(a.X, b.X, tolerance) &&
		scalar.EqualWithinAbs(a.Y, b.Y, tolerance) &&
		scalar.EqualWithinAbs(a.Z, b.Z, tolerance)
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	if got := a.Add(b); got != NewVec3(5, -3, 9) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Subtract(b); got != NewVec3(-3, 7, -3) {
		t.Errorf("Subtract: got %v", got)
	}
	if got := a.Multiply(2); got != NewVec3(2, 4, 6) {
		t.Errorf("Multiply: got %v", got)
	}
	if got := a.Dot(b); got != 4-10+18 {
		t.Errorf("Dot: got %v", got)
	}
	if got := UnitX.Cross(UnitY); got != UnitZ {
		t.Errorf("Cross: expected %v, got %v", UnitZ, got)
	}
	if got := a.Negate(); got != NewVec3(-1, -2, -3) {
		t.Errorf("Negate: got %v", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		expected Vec3
	}{
		{"axis aligned", NewVec3(0, 0, -5), NewVec3(0, 0, -1)},
		{"3-4-5", NewVec3(3, 4, 0), NewVec3(0.6, 0.8, 0)},
		{"already unit", UnitY, UnitY},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.vector.Normalize()
			if !vecNear(result, tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
			if math.Abs(result.Length()-1) > 1e-12 {
				t.Errorf("Expected unit length, got %f", result.Length())
			}
		})
	}
}

func TestVec3_Rotate(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		angle    float64
		axis     Vec3
		expected Vec3
	}{
		{"no rotation", NewVec3(1, 0, 0), 0, UnitY, NewVec3(1, 0, 0)},
		{"90 degrees around Z", NewVec3(1, 0, 0), math.Pi / 2, UnitZ, NewVec3(0, 1, 0)},
		{"90 degrees around Y", NewVec3(1, 0, 0), math.Pi / 2, UnitY, NewVec3(0, 0, -1)},
		{"90 degrees around X", NewVec3(0, 1, 0), math.Pi / 2, UnitX, NewVec3(0, 0, 1)},
		{"forward tilts up around X", Forward, math.Pi / 2, UnitX, NewVec3(0, 1, 0)},
		{"forward turns left around Y", Forward, math.Pi / 2, UnitY, NewVec3(-1, 0, 0)},
		{"180 degrees around Y", NewVec3(1, 0, 0), math.Pi, UnitY, NewVec3(-1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.vector.Rotate(tt.angle, tt.axis)
			if !vecNear(result, tt.expected, 1e-9) {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_RotateMatchesRodrigues(t *testing.T) {
	vectors := []Vec3{
		NewVec3(0, 0, -1),
		NewVec3(0.3, -2, 5),
		NewVec3(-1, 1, 1),
	}
	axes := []Vec3{UnitX, UnitY, UnitZ, NewVec3(1, 1, 1).Normalize()}
	angles := []float64{Radians(22.5), Radians(45), Radians(-80), Radians(200)}

	for _, v := range vectors {
		for _, axis := range axes {
			for _, angle := range angles {
				got := v.Rotate(angle, axis)
				want := r3.Rotate(r3.Vec{X: v.X, Y: v.Y, Z: v.Z}, angle, r3.Vec{X: axis.X, Y: axis.Y, Z: axis.Z})
				if !vecNear(got, NewVec3(want.X, want.Y, want.Z), 1e-9) {
					t.Errorf("Rotate(%v, %f, %v): expected %v, got %v", v, angle, axis, want, got)
				}
				if math.Abs(got.Length()-v.Length()) > 1e-9 {
					t.Errorf("Rotation changed length: %f -> %f", v.Length(), got.Length())
				}
			}
		}
	}
}

func TestRadians(t *testing.T) {
	tests := []struct {
		degrees  float64
		expected float64
	}{
		{0, 0},
		{90, math.Pi / 2},
		{180, math.Pi},
		{-45, -math.Pi / 4},
	}
	for _, tt := range tests {
		if got := Radians(tt.degrees); !scalar.EqualWithinAbs(got, tt.expected, 1e-12) {
			t.Errorf("Radians(%f): expected %f, got %f", tt.degrees, tt.expected, got)
		}
	}
}

func TestVec3_IsFinite(t *testing.T) {
	if !NewVec3(1, 2, 3).IsFinite() {
		t.Error("Expected finite vector")
	}
	if NewVec3(math.NaN(), 0, 0).IsFinite() {
		t.Error("Expected NaN component to be reported")
	}
	if NewVec3(0, math.Inf(1), 0).IsFinite() {
		t.Error("Expected Inf component to be reported")
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 0, 0), NewVec3(0, 0, -2))
	if got := ray.At(1.5); got != NewVec3(1, 0, -3) {
		t.Errorf("Expected (1,0,-3), got %v", got)
	}
}

func TestUnitToRGB(t *testing.T) {
	tests := []struct {
		name     string
		input    Vec3
		expected RGB
	}{
		{"black", NewVec3(0, 0, 0), RGB{0, 0, 0}},
		{"white", NewVec3(1, 1, 1), RGB{255, 255, 255}},
		{"truncates", NewVec3(0.5, 0.999, 0.1), RGB{127, 254, 25}},
		{"clamps", NewVec3(-1, 2, 0.5), RGB{0, 255, 127}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UnitToRGB(tt.input); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestParseHexRGB(t *testing.T) {
	c, err := ParseHexRGB("#ff8000")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if c != (RGB{255, 128, 0}) {
		t.Errorf("Expected {255 128 0}, got %v", c)
	}
	if c.Hex() != "#ff8000" {
		t.Errorf("Expected #ff8000, got %s", c.Hex())
	}

	for _, bad := range []string{"", "#fff", "zzzzzz"} {
		if _, err := ParseHexRGB(bad); err == nil {
			t.Errorf("Expected error for %q", bad)
		}
	}
}
