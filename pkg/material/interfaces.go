package material

import (
	"fmt"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
)

// Material is a closed set of surface appearances: Normal and Flat.
// Every material is defined for every geometry variant.
type Material interface {
	isMaterial()
}

func (Normal) isMaterial() {}
func (Flat) isMaterial()   {}

// Shade returns the color of g at point for the given material
func Shade(m Material, g geometry.Geometry, point core.Vec3) core.RGB {
	switch mat := m.(type) {
	case Normal:
		return mat.Shade(g, point)
	case Flat:
		return mat.Color
	default:
		panic(fmt.Sprintf("material: unknown material %T", m))
	}
}

// TypeName returns a short lowercase name for the material
func TypeName(m Material) string {
	switch m.(type) {
	case Normal:
		return "normal"
	case Flat:
		return "flat"
	default:
		panic(fmt.Sprintf("material: unknown material %T", m))
	}
}
