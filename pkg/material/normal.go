package material

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
)

// Normal colors a surface by its normal: each component of the unit normal
// is remapped from [-1,1] to [0,1] and truncated to an 8-bit channel.
type Normal struct{}

// NewNormal creates a normal-shaded material
func NewNormal() Normal {
	return Normal{}
}

// Shade returns the normal-mapped color of g at point
func (Normal) Shade(g geometry.Geometry, point core.Vec3) core.RGB {
	n := geometry.Normal(g, point)
	return core.UnitToRGB(n.Multiply(0.5).Add(core.NewVec3(0.5, 0.5, 0.5)))
}
