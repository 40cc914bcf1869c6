package material

import "github.com/df07/go-raycaster/pkg/core"

// Flat is a constant color independent of the hit point
type Flat struct {
	Color core.RGB
}

// NewFlat creates a flat-colored material
func NewFlat(color core.RGB) Flat {
	return Flat{Color: color}
}
