package scene

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/material"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := core.Radians(h)

	// OKLCH -> OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB -> LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS -> linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewVec3(r, g, blue)
}

// NewSphereGridScene creates a scene with a 10x10 grid of rainbow spheres seen
// from above through an orthographic camera
func NewSphereGridScene() *Scene {
	const gridSize = 10
	const spacing = 1.0
	const radius = 0.4

	s := mustScene("spheregrid", geometry.Parallel{Width: 11, Height: 11}, 550, 550)

	offset := (gridSize - 1) * spacing / 2
	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			center := core.NewVec3(float64(i)*spacing-offset, offset-float64(j)*spacing, -5)

			// Hue walks around the wheel across the grid, lightness down the rows
			hue := float64(i*gridSize+j) / float64(gridSize*gridSize) * 360
			lightness := 0.55 + 0.3*float64(j)/float64(gridSize-1)
			color := core.UnitToRGB(oklchToRGB(lightness, 0.15, hue))

			if (i+j)%4 == 0 {
				s.AddSphere(center, radius, material.NewNormal())
			} else {
				s.AddSphere(center, radius, material.NewFlat(color))
			}
		}
	}

	return s
}
