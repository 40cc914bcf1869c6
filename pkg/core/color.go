package core

import (
	"fmt"
	"strings"
)

// RGB is an 8-bit per channel color
type RGB struct {
	R, G, B uint8
}

// Black is the background color returned when a ray hits nothing
var Black = RGB{0, 0, 0}

// NewRGB creates a new RGB color
func NewRGB(r, g, b uint8) RGB {
	return RGB{R: r, G: g, B: b}
}

// UnitToRGB maps components in [0,1] onto [0,255], truncating rather than rounding.
// Components outside [0,1] are clamped first.
func UnitToRGB(v Vec3) RGB {
	channel := func(c float64) uint8 {
		c = max(0, min(1, c))
		return uint8(255 * c)
	}
	return RGB{channel(v.X), channel(v.Y), channel(v.Z)}
}

// Hex returns the color as #rrggbb
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHexRGB parses "#rrggbb" or "rrggbb"
func ParseHexRGB(s string) (RGB, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("invalid hex color %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return RGB{r, g, b}, nil
}
