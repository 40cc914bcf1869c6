package renderer

import "github.com/df07/go-raycaster/pkg/core"

// TestPattern returns the color of pixel (x, y) in a gradient test image.
// Channels use 8-bit wrapping arithmetic, so the pattern repeats every 256 pixels.
func TestPattern(x, y int) core.RGB {
	px, py := uint8(x), uint8(y)
	return core.NewRGB(255-px, py, px-min(px, py))
}

// RenderTestPattern fills a width x height sink with the test pattern.
// It exercises the image pipeline without a scene.
func RenderTestPattern(sink Sink, width, height int) {
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			sink.SetPixel(x, y, TestPattern(x, y))
		}
	}
}
