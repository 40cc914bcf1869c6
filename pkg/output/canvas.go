// Package output turns rendered pixels into image files, thumbnails and uploads.
package output

import (
	"bytes"
	"fmt"
	"image"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// Canvas is an image sink backed by a gg drawing context
type Canvas struct {
	dc *gg.Context
}

// NewCanvas creates a black canvas of the given size
func NewCanvas(width, height int) *Canvas {
	dc := gg.NewContext(width, height)
	dc.SetRGB255(0, 0, 0)
	dc.Clear()
	return &Canvas{dc: dc}
}

// SetPixel writes one pixel. It is not safe for concurrent use.
func (c *Canvas) SetPixel(x, y int, rgb core.RGB) {
	c.dc.SetRGB255(int(rgb.R), int(rgb.G), int(rgb.B))
	c.dc.SetPixel(x, y)
}

// At returns the color stored at (x, y)
func (c *Canvas) At(x, y int) core.RGB {
	r, g, b, _ := c.dc.Image().At(x, y).RGBA()
	return core.NewRGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// Width returns the canvas width in pixels
func (c *Canvas) Width() int { return c.dc.Width() }

// Height returns the canvas height in pixels
func (c *Canvas) Height() int { return c.dc.Height() }

// Image returns the underlying image
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// Save writes the canvas to path. The format is chosen from the file
// extension (.png, .jpg, .gif, .tif, .bmp).
func (c *Canvas) Save(path string) error {
	if err := imaging.Save(c.dc.Image(), path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// Encode returns the canvas encoded in the format implied by filename
func (c *Canvas) Encode(filename string) ([]byte, error) {
	format, err := imaging.FormatFromFilename(filename)
	if err != nil {
		return nil, fmt.Errorf("unsupported image format for %s: %w", filename, err)
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, c.dc.Image(), format); err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", filename, err)
	}
	return buf.Bytes(), nil
}

// Open loads an image file into a new canvas
func Open(path string) (*Canvas, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return FromImage(img), nil
}

// FromImage copies img into a new canvas
func FromImage(img image.Image) *Canvas {
	dc := gg.NewContextForImage(img)
	return &Canvas{dc: dc}
}
