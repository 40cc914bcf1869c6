package output

import (
	"image"

	"github.com/nfnt/resize"
)

// Thumbnail scales img down to fit within maxWidth x maxHeight, keeping the
// aspect ratio. Images that already fit are returned unchanged.
func Thumbnail(img image.Image, maxWidth, maxHeight int) image.Image {
	if maxWidth <= 0 || maxHeight <= 0 {
		return img
	}
	return resize.Thumbnail(uint(maxWidth), uint(maxHeight), img, resize.Lanczos3)
}

// SaveThumbnail writes a thumbnail of the canvas to path
func (c *Canvas) SaveThumbnail(path string, maxSize int) error {
	return FromImage(Thumbnail(c.Image(), maxSize, maxSize)).Save(path)
}
