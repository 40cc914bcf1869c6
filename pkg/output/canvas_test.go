package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
)

func TestCanvas_SetPixel(t *testing.T) {
	c := NewCanvas(4, 3)
	if c.Width() != 4 || c.Height() != 3 {
		t.Fatalf("Expected 4x3, got %dx%d", c.Width(), c.Height())
	}
	if got := c.At(2, 1); got != core.Black {
		t.Errorf("Expected black background, got %v", got)
	}

	c.SetPixel(2, 1, core.NewRGB(10, 200, 30))
	if got := c.At(2, 1); got != core.NewRGB(10, 200, 30) {
		t.Errorf("Expected (10,200,30), got %v", got)
	}
	if got := c.At(1, 1); got != core.Black {
		t.Errorf("Neighbouring pixel changed: %v", got)
	}
}

func TestCanvas_SaveAndOpen(t *testing.T) {
	tests := []struct {
		name     string
		lossless bool
	}{
		{"render.png", true},
		{"render.bmp", true},
		{"render.jpg", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(8, 8)
			for y := 0; y < 8; y++ {
				for x := 0; x < 8; x++ {
					c.SetPixel(x, y, core.NewRGB(200, 100, 50))
				}
			}

			path := filepath.Join(t.TempDir(), tt.name)
			if err := c.Save(path); err != nil {
				t.Fatalf("Save() error: %v", err)
			}

			loaded, err := Open(path)
			if err != nil {
				t.Fatalf("Open() error: %v", err)
			}
			if loaded.Width() != 8 || loaded.Height() != 8 {
				t.Errorf("Expected 8x8, got %dx%d", loaded.Width(), loaded.Height())
			}
			if tt.lossless {
				if got := loaded.At(3, 3); got != core.NewRGB(200, 100, 50) {
					t.Errorf("Expected (200,100,50), got %v", got)
				}
			}
		})
	}
}

func TestCanvas_SaveUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.xyz")
	if err := NewCanvas(2, 2).Save(path); err == nil {
		t.Error("Expected error for unknown extension")
	}
	if _, err := os.Stat(path); err == nil {
		t.Error("No file should be written for an unknown format")
	}
}

func TestCanvas_Encode(t *testing.T) {
	data, err := NewCanvas(2, 2).Encode("image.png")
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if len(data) < 8 || string(data[1:4]) != "PNG" {
		t.Errorf("Expected PNG signature, got %q", data[:min(8, len(data))])
	}
	if _, err := NewCanvas(2, 2).Encode("image.xyz"); err == nil {
		t.Error("Expected error for unknown format")
	}
}

func TestThumbnail(t *testing.T) {
	tests := []struct {
		name                  string
		width, height         int
		maxWidth, maxHeight   int
		wantWidth, wantHeight int
	}{
		{"landscape", 640, 480, 160, 160, 160, 120},
		{"portrait", 300, 600, 100, 100, 50, 100},
		{"already small", 32, 16, 64, 64, 32, 16},
		{"disabled", 64, 48, 0, 0, 64, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := NewCanvas(tt.width, tt.height).Image()
			bounds := Thumbnail(img, tt.maxWidth, tt.maxHeight).Bounds()
			if bounds.Dx() != tt.wantWidth || bounds.Dy() != tt.wantHeight {
				t.Errorf("Expected %dx%d, got %dx%d", tt.wantWidth, tt.wantHeight, bounds.Dx(), bounds.Dy())
			}
		})
	}
}

func TestCanvas_SaveThumbnail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thumb.png")
	if err := NewCanvas(200, 100).SaveThumbnail(path, 50); err != nil {
		t.Fatalf("SaveThumbnail() error: %v", err)
	}
	thumb, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if thumb.Width() != 50 || thumb.Height() != 25 {
		t.Errorf("Expected 50x25, got %dx%d", thumb.Width(), thumb.Height())
	}
}
