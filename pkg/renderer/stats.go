package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels int           // Number of pixels written to the sink
	Hits        int           // Pixels whose ray hit a shape
	Misses      int           // Pixels left at the background color
	Rows        int           // Completed scanlines
	NumWorkers  int           // Workers used for the render
	Elapsed     time.Duration // Wall-clock render time
}

// HitRatio returns the fraction of pixels that hit a shape
func (s RenderStats) HitRatio() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.TotalPixels)
}

// add folds a completed row into the totals
func (s *RenderStats) add(row RowResult) {
	s.TotalPixels += len(row.Pixels)
	s.Hits += row.Hits
	s.Misses += len(row.Pixels) - row.Hits
	s.Rows++
}
