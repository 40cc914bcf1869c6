package renderer

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/scene"
)

// Sink receives rendered pixels
type Sink interface {
	SetPixel(x, y int, c core.RGB)
}

// ProgressFunc is called after each completed scanline
type ProgressFunc func(rowsCompleted, totalRows int)

// RenderConfig contains rendering configuration
type RenderConfig struct {
	NumWorkers int // Number of parallel workers (1 = sequential, 0 = use CPU count)
}

// DefaultRenderConfig renders sequentially
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{NumWorkers: 1}
}

// Raytracer casts one ray through the centre of every pixel
type Raytracer struct {
	scene  *scene.Scene
	tracer *Tracer
	config RenderConfig
	logger core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger writes to stdout.
func NewRaytracer(s *scene.Scene, config RenderConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Raytracer{
		scene:  s,
		tracer: NewTracer(s.Shapes),
		config: config,
		logger: logger,
	}
}

// Tracer returns the tracer used for the scene
func (rt *Raytracer) Tracer() *Tracer {
	return rt.tracer
}

// RenderPixel returns the color of a single pixel
func (rt *Raytracer) RenderPixel(x, y int) core.RGB {
	return rt.tracer.Trace(rt.scene.Camera.GetRay(x, y))
}

// InspectPixel returns the ray through a pixel and what it hits
func (rt *Raytracer) InspectPixel(x, y int) (core.Ray, Hit, bool) {
	ray := rt.scene.Camera.GetRay(x, y)
	hit, ok := rt.tracer.ClosestHit(ray)
	return ray, hit, ok
}

// RenderRow fills row with the colors of scanline y and returns the number of hits
func (rt *Raytracer) RenderRow(y int, row []core.RGB) int {
	hits := 0
	for x := range row {
		ray := rt.scene.Camera.GetRay(x, y)
		hit, ok := rt.tracer.ClosestHit(ray)
		if !ok {
			row[x] = core.Black
			continue
		}
		hits++
		row[x] = rt.tracer.Shade(hit)
	}
	return hits
}

// Render computes every pixel and writes it to sink in row-major order.
// progress, if non-nil, is called after each completed scanline. Cancelling
// ctx stops the render between scanlines and returns the context error.
func (rt *Raytracer) Render(ctx context.Context, sink Sink, progress ProgressFunc) (RenderStats, error) {
	if err := rt.scene.Validate(); err != nil {
		return RenderStats{}, fmt.Errorf("invalid scene: %w", err)
	}

	start := time.Now()
	numWorkers := rt.config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	rt.logger.Printf("Rendering %s (%dx%d, %d shapes) using %d workers...\n",
		rt.scene.Name, rt.scene.Width(), rt.scene.Height(), rt.scene.GetPrimitiveCount(), numWorkers)

	var stats RenderStats
	var err error
	if numWorkers == 1 {
		stats, err = rt.renderSequential(ctx, sink, progress)
	} else {
		stats, err = rt.renderParallel(ctx, sink, progress, numWorkers)
	}

	stats.NumWorkers = numWorkers
	stats.Elapsed = time.Since(start)
	if err != nil {
		return stats, err
	}

	rt.logger.Printf("Render complete: %d pixels, %d hits, %d misses in %v\n",
		stats.TotalPixels, stats.Hits, stats.Misses, stats.Elapsed)
	return stats, nil
}

// renderSequential is the single-goroutine reference path
func (rt *Raytracer) renderSequential(ctx context.Context, sink Sink, progress ProgressFunc) (RenderStats, error) {
	var stats RenderStats
	width, height := rt.scene.Width(), rt.scene.Height()
	row := make([]core.RGB, width)

	for y := 0; y < height; y++ {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		hits := rt.RenderRow(y, row)
		rt.emitRow(sink, RowResult{Y: y, Pixels: row, Hits: hits}, &stats, progress)
	}

	return stats, nil
}

// renderParallel renders rows on a worker pool and drains them in order,
// so the sink and progress callback are only ever touched from this goroutine.
func (rt *Raytracer) renderParallel(ctx context.Context, sink Sink, progress ProgressFunc, numWorkers int) (RenderStats, error) {
	var stats RenderStats
	height := rt.scene.Height()

	pool := NewWorkerPool(rt, numWorkers)
	pool.Start(ctx)
	defer pool.Stop()

	for y := 0; y < height; y++ {
		pool.SubmitTask(RowTask{Y: y})
	}

	pending := make(map[int]RowResult)
	nextRow := 0
	for nextRow < height {
		result, ok := pool.GetResult()
		if !ok {
			return stats, fmt.Errorf("worker pool closed after %d of %d rows", nextRow, height)
		}
		if result.Error != nil {
			return stats, result.Error
		}
		pending[result.Y] = result

		for {
			row, ready := pending[nextRow]
			if !ready {
				break
			}
			delete(pending, nextRow)
			if err := ctx.Err(); err != nil {
				return stats, err
			}
			rt.emitRow(sink, row, &stats, progress)
			nextRow++
		}
	}

	return stats, nil
}

func (rt *Raytracer) emitRow(sink Sink, row RowResult, stats *RenderStats, progress ProgressFunc) {
	for x, c := range row.Pixels {
		sink.SetPixel(x, row.Y, c)
	}
	stats.add(row)
	if progress != nil {
		progress(stats.Rows, rt.scene.Height())
	}
}
