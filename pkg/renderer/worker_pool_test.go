package renderer

import (
	"context"
	"errors"
	"testing"

	"github.com/df07/go-raycaster/pkg/scene"
)

func TestWorkerPool_RendersEveryRow(t *testing.T) {
	s, err := scene.NewDefaultScene().Resize(10, 7)
	if err != nil {
		t.Fatalf("Resize() error: %v", err)
	}
	rt := NewRaytracer(s, RenderConfig{NumWorkers: 3}, &bufferLogger{})

	pool := NewWorkerPool(rt, 3)
	if pool.GetNumWorkers() != 3 {
		t.Errorf("Expected 3 workers, got %d", pool.GetNumWorkers())
	}
	pool.Start(context.Background())
	for y := 0; y < 7; y++ {
		pool.SubmitTask(RowTask{Y: y})
	}
	pool.Stop()

	seen := make(map[int]bool)
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Error != nil {
			t.Fatalf("Row %d error: %v", result.Y, result.Error)
		}
		if len(result.Pixels) != 10 {
			t.Errorf("Row %d has %d pixels, expected 10", result.Y, len(result.Pixels))
		}
		seen[result.Y] = true
	}
	if len(seen) != 7 {
		t.Errorf("Expected 7 distinct rows, got %d", len(seen))
	}
}

func TestWorkerPool_DefaultsToCPUCount(t *testing.T) {
	rt := NewRaytracer(scene.NewDefaultScene(), RenderConfig{}, &bufferLogger{})
	if n := NewWorkerPool(rt, 0).GetNumWorkers(); n < 1 {
		t.Errorf("Expected at least one worker, got %d", n)
	}
}

func TestWorkerPool_CancelledContext(t *testing.T) {
	s, err := scene.NewDefaultScene().Resize(4, 2)
	if err != nil {
		t.Fatalf("Resize() error: %v", err)
	}
	rt := NewRaytracer(s, RenderConfig{NumWorkers: 2}, &bufferLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pool := NewWorkerPool(rt, 2)
	pool.Start(ctx)
	pool.SubmitTask(RowTask{Y: 0})
	pool.SubmitTask(RowTask{Y: 1})
	pool.Stop()

	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if !errors.Is(result.Error, context.Canceled) {
			t.Errorf("Row %d: expected context.Canceled, got %v", result.Y, result.Error)
		}
	}
}

func TestRenderStats_HitRatio(t *testing.T) {
	if r := (RenderStats{}).HitRatio(); r != 0 {
		t.Errorf("Expected 0 for empty stats, got %f", r)
	}
	if r := (RenderStats{TotalPixels: 8, Hits: 2}).HitRatio(); r != 0.25 {
		t.Errorf("Expected 0.25, got %f", r)
	}
}
