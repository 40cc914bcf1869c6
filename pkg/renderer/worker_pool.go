package renderer

import (
	"context"
	"runtime"
	"sync"

	"github.com/df07/go-raycaster/pkg/core"
)

// RowTask represents a scanline rendering task for the worker pool
type RowTask struct {
	Y int
}

// RowResult contains the pixels of a rendered scanline
type RowResult struct {
	Y      int
	Pixels []core.RGB // Owned by the result; workers never share row buffers
	Hits   int
	Error  error
}

// WorkerPool manages parallel scanline rendering
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual scanline tasks
type Worker struct {
	ID          int
	raytracer   *Raytracer
	taskQueue   chan RowTask
	resultQueue chan RowResult
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// Queues are sized to hold every row so submitting and collecting never block each other.
func NewWorkerPool(rt *Raytracer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	rows := rt.scene.Height()
	wp := &WorkerPool{
		taskQueue:   make(chan RowTask, rows),
		resultQueue: make(chan RowResult, rows),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			raytracer:   rt,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers. Once ctx is cancelled workers report the
// context error for the rows they still receive instead of rendering them.
func (wp *WorkerPool) Start(ctx context.Context) {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(ctx, &wp.wg)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a row task to the worker pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed row result
func (wp *WorkerPool) GetResult() (RowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		if err := ctx.Err(); err != nil {
			w.resultQueue <- RowResult{Y: task.Y, Error: err}
			continue
		}

		// Each row gets its own buffer, so workers never write to shared memory
		pixels := make([]core.RGB, w.raytracer.scene.Width())
		hits := w.raytracer.RenderRow(task.Y, pixels)

		w.resultQueue <- RowResult{
			Y:      task.Y,
			Pixels: pixels,
			Hits:   hits,
		}
	}
}
