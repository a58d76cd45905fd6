package renderer

import (
	"context"
	"image"
	"runtime"
	"sync"
)

// RowTask represents one image row for the worker pool
type RowTask struct {
	Ctx context.Context
	Y   int
}

// RowResult contains the result from rendering a row
type RowResult struct {
	Y     int
	Stats RenderStats
	Error error
}

// WorkerPool manages parallel row rendering. Each row is written by exactly one
// worker, so workers share the image without locking.
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual row rendering tasks
type Worker struct {
	ID          int
	raytracer   *Raytracer
	img         *image.RGBA
	taskQueue   chan RowTask
	resultQueue chan RowResult
}

// NewWorkerPool creates a worker pool rendering into img with the specified number of workers
func NewWorkerPool(raytracer *Raytracer, img *image.RGBA, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	rows := img.Bounds().Dy()
	wp := &WorkerPool{
		taskQueue:   make(chan RowTask, rows),   // Buffer for every row
		resultQueue: make(chan RowResult, rows), // Buffer for every result
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			raytracer:   raytracer,
			img:         img,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop closes the task queue and waits for the workers to drain it
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
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
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		if err := task.Ctx.Err(); err != nil {
			w.resultQueue <- RowResult{Y: task.Y, Error: err}
			continue
		}

		stats := w.raytracer.RenderRow(task.Y, w.img)
		w.resultQueue <- RowResult{Y: task.Y, Stats: stats}
	}
}
