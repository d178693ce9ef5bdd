package renderer

import (
	"runtime"
	"sync"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/scene"
	"github.com/df07/go-sphere-tracer/pkg/shader"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile       *Tile
	TaskID     int         // For deterministic ordering
	Resolution core.Vec2   // Varying forwarded by the vertex stage
	Pixels     []core.Vec4 // Shared framebuffer, row-major
	Stride     int         // Framebuffer width in pixels
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID int
	Stats  TileStats
}

// WorkerPool manages parallel tile rendering
type WorkerPool struct {
	taskQueue   chan TileTask
	resultQueue chan TileResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual tile rendering tasks
type Worker struct {
	ID          int
	scene       *scene.Scene
	taskQueue   chan TileTask
	resultQueue chan TileResult
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(sc *scene.Scene, width, height, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	// Size the channels for the worst case of 8x8 tiles so workers
	// never block on the result queue
	maxTiles := ((width + 7) / 8) * ((height + 7) / 8)

	wp := &WorkerPool{
		taskQueue:   make(chan TileTask, maxTiles),
		resultQueue: make(chan TileResult, maxTiles),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			scene:       sc,
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

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a tile task to the worker pool
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// Results returns the channel completed tile results arrive on
func (wp *WorkerPool) Results() <-chan TileResult {
	return wp.resultQueue
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		stats := w.renderTile(task)
		w.resultQueue <- TileResult{TaskID: task.TaskID, Stats: stats}
	}
}

// renderTile runs the fragment stage over every pixel of the tile.
// Tiles have non-overlapping bounds, so writing into the shared
// framebuffer needs no synchronization.
func (w *Worker) renderTile(task TileTask) TileStats {
	var stats TileStats

	for y := task.Tile.Bounds.Min.Y; y < task.Tile.Bounds.Max.Y; y++ {
		for x := task.Tile.Bounds.Min.X; x < task.Tile.Bounds.Max.X; x++ {
			// Fragment coordinates address pixel centers
			fragCoord := core.NewVec2(float64(x)+0.5, float64(y)+0.5)
			color := shader.Fragment(w.scene, fragCoord, task.Resolution)
			task.Pixels[y*task.Stride+x] = color

			stats.Pixels++
			if color.W > 0.5 { // Miss pixels come out at alpha 0.1
				stats.Hits++
			}
		}
	}

	return stats
}
