package renderer

import (
	"image"
	"runtime"
	"sync"
)

// tileTask is one rectangular region of the image to render for a
// given frame
type tileTask struct {
	bounds     image.Rectangle
	cumulative int // Cumulative sample count at the start of the frame
}

// tileResult reports a finished tile back to the frame driver
type tileResult struct {
	err error
}

// workerPool fans tile tasks out to a fixed set of goroutines. Tiles
// never overlap, so workers write disjoint pixel slots and need no
// locking.
type workerPool struct {
	tasks      chan tileTask
	results    chan tileResult
	render     func(tileTask) error
	numWorkers int
	wg         sync.WaitGroup
	started    bool
}

// newWorkerPool creates a pool; numWorkers <= 0 uses the CPU count
func newWorkerPool(numWorkers, maxTiles int, render func(tileTask) error) *workerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &workerPool{
		tasks:      make(chan tileTask, maxTiles),
		results:    make(chan tileResult, maxTiles),
		render:     render,
		numWorkers: numWorkers,
	}
}

// start launches the workers; it is a no-op when already running
func (wp *workerPool) start() {
	if wp.started {
		return
	}
	wp.started = true

	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go func() {
			defer wp.wg.Done()
			for task := range wp.tasks {
				wp.results <- tileResult{err: wp.render(task)}
			}
		}()
	}
}

// submit queues a tile for rendering
func (wp *workerPool) submit(task tileTask) {
	wp.tasks <- task
}

// result blocks until the next tile finishes
func (wp *workerPool) result() tileResult {
	return <-wp.results
}

// stop drains the workers and releases them
func (wp *workerPool) stop() {
	if !wp.started {
		return
	}
	close(wp.tasks)
	wp.wg.Wait()
	close(wp.results)
	wp.started = false
}

// tileGrid covers the image with tileSize x tileSize rectangles,
// clipped at the right and bottom edges
func tileGrid(width, height, tileSize int) []image.Rectangle {
	var tiles []image.Rectangle
	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			tiles = append(tiles, image.Rect(
				x, y,
				min(x+tileSize, width),
				min(y+tileSize, height),
			))
		}
	}
	return tiles
}
