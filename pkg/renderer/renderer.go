// Package renderer turns a scene into pixels: it generates jittered
// camera rays, hands them to the path integrator, folds the results
// into a persistent running average and keeps a tone-mapped copy
// ready for display.
package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/prism-render/prism/log"
	"github.com/prism-render/prism/pkg/core"
	"github.com/prism-render/prism/pkg/integrator"
	"github.com/prism-render/prism/pkg/scene"
)

var logger = log.New("renderer")

// Config carries the per-invocation scalar configuration
type Config struct {
	Width        int       // Output resolution, must be positive
	Height       int       //
	BatchSamples int       // New samples per pixel per frame, must be >= 1
	FovSlope     float64   // Vertical field-of-view slope; 0 selects the default
	Exposure     float64   // Tone-mapping exposure; 0 selects 1.0
	TileSize     int       // Tile edge length; 0 selects 64
	NumWorkers   int       // Parallel workers; 0 selects the CPU count
	CameraOrigin core.Vec3 // Overrides the scene camera origin when set
	UseSceneCam  bool      // Take the camera origin from the scene instead
}

// Renderer renders progressive frames of one scene. The linear
// accumulation buffer and the cumulative sample count persist across
// frames; everything else is per-frame.
type Renderer struct {
	config     Config
	camera     *Camera
	integrator *integrator.PathIntegrator
	accum      *AccumulationBuffer
	display    *DisplayBuffer
	pool       *workerPool
	tiles      []image.Rectangle
	cumulative int
	frame      int

	// Set when a frame aborted after tiles already wrote a partial
	// batch into the accumulation buffer. The stored averages no
	// longer satisfy average*cumulative == sum, so further frames
	// are refused.
	failed error
}

// New creates a renderer for the given scene
func New(sc *scene.Scene, config Config) (*Renderer, error) {
	if sc == nil {
		return nil, fmt.Errorf("renderer: nil scene")
	}
	if config.Width <= 0 || config.Height <= 0 {
		return nil, fmt.Errorf("renderer: invalid resolution %dx%d", config.Width, config.Height)
	}
	if config.BatchSamples < 1 {
		return nil, fmt.Errorf("renderer: batch sample count must be >= 1, got %d", config.BatchSamples)
	}
	if config.Exposure == 0 {
		config.Exposure = 1.0
	}
	if config.TileSize <= 0 {
		config.TileSize = 64
	}

	origin := config.CameraOrigin
	if config.UseSceneCam {
		origin = sc.CameraOrigin
	}

	r := &Renderer{
		config:     config,
		camera:     NewCamera(origin, config.Width, config.Height, config.FovSlope),
		integrator: integrator.NewPathIntegrator(sc.Intersector, sc.Materials, sc.Sky),
		accum:      NewAccumulationBuffer(config.Width, config.Height),
		display:    NewDisplayBuffer(config.Width, config.Height),
		tiles:      tileGrid(config.Width, config.Height, config.TileSize),
	}
	r.pool = newWorkerPool(config.NumWorkers, len(r.tiles), r.renderTile)

	return r, nil
}

// RenderFrame takes one batch of samples for every pixel and merges
// it into the running average. Frames are cheap to repeat: each one
// reduces variance, and the result is independent of tile scheduling
// because every pixel's sample stream is seeded from its coordinates
// and the cumulative count alone.
func (r *Renderer) RenderFrame(ctx context.Context) (RenderStats, error) {
	if r.failed != nil {
		return RenderStats{}, fmt.Errorf("renderer: accumulation state invalid after earlier failure: %w", r.failed)
	}
	if r.config.BatchSamples < 1 {
		return RenderStats{}, fmt.Errorf("renderer: batch sample count must be >= 1, got %d", r.config.BatchSamples)
	}

	start := time.Now()
	r.pool.start()

	logger.Infof("frame %d: %d samples/pixel on top of %d (%d workers)",
		r.frame+1, r.config.BatchSamples, r.cumulative, r.pool.numWorkers)

	var frameErr error
	submitted := 0
	for _, tile := range r.tiles {
		if err := ctx.Err(); err != nil {
			frameErr = err
			break
		}
		r.pool.submit(tileTask{bounds: tile, cumulative: r.cumulative})
		submitted++
	}

	// Drain every submitted tile even on cancellation: in-flight tiles
	// keep writing their pixels until they finish, and a stale result
	// left queued would be counted against the next frame's tiles.
	for i := 0; i < submitted; i++ {
		if result := r.pool.result(); result.err != nil && frameErr == nil {
			frameErr = result.err
		}
	}

	if frameErr != nil {
		if submitted > 0 {
			// Some pixels folded in a batch that the cumulative count
			// never recorded; the stored averages can no longer be
			// trusted, so the renderer refuses further frames
			r.failed = frameErr
		}
		return RenderStats{}, frameErr
	}

	r.frame++
	r.cumulative += r.config.BatchSamples

	stats := RenderStats{
		Frame:             r.frame,
		TotalPixels:       r.config.Width * r.config.Height,
		BatchSamples:      r.config.BatchSamples,
		CumulativeSamples: r.cumulative,
		Workers:           r.pool.numWorkers,
		Elapsed:           time.Since(start),
	}
	logger.Infof("frame %d done in %v", r.frame, stats.Elapsed)

	return stats, nil
}

// renderTile renders all pixels of one tile: per pixel it seeds the
// sample stream, traces the batch, accumulates the batch sum and
// refreshes the tone-mapped display copy.
func (r *Renderer) renderTile(task tileTask) error {
	width, height := r.config.Width, r.config.Height
	batch := r.config.BatchSamples

	for y := task.bounds.Min.Y; y < task.bounds.Max.Y; y++ {
		for x := task.bounds.Min.X; x < task.bounds.Max.X; x++ {
			rng := core.NewRNG(core.PixelSeed(task.cumulative, width, height, x, y))
			sampler := core.NewPixelSampler(rng)

			batchSum := core.Vec3{}
			for s := 0; s < batch; s++ {
				ray, ok := r.camera.GetRay(x, y, sampler)
				if !ok {
					return fmt.Errorf("renderer: pixel (%d,%d) outside %dx%d", x, y, width, height)
				}
				batchSum = batchSum.Add(r.integrator.Trace(ray, sampler))
			}

			if err := r.accum.Accumulate(x, y, batchSum, task.cumulative, batch); err != nil {
				return err
			}
			r.display.Set(x, y, ToneMap(r.accum.At(x, y), r.config.Exposure))
		}
	}
	return nil
}

// CumulativeSamples returns the samples per pixel accumulated so far
func (r *Renderer) CumulativeSamples() int {
	return r.cumulative
}

// Accumulation exposes the linear running-average buffer
func (r *Renderer) Accumulation() *AccumulationBuffer {
	return r.accum
}

// Display exposes the tone-mapped buffer
func (r *Renderer) Display() *DisplayBuffer {
	return r.display
}

// Image returns the current tone-mapped frame as an RGBA image
func (r *Renderer) Image() *image.RGBA {
	return r.display.Image()
}

// Close releases the worker pool
func (r *Renderer) Close() {
	r.pool.stop()
}
