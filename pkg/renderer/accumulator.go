package renderer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/prism-render/prism/pkg/core"
)

// MergeAverage folds a batch of new samples into a running per-pixel
// average. prior is the stored average over cumulative samples,
// batchSum the sum (not average) of batch fresh samples. The invariant
// is that the returned average times (cumulative+batch) equals the
// true sum of all samples taken so far, up to float rounding.
// A batch below 1 is a caller contract violation and fails rather
// than dividing into Inf/NaN.
func MergeAverage(prior core.Vec3, cumulative int, batchSum core.Vec3, batch int) (core.Vec3, error) {
	if batch < 1 {
		return core.Vec3{}, fmt.Errorf("renderer: batch sample count must be >= 1, got %d", batch)
	}
	if cumulative == 0 {
		// First batch: the stored value may be uninitialized, skip it
		return batchSum.Multiply(1.0 / float64(batch)), nil
	}
	c := float64(cumulative)
	return prior.Multiply(c).Add(batchSum).Multiply(1.0 / (c + float64(batch))), nil
}

// AccumulationBuffer stores the linear running-average radiance, one
// slot per pixel. Slots are owned by their pixel's computation; no two
// pixels ever touch the same slot, so concurrent accumulation across
// pixels needs no locking.
type AccumulationBuffer struct {
	width  int
	height int
	pixels []core.Vec3
}

// NewAccumulationBuffer creates a zeroed buffer
func NewAccumulationBuffer(width, height int) *AccumulationBuffer {
	return &AccumulationBuffer{
		width:  width,
		height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// At returns the stored average for a pixel
func (b *AccumulationBuffer) At(x, y int) core.Vec3 {
	return b.pixels[y*b.width+x]
}

// Accumulate merges a batch sum into the pixel's running average
func (b *AccumulationBuffer) Accumulate(x, y int, batchSum core.Vec3, cumulative, batch int) error {
	idx := y*b.width + x
	merged, err := MergeAverage(b.pixels[idx], cumulative, batchSum, batch)
	if err != nil {
		return err
	}
	b.pixels[idx] = merged
	return nil
}

// DisplayBuffer holds the tone-mapped copy of the accumulation
// buffer. It is write-only from the renderer's point of view and
// never feeds back into accumulation.
type DisplayBuffer struct {
	width  int
	height int
	pixels []core.Vec3
}

// NewDisplayBuffer creates a zeroed display buffer
func NewDisplayBuffer(width, height int) *DisplayBuffer {
	return &DisplayBuffer{
		width:  width,
		height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// Set stores a display-ready color for a pixel
func (b *DisplayBuffer) Set(x, y int, c core.Vec3) {
	b.pixels[y*b.width+x] = c
}

// At returns the display color for a pixel
func (b *DisplayBuffer) At(x, y int) core.Vec3 {
	return b.pixels[y*b.width+x]
}

// Image converts the buffer to an 8-bit RGBA image with opaque alpha
func (b *DisplayBuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.At(x, y).Clamp(0, 1)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(255 * c.X),
				G: uint8(255 * c.Y),
				B: uint8(255 * c.Z),
				A: 255,
			})
		}
	}
	return img
}
