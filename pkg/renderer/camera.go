package renderer

import (
	"math"

	"github.com/prism-render/prism/pkg/core"
)

// 60 degree vertical field of view
var defaultFovSlope = math.Tan(math.Pi / 6)

// Camera maps pixels to world-space rays through a pinhole at Origin.
// The camera looks down -Z with +Y up; no rotation is modeled.
type Camera struct {
	Origin   core.Vec3
	FovSlope float64 // Half-height of the image plane at unit distance
	width    int
	height   int
}

// NewCamera creates a pinhole camera for the given image resolution.
// A non-positive fovSlope selects the default field of view.
func NewCamera(origin core.Vec3, width, height int, fovSlope float64) *Camera {
	if fovSlope <= 0 {
		fovSlope = defaultFovSlope
	}
	return &Camera{
		Origin:   origin,
		FovSlope: fovSlope,
		width:    width,
		height:   height,
	}
}

// GetRay generates a jittered ray through pixel (px, py). Pixels
// outside the resolution are rejected before any randomness is
// consumed, so out-of-bounds calls do not perturb the sample stream.
func (c *Camera) GetRay(px, py int, sampler core.Sampler) (core.Ray, bool) {
	if px < 0 || px >= c.width || py < 0 || py >= c.height {
		return core.Ray{}, false
	}

	// Box-filter antialiasing: jitter uniformly within the pixel
	jitter := sampler.Get2D()
	x := float64(px) + jitter.X
	y := float64(py) + jitter.Y

	// Normalized screen coordinates: the vertical axis spans [-1,1]
	// and is flipped (row 0 is the top of the image), the horizontal
	// axis is scaled by the aspect ratio
	w := float64(c.width)
	h := float64(c.height)
	screenX := (2*x - w) / h
	screenY := (h - 2*y) / h

	direction := core.NewVec3(c.FovSlope*screenX, c.FovSlope*screenY, -1).Normalize()
	return core.NewRay(c.Origin, direction), true
}
