// Package integrator estimates per-sample radiance by tracing paths
// through the scene.
package integrator

import (
	"github.com/prism-render/prism/pkg/core"
	"github.com/prism-render/prism/pkg/material"
)

// MaxBounces bounds the path length. It converts a potential infinite
// loop (e.g. two facing mirrors) into a bounded truncation.
const MaxBounces = 32

// PathState carries one sample's state across bounces. It is owned by
// exactly one in-flight sample and discarded when the sample finishes.
type PathState struct {
	Throughput core.Vec3 // Product of albedos along the path so far
	Ray        core.Ray  // The ray for the next bounce
	HitSky     bool      // Whether the path terminated by leaving the scene
}

// PathIntegrator drives the bounce loop for one sample: intersect,
// shade, update throughput, repeat until the path escapes to the sky
// or the bounce cap is reached.
type PathIntegrator struct {
	intersector core.Intersector
	materials   *material.Table
	sky         Sky
	maxBounces  int
}

// NewPathIntegrator creates an integrator over the given scene parts
func NewPathIntegrator(intersector core.Intersector, materials *material.Table, sky Sky) *PathIntegrator {
	return &PathIntegrator{
		intersector: intersector,
		materials:   materials,
		sky:         sky,
		maxBounces:  MaxBounces,
	}
}

// Trace computes the radiance estimate for one camera ray
func (pi *PathIntegrator) Trace(ray core.Ray, sampler core.Sampler) core.Vec3 {
	state := PathState{
		Throughput: core.NewVec3(1, 1, 1),
		Ray:        ray,
	}

	for bounce := 0; bounce < pi.maxBounces; bounce++ {
		hit, isHit := pi.intersector.Intersect(state.Ray)
		if !isHit {
			state.HitSky = true
			sky := pi.sky.Radiance(state.Ray.Direction.Normalize())
			return state.Throughput.MultiplyVec(sky)
		}

		scatter := pi.materials.Scatter(state.Ray, hit, sampler)
		state.Throughput = state.Throughput.MultiplyVec(scatter.Albedo)
		state.Ray = scatter.Scattered
	}

	// A path that never escaped contributes its remaining throughput
	// with no sky term. This slightly over-reports enclosed paths but
	// matches the established look of existing renders; contributing
	// zero instead would darken enclosed scenes.
	return state.Throughput
}
