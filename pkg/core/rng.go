package core

import "math"

// Permuted-congruential generator constants. These are load-bearing:
// the accumulation passes rely on the exact output sequence being
// reproducible across runs, so the state transition and output
// permutation use fixed 32-bit integer arithmetic only.
const (
	pcgMultiplier uint32 = 747796405
	pcgIncrement  uint32 = 1
	pcgOutputMul  uint32 = 277803737
)

// RNG is a deterministic 32-bit permuted-congruential generator.
// Each in-flight pixel sample owns its own RNG; it is never shared.
type RNG struct {
	state uint32
}

// NewRNG creates a generator with the given initial state
func NewRNG(seed uint32) *RNG {
	return &RNG{state: seed}
}

// PixelSeed derives the initial RNG state for a pixel. Distinct pixels
// get distinct seeds within one batch, and the same pixel gets a
// different seed on every successive batch because the cumulative
// sample count changes, which keeps noise decorrelated between passes.
func PixelSeed(cumulativeSamples, width, height, x, y int) uint32 {
	return uint32((cumulativeSamples*height+y)*width + x)
}

// NextUint32 advances the state and returns the next 32-bit output
func (r *RNG) NextUint32() uint32 {
	r.state = r.state*pcgMultiplier + pcgIncrement
	word := ((r.state >> ((r.state >> 28) + 4)) ^ r.state) * pcgOutputMul
	return (word >> 22) ^ word
}

// Float64 returns a uniform float in [0, 1]
func (r *RNG) Float64() float64 {
	return float64(r.NextUint32()) / float64(math.MaxUint32)
}
