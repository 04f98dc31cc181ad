package core

import "math"

// Vec2 represents a 2D sample point
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a new Vec2
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Sampler provides random draws for rendering algorithms.
// Can be swapped out for deterministic testing.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
}

// PixelSampler draws from the per-pixel RNG stream
type PixelSampler struct {
	rng *RNG
}

// NewPixelSampler creates a sampler backed by the given generator
func NewPixelSampler(rng *RNG) *PixelSampler {
	return &PixelSampler{rng: rng}
}

// Get1D returns one uniform draw in [0, 1]
func (s *PixelSampler) Get1D() float64 {
	return s.rng.Float64()
}

// Get2D returns two uniform draws in [0, 1]
func (s *PixelSampler) Get2D() Vec2 {
	return Vec2{X: s.rng.Float64(), Y: s.rng.Float64()}
}

// SampleUnitSphere maps two uniform draws to a point on the unit
// sphere: theta = 2*pi*u1, z = 2*u2 - 1, r = sqrt(1 - z*z).
// Adding the result to a surface normal and normalizing yields a
// cosine-weighted direction over the hemisphere around that normal.
func SampleUnitSphere(sample Vec2) Vec3 {
	theta := 2 * math.Pi * sample.X
	z := 2*sample.Y - 1
	r := math.Sqrt(math.Max(0, 1-z*z))
	return Vec3{X: r * math.Cos(theta), Y: r * math.Sin(theta), Z: z}
}
