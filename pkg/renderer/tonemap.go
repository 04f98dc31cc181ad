package renderer

import "github.com/prism-render/prism/pkg/core"

// ACES filmic curve constants (Narkowicz fit)
const (
	acesA = 2.51
	acesB = 0.03
	acesC = 2.43
	acesD = 0.59
	acesE = 0.14
)

// ToneMap compresses linear radiance to displayable range: the input
// is scaled by the exposure factor and pushed through the ACES filmic
// curve per channel, clamped to [0,1].
func ToneMap(c core.Vec3, exposure float64) core.Vec3 {
	scaled := c.Multiply(exposure)
	return core.NewVec3(
		acesChannel(scaled.X),
		acesChannel(scaled.Y),
		acesChannel(scaled.Z),
	).Clamp(0, 1)
}

func acesChannel(x float64) float64 {
	return (x * (acesA*x + acesB)) / (x*(acesC*x+acesD) + acesE)
}
