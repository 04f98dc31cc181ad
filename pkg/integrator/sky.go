package integrator

import "github.com/prism-render/prism/pkg/core"

// Sky supplies environment radiance for rays that leave the scene.
// Above the horizon the color blends from Horizon to Zenith with the
// direction's vertical component; below it a dim constant stands in
// for ground bounce light. Purely a function of direction.
type Sky struct {
	Zenith  core.Vec3
	Horizon core.Vec3
	Ground  core.Vec3
}

// NewSky returns the default white-to-blue gradient sky
func NewSky() Sky {
	return Sky{
		Zenith:  core.NewVec3(0.5, 0.7, 1.0),
		Horizon: core.NewVec3(1.0, 1.0, 1.0),
		Ground:  core.NewVec3(0.03, 0.03, 0.03),
	}
}

// Radiance returns the environment radiance along a unit direction
func (s Sky) Radiance(direction core.Vec3) core.Vec3 {
	if direction.Y > 0 {
		return s.Horizon.Lerp(s.Zenith, direction.Y)
	}
	return s.Ground
}
