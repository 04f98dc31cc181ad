package core

// Default parametric bounds for intersection queries. TMin is a small
// positive epsilon so a bounced ray cannot immediately re-hit the
// surface it just left; TMax is a large sentinel for this scene scale.
const (
	DefaultTMin = 1e-3
	DefaultTMax = 1e4
)

// Ray represents a ray with an origin, a direction and the parametric
// interval [TMin, TMax] within which intersections are accepted
type Ray struct {
	Origin    Vec3
	Direction Vec3
	TMin      float64
	TMax      float64
}

// NewRay creates a ray with the default parametric bounds
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction, TMin: DefaultTMin, TMax: DefaultTMax}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
