package material

import "github.com/prism-render/prism/pkg/core"

// ScatterResult contains the outcome of one surface interaction: the
// surface reflectance and the outgoing ray for the next bounce.
type ScatterResult struct {
	Albedo    core.Vec3
	Scattered core.Ray
}

// Scatter resolves the hit's material ID and samples an outgoing ray.
// The hit's normal is already front-face corrected, so all sampling
// happens in the hemisphere opposing the incoming ray.
func (t *Table) Scatter(rayIn core.Ray, hit *core.HitRecord, sampler core.Sampler) ScatterResult {
	desc := t.Lookup(hit.MaterialID)

	var direction core.Vec3
	switch desc.Kind {
	case Mirror:
		direction = reflect(rayIn.Direction.Normalize(), hit.Normal)
	case Mix:
		// The branch draw is consumed unconditionally so the diffuse
		// draws that may follow stay independent of the choice
		if sampler.Get1D() < desc.MixProbability {
			direction = reflect(rayIn.Direction.Normalize(), hit.Normal)
		} else {
			direction = sampleDiffuse(hit.Normal, sampler)
		}
	default:
		direction = sampleDiffuse(hit.Normal, sampler)
	}

	return ScatterResult{
		Albedo:    desc.Albedo,
		Scattered: core.NewRay(hit.Point, direction),
	}
}

// sampleDiffuse returns a cosine-weighted direction in the hemisphere
// around the normal
func sampleDiffuse(normal core.Vec3, sampler core.Sampler) core.Vec3 {
	direction := normal.Add(core.SampleUnitSphere(sampler.Get2D()))

	// The sphere sample can land opposite the normal and cancel it
	if direction.LengthSquared() < 1e-12 {
		return normal
	}
	return direction.Normalize()
}

// reflect mirrors v about the unit normal n
func reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
