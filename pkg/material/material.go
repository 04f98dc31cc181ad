// Package material models surface scattering. Surfaces are described
// by descriptors held in a table and referenced from geometry by ID,
// so adding a material never touches the intersection code.
package material

import "github.com/prism-render/prism/pkg/core"

// Kind selects the scattering model of a descriptor
type Kind int

const (
	// Diffuse scatters cosine-weighted around the surface normal
	Diffuse Kind = iota
	// Mirror reflects the incoming direction about the normal
	Mirror
	// Mix chooses Mirror with probability MixProbability, else Diffuse
	Mix
)

// Descriptor describes one surface material
type Descriptor struct {
	Kind           Kind
	Albedo         core.Vec3 // Per-channel reflectance, each in [0,1]
	MixProbability float64   // Mirror branch probability for Mix materials
}

// NewDiffuse creates a Lambertian descriptor
func NewDiffuse(albedo core.Vec3) Descriptor {
	return Descriptor{Kind: Diffuse, Albedo: clampAlbedo(albedo)}
}

// NewMirror creates a specular reflection descriptor
func NewMirror(albedo core.Vec3) Descriptor {
	return Descriptor{Kind: Mirror, Albedo: clampAlbedo(albedo)}
}

// NewMix creates a descriptor that scatters as a mirror with the given
// probability and as a diffuse surface otherwise
func NewMix(albedo core.Vec3, mirrorProbability float64) Descriptor {
	return Descriptor{
		Kind:           Mix,
		Albedo:         clampAlbedo(albedo),
		MixProbability: max(0, min(1, mirrorProbability)),
	}
}

// Albedo components above 1 would amplify light on every bounce
func clampAlbedo(albedo core.Vec3) core.Vec3 {
	return albedo.Clamp(0, 1)
}

// Table holds material descriptors indexed by the IDs that geometry
// carries. Immutable during rendering.
type Table struct {
	descriptors []Descriptor
}

// NewTable creates an empty material table
func NewTable() *Table {
	return &Table{}
}

// Add appends a descriptor and returns its ID
func (t *Table) Add(d Descriptor) int {
	t.descriptors = append(t.descriptors, d)
	return len(t.descriptors) - 1
}

// Lookup returns the descriptor for an ID. Unknown IDs resolve to a
// neutral gray diffuse so a bad asset shows up as flat gray rather
// than crashing the render.
func (t *Table) Lookup(id int) Descriptor {
	if id < 0 || id >= len(t.descriptors) {
		return NewDiffuse(core.NewVec3(0.7, 0.7, 0.7))
	}
	return t.descriptors[id]
}

// Len returns the number of descriptors in the table
func (t *Table) Len() int {
	return len(t.descriptors)
}
