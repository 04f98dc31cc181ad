package geometry

import (
	"fmt"

	"github.com/prism-render/prism/pkg/core"
)

// Mesh is an indexed triangle mesh: a shared vertex buffer and index
// triples, each triple carrying a material table reference. The mesh
// is immutable for the duration of a render and is consumed only
// through intersection queries.
type Mesh struct {
	triangles []Shape
	bvh       *BVH
	bbox      core.AABB
}

// NewMesh creates a mesh from vertex positions and triangle index
// triples. materialIDs assigns one material table index per triangle;
// a nil slice assigns material 0 to every triangle.
func NewMesh(vertices []core.Vec3, indices []int, materialIDs []int) (*Mesh, error) {
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("mesh: index count %d is not a multiple of 3", len(indices))
	}

	numTriangles := len(indices) / 3
	if materialIDs != nil && len(materialIDs) != numTriangles {
		return nil, fmt.Errorf("mesh: %d material ids for %d triangles", len(materialIDs), numTriangles)
	}

	triangles := make([]Shape, numTriangles)
	for i := 0; i < numTriangles; i++ {
		i0, i1, i2 := indices[i*3], indices[i*3+1], indices[i*3+2]
		if i0 < 0 || i1 < 0 || i2 < 0 ||
			i0 >= len(vertices) || i1 >= len(vertices) || i2 >= len(vertices) {
			return nil, fmt.Errorf("mesh: triangle %d index out of bounds", i)
		}

		materialID := 0
		if materialIDs != nil {
			materialID = materialIDs[i]
		}
		triangles[i] = NewTriangle(vertices[i0], vertices[i1], vertices[i2], i, materialID)
	}

	bvh := NewBVH(triangles)
	return &Mesh{
		triangles: triangles,
		bvh:       bvh,
		bbox:      bvh.BoundingBox(),
	}, nil
}

// Intersect returns the nearest triangle hit within the ray's bounds
func (m *Mesh) Intersect(ray core.Ray) (*core.HitRecord, bool) {
	return m.bvh.Intersect(ray)
}

// Hit implements the Shape interface
func (m *Mesh) Hit(ray core.Ray, tMin, tMax float64, hit *core.HitRecord) bool {
	return m.bvh.Hit(ray, tMin, tMax, hit)
}

// BoundingBox returns the bounds of the whole mesh
func (m *Mesh) BoundingBox() core.AABB {
	return m.bbox
}

// TriangleCount returns the number of triangles in the mesh
func (m *Mesh) TriangleCount() int {
	return len(m.triangles)
}
