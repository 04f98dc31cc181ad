package geometry

import "github.com/prism-render/prism/pkg/core"

// Triangle is a single triangle with a primitive index and a material
// table reference
type Triangle struct {
	V0, V1, V2  core.Vec3
	PrimitiveID int
	MaterialID  int
	normal      core.Vec3 // Cached geometric normal
	bbox        core.AABB // Cached bounding box
}

// NewTriangle creates a triangle and precomputes its normal and bounds
func NewTriangle(v0, v1, v2 core.Vec3, primitiveID, materialID int) *Triangle {
	edge1 := v1.Subtract(v0)
	edge2 := v2.Subtract(v0)

	return &Triangle{
		V0:          v0,
		V1:          v1,
		V2:          v2,
		PrimitiveID: primitiveID,
		MaterialID:  materialID,
		normal:      edge1.Cross(edge2).Normalize(),
		bbox:        core.NewAABBFromPoints(v0, v1, v2),
	}
}

// Hit tests the ray against the triangle using Möller-Trumbore and
// fills the hit record with the barycentric weights of the hit
func (tri *Triangle) Hit(ray core.Ray, tMin, tMax float64, hit *core.HitRecord) bool {
	const epsilon = 1e-8

	edge1 := tri.V1.Subtract(tri.V0)
	edge2 := tri.V2.Subtract(tri.V0)

	h := ray.Direction.Cross(edge2)
	det := edge1.Dot(h)

	// Near-zero determinant means the ray lies in the triangle plane
	if det > -epsilon && det < epsilon {
		return false
	}

	invDet := 1.0 / det
	s := ray.Origin.Subtract(tri.V0)
	u := invDet * s.Dot(h)
	if u < 0 || u > 1 {
		return false
	}

	q := s.Cross(edge1)
	v := invDet * ray.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return false
	}

	t := invDet * edge2.Dot(q)
	if t < tMin || t > tMax {
		return false
	}

	hit.T = t
	hit.Point = ray.At(t)
	hit.Barycentric = core.NewVec3(1-u-v, u, v)
	hit.PrimitiveID = tri.PrimitiveID
	hit.MaterialID = tri.MaterialID
	hit.SetFaceNormal(ray, tri.normal)

	return true
}

// BoundingBox returns the triangle's axis-aligned bounding box
func (tri *Triangle) BoundingBox() core.AABB {
	return tri.bbox
}

// Normal returns the cached geometric normal
func (tri *Triangle) Normal() core.Vec3 {
	return tri.normal
}
