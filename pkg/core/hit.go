package core

// HitRecord contains information about a ray-primitive intersection.
// Records are computed fresh per intersection and never persisted.
type HitRecord struct {
	Point       Vec3    // World-space intersection point
	Normal      Vec3    // Unit geometric normal, flipped to oppose the incoming ray
	T           float64 // Parameter t along the ray
	FrontFace   bool    // Whether the ray hit the front face
	Barycentric Vec3    // Barycentric weights of the hit within its triangle
	PrimitiveID int     // Index of the hit triangle
	MaterialID  int     // Material table index assigned to the triangle
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Intersector finds the nearest intersection of a ray with scene
// geometry within the ray's [TMin, TMax] interval. A single call
// either returns the nearest hit or reports a miss; there are no
// retry semantics.
type Intersector interface {
	Intersect(ray Ray) (*HitRecord, bool)
}
