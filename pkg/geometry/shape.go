package geometry

import "github.com/prism-render/prism/pkg/core"

// Shape is anything that can be bounded and hit by a ray. Hit fills
// the provided record in place when the ray intersects within
// [tMin, tMax] and returns whether it did.
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64, hit *core.HitRecord) bool
	BoundingBox() core.AABB
}
