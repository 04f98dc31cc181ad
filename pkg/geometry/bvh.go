package geometry

import "github.com/prism-render/prism/pkg/core"

// Leaf threshold: nodes with this many or fewer shapes stay leaves
const leafThreshold = 8

// bvhNode is a node in the bounding volume hierarchy. Leaf nodes carry
// shapes; internal nodes carry children.
type bvhNode struct {
	bounds core.AABB
	left   *bvhNode
	right  *bvhNode
	shapes []Shape
}

// BVH is a bounding volume hierarchy over a set of shapes. It
// implements core.Intersector and is immutable once built, so it may
// be shared freely across concurrent pixel computations.
type BVH struct {
	root *bvhNode
}

// NewBVH builds a hierarchy over the given shapes by splitting at the
// midpoint of the longest axis
func NewBVH(shapes []Shape) *BVH {
	if len(shapes) == 0 {
		return &BVH{}
	}

	// Copy so the build can partition without mutating the caller's slice
	owned := make([]Shape, len(shapes))
	copy(owned, shapes)

	return &BVH{root: buildNode(owned)}
}

func buildNode(shapes []Shape) *bvhNode {
	bounds := shapes[0].BoundingBox()
	for _, s := range shapes[1:] {
		bounds = bounds.Union(s.BoundingBox())
	}

	if len(shapes) <= leafThreshold {
		return &bvhNode{bounds: bounds, shapes: shapes}
	}

	axis := bounds.LongestAxis()
	minVal := bounds.Min.Axis(axis)
	maxVal := bounds.Max.Axis(axis)
	if maxVal <= minVal {
		// Degenerate extent, nothing to split on
		return &bvhNode{bounds: bounds, shapes: shapes}
	}

	splitPos := (minVal + maxVal) * 0.5
	var left, right []Shape
	for _, s := range shapes {
		if s.BoundingBox().Center().Axis(axis) < splitPos {
			left = append(left, s)
		} else {
			right = append(right, s)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return &bvhNode{bounds: bounds, shapes: shapes}
	}

	return &bvhNode{
		bounds: bounds,
		left:   buildNode(left),
		right:  buildNode(right),
	}
}

// Intersect returns the nearest hit within the ray's parametric bounds
func (bvh *BVH) Intersect(ray core.Ray) (*core.HitRecord, bool) {
	var hit core.HitRecord
	if !bvh.Hit(ray, ray.TMin, ray.TMax, &hit) {
		return nil, false
	}
	return &hit, true
}

// Hit implements the Shape interface so hierarchies can nest
func (bvh *BVH) Hit(ray core.Ray, tMin, tMax float64, hit *core.HitRecord) bool {
	if bvh.root == nil {
		return false
	}
	return hitNode(bvh.root, ray, tMin, tMax, hit)
}

func hitNode(node *bvhNode, ray core.Ray, tMin, tMax float64, hit *core.HitRecord) bool {
	if !node.bounds.Hit(ray, tMin, tMax) {
		return false
	}

	hitAnything := false
	closest := tMax

	if node.shapes != nil {
		for _, shape := range node.shapes {
			if shape.Hit(ray, tMin, closest, hit) {
				hitAnything = true
				closest = hit.T
			}
		}
		return hitAnything
	}

	if node.left != nil && hitNode(node.left, ray, tMin, closest, hit) {
		hitAnything = true
		closest = hit.T
	}
	if node.right != nil && hitNode(node.right, ray, tMin, closest, hit) {
		hitAnything = true
	}

	return hitAnything
}

// BoundingBox returns the bounds of the whole hierarchy
func (bvh *BVH) BoundingBox() core.AABB {
	if bvh.root == nil {
		return core.AABB{}
	}
	return bvh.root.bounds
}
