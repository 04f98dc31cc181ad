package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3
	Max Vec3
}

// NewAABB creates a new AABB from min and max corners
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	bounds := AABB{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		bounds.Min.X = math.Min(bounds.Min.X, p.X)
		bounds.Min.Y = math.Min(bounds.Min.Y, p.Y)
		bounds.Min.Z = math.Min(bounds.Min.Z, p.Z)
		bounds.Max.X = math.Max(bounds.Max.X, p.X)
		bounds.Max.Y = math.Max(bounds.Max.Y, p.Y)
		bounds.Max.Z = math.Max(bounds.Max.Z, p.Z)
	}
	return bounds
}

// Hit tests whether a ray intersects this AABB using the slab method
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		origin := ray.Origin.Axis(axis)
		direction := ray.Direction.Axis(axis)
		minVal := aabb.Min.Axis(axis)
		maxVal := aabb.Max.Axis(axis)

		// A ray parallel to the slab either misses it entirely or is
		// inside it for all t
		if math.Abs(direction) < 1e-8 {
			if origin < minVal || origin > maxVal {
				return false
			}
			continue
		}

		invDirection := 1.0 / direction
		t1 := (minVal - origin) * invDirection
		t2 := (maxVal - origin) * invDirection
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return false
		}
	}
	return true
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		Min: Vec3{
			X: math.Min(aabb.Min.X, other.Min.X),
			Y: math.Min(aabb.Min.Y, other.Min.Y),
			Z: math.Min(aabb.Min.Z, other.Min.Z),
		},
		Max: Vec3{
			X: math.Max(aabb.Max.X, other.Max.X),
			Y: math.Max(aabb.Max.Y, other.Max.Y),
			Z: math.Max(aabb.Max.Z, other.Max.Z),
		},
	}
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the extent of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (aabb AABB) LongestAxis() int {
	size := aabb.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0
	}
	if size.Y > size.Z {
		return 1
	}
	return 2
}
