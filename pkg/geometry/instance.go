package geometry

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/prism-render/prism/pkg/core"
)

// Instance places a mesh in the world under an object-to-world
// transform. Rays are taken into object space for the intersection
// test and the hit is brought back to world space, with the normal
// transformed by the inverse transpose so non-uniform scales keep it
// perpendicular to the surface.
type Instance struct {
	mesh          *Mesh
	objectToWorld mgl64.Mat4
	worldToObject mgl64.Mat4
	normalMatrix  mgl64.Mat4
	bbox          core.AABB
}

// NewInstance creates an instance of a mesh under the given transform
func NewInstance(mesh *Mesh, objectToWorld mgl64.Mat4) *Instance {
	worldToObject := objectToWorld.Inv()

	// World bounds: transform the eight corners of the object bounds
	objBounds := mesh.BoundingBox()
	corners := make([]core.Vec3, 0, 8)
	for i := 0; i < 8; i++ {
		corner := core.NewVec3(
			pick(i&1 == 0, objBounds.Min.X, objBounds.Max.X),
			pick(i&2 == 0, objBounds.Min.Y, objBounds.Max.Y),
			pick(i&4 == 0, objBounds.Min.Z, objBounds.Max.Z),
		)
		corners = append(corners, fromMgl(mgl64.TransformCoordinate(toMgl(corner), objectToWorld)))
	}

	return &Instance{
		mesh:          mesh,
		objectToWorld: objectToWorld,
		worldToObject: worldToObject,
		normalMatrix:  worldToObject.Transpose(),
		bbox:          core.NewAABBFromPoints(corners...),
	}
}

// Hit implements the Shape interface
func (inst *Instance) Hit(ray core.Ray, tMin, tMax float64, hit *core.HitRecord) bool {
	// Leave the object-space direction unnormalized so the t parameter
	// means the same thing in both spaces
	objRay := core.Ray{
		Origin:    fromMgl(mgl64.TransformCoordinate(toMgl(ray.Origin), inst.worldToObject)),
		Direction: fromMgl(mgl64.TransformNormal(toMgl(ray.Direction), inst.worldToObject)),
		TMin:      tMin,
		TMax:      tMax,
	}

	if !inst.mesh.Hit(objRay, tMin, tMax, hit) {
		return false
	}

	hit.Point = fromMgl(mgl64.TransformCoordinate(toMgl(hit.Point), inst.objectToWorld))
	worldNormal := fromMgl(mgl64.TransformNormal(toMgl(hit.Normal), inst.normalMatrix)).Normalize()

	// Re-derive the facing in world space: the object-space flip used
	// the object-space ray
	if !hit.FrontFace {
		worldNormal = worldNormal.Negate()
	}
	hit.SetFaceNormal(ray, worldNormal)

	return true
}

// BoundingBox returns the world-space bounds of the instance
func (inst *Instance) BoundingBox() core.AABB {
	return inst.bbox
}

func toMgl(v core.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromMgl(v mgl64.Vec3) core.Vec3 {
	return core.NewVec3(v.X(), v.Y(), v.Z())
}

func pick(cond bool, a, b float64) float64 {
	if cond {
		return a
	}
	return b
}
