package geometry

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/prism-render/prism/pkg/core"
)

func TestInstance_Translation(t *testing.T) {
	mesh := quadMesh(t, nil)
	inst := NewInstance(mesh, mgl64.Translate3D(10, 0, 0))

	var hit core.HitRecord
	ray := core.NewRay(core.NewVec3(10, 0, 5), core.NewVec3(0, 0, -1))
	if !inst.Hit(ray, ray.TMin, ray.TMax, &hit) {
		t.Fatal("Expected hit on translated instance")
	}
	if hit.Point.Subtract(core.NewVec3(10, 0, 0)).Length() > 1e-9 {
		t.Errorf("Expected hit point (10,0,0), got %v", hit.Point)
	}

	// The untranslated position must now miss
	ray = core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	if inst.Hit(ray, ray.TMin, ray.TMax, &hit) {
		t.Error("Expected miss at the original mesh position")
	}
}

func TestInstance_TPreservedUnderScale(t *testing.T) {
	mesh := quadMesh(t, nil)
	inst := NewInstance(mesh, mgl64.Scale3D(3, 3, 1))

	var hit core.HitRecord
	ray := core.NewRay(core.NewVec3(2, 2, 5), core.NewVec3(0, 0, -1))
	if !inst.Hit(ray, ray.TMin, ray.TMax, &hit) {
		t.Fatal("Expected hit on scaled instance")
	}
	// The quad stays at z=0, so world t must be the world-space distance
	if math.Abs(hit.T-5) > 1e-9 {
		t.Errorf("Expected t=5 in world units, got %v", hit.T)
	}
}

func TestInstance_NormalUnderNonUniformScale(t *testing.T) {
	// A quad in the XZ plane with normal +Y, stretched along X. A plain
	// linear transform of the normal would stay (0,1,0) here anyway, so
	// tilt the quad first to make the inverse-transpose observable.
	vertices := []core.Vec3{
		core.NewVec3(-1, -1, -1),
		core.NewVec3(1, 1, -1),
		core.NewVec3(1, 1, 1),
		core.NewVec3(-1, -1, 1),
	}
	mesh, err := NewMesh(vertices, []int{0, 1, 2, 0, 2, 3}, nil)
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}
	inst := NewInstance(mesh, mgl64.Scale3D(4, 1, 1))

	var hit core.HitRecord
	ray := core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0))
	if !inst.Hit(ray, ray.TMin, ray.TMax, &hit) {
		t.Fatal("Expected hit on tilted quad")
	}

	if math.Abs(hit.Normal.Length()-1.0) > 1e-9 {
		t.Errorf("Normal not unit length: %v", hit.Normal)
	}
	if hit.Normal.Dot(ray.Direction) >= 0 {
		t.Errorf("Normal %v does not oppose ray", hit.Normal)
	}

	// Surface direction in world space after the scale: (4,1,0)-(−4,−1,0)
	// spans the plane; the normal must be perpendicular to it
	tangent := core.NewVec3(8, 2, 0).Normalize()
	if math.Abs(hit.Normal.Dot(tangent)) > 1e-9 {
		t.Errorf("Normal %v not perpendicular to surface tangent %v", hit.Normal, tangent)
	}
}
