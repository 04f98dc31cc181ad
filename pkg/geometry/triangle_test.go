package geometry

import (
	"math"
	"testing"

	"github.com/prism-render/prism/pkg/core"
)

func newTestTriangle() *Triangle {
	return NewTriangle(
		core.NewVec3(-1, -1, 0),
		core.NewVec3(1, -1, 0),
		core.NewVec3(0, 1, 0),
		7, 3,
	)
}

func TestTriangle_Hit(t *testing.T) {
	tri := newTestTriangle()

	tests := []struct {
		name    string
		ray     core.Ray
		wantHit bool
	}{
		{
			name:    "Center hit",
			ray:     core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)),
			wantHit: true,
		},
		{
			name:    "Miss to the side",
			ray:     core.NewRay(core.NewVec3(5, 0, 5), core.NewVec3(0, 0, -1)),
			wantHit: false,
		},
		{
			name:    "Parallel to triangle plane",
			ray:     core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(1, 0, 0)),
			wantHit: false,
		},
		{
			name:    "Behind the origin",
			ray:     core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, -1)),
			wantHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hit core.HitRecord
			isHit := tri.Hit(tt.ray, 0.001, 1000, &hit)
			if isHit != tt.wantHit {
				t.Errorf("Expected hit=%v, got %v", tt.wantHit, isHit)
			}
		})
	}
}

func TestTriangle_HitRecord(t *testing.T) {
	tri := newTestTriangle()
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	var hit core.HitRecord
	if !tri.Hit(ray, 0.001, 1000, &hit) {
		t.Fatal("Expected hit")
	}

	if hit.PrimitiveID != 7 || hit.MaterialID != 3 {
		t.Errorf("Expected ids (7, 3), got (%d, %d)", hit.PrimitiveID, hit.MaterialID)
	}

	barySum := hit.Barycentric.X + hit.Barycentric.Y + hit.Barycentric.Z
	if math.Abs(barySum-1.0) > 1e-9 {
		t.Errorf("Barycentric weights sum to %v, expected 1", barySum)
	}
	if hit.Barycentric.X < 0 || hit.Barycentric.Y < 0 || hit.Barycentric.Z < 0 {
		t.Errorf("Interior hit has negative barycentric weight: %v", hit.Barycentric)
	}

	// Reconstructing the point from the weights must give the hit point
	reconstructed := tri.V0.Multiply(hit.Barycentric.X).
		Add(tri.V1.Multiply(hit.Barycentric.Y)).
		Add(tri.V2.Multiply(hit.Barycentric.Z))
	if reconstructed.Subtract(hit.Point).Length() > 1e-9 {
		t.Errorf("Barycentric reconstruction %v does not match hit point %v", reconstructed, hit.Point)
	}
}

func TestTriangle_FrontFaceNormal(t *testing.T) {
	tri := newTestTriangle()

	// Approach from either side: the normal must always oppose the ray
	for _, origin := range []core.Vec3{core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -5)} {
		direction := core.NewVec3(0, 0, 0).Subtract(origin).Normalize()
		ray := core.NewRay(origin, direction)

		var hit core.HitRecord
		if !tri.Hit(ray, 0.001, 1000, &hit) {
			t.Fatalf("Expected hit from origin %v", origin)
		}
		if hit.Normal.Dot(ray.Direction) >= 0 {
			t.Errorf("Normal %v does not oppose ray direction %v", hit.Normal, ray.Direction)
		}
		if math.Abs(hit.Normal.Length()-1.0) > 1e-9 {
			t.Errorf("Normal is not unit length: %v", hit.Normal)
		}
	}
}
