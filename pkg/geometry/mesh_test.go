package geometry

import (
	"testing"

	"github.com/prism-render/prism/pkg/core"
)

// quadMesh builds a unit quad in the XY plane at z=0 from two triangles
func quadMesh(t *testing.T, materialIDs []int) *Mesh {
	t.Helper()
	vertices := []core.Vec3{
		core.NewVec3(-1, -1, 0),
		core.NewVec3(1, -1, 0),
		core.NewVec3(1, 1, 0),
		core.NewVec3(-1, 1, 0),
	}
	mesh, err := NewMesh(vertices, []int{0, 1, 2, 0, 2, 3}, materialIDs)
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}
	return mesh
}

func TestMesh_Intersect(t *testing.T) {
	mesh := quadMesh(t, []int{4, 5})

	hit, isHit := mesh.Intersect(core.NewRay(core.NewVec3(-0.5, 0.5, 3), core.NewVec3(0, 0, -1)))
	if !isHit {
		t.Fatal("Expected hit")
	}
	if hit.T < 2.999 || hit.T > 3.001 {
		t.Errorf("Expected t near 3, got %v", hit.T)
	}
	// The upper-left half of the quad is the second triangle
	if hit.MaterialID != 5 {
		t.Errorf("Expected material 5, got %d", hit.MaterialID)
	}

	if _, isHit := mesh.Intersect(core.NewRay(core.NewVec3(5, 5, 3), core.NewVec3(0, 0, -1))); isHit {
		t.Error("Expected miss outside the quad")
	}
}

func TestMesh_RespectsRayBounds(t *testing.T) {
	mesh := quadMesh(t, nil)

	ray := core.NewRay(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, -1))
	ray.TMax = 2.0 // Quad is at t=3, outside the interval
	if _, isHit := mesh.Intersect(ray); isHit {
		t.Error("Expected miss beyond TMax")
	}

	ray = core.NewRay(core.NewVec3(0, 0, 1e-4), core.NewVec3(0, 0, -1))
	if _, isHit := mesh.Intersect(ray); isHit {
		t.Error("Expected self-intersection epsilon to reject hit below TMin")
	}
}

func TestNewMesh_Validation(t *testing.T) {
	vertices := []core.Vec3{core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0)}

	if _, err := NewMesh(vertices, []int{0, 1}, nil); err == nil {
		t.Error("Expected error for index count not a multiple of 3")
	}
	if _, err := NewMesh(vertices, []int{0, 1, 5}, nil); err == nil {
		t.Error("Expected error for out-of-bounds index")
	}
	if _, err := NewMesh(vertices, []int{0, 1, 2}, []int{1, 2}); err == nil {
		t.Error("Expected error for material id count mismatch")
	}
}

func TestBVH_MatchesLinearSearch(t *testing.T) {
	// A grid of small triangles; the BVH must agree with brute force
	var shapes []Shape
	id := 0
	for x := -4; x <= 4; x += 2 {
		for y := -4; y <= 4; y += 2 {
			fx, fy := float64(x), float64(y)
			shapes = append(shapes, NewTriangle(
				core.NewVec3(fx, fy, float64(id%5)),
				core.NewVec3(fx+1, fy, float64(id%5)),
				core.NewVec3(fx, fy+1, float64(id%5)),
				id, 0,
			))
			id++
		}
	}
	bvh := NewBVH(shapes)

	rng := core.NewRNG(21)
	for i := 0; i < 200; i++ {
		origin := core.NewVec3(rng.Float64()*10-5, rng.Float64()*10-5, 10)
		target := core.NewVec3(rng.Float64()*10-5, rng.Float64()*10-5, 0)
		ray := core.NewRay(origin, target.Subtract(origin).Normalize())

		var bruteHit core.HitRecord
		bruteFound := false
		closest := ray.TMax
		for _, s := range shapes {
			if s.Hit(ray, ray.TMin, closest, &bruteHit) {
				bruteFound = true
				closest = bruteHit.T
			}
		}

		bvhHit, bvhFound := bvh.Intersect(ray)
		if bvhFound != bruteFound {
			t.Fatalf("Ray %d: BVH found=%v, linear found=%v", i, bvhFound, bruteFound)
		}
		if bvhFound && bvhHit.PrimitiveID != bruteHit.PrimitiveID {
			t.Fatalf("Ray %d: BVH hit primitive %d, linear hit %d", i, bvhHit.PrimitiveID, bruteHit.PrimitiveID)
		}
	}
}
