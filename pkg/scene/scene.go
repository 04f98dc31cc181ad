// Package scene provides the built-in scenes the renderer can be
// pointed at. A scene bundles the intersection oracle, the material
// table, the environment and the camera position; all of it is
// immutable once built.
package scene

import (
	"fmt"

	"github.com/prism-render/prism/pkg/core"
	"github.com/prism-render/prism/pkg/geometry"
	"github.com/prism-render/prism/pkg/integrator"
	"github.com/prism-render/prism/pkg/material"
)

// Scene holds everything the renderer needs about the world
type Scene struct {
	Name         string
	CameraOrigin core.Vec3
	Intersector  core.Intersector
	Materials    *material.Table
	Sky          integrator.Sky
}

// ByName builds one of the built-in scenes
func ByName(name string) (*Scene, error) {
	switch name {
	case "default":
		return NewDefaultScene()
	case "cornell":
		return NewCornellScene()
	default:
		return nil, fmt.Errorf("scene: unknown scene %q (available: default, cornell)", name)
	}
}

// meshBuilder accumulates vertices, index triples and per-triangle
// material IDs for scenes assembled from quads
type meshBuilder struct {
	vertices    []core.Vec3
	indices     []int
	materialIDs []int
}

// addQuad appends a quad as two triangles. Vertices are given in
// winding order; facing does not matter because hit normals are
// front-face corrected.
func (mb *meshBuilder) addQuad(v0, v1, v2, v3 core.Vec3, materialID int) {
	base := len(mb.vertices)
	mb.vertices = append(mb.vertices, v0, v1, v2, v3)
	mb.indices = append(mb.indices,
		base, base+1, base+2,
		base, base+2, base+3,
	)
	mb.materialIDs = append(mb.materialIDs, materialID, materialID)
}

// build creates the mesh
func (mb *meshBuilder) build() (*geometry.Mesh, error) {
	return geometry.NewMesh(mb.vertices, mb.indices, mb.materialIDs)
}

// unitCube builds a cube spanning [-0.5, 0.5] on each axis with every
// face assigned the given material
func unitCube(materialID int) (*geometry.Mesh, error) {
	var mb meshBuilder
	const h = 0.5

	corners := func(x0, y0, z0, x1, y1, z1, x2, y2, z2, x3, y3, z3 float64) {
		mb.addQuad(
			core.NewVec3(x0, y0, z0),
			core.NewVec3(x1, y1, z1),
			core.NewVec3(x2, y2, z2),
			core.NewVec3(x3, y3, z3),
			materialID,
		)
	}

	corners(-h, -h, -h, h, -h, -h, h, h, -h, -h, h, -h) // back
	corners(-h, -h, h, h, -h, h, h, h, h, -h, h, h)     // front
	corners(-h, -h, -h, -h, -h, h, -h, h, h, -h, h, -h) // left
	corners(h, -h, -h, h, -h, h, h, h, h, h, h, -h)     // right
	corners(-h, -h, -h, h, -h, -h, h, -h, h, -h, -h, h) // bottom
	corners(-h, h, -h, h, h, -h, h, h, h, -h, h, h)     // top

	return mb.build()
}
