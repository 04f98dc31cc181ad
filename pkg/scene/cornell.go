package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/prism-render/prism/pkg/core"
	"github.com/prism-render/prism/pkg/geometry"
	"github.com/prism-render/prism/pkg/integrator"
	"github.com/prism-render/prism/pkg/material"
)

// NewCornellScene creates a Cornell-style box with a red left wall, a
// green right wall and two blocks inside. The front face is open
// toward the camera, so the scene is lit by the sky through the
// opening instead of an area light.
func NewCornellScene() (*Scene, error) {
	materials := material.NewTable()
	white := materials.Add(material.NewDiffuse(core.NewVec3(0.73, 0.73, 0.73)))
	red := materials.Add(material.NewDiffuse(core.NewVec3(0.65, 0.05, 0.05)))
	green := materials.Add(material.NewDiffuse(core.NewVec3(0.12, 0.45, 0.15)))
	mirror := materials.Add(material.NewMirror(core.NewVec3(0.9, 0.9, 0.9)))

	// Interior spans x in [-1,1], y in [0,2], z in [-4,-2]
	var walls meshBuilder
	walls.addQuad( // floor
		core.NewVec3(-1, 0, -4),
		core.NewVec3(1, 0, -4),
		core.NewVec3(1, 0, -2),
		core.NewVec3(-1, 0, -2),
		white,
	)
	walls.addQuad( // ceiling
		core.NewVec3(-1, 2, -4),
		core.NewVec3(1, 2, -4),
		core.NewVec3(1, 2, -2),
		core.NewVec3(-1, 2, -2),
		white,
	)
	walls.addQuad( // back wall
		core.NewVec3(-1, 0, -4),
		core.NewVec3(1, 0, -4),
		core.NewVec3(1, 2, -4),
		core.NewVec3(-1, 2, -4),
		white,
	)
	walls.addQuad( // left wall
		core.NewVec3(-1, 0, -4),
		core.NewVec3(-1, 0, -2),
		core.NewVec3(-1, 2, -2),
		core.NewVec3(-1, 2, -4),
		red,
	)
	walls.addQuad( // right wall
		core.NewVec3(1, 0, -4),
		core.NewVec3(1, 0, -2),
		core.NewVec3(1, 2, -2),
		core.NewVec3(1, 2, -4),
		green,
	)
	wallMesh, err := walls.build()
	if err != nil {
		return nil, err
	}

	tallBlock, err := unitCube(white)
	if err != nil {
		return nil, err
	}
	smallBlock, err := unitCube(mirror)
	if err != nil {
		return nil, err
	}

	shapes := []geometry.Shape{
		wallMesh,
		geometry.NewInstance(tallBlock, mgl64.Translate3D(-0.4, 0.6, -3.4).
			Mul4(mgl64.HomogRotate3DY(0.3)).
			Mul4(mgl64.Scale3D(0.6, 1.2, 0.6))),
		geometry.NewInstance(smallBlock, mgl64.Translate3D(0.45, 0.3, -2.7).
			Mul4(mgl64.HomogRotate3DY(-0.25)).
			Mul4(mgl64.Scale3D(0.6, 0.6, 0.6))),
	}

	return &Scene{
		Name:         "cornell",
		CameraOrigin: core.NewVec3(0, 1, 0),
		Intersector:  geometry.NewBVH(shapes),
		Materials:    materials,
		Sky:          integrator.NewSky(),
	}, nil
}
