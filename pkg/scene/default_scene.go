package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/prism-render/prism/pkg/core"
	"github.com/prism-render/prism/pkg/geometry"
	"github.com/prism-render/prism/pkg/integrator"
	"github.com/prism-render/prism/pkg/material"
)

// NewDefaultScene creates an open scene under the gradient sky: a
// large diffuse ground plane, a mirror cube and a glossy mix cube.
func NewDefaultScene() (*Scene, error) {
	materials := material.NewTable()
	gray := materials.Add(material.NewDiffuse(core.NewVec3(0.7, 0.7, 0.7)))
	mirror := materials.Add(material.NewMirror(core.NewVec3(0.95, 0.95, 0.95)))
	glossy := materials.Add(material.NewMix(core.NewVec3(0.8, 0.6, 0.3), 0.2))

	var ground meshBuilder
	ground.addQuad(
		core.NewVec3(-50, 0, -50),
		core.NewVec3(50, 0, -50),
		core.NewVec3(50, 0, 50),
		core.NewVec3(-50, 0, 50),
		gray,
	)
	groundMesh, err := ground.build()
	if err != nil {
		return nil, err
	}

	mirrorCube, err := unitCube(mirror)
	if err != nil {
		return nil, err
	}
	glossyCube, err := unitCube(glossy)
	if err != nil {
		return nil, err
	}

	shapes := []geometry.Shape{
		groundMesh,
		geometry.NewInstance(mirrorCube, mgl64.Translate3D(-1.2, 0.5, -4).
			Mul4(mgl64.HomogRotate3DY(0.5))),
		geometry.NewInstance(glossyCube, mgl64.Translate3D(1.2, 0.75, -5).
			Mul4(mgl64.Scale3D(1, 1.5, 1))),
	}

	return &Scene{
		Name:         "default",
		CameraOrigin: core.NewVec3(0, 1, 0),
		Intersector:  geometry.NewBVH(shapes),
		Materials:    materials,
		Sky:          integrator.NewSky(),
	}, nil
}
