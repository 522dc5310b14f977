package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// materialsViewPos is the camera position of the materials showcase, also
// used as the view position of every default phong material
var materialsViewPos = core.NewVec3(0, 0, 6)

// NewMaterialsScene creates a row of spheres, one per material, resting on a large ground sphere
func NewMaterialsScene() *Scene {
	s := NewScene()
	s.SamplingConfig = createShowcaseSamplingConfig()
	s.SetCamera(geometry.CameraConfig{
		Center:         materialsViewPos,
		ViewportHeight: 2.0,
		FocalLength:    4.0,
	})

	gray := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	matteGreen := material.NewLambertian(core.NewVec3(0, 0.5, 0))
	metalRed := material.NewMetal(core.NewVec3(1, 0, 0), 0.3)
	glass := material.NewDielectric(1.5)
	phongDefault := material.NewDefaultPhong(materialsViewPos)

	s.Add(
		geometry.NewSphere(core.NewVec3(-2.25, 0, -1), 0.5, phongDefault),
		geometry.NewSphere(core.NewVec3(-0.75, 0, -1), 0.5, glass),
		geometry.NewSphere(core.NewVec3(2.25, 0, -1), 0.5, metalRed),
		geometry.NewSphere(core.NewVec3(0.75, 0, -1), 0.5, matteGreen),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, gray),
	)

	return s
}
