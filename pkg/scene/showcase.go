package scene

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewHelixScene creates a helix of phong spheres winding around a small red metal sphere
func NewHelixScene() *Scene {
	s := NewScene()
	s.SamplingConfig = createShowcaseSamplingConfig()
	s.SetCamera(geometry.CameraConfig{
		Center: core.NewVec3(3, 2, 0),
		LookAt: core.NewVec3(-3, -2, 0),
		Up:     core.NewVec3(0, 0, 1),
		VFov:   100,
	})

	metalRed := material.NewMetal(core.NewVec3(1, 0, 0), 0.3)
	phongDefault := material.NewDefaultPhong(materialsViewPos)

	s.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 0.1, metalRed))
	for i := -10; i <= 10; i++ {
		angle := float64(i)
		center := core.NewVec3(2*math.Cos(angle), 2*math.Sin(angle), 0.5*angle)
		s.Add(geometry.NewSphere(center, 0.5, phongDefault))
	}

	return s
}

// NewPlatonicScene creates an octahedron-like solid of eight triangles on a tilted base plane
func NewPlatonicScene() *Scene {
	s := NewScene()
	s.SamplingConfig = createShowcaseSamplingConfig()
	s.SetCamera(geometry.CameraConfig{
		Center: core.NewVec3(1, 1, 0),
		LookAt: core.NewVec3(-1, -1, 0),
		Up:     core.NewVec3(0, 0, 1),
		VFov:   75,
	})

	base := material.NewLambertian(core.NewVec3(0.6, 0.1, 0.2))
	matteGreen := material.NewLambertian(core.NewVec3(0, 0.5, 0))
	metalRed := material.NewMetal(core.NewVec3(1, 0, 0), 0.3)

	s.Add(geometry.NewPlane(core.NewVec3(-5, -5, -5), core.NewVec3(0.75, 0.5, -5), base))

	// Every face shares the apex at the origin; colors alternate around the solid
	apex := core.NewVec3(0, 0, 0)
	faces := [][2]core.Vec3{
		{core.NewVec3(-0.5, -0.5, 0.5), core.NewVec3(-0.5, 0.5, -0.5)},
		{core.NewVec3(-0.5, -0.5, 0.5), core.NewVec3(0.5, -0.5, -0.5)},
		{core.NewVec3(0.5, -0.5, -0.5), core.NewVec3(0.5, 0.5, -0.5)},
		{core.NewVec3(0.5, 0.5, -0.5), core.NewVec3(-0.5, 0.5, -0.5)},
		{core.NewVec3(-0.5, -0.5, -0.5), core.NewVec3(-0.5, 0.5, 0.5)},
		{core.NewVec3(-0.5, -0.5, -0.5), core.NewVec3(0.5, -0.5, 0.5)},
		{core.NewVec3(0.5, -0.5, 0.5), core.NewVec3(0.5, 0.5, 0.5)},
		{core.NewVec3(0.5, 0.5, 0.5), core.NewVec3(-0.5, 0.5, 0.5)},
	}
	for i, face := range faces {
		var mat material.Material = matteGreen
		if i%2 == 1 {
			mat = metalRed
		}
		s.Add(geometry.NewTriangle(apex, face[0], face[1], mat))
	}

	return s
}

// NewTriangleScene creates a single green triangle seen at an angle
func NewTriangleScene() *Scene {
	s := NewScene()
	s.SamplingConfig = createShowcaseSamplingConfig()
	s.SetCamera(geometry.CameraConfig{
		Center: core.NewVec3(1, 0, 1),
		LookAt: core.NewVec3(-1, 0, -1),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   100,
	})

	matteGreen := material.NewLambertian(core.NewVec3(0, 0.5, 0))
	s.Add(geometry.NewTriangle(
		core.NewVec3(-2.25, 0, -1),
		core.NewVec3(-0.75, -0.5, -1),
		core.NewVec3(2.25, 1, -1),
		matteGreen,
	))

	return s
}

// NewPlaneScene creates a single gray plane through (1, 1, 0) facing +Z,
// viewed with the materials showcase camera
func NewPlaneScene() *Scene {
	s := NewScene()
	s.SamplingConfig = createShowcaseSamplingConfig()
	s.SetCamera(geometry.CameraConfig{
		Center:         materialsViewPos,
		ViewportHeight: 2.0,
		FocalLength:    4.0,
	})

	gray := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s.Add(geometry.NewPlane(core.NewVec3(1, 1, 0), core.NewVec3(0, 0, 1), gray))

	return s
}

// NewGradientScene creates an empty scene: every ray shows the sky gradient
func NewGradientScene() *Scene {
	s := NewScene()
	s.SamplingConfig = SamplingConfig{
		Width:           200,
		Height:          100,
		SamplesPerPixel: 1,
		MaxDepth:        1,
		Exposure:        1.0,
		Seed:            42,
	}
	s.SetCamera(geometry.CameraConfig{
		ViewportHeight: 2.0,
		FocalLength:    1.0,
	})

	return s
}

// NewNormalsScene creates a single sphere in front of the camera, meant to be
// rendered with the normals integrator
func NewNormalsScene() *Scene {
	s := NewScene()
	s.SamplingConfig = SamplingConfig{
		Width:           200,
		Height:          100,
		SamplesPerPixel: 1,
		MaxDepth:        1,
		Exposure:        1.0,
		Seed:            42,
	}
	s.SetCamera(geometry.CameraConfig{
		ViewportHeight: 2.0,
		FocalLength:    1.0,
	})

	gray := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, gray))

	return s
}

func createShowcaseSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           400,
		Height:          200,
		SamplesPerPixel: 10,
		MaxDepth:        10,
		Exposure:        1.0,
		Seed:            42,
	}
}
