package scene

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewMeshScene creates a scene around a loaded triangle mesh: the mesh sits on a
// gray ground plane and the camera frames its bounding sphere
func NewMeshScene(triangles []*geometry.Triangle) *Scene {
	s := NewScene()
	s.SamplingConfig = createShowcaseSamplingConfig()

	center, radius, minY := meshBounds(triangles)
	s.SetCamera(setupMeshCamera(center, radius))

	gray := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s.Add(geometry.NewPlane(core.NewVec3(0, minY, 0), core.NewVec3(0, 1, 0), gray))
	for _, triangle := range triangles {
		s.Add(triangle)
	}

	return s
}

// setupMeshCamera places the camera in front of and slightly above the mesh
func setupMeshCamera(center core.Vec3, radius float64) geometry.CameraConfig {
	const vfov = 40.0
	distance := radius / math.Sin(vfov/2*math.Pi/180)

	return geometry.CameraConfig{
		Center: center.Add(core.NewVec3(0, 0.4, 1).Normalize().Multiply(distance)),
		LookAt: center,
		Up:     core.NewVec3(0, 1, 0),
		VFov:   vfov,
	}
}

// meshBounds returns the center and radius of a sphere containing every vertex,
// and the lowest Y coordinate
func meshBounds(triangles []*geometry.Triangle) (core.Vec3, float64, float64) {
	if len(triangles) == 0 {
		return core.Vec3{}, 1.0, 0
	}

	minV := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	maxV := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))
	for _, triangle := range triangles {
		for _, v := range []core.Vec3{triangle.V0, triangle.V1, triangle.V2} {
			minV = core.NewVec3(math.Min(minV.X, v.X), math.Min(minV.Y, v.Y), math.Min(minV.Z, v.Z))
			maxV = core.NewVec3(math.Max(maxV.X, v.X), math.Max(maxV.Y, v.Y), math.Max(maxV.Z, v.Z))
		}
	}

	center := minV.Add(maxV).Multiply(0.5)
	radius := maxV.Subtract(minV).Length() * 0.5
	if radius == 0 {
		radius = 1.0
	}
	return center, radius, minV.Y
}
