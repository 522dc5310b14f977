package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera         *geometry.Camera
	Shapes         []geometry.Shape // Objects in the scene, in insertion order
	TopColor       core.Vec3        // Sky color straight up
	BottomColor    core.Vec3        // Sky color straight down
	SamplingConfig SamplingConfig
	CameraConfig   geometry.CameraConfig
}

// NewScene creates an empty scene with the default camera and sky
func NewScene() *Scene {
	return &Scene{
		Camera:         geometry.NewCamera(),
		Shapes:         make([]geometry.Shape, 0),
		TopColor:       core.NewVec3(0.5, 0.7, 1.0),
		BottomColor:    core.NewVec3(1.0, 1.0, 1.0),
		SamplingConfig: DefaultSamplingConfig(),
	}
}

// Add appends shapes to the scene. Shapes must all be added before rendering starts.
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// Hit finds the closest intersection with T in [tMin, tMax].
// Each accepted hit narrows the range, and because the comparison is strict
// the earliest inserted shape wins a tie.
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestSoFar := tMax

	for _, shape := range s.Shapes {
		hit, isHit := shape.Hit(ray, tMin, closestSoFar)
		if !isHit {
			continue
		}
		if closest == nil || hit.T < closest.T {
			closest = hit
			closestSoFar = hit.T
		}
	}

	return closest, closest != nil
}

// Background returns the sky gradient seen along a ray that escapes the scene
func (s *Scene) Background(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return s.BottomColor.Lerp(s.TopColor, t)
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}

// SetCamera sets the camera configuration and builds the camera for the
// current image aspect ratio
func (s *Scene) SetCamera(config geometry.CameraConfig) {
	s.CameraConfig = config
	s.rebuildCamera()
}

// ApplySamplingConfig replaces the sampling config and, when the image
// shape changes, rebuilds the camera to match the new aspect ratio
func (s *Scene) ApplySamplingConfig(config SamplingConfig) {
	resized := config.Width != s.SamplingConfig.Width || config.Height != s.SamplingConfig.Height
	s.SamplingConfig = config
	if resized {
		s.rebuildCamera()
	}
}

func (s *Scene) rebuildCamera() {
	config := s.CameraConfig
	if s.SamplingConfig.Height > 0 {
		config.AspectRatio = float64(s.SamplingConfig.Width) / float64(s.SamplingConfig.Height)
	}
	s.CameraConfig = config
	s.Camera = geometry.NewCameraFromConfig(config)
}
