package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Camera generates rays for rendering
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// CameraConfig describes a camera in scene definitions.
// A positive VFov selects the look-at camera, a positive ViewportHeight the
// axis-aligned viewport camera, and neither the default camera.
type CameraConfig struct {
	Center core.Vec3 // Camera position (look-from point)
	LookAt core.Vec3 // Point the camera looks at (look-at mode)
	Up     core.Vec3 // Up direction (look-at mode)

	VFov        float64 // Vertical field of view in degrees (look-at mode)
	AspectRatio float64 // Width / height of the viewport

	ViewportHeight float64 // Viewport height in world units (viewport mode)
	FocalLength    float64 // Distance from the camera to the viewport (viewport mode)
}

// NewCamera creates the default camera: at the origin, looking down -Z
// through a 2x2 viewport one unit away
func NewCamera() *Camera {
	origin := core.NewVec3(0, 0, 0)
	horizontal := core.NewVec3(2, 0, 0)
	vertical := core.NewVec3(0, 2, 0)
	return newCamera(origin, horizontal, vertical, core.NewVec3(0, 0, 1))
}

// NewViewportCamera creates an axis-aligned camera at position looking down -Z
func NewViewportCamera(position core.Vec3, viewportHeight, aspectRatio, focalLength float64) *Camera {
	viewportWidth := aspectRatio * viewportHeight
	horizontal := core.NewVec3(viewportWidth, 0, 0)
	vertical := core.NewVec3(0, viewportHeight, 0)
	return newCamera(position, horizontal, vertical, core.NewVec3(0, 0, focalLength))
}

// NewLookAtCamera creates a camera at lookFrom pointed at lookAt.
// vup must not be parallel to the viewing direction; that case is not handled.
func NewLookAtCamera(lookFrom, lookAt, vup core.Vec3, vfov, aspectRatio float64) *Camera {
	theta := vfov * math.Pi / 180.0
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := aspectRatio * viewportHeight

	// Orthonormal basis: w points backwards, u right, v up
	w := lookFrom.Subtract(lookAt).Normalize()
	u := vup.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(viewportWidth)
	vertical := v.Multiply(viewportHeight)
	return newCamera(lookFrom, horizontal, vertical, w)
}

// NewCameraFromConfig builds the camera described by config
func NewCameraFromConfig(config CameraConfig) *Camera {
	aspectRatio := config.AspectRatio
	if aspectRatio <= 0 {
		aspectRatio = 1.0
	}

	switch {
	case config.VFov > 0:
		return NewLookAtCamera(config.Center, config.LookAt, config.Up, config.VFov, aspectRatio)
	case config.ViewportHeight > 0:
		focalLength := config.FocalLength
		if focalLength <= 0 {
			focalLength = 1.0
		}
		return NewViewportCamera(config.Center, config.ViewportHeight, aspectRatio, focalLength)
	default:
		return NewCamera()
	}
}

// newCamera places the viewport so that its center sits at origin - back
func newCamera(origin, horizontal, vertical, back core.Vec3) *Camera {
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(back)

	return &Camera{
		origin:          origin,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
	}
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1
func (c *Camera) GetRay(s, t float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}

// Origin returns the camera position
func (c *Camera) Origin() core.Vec3 {
	return c.origin
}
