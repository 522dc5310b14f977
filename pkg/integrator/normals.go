package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// NormalsIntegrator shades each hit by its surface normal, mapping [-1, 1] onto [0, 1].
// Materials are ignored and rays never bounce. Misses show the scene background.
type NormalsIntegrator struct{}

// NewNormalsIntegrator creates a normal visualization integrator
func NewNormalsIntegrator() *NormalsIntegrator {
	return &NormalsIntegrator{}
}

// RayColor returns 0.5 * (normal + 1) for the closest hit
func (ni *NormalsIntegrator) RayColor(ray core.Ray, scene *scene.Scene, sampler core.Sampler, depth int) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, isHit := scene.Hit(ray, shadowAcneEpsilon, math.Inf(1))
	if !isHit {
		return scene.Background(ray)
	}

	return hit.Normal.Add(core.NewVec3(1, 1, 1)).Multiply(0.5)
}
