package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// shadowAcneEpsilon is the lower bound of every hit query. It keeps a scattered
// ray from re-hitting the surface it just left because of rounding error.
const shadowAcneEpsilon = 0.001

// PathTracingIntegrator implements recursive unidirectional path tracing
type PathTracingIntegrator struct{}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator() *PathTracingIntegrator {
	return &PathTracingIntegrator{}
}

// RayColor computes the color for a single ray. The result is the product of
// the attenuations along the path times whatever ends it: the sky on a miss,
// the last attenuation when a material stops scattering, or black once the
// depth budget runs out.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, scene *scene.Scene, sampler core.Sampler, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, isHit := scene.Hit(ray, shadowAcneEpsilon, math.Inf(1))
	if !isHit {
		return scene.Background(ray)
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return scatter.Attenuation
	}

	return scatter.Attenuation.MultiplyVec(pt.RayColor(scatter.Scattered, scene, sampler, depth-1))
}
