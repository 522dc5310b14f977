package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Dielectric represents a transparent material like glass.
// It always refracts; there is no Fresnel reflection branch.
type Dielectric struct {
	RefractionIndex float64 // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractionIndex float64) *Dielectric {
	return &Dielectric{RefractionIndex: refractionIndex}
}

// Scatter implements the Material interface for dielectric scattering
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	// Determine if we're entering or exiting the material
	var refractionRatio float64
	if hit.FrontFace {
		refractionRatio = 1.0 / d.RefractionIndex // air to glass
	} else {
		refractionRatio = d.RefractionIndex // glass to air
	}

	refracted := core.Refract(rayIn.Direction.Normalize(), hit.Normal, refractionRatio)

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, refracted),
		Attenuation: core.NewVec3(1.0, 1.0, 1.0), // Clear glass absorbs nothing
	}, true
}

func (d *Dielectric) material() {}
