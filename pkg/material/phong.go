package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Phong is a direct-lighting shading model with a single point light.
// It never produces a bounce: Scatter computes the local shade and ends the path.
type Phong struct {
	Diffuse  core.Vec3 // Diffuse color
	Specular core.Vec3 // Specular highlight color
	Ambient  core.Vec3 // Ambient color

	LightPos core.Vec3 // Point light position
	ViewPos  core.Vec3 // Viewer position, used as the view direction

	Kd        float64 // Diffuse coefficient
	Ks        float64 // Specular coefficient
	Ka        float64 // Ambient coefficient
	Shininess float64 // Specular exponent
}

// NewPhong creates a phong material with explicit parameters
func NewPhong(diffuse, specular, ambient, lightPos, viewPos core.Vec3, kd, ks, ka, shininess float64) *Phong {
	return &Phong{
		Diffuse:   diffuse,
		Specular:  specular,
		Ambient:   ambient,
		LightPos:  lightPos,
		ViewPos:   viewPos,
		Kd:        kd,
		Ks:        ks,
		Ka:        ka,
		Shininess: shininess,
	}
}

// NewDefaultPhong creates a blue plastic-looking phong material lit from (5, 5, 0)
func NewDefaultPhong(viewPos core.Vec3) *Phong {
	return NewPhong(
		core.NewVec3(0, 0, 1),          // diffuse
		core.NewVec3(1, 1, 1),          // specular
		core.NewVec3(0.01, 0.01, 0.01), // ambient
		core.NewVec3(5, 5, 0),          // light
		viewPos,
		0.45, 0.45, 0.1, 10.0,
	)
}

// Scatter implements the Material interface. It always reports no scattered ray.
// When the surface faces away from the light the attenuation is left at zero.
func (p *Phong) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	var result ScatterResult

	unitNormal := hit.Normal.Normalize()
	lightDir := p.LightPos.Subtract(hit.Point).Normalize()
	lDotN := lightDir.Dot(unitNormal)
	if lDotN < 0 {
		return result, false
	}

	ambient := p.Ambient.Multiply(p.Ka)
	diffuse := p.Diffuse.Multiply(p.Kd * lDotN)

	reflectDir := unitNormal.Multiply(2 * lDotN).Subtract(lightDir)
	// A view behind the mirror direction loses only the highlight
	vDotR := math.Max(0, p.ViewPos.Normalize().Dot(reflectDir.Normalize()))
	specular := p.Specular.Multiply(p.Ks * math.Pow(vDotR, p.Shininess))

	result.Attenuation = ambient.Add(diffuse).Add(specular)
	return result, false
}

func (p *Phong) material() {}
