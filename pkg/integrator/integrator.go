package integrator

import (
	"errors"
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/scene"
)

var ErrUnknownIntegrator = errors.New("integrator: unknown integrator")

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the color carried back along ray, following at most depth bounces
	RayColor(ray core.Ray, scene *scene.Scene, sampler core.Sampler, depth int) core.Vec3
}

// Names lists the integrators accepted by New
func Names() []string {
	return []string{"path", "normals"}
}

// New creates an integrator by name: "path" (the default when name is empty) or "normals"
func New(name string) (Integrator, error) {
	switch name {
	case "", "path":
		return NewPathTracingIntegrator(), nil
	case "normals":
		return NewNormalsIntegrator(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownIntegrator, name)
	}
}
