package renderer

import (
	"fmt"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// maxChannel is the upper clamp for tone-mapped channels
const maxChannel = 0.999

var logger = log.New("renderer")

// Target receives rendered pixels. Row 0 is the top of the image.
type Target interface {
	Width() int
	Height() int
	SetPixel(row, col int, color core.Vec3)
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene      *scene.Scene
	config     scene.SamplingConfig
	integrator integrator.Integrator
	sampler    core.Sampler
}

// NewRaytracer creates a raytracer for a scene. The sampler is seeded from config.Seed.
func NewRaytracer(s *scene.Scene, config scene.SamplingConfig) (*Raytracer, error) {
	if s == nil {
		return nil, ErrNilScene
	}
	if s.Camera == nil {
		return nil, ErrNilCamera
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Raytracer{
		scene:      s,
		config:     config,
		integrator: integrator.NewPathTracingIntegrator(),
		sampler:    core.NewSeededSampler(config.Seed),
	}, nil
}

// SetIntegrator replaces the light transport algorithm; the default is path tracing
func (rt *Raytracer) SetIntegrator(it integrator.Integrator) {
	rt.integrator = it
}

// SetSampler replaces the random sampler used for pixel jitter and scattering
func (rt *Raytracer) SetSampler(sampler core.Sampler) {
	rt.sampler = sampler
}

// Render samples every pixel of target and writes the tone-mapped result.
// The target must match the configured image size, which is also the size the
// scene camera's aspect ratio was built for.
func (rt *Raytracer) Render(target Target) (RenderStats, error) {
	if rt.scene == nil {
		return RenderStats{}, ErrNilScene
	}
	if rt.scene.Camera == nil {
		return RenderStats{}, ErrNilCamera
	}
	if target == nil {
		return RenderStats{}, ErrNilTarget
	}

	width, height := target.Width(), target.Height()
	if width < 2 || height < 2 {
		return RenderStats{}, fmt.Errorf("%w: got %dx%d", scene.ErrInvalidDimensions, width, height)
	}
	if width != rt.config.Width || height != rt.config.Height {
		return RenderStats{}, fmt.Errorf("%w: target is %dx%d but the config is %dx%d",
			scene.ErrInvalidDimensions, width, height, rt.config.Width, rt.config.Height)
	}
	if rt.integrator == nil {
		rt.integrator = integrator.NewPathTracingIntegrator()
	}
	if rt.sampler == nil {
		rt.sampler = core.NewSeededSampler(rt.config.Seed)
	}

	start := time.Now()
	camera := rt.scene.Camera
	spp := rt.config.SamplesPerPixel
	progressStep := max(height/10, 1)

	logger.Infof("rendering %dx%d at %d spp, max depth %d", width, height, spp, rt.config.MaxDepth)

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			colorAccum := core.Vec3{X: 0, Y: 0, Z: 0}

			for sample := 0; sample < spp; sample++ {
				// Jitter inside the pixel; v runs bottom-up while rows run top-down
				jitter := rt.sampler.Get2D()
				u := (float64(col) + jitter.X) / float64(width-1)
				v := (float64(height-row-1) - jitter.Y) / float64(height-1)

				ray := camera.GetRay(u, v)
				colorAccum = colorAccum.Add(rt.integrator.RayColor(ray, rt.scene, rt.sampler, rt.config.MaxDepth))
			}

			target.SetPixel(row, col, ToneMap(colorAccum, spp, rt.config.Exposure))
		}

		if (row+1)%progressStep == 0 {
			logger.Debugf("rendered %d/%d rows", row+1, height)
		}
	}

	stats := RenderStats{
		Width:           width,
		Height:          height,
		TotalPixels:     width * height,
		TotalSamples:    width * height * spp,
		SamplesPerPixel: spp,
		MaxDepth:        rt.config.MaxDepth,
		Primitives:      rt.scene.GetPrimitiveCount(),
		RenderTime:      time.Since(start),
	}
	logger.Infof("rendered frame in %s", stats.RenderTime)

	return stats, nil
}

// ToneMap turns an accumulated sample sum into a display color: average over
// samples, apply exposure, clamp to [0, 0.999], then gamma-correct with gamma 2
func ToneMap(sum core.Vec3, samples int, exposure float64) core.Vec3 {
	scale := exposure / float64(samples)
	return sum.Multiply(scale).Clamp(0, maxChannel).Sqrt()
}
