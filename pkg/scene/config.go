package scene

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDimensions = errors.New("scene: image width and height must both be at least 2")
	ErrInvalidSamples    = errors.New("scene: samples per pixel must be positive")
	ErrInvalidDepth      = errors.New("scene: max depth must be positive")
	ErrInvalidExposure   = errors.New("scene: exposure must be positive")
	ErrUnknownScene      = errors.New("scene: unknown scene")
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int     // Image width
	Height          int     // Image height
	SamplesPerPixel int     // Number of rays per pixel
	MaxDepth        int     // Maximum ray bounce depth
	Exposure        float64 // Multiplier applied to the averaged color before clamping
	Seed            int64   // Seed for the render's random sampler
}

// DefaultSamplingConfig returns the settings used when a scene does not recommend its own
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           400,
		Height:          200,
		SamplesPerPixel: 10,
		MaxDepth:        10,
		Exposure:        1.0,
		Seed:            42,
	}
}

// Validate checks that the config describes a renderable image.
// Pixel coordinates divide by width-1 and height-1, so both must be at least 2.
func (c SamplingConfig) Validate() error {
	if c.Width < 2 || c.Height < 2 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSamples, c.SamplesPerPixel)
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidDepth, c.MaxDepth)
	}
	if c.Exposure <= 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidExposure, c.Exposure)
	}
	return nil
}

// Merge returns a copy of c with every non-zero field of override applied on top
func (c SamplingConfig) Merge(override SamplingConfig) SamplingConfig {
	result := c
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	if override.SamplesPerPixel != 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.Exposure != 0 {
		result.Exposure = override.Exposure
	}
	if override.Seed != 0 {
		result.Seed = override.Seed
	}
	return result
}
