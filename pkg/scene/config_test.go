package scene

import (
	"errors"
	"testing"
)

func TestSamplingConfig_Validate(t *testing.T) {
	valid := DefaultSamplingConfig()

	tests := []struct {
		name     string
		modify   func(*SamplingConfig)
		expected error
	}{
		{"Default is valid", func(c *SamplingConfig) {}, nil},
		{"Smallest image", func(c *SamplingConfig) { c.Width, c.Height = 2, 2 }, nil},
		{"Single column", func(c *SamplingConfig) { c.Width = 1 }, ErrInvalidDimensions},
		{"Zero height", func(c *SamplingConfig) { c.Height = 0 }, ErrInvalidDimensions},
		{"Negative width", func(c *SamplingConfig) { c.Width = -10 }, ErrInvalidDimensions},
		{"No samples", func(c *SamplingConfig) { c.SamplesPerPixel = 0 }, ErrInvalidSamples},
		{"No depth", func(c *SamplingConfig) { c.MaxDepth = 0 }, ErrInvalidDepth},
		{"Negative exposure", func(c *SamplingConfig) { c.Exposure = -1 }, ErrInvalidExposure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := valid
			tt.modify(&config)
			err := config.Validate()

			if tt.expected == nil {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestSamplingConfig_Merge(t *testing.T) {
	base := DefaultSamplingConfig()

	merged := base.Merge(SamplingConfig{Width: 64, SamplesPerPixel: 3, Seed: 7})

	expected := base
	expected.Width = 64
	expected.SamplesPerPixel = 3
	expected.Seed = 7
	if merged != expected {
		t.Errorf("Expected %+v, got %+v", expected, merged)
	}

	if base.Merge(SamplingConfig{}) != base {
		t.Error("Merging an empty config should change nothing")
	}
}
