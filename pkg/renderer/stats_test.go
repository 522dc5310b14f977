package renderer

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestRenderStats_WriteTable(t *testing.T) {
	stats := RenderStats{
		Width:           40,
		Height:          20,
		TotalPixels:     800,
		TotalSamples:    8000,
		SamplesPerPixel: 10,
		MaxDepth:        10,
		Primitives:      5,
		RenderTime:      2 * time.Second,
	}

	var buf bytes.Buffer
	stats.WriteTable(&buf)
	output := buf.String()

	for _, want := range []string{"Resolution", "40x20", "8000", "4000", "TOTAL", "2s"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected table to contain %q, got:\n%s", want, output)
		}
	}
}

func TestRenderStats_SamplesPerSecond(t *testing.T) {
	if got := (RenderStats{TotalSamples: 100}).SamplesPerSecond(); got != 0 {
		t.Errorf("Zero render time should report 0, got %f", got)
	}
	stats := RenderStats{TotalSamples: 300, RenderTime: 3 * time.Second}
	if got := stats.SamplesPerSecond(); got != 100 {
		t.Errorf("Expected 100 samples/s, got %f", got)
	}
}
