package renderer

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width           int           // Image width in pixels
	Height          int           // Image height in pixels
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of camera rays traced
	SamplesPerPixel int           // Samples taken per pixel
	MaxDepth        int           // Maximum ray bounce depth
	Primitives      int           // Number of primitives in the scene
	RenderTime      time.Duration // Wall-clock render time
}

// SamplesPerSecond returns the camera ray throughput
func (s RenderStats) SamplesPerSecond() float64 {
	if s.RenderTime <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.RenderTime.Seconds()
}

// WriteTable renders the statistics as a text table
func (s RenderStats) WriteTable(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Resolution", "Primitives", "SPP", "Max depth", "Samples", "Samples/s"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", s.Width, s.Height),
		fmt.Sprintf("%d", s.Primitives),
		fmt.Sprintf("%d", s.SamplesPerPixel),
		fmt.Sprintf("%d", s.MaxDepth),
		fmt.Sprintf("%d", s.TotalSamples),
		fmt.Sprintf("%.0f", s.SamplesPerSecond()),
	})
	table.SetFooter([]string{"", "", "", "", "TOTAL", s.RenderTime.Round(time.Millisecond).String()})
	table.Render()
}
