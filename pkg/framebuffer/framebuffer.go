package framebuffer

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"github.com/mrjoshuak/go-openexr/exr"

	"github.com/df07/go-pathtracer/pkg/core"
)

var ErrUnsupportedFormat = errors.New("framebuffer: unsupported image format")

// FrameBuffer stores tone-mapped colors with channels in [0, 1]. Row 0 is the top of the image.
type FrameBuffer struct {
	width  int
	height int
	pixels []core.Vec3
}

// New creates a black frame buffer
func New(width, height int) *FrameBuffer {
	width = max(width, 0)
	height = max(height, 0)
	return &FrameBuffer{
		width:  width,
		height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// Width returns the image width in pixels
func (fb *FrameBuffer) Width() int {
	return fb.width
}

// Height returns the image height in pixels
func (fb *FrameBuffer) Height() int {
	return fb.height
}

// SetPixel stores a color; coordinates outside the image are ignored
func (fb *FrameBuffer) SetPixel(row, col int, c core.Vec3) {
	if !fb.inBounds(row, col) {
		return
	}
	fb.pixels[row*fb.width+col] = c
}

// Pixel returns the stored color, or black outside the image
func (fb *FrameBuffer) Pixel(row, col int) core.Vec3 {
	if !fb.inBounds(row, col) {
		return core.Vec3{}
	}
	return fb.pixels[row*fb.width+col]
}

func (fb *FrameBuffer) inBounds(row, col int) bool {
	return row >= 0 && row < fb.height && col >= 0 && col < fb.width
}

// Image quantizes the buffer to 8 bits per channel
func (fb *FrameBuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for row := 0; row < fb.height; row++ {
		for col := 0; col < fb.width; col++ {
			c := fb.pixels[row*fb.width+col]
			img.SetRGBA(col, row, color.RGBA{
				R: quantize(c.X),
				G: quantize(c.Y),
				B: quantize(c.Z),
				A: 255,
			})
		}
	}
	return img
}

// quantize maps [0, 1) onto 0..255 with equal-width buckets
func quantize(channel float64) uint8 {
	v := int(256 * channel)
	return uint8(min(max(v, 0), 255))
}

// Save writes the buffer to path; the extension selects PNG or OpenEXR
func (fb *FrameBuffer) Save(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return fb.savePNG(path)
	case ".exr":
		return fb.saveEXR(path)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func (fb *FrameBuffer) savePNG(path string) error {
	dc := gg.NewContextForRGBA(fb.Image())
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("framebuffer: writing png %s: %w", path, err)
	}
	return nil
}

// saveEXR writes the stored colors as half-float channels with alpha 1
func (fb *FrameBuffer) saveEXR(path string) error {
	img := exr.NewRGBAImage(image.Rect(0, 0, fb.width, fb.height))
	for row := 0; row < fb.height; row++ {
		for col := 0; col < fb.width; col++ {
			c := fb.pixels[row*fb.width+col]
			img.SetRGBA(col, row, float32(c.X), float32(c.Y), float32(c.Z), 1)
		}
	}
	if err := exr.EncodeFile(path, img); err != nil {
		return fmt.Errorf("framebuffer: writing exr %s: %w", path, err)
	}
	return nil
}
