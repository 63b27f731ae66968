package shading

import (
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// Framebuffer holds the two render targets every fragment program writes:
// the primary color target and the secondary brightness target. The
// brightness target stays zero for now; it is the extraction hook a bloom
// post-process binds to, kept so the two-target output contract is stable.
type Framebuffer struct {
	Width      int
	Height     int
	Color      []mgl32.Vec4
	Brightness []mgl32.Vec4
}

func NewFramebuffer(width, height int) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid framebuffer size %dx%d", width, height)
	}
	return &Framebuffer{
		Width:      width,
		Height:     height,
		Color:      make([]mgl32.Vec4, width*height),
		Brightness: make([]mgl32.Vec4, width*height),
	}, nil
}

func (f *Framebuffer) Set(x, y int, color, brightness mgl32.Vec4) {
	i := y*f.Width + x
	f.Color[i] = color
	f.Brightness[i] = brightness
}

func (f *Framebuffer) ColorAt(x, y int) mgl32.Vec4 {
	return f.Color[y*f.Width+x]
}

func (f *Framebuffer) BrightnessAt(x, y int) mgl32.Vec4 {
	return f.Brightness[y*f.Width+x]
}

// Clear sets the color target to one color and zeroes the brightness target.
func (f *Framebuffer) Clear(color mgl32.Vec4) {
	for i := range f.Color {
		f.Color[i] = color
		f.Brightness[i] = mgl32.Vec4{}
	}
}

// Image converts the color target into an 8-bit RGBA image, clamping each
// channel to [0,1].
func (f *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			c := f.Color[y*f.Width+x]
			offset := img.PixOffset(x, y)
			img.Pix[offset+0] = floatToByte(c.X())
			img.Pix[offset+1] = floatToByte(c.Y())
			img.Pix[offset+2] = floatToByte(c.Z())
			img.Pix[offset+3] = floatToByte(c.W())
		}
	}
	return img
}
