package shading

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewFramebufferInvalidSize(t *testing.T) {
	if _, err := NewFramebuffer(0, 10); err == nil {
		t.Error("zero width should be rejected")
	}
	if _, err := NewFramebuffer(10, -2); err == nil {
		t.Error("negative height should be rejected")
	}
}

func TestFramebufferSetAndGet(t *testing.T) {
	fb, err := NewFramebuffer(4, 3)
	if err != nil {
		t.Fatal(err)
	}

	color := mgl32.Vec4{0.1, 0.2, 0.3, 1}
	brightness := mgl32.Vec4{0.5, 0, 0, 0}
	fb.Set(2, 1, color, brightness)

	if fb.ColorAt(2, 1) != color {
		t.Errorf("color target read back %v, want %v", fb.ColorAt(2, 1), color)
	}
	if fb.BrightnessAt(2, 1) != brightness {
		t.Errorf("brightness target read back %v, want %v", fb.BrightnessAt(2, 1), brightness)
	}
	if fb.ColorAt(0, 0) != (mgl32.Vec4{}) {
		t.Error("untouched pixels should stay zero")
	}
}

func TestFramebufferClear(t *testing.T) {
	fb, _ := NewFramebuffer(2, 2)
	fb.Set(1, 1, mgl32.Vec4{1, 1, 1, 1}, mgl32.Vec4{1, 0, 0, 0})

	clearColor := mgl32.Vec4{0.5, 0.6, 0.7, 1}
	fb.Clear(clearColor)

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if fb.ColorAt(x, y) != clearColor {
				t.Errorf("pixel (%d,%d) color %v after clear", x, y, fb.ColorAt(x, y))
			}
			if fb.BrightnessAt(x, y) != (mgl32.Vec4{}) {
				t.Errorf("pixel (%d,%d) brightness should clear to zero", x, y)
			}
		}
	}
}

func TestFramebufferImageClamps(t *testing.T) {
	fb, _ := NewFramebuffer(2, 1)
	fb.Set(0, 0, mgl32.Vec4{2, -1, 0.5, 1}, mgl32.Vec4{})

	img := fb.Image()
	r, g, b, _ := img.At(0, 0).RGBA()
	if r>>8 != 255 {
		t.Errorf("overbright channel should clamp to 255, got %d", r>>8)
	}
	if g>>8 != 0 {
		t.Errorf("negative channel should clamp to 0, got %d", g>>8)
	}
	if b>>8 != 128 {
		t.Errorf("mid channel should quantize to 128, got %d", b>>8)
	}
}
