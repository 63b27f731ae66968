package shading

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func writeTestPNG(t *testing.T, w, h int, c color.NRGBA) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	path := filepath.Join(t.TempDir(), "tex.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTextureManagerLoadAndCache(t *testing.T) {
	path := writeTestPNG(t, 4, 2, color.NRGBA{R: 255, A: 255})
	tm := NewTextureManager()

	tex, err := tm.Load(path, Repeat)
	if err != nil {
		t.Fatal(err)
	}
	if tex.Width() != 4 || tex.Height() != 2 {
		t.Fatalf("loaded %dx%d, want 4x2", tex.Width(), tex.Height())
	}
	if !vec4Near(tex.Texel(0, 0), mgl32.Vec4{1, 0, 0, 1}, 1e-2) {
		t.Fatalf("texel = %v, want red", tex.Texel(0, 0))
	}

	again, err := tm.Load(path, Repeat)
	if err != nil {
		t.Fatal(err)
	}
	if again != tex {
		t.Fatal("second load did not hit the cache")
	}

	stats := tm.Stats()
	if stats.CacheHits != 1 || stats.CacheMisses != 1 || stats.TotalLoads != 1 {
		t.Fatalf("stats = %+v, want 1 hit, 1 miss, 1 load", stats)
	}
	if stats.Resident != 1 {
		t.Fatalf("resident = %d, want 1", stats.Resident)
	}
}

func TestTextureManagerLoadMissingFile(t *testing.T) {
	tm := NewTextureManager()
	if _, err := tm.Load(filepath.Join(t.TempDir(), "missing.png"), Repeat); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestTextureManagerAddAndLookup(t *testing.T) {
	tm := NewTextureManager()
	tex, err := NewTexture(1, 1, ClampToEdge)
	if err != nil {
		t.Fatal(err)
	}
	tm.Add("procedural", tex)

	got, ok := tm.Lookup("procedural")
	if !ok || got != tex {
		t.Fatal("lookup did not return the registered texture")
	}
	if _, ok := tm.Lookup("absent"); ok {
		t.Fatal("lookup of unknown name should miss")
	}

	tm.Clear()
	if _, ok := tm.Lookup("procedural"); ok {
		t.Fatal("clear should drop cached textures")
	}
	if got := tm.Stats().Resident; got != 0 {
		t.Fatalf("resident after clear = %d, want 0", got)
	}
}
