package shading

import (
	"fmt"
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	xdraw "golang.org/x/image/draw"
)

type WrapMode int

const (
	Repeat WrapMode = iota
	ClampToEdge
)

type FilterMode int

const (
	Nearest FilterMode = iota
	Bilinear
)

// Texture is a read-only RGBA texture sampled by normalized uv coordinates.
// Texels are stored as float vectors so sampling never round-trips through
// 8-bit quantization mid-pipeline.
type Texture struct {
	width  int
	height int
	pix    []mgl32.Vec4 // row-major RGBA
	Wrap   WrapMode
	Filter FilterMode
}

func NewTexture(width, height int, wrap WrapMode) (*Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid texture size %dx%d", width, height)
	}
	return &Texture{
		width:  width,
		height: height,
		pix:    make([]mgl32.Vec4, width*height),
		Wrap:   wrap,
	}, nil
}

// NewTextureFromImage converts a decoded image into a sampleable texture.
func NewTextureFromImage(img image.Image, wrap WrapMode) (*Texture, error) {
	bounds := img.Bounds()
	tex, err := NewTexture(bounds.Dx(), bounds.Dy(), wrap)
	if err != nil {
		return nil, err
	}
	nrgba := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	xdraw.Copy(nrgba, image.Point{}, img, bounds, xdraw.Src, nil)
	for y := 0; y < tex.height; y++ {
		for x := 0; x < tex.width; x++ {
			offset := nrgba.PixOffset(x, y)
			tex.pix[y*tex.width+x] = mgl32.Vec4{
				float32(nrgba.Pix[offset+0]) / 255.0,
				float32(nrgba.Pix[offset+1]) / 255.0,
				float32(nrgba.Pix[offset+2]) / 255.0,
				float32(nrgba.Pix[offset+3]) / 255.0,
			}
		}
	}
	return tex, nil
}

// Rescale resamples the texture to a new resolution with the bilinear scaler.
func (t *Texture) Rescale(width, height int) (*Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid rescale size %dx%d", width, height)
	}
	src := t.toNRGBA()
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	scaled, err := NewTextureFromImage(dst, t.Wrap)
	if err != nil {
		return nil, err
	}
	scaled.Filter = t.Filter
	return scaled, nil
}

func (t *Texture) toNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, t.width, t.height))
	for y := 0; y < t.height; y++ {
		for x := 0; x < t.width; x++ {
			c := t.pix[y*t.width+x]
			offset := img.PixOffset(x, y)
			img.Pix[offset+0] = floatToByte(c.X())
			img.Pix[offset+1] = floatToByte(c.Y())
			img.Pix[offset+2] = floatToByte(c.Z())
			img.Pix[offset+3] = floatToByte(c.W())
		}
	}
	return img
}

func floatToByte(v float32) uint8 {
	return uint8(mgl32.Clamp(v, 0, 1)*255 + 0.5)
}

func (t *Texture) Width() int  { return t.width }
func (t *Texture) Height() int { return t.height }

func (t *Texture) SetTexel(x, y int, c mgl32.Vec4) {
	t.pix[y*t.width+x] = c
}

// Fill sets every texel to one color. Handy for building uniform test layers.
func (t *Texture) Fill(c mgl32.Vec4) {
	for i := range t.pix {
		t.pix[i] = c
	}
}

func wrapCoord(i, size int, mode WrapMode) int {
	switch mode {
	case Repeat:
		i %= size
		if i < 0 {
			i += size
		}
		return i
	default:
		if i < 0 {
			return 0
		}
		if i >= size {
			return size - 1
		}
		return i
	}
}

// Texel returns the texel at integer coordinates after wrap handling.
func (t *Texture) Texel(x, y int) mgl32.Vec4 {
	x = wrapCoord(x, t.width, t.Wrap)
	y = wrapCoord(y, t.height, t.Wrap)
	return t.pix[y*t.width+x]
}

// Sample reads the texture at a normalized uv coordinate. The wrap mode
// handles coordinates outside [0,1]; Repeat is the default for tiled detail
// textures, ClampToEdge for control maps.
func (t *Texture) Sample(uv mgl32.Vec2) mgl32.Vec4 {
	fx := float64(uv.X()) * float64(t.width)
	fy := float64(uv.Y()) * float64(t.height)
	if t.Filter == Nearest {
		return t.Texel(int(math.Floor(fx)), int(math.Floor(fy)))
	}
	// Bilinear: sample the four texels around the half-texel-shifted point
	fx -= 0.5
	fy -= 0.5
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := float32(fx - math.Floor(fx))
	ty := float32(fy - math.Floor(fy))
	top := lerp4(t.Texel(x0, y0), t.Texel(x0+1, y0), tx)
	bottom := lerp4(t.Texel(x0, y0+1), t.Texel(x0+1, y0+1), tx)
	return lerp4(top, bottom, ty)
}

func lerp4(a, b mgl32.Vec4, f float32) mgl32.Vec4 {
	return a.Mul(1 - f).Add(b.Mul(f))
}

// DepthMap is a single-channel depth buffer, the storage behind shadow maps.
type DepthMap struct {
	size  int
	depth []float32
}

func NewDepthMap(size int) (*DepthMap, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid depth map size %d", size)
	}
	return &DepthMap{size: size, depth: make([]float32, size*size)}, nil
}

func (d *DepthMap) Size() int { return d.size }

func (d *DepthMap) Set(x, y int, depth float32) {
	d.depth[y*d.size+x] = depth
}

// At returns the stored depth at integer texel coordinates, clamped to the
// map edges.
func (d *DepthMap) At(x, y int) float32 {
	x = wrapCoord(x, d.size, ClampToEdge)
	y = wrapCoord(y, d.size, ClampToEdge)
	return d.depth[y*d.size+x]
}

// Clear resets every texel to the given depth (1.0 = far plane).
func (d *DepthMap) Clear(depth float32) {
	for i := range d.depth {
		d.depth[i] = depth
	}
}

// Cube map face order: +X, -X, +Y, -Y, +Z, -Z.
const (
	CubeFacePosX = iota
	CubeFaceNegX
	CubeFacePosY
	CubeFaceNegY
	CubeFacePosZ
	CubeFaceNegZ
)

// CubeMap is an environment texture sampled by a direction vector.
type CubeMap struct {
	faces [6]*Texture
}

// NewCubeMap builds a cube map from six equally sized square faces.
func NewCubeMap(faces [6]*Texture) (*CubeMap, error) {
	size := 0
	for i, face := range faces {
		if face == nil {
			return nil, fmt.Errorf("cube face %d is nil", i)
		}
		if face.Width() != face.Height() {
			return nil, fmt.Errorf("cube face %d is not square: %dx%d", i, face.Width(), face.Height())
		}
		if i == 0 {
			size = face.Width()
		} else if face.Width() != size {
			return nil, fmt.Errorf("cube face %d size %d does not match face 0 size %d", i, face.Width(), size)
		}
	}
	return &CubeMap{faces: faces}, nil
}

// NewSolidCubeMap builds a 1x1 cube map of a single color, useful as a
// placeholder environment.
func NewSolidCubeMap(color mgl32.Vec4) *CubeMap {
	var faces [6]*Texture
	for i := range faces {
		face, _ := NewTexture(1, 1, ClampToEdge)
		face.SetTexel(0, 0, color)
		faces[i] = face
	}
	cube, _ := NewCubeMap(faces)
	return cube
}

// Sample picks the dominant-axis face for the direction and samples it. The
// direction does not need to be normalized.
func (c *CubeMap) Sample(dir mgl32.Vec3) mgl32.Vec4 {
	ax := float32(math.Abs(float64(dir.X())))
	ay := float32(math.Abs(float64(dir.Y())))
	az := float32(math.Abs(float64(dir.Z())))

	var face int
	var ma, sc, tc float32
	switch {
	case ax >= ay && ax >= az:
		ma = ax
		if dir.X() > 0 {
			face, sc, tc = CubeFacePosX, -dir.Z(), -dir.Y()
		} else {
			face, sc, tc = CubeFaceNegX, dir.Z(), -dir.Y()
		}
	case ay >= az:
		ma = ay
		if dir.Y() > 0 {
			face, sc, tc = CubeFacePosY, dir.X(), dir.Z()
		} else {
			face, sc, tc = CubeFaceNegY, dir.X(), -dir.Z()
		}
	default:
		ma = az
		if dir.Z() > 0 {
			face, sc, tc = CubeFacePosZ, dir.X(), -dir.Y()
		} else {
			face, sc, tc = CubeFaceNegZ, -dir.X(), -dir.Y()
		}
	}
	if ma == 0 {
		return mgl32.Vec4{}
	}
	u := (sc/ma + 1) / 2
	v := (tc/ma + 1) / 2
	return c.faces[face].Sample(mgl32.Vec2{u, v})
}
