package terrain

import (
	"fmt"
	"math"

	"Gleam3D/internal/logger"
	"Gleam3D/internal/shading"

	perlin "github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// MapGenerator produces procedural control and height maps for the terrain
// compositor from layered perlin noise. Generation is deterministic per seed.
type MapGenerator struct {
	noise *perlin.Perlin
	scale float64
}

// NewMapGenerator creates a generator. alpha/beta/octaves follow the perlin
// library's parameters; scale stretches the noise over the map.
func NewMapGenerator(alpha, beta float64, octaves int32, seed int64, scale float64) (*MapGenerator, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("noise scale must be positive, got %v", scale)
	}
	return &MapGenerator{
		noise: perlin.NewPerlin(alpha, beta, octaves, seed),
		scale: scale,
	}, nil
}

// NewDefaultMapGenerator uses the smoothness parameters the stock scenes use.
func NewDefaultMapGenerator(seed int64) *MapGenerator {
	gen, _ := NewMapGenerator(2, 2, 3, seed, 4)
	return gen
}

// heightAt samples normalized noise in [0,1] at a map-relative coordinate.
func (g *MapGenerator) heightAt(u, v float64) float64 {
	n := g.noise.Noise2D(u*g.scale, v*g.scale)
	return (n + 1) / 2
}

// HeightMap renders the raw noise into a single-channel-style texture
// (height replicated into rgb, alpha 1).
func (g *MapGenerator) HeightMap(size int) (*shading.Texture, error) {
	tex, err := shading.NewTexture(size, size, shading.ClampToEdge)
	if err != nil {
		return nil, err
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			h := float32(g.heightAt(float64(x)/float64(size), float64(y)/float64(size)))
			tex.SetTexel(x, y, mgl32.Vec4{h, h, h, 1})
		}
	}
	return tex, nil
}

// BlendMap derives a control map from the noise height: the r channel weights
// the low band, g the mid band, b the high band, and whatever weight is left
// falls through to the compositor's background layer. Band weights are scaled
// so their sum never exceeds 1, keeping the compositor's lenient contract
// satisfied at the source.
func (g *MapGenerator) BlendMap(size int) (*shading.Texture, error) {
	tex, err := shading.NewTexture(size, size, shading.ClampToEdge)
	if err != nil {
		return nil, err
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			h := g.heightAt(float64(x)/float64(size), float64(y)/float64(size))
			r := bandWeight(h, 0.30, 0.15)
			gw := bandWeight(h, 0.55, 0.15)
			b := bandWeight(h, 0.80, 0.15)
			if sum := r + gw + b; sum > 1 {
				r /= sum
				gw /= sum
				b /= sum
			}
			tex.SetTexel(x, y, mgl32.Vec4{float32(r), float32(gw), float32(b), 1})
		}
	}
	logger.Log.Debug("Blend map generated", zap.Int("size", size))
	return tex, nil
}

// bandWeight is a triangular weight peaking at center and reaching zero at
// center +/- width.
func bandWeight(h, center, width float64) float64 {
	d := math.Abs(h - center)
	if d >= width {
		return 0
	}
	return 1 - d/width
}
