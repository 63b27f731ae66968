package shading

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// TerrainLayers groups the four tiled detail textures and the control map
// that mixes them. The blend map's r/g/b channels weight the three overlay
// layers; whatever weight remains goes to the background layer.
type TerrainLayers struct {
	Background *Texture
	LayerR     *Texture
	LayerG     *Texture
	LayerB     *Texture
	BlendMap   *Texture
}

// NewTerrainLayers validates that every layer is bound.
func NewTerrainLayers(background, layerR, layerG, layerB, blendMap *Texture) (*TerrainLayers, error) {
	for name, tex := range map[string]*Texture{
		"background": background,
		"layerR":     layerR,
		"layerG":     layerG,
		"layerB":     layerB,
		"blendMap":   blendMap,
	} {
		if tex == nil {
			return nil, fmt.Errorf("terrain layer %s is nil", name)
		}
	}
	return &TerrainLayers{
		Background: background,
		LayerR:     layerR,
		LayerG:     layerG,
		LayerB:     layerB,
		BlendMap:   blendMap,
	}, nil
}

// Albedo composites the surface color at uv. The control map is sampled at
// the original coordinate while the detail textures use the tiled coordinate,
// repeating small textures across the whole terrain. Weights are taken as-is:
// a control texel whose channels sum past 1 oversaturates additively rather
// than being renormalized.
func (t *TerrainLayers) Albedo(uv mgl32.Vec2, tiling float32) mgl32.Vec4 {
	blend := t.BlendMap.Sample(uv)
	backAmount := 1 - (blend.X() + blend.Y() + blend.Z())

	tiled := uv.Mul(tiling)
	albedo := t.Background.Sample(tiled).Mul(backAmount)
	albedo = albedo.Add(t.LayerR.Sample(tiled).Mul(blend.X()))
	albedo = albedo.Add(t.LayerG.Sample(tiled).Mul(blend.Y()))
	albedo = albedo.Add(t.LayerB.Sample(tiled).Mul(blend.Z()))
	return albedo
}
