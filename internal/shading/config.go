package shading

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxLights is the number of light slots carried through the pipeline per draw.
// Hosts may bind fewer lights; extra lights beyond this bound are ignored.
const MaxLights = 4

// PipelineConfig holds the per-pipeline tunables shared by all draw calls.
// Per-draw values (matrices, shine/reflectivity, atlas placement) live on the
// shader structs instead.
type PipelineConfig struct {
	// Lighting
	AmbientMin float32 `json:"ambientMin"` // floor for the accumulated diffuse term, per channel
	CelShading bool    `json:"celShading"` // quantize diffuse/specular into discrete bands
	CelLevels  float32 `json:"celLevels"`  // number of bands when CelShading is on

	// Fog / atmosphere
	FogDensity    float32    `json:"fogDensity"`
	FogGradient   float32    `json:"fogGradient"`
	SkyColor      mgl32.Vec3 `json:"skyColor"`
	SkyLowerLimit float32    `json:"skyLowerLimit"` // horizon band start, cube-space units
	SkyUpperLimit float32    `json:"skyUpperLimit"` // horizon band end, cube-space units

	// Shadows
	PCFRadius        int     `json:"pcfRadius"`  // kernel radius; 1 = 3x3 samples
	ShadowBias       float32 `json:"shadowBias"` // depth bias against self-shadowing
	ShadowDistance   float32 `json:"shadowDistance"`
	ShadowTransition float32 `json:"shadowTransition"` // fade band before ShadowDistance

	// Terrain
	TerrainTiling float32 `json:"terrainTiling"` // detail texture repeat factor
}

// DefaultPipelineConfig returns the tunables used by the stock outdoor scenes.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		AmbientMin: 0.2,
		CelShading: false,
		CelLevels:  3.0,

		FogDensity:  0.0035,
		FogGradient: 5.0,
		// Hazy daylight; doubles as the fog color
		SkyColor:      mgl32.Vec3{0.5444, 0.62, 0.69},
		SkyLowerLimit: 0.0,
		SkyUpperLimit: 30.0,

		PCFRadius:        1,
		ShadowBias:       0.005,
		ShadowDistance:   150.0,
		ShadowTransition: 10.0,

		TerrainTiling: 40.0,
	}
}

// CelShadedPipelineConfig enables banded lighting for a toon look.
func CelShadedPipelineConfig() PipelineConfig {
	config := DefaultPipelineConfig()
	config.CelShading = true
	config.CelLevels = 3.0
	return config
}

// PerformancePipelineConfig trades shadow softness for fewer samples per pixel.
func PerformancePipelineConfig() PipelineConfig {
	config := DefaultPipelineConfig()
	config.PCFRadius = 0 // single-tap hard shadows
	return config
}

// Validate reports configuration values that would produce undefined math
// downstream. Degenerate per-draw inputs (singular matrices, zero attenuation)
// are the host's responsibility and are not checked here.
func (c *PipelineConfig) Validate() error {
	if c.CelShading && c.CelLevels < 1 {
		return fmt.Errorf("cel shading needs at least 1 level, got %v", c.CelLevels)
	}
	if c.FogGradient <= 0 {
		return fmt.Errorf("fog gradient must be positive, got %v", c.FogGradient)
	}
	if c.PCFRadius < 0 {
		return fmt.Errorf("pcf radius must be non-negative, got %d", c.PCFRadius)
	}
	if c.ShadowTransition <= 0 {
		return fmt.Errorf("shadow transition must be positive, got %v", c.ShadowTransition)
	}
	if c.SkyUpperLimit <= c.SkyLowerLimit {
		return fmt.Errorf("sky upper limit %v must exceed lower limit %v", c.SkyUpperLimit, c.SkyLowerLimit)
	}
	if c.TerrainTiling <= 0 {
		return fmt.Errorf("terrain tiling must be positive, got %v", c.TerrainTiling)
	}
	return nil
}
