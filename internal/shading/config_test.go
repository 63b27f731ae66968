package shading

import (
	"testing"
)

func TestDefaultPipelineConfig(t *testing.T) {
	config := DefaultPipelineConfig()

	if err := config.Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}

	if config.AmbientMin <= 0 {
		t.Error("default ambient minimum should be positive")
	}

	if config.CelShading {
		t.Error("cel shading should be off by default")
	}

	if config.PCFRadius != 1 {
		t.Errorf("expected default PCF radius 1, got %d", config.PCFRadius)
	}

	if config.TerrainTiling <= 0 {
		t.Error("default terrain tiling should be positive")
	}
}

func TestCelShadedPipelineConfig(t *testing.T) {
	config := CelShadedPipelineConfig()

	if !config.CelShading {
		t.Error("cel preset should enable cel shading")
	}

	if config.CelLevels < 1 {
		t.Error("cel preset should have at least one level")
	}

	if err := config.Validate(); err != nil {
		t.Errorf("cel preset should validate, got %v", err)
	}
}

func TestPerformancePipelineConfig(t *testing.T) {
	config := PerformancePipelineConfig()

	if config.PCFRadius != 0 {
		t.Error("performance preset should use single-tap shadows")
	}

	if err := config.Validate(); err != nil {
		t.Errorf("performance preset should validate, got %v", err)
	}
}

func TestPipelineConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*PipelineConfig)
	}{
		{"zero fog gradient", func(c *PipelineConfig) { c.FogGradient = 0 }},
		{"negative pcf radius", func(c *PipelineConfig) { c.PCFRadius = -1 }},
		{"zero shadow transition", func(c *PipelineConfig) { c.ShadowTransition = 0 }},
		{"inverted sky limits", func(c *PipelineConfig) { c.SkyUpperLimit = c.SkyLowerLimit }},
		{"zero tiling", func(c *PipelineConfig) { c.TerrainTiling = 0 }},
		{"cel without levels", func(c *PipelineConfig) { c.CelShading = true; c.CelLevels = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			config := DefaultPipelineConfig()
			tc.mutate(&config)
			if err := config.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
