package shading

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ApplyFog blends the lit fragment color toward the sky color by the fog
// visibility from the geometry stage. Alpha is preserved.
func ApplyFog(lit mgl32.Vec4, skyColor mgl32.Vec3, visibility float32) mgl32.Vec4 {
	fogged := mix3(skyColor, lit.Vec3(), visibility)
	return fogged.Vec4(lit.W())
}

// Skybox holds the day and night environment cube maps and the time-of-day
// blend between them: 0 full day, 1 full night. The blend factor and sky
// color animate across frames, owned and mutated by the host.
type Skybox struct {
	Day         *CubeMap
	Night       *CubeMap
	BlendFactor float32
}

// Sample shades one skybox fragment. dir is the cube-space direction for the
// fragment (unnormalized cube vertex positions work, matching the limits in
// the config). The day/night mix is additionally pulled toward the fog color
// in the horizon band between SkyLowerLimit and SkyUpperLimit so the sky
// meets the terrain fog seamlessly, while the zenith stays untouched.
func (s *Skybox) Sample(dir mgl32.Vec3, cfg *PipelineConfig) mgl32.Vec4 {
	day := s.Day.Sample(dir)
	night := s.Night.Sample(dir)
	blended := lerp4(day, night, s.BlendFactor)

	factor := mgl32.Clamp((dir.Y()-cfg.SkyLowerLimit)/(cfg.SkyUpperLimit-cfg.SkyLowerLimit), 0, 1)
	final := mix3(cfg.SkyColor, blended.Vec3(), factor)
	return final.Vec4(blended.W())
}

// mix3 is GLSL mix: a at f=0, b at f=1.
func mix3(a, b mgl32.Vec3, f float32) mgl32.Vec3 {
	return a.Mul(1 - f).Add(b.Mul(f))
}
