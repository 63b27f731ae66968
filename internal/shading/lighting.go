package shading

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Light is a point light: world position, RGB intensity and an attenuation
// triple (constant, linear, quadratic). The host binds up to MaxLights per
// draw; slot order must match between vertex and fragment stage, which the
// pipeline preserves by indexing the same slice in both.
type Light struct {
	Position    mgl32.Vec3
	Color       mgl32.Vec3
	Attenuation mgl32.Vec3
}

// NewPointLight builds a light with no distance falloff.
func NewPointLight(position, color mgl32.Vec3) Light {
	return Light{Position: position, Color: color, Attenuation: mgl32.Vec3{1, 0, 0}}
}

// NewAttenuatedLight builds a light with the given falloff coefficients. The
// host must keep the triple non-degenerate: a zero factor at zero distance
// divides by zero downstream.
func NewAttenuatedLight(position, color mgl32.Vec3, constant, linear, quadratic float32) Light {
	return Light{Position: position, Color: color, Attenuation: mgl32.Vec3{constant, linear, quadratic}}
}

// AttenuationAt evaluates the falloff polynomial c + l*d + q*d^2.
func (l Light) AttenuationAt(distance float32) float32 {
	a := l.Attenuation
	return a.X() + a.Y()*distance + a.Z()*distance*distance
}

// celBand quantizes a brightness value into a fixed number of levels.
func celBand(x, levels float32) float32 {
	return float32(math.Floor(float64(x*levels))) / levels
}

// EvaluateLighting accumulates diffuse and specular contributions from every
// bound light for one fragment. lightFactor is the shadow term from the
// resolver (1 = fully lit); it scales only the diffuse sum, which is then
// floored at the ambient minimum so no surface goes fully black.
func EvaluateLighting(out *VertexOutput, lights []Light, shineDamper, reflectivity, lightFactor float32, cfg *PipelineConfig) (diffuse, specular mgl32.Vec3) {
	unitNormal := out.Normal.Normalize()
	unitToCamera := out.ToCamera.Normalize()

	if len(lights) > MaxLights {
		lights = lights[:MaxLights]
	}
	for i := range lights {
		toLight := out.ToLight[i]
		distance := toLight.Len()
		attenuation := lights[i].AttenuationAt(distance)

		brightness := unitNormal.Dot(toLight.Normalize())
		if brightness < 0 {
			brightness = 0
		}
		specFactor := unitToCamera.Dot(out.Reflected[i].Normalize())
		if specFactor < 0 {
			specFactor = 0
		}
		damped := float32(math.Pow(float64(specFactor), float64(shineDamper))) * reflectivity

		if cfg.CelShading {
			brightness = celBand(brightness, cfg.CelLevels)
			damped = celBand(damped, cfg.CelLevels)
		}

		diffuse = diffuse.Add(lights[i].Color.Mul(brightness / attenuation))
		specular = specular.Add(lights[i].Color.Mul(damped / attenuation))
	}

	diffuse = diffuse.Mul(lightFactor)
	diffuse = mgl32.Vec3{
		maxf(diffuse.X(), cfg.AmbientMin),
		maxf(diffuse.Y(), cfg.AmbientMin),
		maxf(diffuse.Z(), cfg.AmbientMin),
	}
	return diffuse, specular
}

// CompositeColor combines the lighting terms with the surface albedo. The
// specular highlight is added after the albedo multiply so it keeps the light
// color regardless of the surface underneath.
func CompositeColor(albedo mgl32.Vec4, diffuse, specular mgl32.Vec3) mgl32.Vec4 {
	return mgl32.Vec4{
		diffuse.X()*albedo.X() + specular.X(),
		diffuse.Y()*albedo.Y() + specular.Y(),
		diffuse.Z()*albedo.Z() + specular.Z(),
		albedo.W(),
	}
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
