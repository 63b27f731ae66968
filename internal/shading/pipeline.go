package shading

import (
	"runtime"

	"Gleam3D/internal/logger"

	"github.com/alitto/pond/v2"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// EntityShader shades textured models: atlas lookup, multi-light phong,
// shadow resolve, fog. All fields are bound per draw call by the host and
// read-only during shading.
type EntityShader struct {
	Transforms *TransformSet
	Config     *PipelineConfig
	Lights     []Light
	Texture    *Texture
	Shadow     *ShadowMap

	ShineDamper  float32
	Reflectivity float32
	FakeLighting bool
	AtlasRows    float32
	AtlasOffset  mgl32.Vec2
	ClipPlane    mgl32.Vec4
}

func (s *EntityShader) Vertex(v Vertex) VertexOutput {
	return TransformVertex(s.Transforms, s.Config, s.Lights, DrawParams{
		FakeLighting: s.FakeLighting,
		AtlasRows:    s.AtlasRows,
		AtlasOffset:  s.AtlasOffset,
		ClipPlane:    s.ClipPlane,
	}, v)
}

// Fragment shades one pixel from interpolated vertex output. The second
// return value is the brightness target, always zero for now.
func (s *EntityShader) Fragment(out VertexOutput) (color, brightness mgl32.Vec4) {
	albedo := s.Texture.Sample(out.TexCoord)

	lightFactor := float32(1)
	if s.Shadow != nil {
		lightFactor = s.Shadow.Resolve(out.ShadowCoords, s.Config.PCFRadius, s.Config.ShadowBias)
	}
	diffuse, specular := EvaluateLighting(&out, s.Lights, s.ShineDamper, s.Reflectivity, lightFactor, s.Config)

	lit := CompositeColor(albedo, diffuse, specular)
	return ApplyFog(lit, s.Config.SkyColor, out.Visibility), mgl32.Vec4{}
}

// TerrainShader shades the ground: four blend-mapped detail layers instead of
// a single atlas texture, otherwise the same lighting path as entities.
type TerrainShader struct {
	Transforms *TransformSet
	Config     *PipelineConfig
	Lights     []Light
	Layers     *TerrainLayers
	Shadow     *ShadowMap

	ShineDamper  float32
	Reflectivity float32
	ClipPlane    mgl32.Vec4
}

func (s *TerrainShader) Vertex(v Vertex) VertexOutput {
	return TransformVertex(s.Transforms, s.Config, s.Lights, DrawParams{
		ClipPlane: s.ClipPlane,
	}, v)
}

func (s *TerrainShader) Fragment(out VertexOutput) (color, brightness mgl32.Vec4) {
	albedo := s.Layers.Albedo(out.TexCoord, s.Config.TerrainTiling)

	lightFactor := float32(1)
	if s.Shadow != nil {
		lightFactor = s.Shadow.Resolve(out.ShadowCoords, s.Config.PCFRadius, s.Config.ShadowBias)
	}
	diffuse, specular := EvaluateLighting(&out, s.Lights, s.ShineDamper, s.Reflectivity, lightFactor, s.Config)

	lit := CompositeColor(albedo, diffuse, specular)
	return ApplyFog(lit, s.Config.SkyColor, out.Visibility), mgl32.Vec4{}
}

// SkyboxShader shades the background cube by view direction alone.
type SkyboxShader struct {
	Config *PipelineConfig
	Sky    *Skybox
}

func (s *SkyboxShader) Fragment(dir mgl32.Vec3) (color, brightness mgl32.Vec4) {
	return s.Sky.Sample(dir, s.Config), mgl32.Vec4{}
}

// FragmentFunc computes the two target values for one pixel. It must be a
// pure function of its coordinates: the dispatcher calls it concurrently
// with no ordering guarantees.
type FragmentFunc func(x, y int) (color, brightness mgl32.Vec4)

// Dispatcher fans fragment evaluation out over a worker pool, one task per
// row. Rows touch disjoint framebuffer slices so no synchronization beyond
// the group wait is needed.
type Dispatcher struct {
	pool pond.Pool
}

// NewDispatcher creates a dispatcher with the given parallelism; values < 1
// use one worker per CPU.
func NewDispatcher(workers int) *Dispatcher {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	logger.Log.Debug("Dispatcher created", zap.Int("workers", workers))
	return &Dispatcher{pool: pond.NewPool(workers)}
}

// Shade evaluates frag for every pixel of the framebuffer and writes both
// targets. It blocks until the frame is complete.
func (d *Dispatcher) Shade(fb *Framebuffer, frag FragmentFunc) {
	group := d.pool.NewGroup()
	for y := 0; y < fb.Height; y++ {
		row := y
		group.Submit(func() {
			for x := 0; x < fb.Width; x++ {
				color, brightness := frag(x, row)
				fb.Set(x, row, color, brightness)
			}
		})
	}
	group.Wait()
}

// Close stops the worker pool after in-flight rows finish.
func (d *Dispatcher) Close() {
	d.pool.StopAndWait()
}
