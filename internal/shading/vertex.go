package shading

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is the per-vertex input supplied by the host: object-space position,
// atlas texture coordinate and object-space normal. When a draw uses fake
// lighting the normal may be garbage; the transform stage overrides it.
type Vertex struct {
	Position mgl32.Vec3
	TexCoord mgl32.Vec2
	Normal   mgl32.Vec3
}

// TransformSet bundles the per-draw matrices and the derived quantities that
// are invariant across all vertices of the draw: the normal matrix
// (inverse-transpose of the model matrix, correct under non-uniform scale)
// and the camera position recovered from the view inverse. Both are computed
// once here instead of per vertex.
type TransformSet struct {
	Model       mgl32.Mat4
	View        mgl32.Mat4
	Projection  mgl32.Mat4
	ShadowSpace mgl32.Mat4 // world -> shadow-map uv/depth, built by the caster pass

	normal    mgl32.Mat4
	cameraPos mgl32.Vec3
}

// NewTransformSet derives the per-draw matrices. It fails on singular model
// or view matrices since the normal matrix and camera recovery invert them.
func NewTransformSet(model, view, projection, shadowSpace mgl32.Mat4) (*TransformSet, error) {
	if model.Det() == 0 {
		return nil, fmt.Errorf("model matrix is singular")
	}
	if view.Det() == 0 {
		return nil, fmt.Errorf("view matrix is singular")
	}
	return &TransformSet{
		Model:       model,
		View:        view,
		Projection:  projection,
		ShadowSpace: shadowSpace,
		normal:      model.Inv().Transpose(),
		cameraPos:   view.Inv().Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3(),
	}, nil
}

// NormalMatrix returns the inverse-transpose of the model matrix.
func (t *TransformSet) NormalMatrix() mgl32.Mat4 { return t.normal }

// CameraPosition returns the world-space camera position recovered from the
// view matrix.
func (t *TransformSet) CameraPosition() mgl32.Vec3 { return t.cameraPos }

// DrawParams are the per-draw flags and scalars consumed by the geometry
// stage beyond the matrices.
type DrawParams struct {
	// FakeLighting replaces the authored normal with straight up before the
	// normal transform. An explicit opt-in for models without usable normals.
	FakeLighting bool
	// AtlasRows and AtlasOffset select a sub-tile of a texture atlas.
	// Rows <= 1 leaves the coordinate untouched.
	AtlasRows   float32
	AtlasOffset mgl32.Vec2
	// ClipPlane is a world-space plane (a,b,c,d); fragments with a negative
	// plane distance are discarded by the host. The zero plane clips nothing.
	ClipPlane mgl32.Vec4
}

// VertexOutput carries everything the fragment stages need, interpolated by
// the host rasterizer between vertices.
type VertexOutput struct {
	ClipPosition  mgl32.Vec4
	WorldPosition mgl32.Vec3
	Normal        mgl32.Vec3            // world space, not normalized
	ToLight       [MaxLights]mgl32.Vec3 // light pos minus world pos, unnormalized: length feeds attenuation
	Reflected     [MaxLights]mgl32.Vec3 // per-light specular reflection direction
	ToCamera      mgl32.Vec3
	TexCoord      mgl32.Vec2
	Visibility    float32    // fog factor, 1 = fully visible
	ShadowCoords  mgl32.Vec4 // xy uv, z caster depth, w distance fade
	ClipDistance  float32
}

// TransformVertex runs the geometry stage for one vertex of one draw call.
func TransformVertex(ts *TransformSet, cfg *PipelineConfig, lights []Light, params DrawParams, v Vertex) VertexOutput {
	var out VertexOutput

	worldPos4 := ts.Model.Mul4x1(v.Position.Vec4(1))
	out.WorldPosition = worldPos4.Vec3()
	eyePos := ts.View.Mul4x1(worldPos4)
	out.ClipPosition = ts.Projection.Mul4x1(eyePos)

	normal := v.Normal
	if params.FakeLighting {
		normal = mgl32.Vec3{0, 1, 0}
	}
	out.Normal = ts.normal.Mul4x1(normal.Vec4(0)).Vec3()
	unitNormal := out.Normal.Normalize()

	out.ToCamera = ts.cameraPos.Sub(out.WorldPosition)
	if len(lights) > MaxLights {
		lights = lights[:MaxLights]
	}
	for i := range lights {
		toLight := lights[i].Position.Sub(out.WorldPosition)
		out.ToLight[i] = toLight
		// Mirror the incoming light direction around the surface normal
		incoming := toLight.Normalize().Mul(-1)
		out.Reflected[i] = incoming.Sub(unitNormal.Mul(2 * incoming.Dot(unitNormal)))
	}

	out.TexCoord = v.TexCoord
	if params.AtlasRows > 1 {
		out.TexCoord = v.TexCoord.Mul(1 / params.AtlasRows).Add(params.AtlasOffset)
	}

	eyeDist := eyePos.Vec3().Len()
	out.Visibility = FogVisibility(eyeDist, cfg.FogDensity, cfg.FogGradient)

	shadow := ts.ShadowSpace.Mul4x1(worldPos4)
	fade := (eyeDist - (cfg.ShadowDistance - cfg.ShadowTransition)) / cfg.ShadowTransition
	out.ShadowCoords = mgl32.Vec4{shadow.X(), shadow.Y(), shadow.Z(), mgl32.Clamp(1-fade, 0, 1)}

	out.ClipDistance = params.ClipPlane.Dot(worldPos4)
	return out
}

// FogVisibility computes the exponential fog factor for a camera-relative
// distance: 1 fully visible, 0 fully fog-obscured.
func FogVisibility(distance, density, gradient float32) float32 {
	v := float32(math.Exp(-math.Pow(float64(distance*density), float64(gradient))))
	return mgl32.Clamp(v, 0, 1)
}
