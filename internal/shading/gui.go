package shading

import (
	"github.com/go-gl/mathgl/mgl32"
)

// GuiOutput is the minimal vertex output of the flat UI path: a transformed
// position and a normalized texture coordinate. It shares no state with the
// 3D path.
type GuiOutput struct {
	ClipPosition mgl32.Vec4
	TexCoord     mgl32.Vec2
}

// GuiShader renders textured screen-space quads (UI panels, text). Quads are
// authored as [-1,1] unit quads and placed by a single transform matrix.
type GuiShader struct {
	Transform mgl32.Mat4
	Texture   *Texture
}

// Vertex maps a quad corner into clip space and derives the texture
// coordinate by remapping [-1,1] into [0,1]. The v axis flips so uv (0,0)
// lands at the image's top-left rather than GL's bottom-left.
func (g *GuiShader) Vertex(pos mgl32.Vec2) GuiOutput {
	return GuiOutput{
		ClipPosition: g.Transform.Mul4x1(mgl32.Vec4{pos.X(), pos.Y(), 0, 1}),
		TexCoord: mgl32.Vec2{
			(pos.X() + 1) / 2,
			1 - (pos.Y()+1)/2,
		},
	}
}

// Fragment samples the quad texture.
func (g *GuiShader) Fragment(out GuiOutput) mgl32.Vec4 {
	return g.Texture.Sample(out.TexCoord)
}
