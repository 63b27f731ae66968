package shading

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ShadowMap is the depth render of the scene from the shadow caster's
// perspective, produced externally each frame and read-only here.
type ShadowMap struct {
	depth *DepthMap
}

func NewShadowMap(size int) (*ShadowMap, error) {
	depth, err := NewDepthMap(size)
	if err != nil {
		return nil, fmt.Errorf("shadow map: %w", err)
	}
	depth.Clear(1)
	return &ShadowMap{depth: depth}, nil
}

func (s *ShadowMap) Size() int { return s.depth.Size() }

// Depth exposes the underlying depth buffer for the caster pass to write.
func (s *ShadowMap) Depth() *DepthMap { return s.depth }

// Resolve runs percentage-closer filtering around the projected shadow
// coordinate and returns the light factor in [0,1]: 1 fully lit, shrinking
// toward 1-w as more kernel samples are occluded. coords follows the
// geometry stage layout: xy shadow-map uv, z fragment depth seen from the
// caster, w distance fade. Samples falling outside the shadow frustum count
// as unoccluded, so geometry beyond the map edge never darkens.
func (s *ShadowMap) Resolve(coords mgl32.Vec4, radius int, bias float32) float32 {
	if radius < 0 {
		radius = 0
	}
	size := s.depth.Size()
	texel := 1.0 / float32(size)
	kernel := 2*radius + 1
	totalTexels := float32(kernel * kernel)

	var occluded float32
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			u := coords.X() + float32(dx)*texel
			v := coords.Y() + float32(dy)*texel
			if u < 0 || u > 1 || v < 0 || v > 1 {
				continue
			}
			px := int(math.Floor(float64(u * float32(size))))
			py := int(math.Floor(float64(v * float32(size))))
			nearest := s.depth.At(px, py)
			if coords.Z() > nearest+bias {
				occluded++
			}
		}
	}

	occlusion := occluded / totalTexels
	return 1 - occlusion*coords.W()
}
