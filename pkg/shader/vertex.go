package shader

import "github.com/df07/go-sphere-tracer/pkg/core"

// Uniforms mirrors the per-draw uniform block (set 0, binding 0)
type Uniforms struct {
	Resolution core.Vec2 // Viewport width and height in pixels
}

// VertexOutput is what the vertex stage hands to the rasterizer
type VertexOutput struct {
	Position   core.Vec4 // Clip-space position
	Resolution core.Vec2 // Varying, constant across the quad
}

// Vertex maps a clip-space quad corner straight through to the output
// position and forwards the resolution uniform unchanged as a varying
func Vertex(position core.Vec2, u Uniforms) VertexOutput {
	return VertexOutput{
		Position:   core.NewVec4(position.X, position.Y, 0, 1),
		Resolution: u.Resolution,
	}
}

// QuadVertices returns the corners of the full-screen quad in fan order
func QuadVertices() [4]core.Vec2 {
	return [4]core.Vec2{
		core.NewVec2(-1, -1),
		core.NewVec2(1, -1),
		core.NewVec2(1, 1),
		core.NewVec2(-1, 1),
	}
}
