package shader

import (
	"testing"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

func TestVertex_Passthrough(t *testing.T) {
	uniforms := Uniforms{Resolution: core.NewVec2(1280, 1024)}

	for _, position := range QuadVertices() {
		out := Vertex(position, uniforms)

		expected := core.NewVec4(position.X, position.Y, 0, 1)
		if out.Position != expected {
			t.Errorf("Expected clip position %v for corner %v, got %v", expected, position, out.Position)
		}
		if out.Resolution != uniforms.Resolution {
			t.Errorf("Expected resolution varying %v, got %v", uniforms.Resolution, out.Resolution)
		}
	}
}

func TestQuadVertices_CoverClipSpace(t *testing.T) {
	corners := QuadVertices()
	if len(corners) != 4 {
		t.Fatalf("Expected 4 quad corners, got %d", len(corners))
	}

	for _, corner := range corners {
		if corner.X != -1 && corner.X != 1 {
			t.Errorf("Corner %v X component should be -1 or 1", corner)
		}
		if corner.Y != -1 && corner.Y != 1 {
			t.Errorf("Corner %v Y component should be -1 or 1", corner)
		}
	}
}
