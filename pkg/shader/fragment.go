package shader

import (
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/scene"
)

// patternScale controls how finely the background pattern bands by direction
const patternScale = 32.0

// traceWeight is the blend weight of the trace result over the pattern color
const traceWeight = 0.90

// CoordDirection reconstructs the camera ray direction for a pixel.
// The returned vector is unit length unless the field of view is at a
// tan singularity (0 or π), in which case NaN propagates to the caller.
func CoordDirection(camera scene.Camera, fragCoord, resolution core.Vec2) core.Vec3 {
	// Pixel offset from the screen center, in pixels
	rel := fragCoord.Subtract(resolution.Multiply(0.5))

	// Distance from the eye to the screen plane so that the screen
	// diagonal subtends the camera's field of view
	screenDistance := resolution.Length() / (2 * math.Tan(camera.FieldOfView/2))

	// Pixel coordinates grow down-and-right, so right and up enter negated
	return camera.Forward.Multiply(screenDistance).
		Subtract(camera.Right.Multiply(rel.X)).
		Subtract(camera.Up.Multiply(rel.Y)).
		Normalize()
}

// Fragment computes the color of one pixel: a normal-visualization color
// where the camera ray hits the scene, blended 90/10 over a tiling
// pattern banded by ray direction. A miss contributes zero in all four
// channels, so background pixels come out at alpha 0.1.
func Fragment(sc *scene.Scene, fragCoord, resolution core.Vec2) core.Vec4 {
	direction := CoordDirection(sc.Camera, fragCoord, resolution)
	ray := core.NewRay(sc.Camera.Location, direction)

	var traceColor core.Vec4
	if hit, isHit := sc.Trace(ray); isHit {
		traceColor = core.NewVec4(hit.Normal.X, hit.Normal.Y, hit.Normal.Z, 1)
	}

	// The pattern is always computed, hit or miss
	pattern := direction.Multiply(patternScale).Fract()
	patternColor := core.NewVec4(pattern.X, pattern.Y, pattern.Z, 1)

	return patternColor.Mix(traceColor, traceWeight)
}
