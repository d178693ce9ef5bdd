package scene

import (
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
)

// Camera describes the eye the per-pixel rays are reconstructed from.
// Forward, Right and Up must form an orthonormal basis. FieldOfView is
// the angle in radians the screen diagonal subtends; values at or
// outside (0, π) are not trapped and produce NaN directions.
type Camera struct {
	Location    core.Vec3
	Forward     core.Vec3
	Right       core.Vec3
	Up          core.Vec3
	FieldOfView float64
}

// Scene holds the camera and the shapes rays are traced against
type Scene struct {
	Camera Camera
	Shapes []geometry.Shape
}

// NewDefaultScene creates the fixed scene: camera at the origin looking
// down +X with a 90° diagonal field of view, and a unit sphere at (3,0,0).
func NewDefaultScene() *Scene {
	return &Scene{
		Camera: Camera{
			Location:    core.NewVec3(0, 0, 0),
			Forward:     core.NewVec3(1, 0, 0),
			Right:       core.NewVec3(0, 1, 0),
			Up:          core.NewVec3(0, 0, 1),
			FieldOfView: math.Pi / 2,
		},
		Shapes: []geometry.Shape{
			geometry.NewSphere(core.NewVec3(3, 0, 0), 1.0),
		},
	}
}

// Trace intersects a ray against every shape and returns the nearest hit
func (s *Scene) Trace(ray core.Ray) (*geometry.HitRecord, bool) {
	var closestHit *geometry.HitRecord
	hitAnything := false

	for _, shape := range s.Shapes {
		if hit, isHit := shape.Intersect(ray); isHit {
			if !hitAnything || hit.T < closestHit.T {
				closestHit = hit
			}
			hitAnything = true
		}
	}

	return closestHit, hitAnything
}
