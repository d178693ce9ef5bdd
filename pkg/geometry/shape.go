package geometry

import "github.com/df07/go-sphere-tracer/pkg/core"

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point  core.Vec3 // Point of intersection
	Normal core.Vec3 // Surface vector at intersection: Point - Center, magnitude equals the radius
	T      float64   // Parameter t along the ray
}

// Shape interface for objects that can be hit by rays
type Shape interface {
	Intersect(ray core.Ray) (*HitRecord, bool)
}
