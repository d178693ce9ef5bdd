package geometry

import (
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{Center: center, Radius: radius}
}

// Intersect tests if a ray intersects the sphere and returns the nearest
// intersection in front of the ray origin. The direction does not need to
// be unit length, only nonzero. The returned normal is Point - Center,
// deliberately left unnormalized so its magnitude equals the radius.
func (s *Sphere) Intersect(ray core.Ray) (*HitRecord, bool) {
	// Vector from sphere center to ray origin
	rel := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(rel)
	c := rel.Dot(rel) - s.Radius*s.Radius

	// No intersection if discriminant is negative
	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Nearest root strictly in front of the origin wins. If it is behind,
	// the origin may be inside the sphere and the far root still counts.
	t := (-b - sqrtD) / (2 * a)
	if t <= 0 {
		t = (-b + sqrtD) / (2 * a)
		if t <= 0 {
			// Both roots at or behind the origin
			return nil, false
		}
	}

	point := ray.At(t)
	return &HitRecord{
		Point:  point,
		Normal: point.Subtract(s.Center),
		T:      t,
	}, true
}
