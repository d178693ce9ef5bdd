package core

// Vec4 represents a 4-component vector, used for colors and clip-space positions
type Vec4 struct {
	X, Y, Z, W float64
}

// NewVec4 creates a new Vec4
func NewVec4(x, y, z, w float64) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// Add returns the sum of two vectors
func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// Multiply returns the vector scaled by a scalar
func (v Vec4) Multiply(scalar float64) Vec4 {
	return Vec4{v.X * scalar, v.Y * scalar, v.Z * scalar, v.W * scalar}
}

// Mix returns the linear blend (1-t)*v + t*other
func (v Vec4) Mix(other Vec4, t float64) Vec4 {
	return v.Multiply(1 - t).Add(other.Multiply(t))
}

// Clamp returns a vector with components clamped to [min, max]
func (v Vec4) Clamp(minVal, maxVal float64) Vec4 {
	return Vec4{
		X: max(minVal, min(maxVal, v.X)),
		Y: max(minVal, min(maxVal, v.Y)),
		Z: max(minVal, min(maxVal, v.Z)),
		W: max(minVal, min(maxVal, v.W)),
	}
}
