package common

import "math"

// Vec2 is a two-component single-precision vector. Used for screen-space pointer
// samples and for per-axis angle pairs.
type Vec2 struct {
	X, Y float32
}

// Add returns the component-wise sum v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns the component-wise difference v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v multiplied by the scalar s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Mul returns the component-wise product of v and o.
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{v.X * o.X, v.Y * o.Y}
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// Magnitude returns the Euclidean length of v.
func (v Vec2) Magnitude() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// IsFinite reports whether neither component is NaN or infinite.
func (v Vec2) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y)
}

func isFinite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

// Clamp limits value to the closed range [min, max].
//
// Parameters:
//   - value: the value to clamp
//   - min: lower bound
//   - max: upper bound
//
// Returns:
//   - float32: the clamped value
func Clamp(value, min, max float32) float32 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// ClampVec2 clamps each component of value to the matching components of min and max.
//
// Parameters:
//   - value: the vector to clamp
//   - min: per-axis lower bounds
//   - max: per-axis upper bounds
//
// Returns:
//   - Vec2: the clamped vector
func ClampVec2(value, min, max Vec2) Vec2 {
	return Vec2{
		X: Clamp(value.X, min.X, max.X),
		Y: Clamp(value.Y, min.Y, max.Y),
	}
}

// WithinRange reports whether value lies in the closed range [min, max].
func WithinRange(value, min, max float32) bool {
	return value >= min && value <= max
}

// Lerp interpolates linearly from a to b. The interpolant t is clamped to [0, 1],
// so Lerp never overshoots b.
//
// Parameters:
//   - a: start value (t = 0)
//   - b: end value (t = 1)
//   - t: interpolant, clamped to [0, 1]
//
// Returns:
//   - float32: the interpolated value
func Lerp(a, b, t float32) float32 {
	t = Clamp(t, 0, 1)
	return a + (b-a)*t
}

// InverseLerp returns where value lies between a and b as a fraction clamped to [0, 1].
// The result is undefined when a == b; callers are expected to reject such ranges up front.
//
// Parameters:
//   - a: value mapped to 0
//   - b: value mapped to 1
//   - value: the value to locate
//
// Returns:
//   - float32: normalized position of value in [a, b]
func InverseLerp(a, b, value float32) float32 {
	return Clamp((value-a)/(b-a), 0, 1)
}

// DampToZero moves value toward zero by step without crossing it.
// A linear decay: repeated application reaches exactly zero in finite steps for any step > 0.
//
// Parameters:
//   - value: the value to decay
//   - step: the non-negative amount removed per call
//
// Returns:
//   - float32: the decayed value
func DampToZero(value, step float32) float32 {
	if value == 0 {
		return 0
	}
	if value > 0 {
		return max(0, value-step)
	}
	return min(0, value+step)
}

// DampVec2ToZero applies DampToZero to each component of value with the matching step.
func DampVec2ToZero(value, step Vec2) Vec2 {
	return Vec2{
		X: DampToZero(value.X, step.X),
		Y: DampToZero(value.Y, step.Y),
	}
}
