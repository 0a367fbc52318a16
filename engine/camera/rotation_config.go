package camera

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-orbit/common"
)

// Configuration faults reported by RotationConfig.Validate.
var (
	ErrNonFiniteConfig = errors.New("rotation config contains a NaN or infinite value")
	ErrNegativeAngle   = errors.New("rotation config angle limits must be non-negative")
	ErrNegativeDamp    = errors.New("rotation config inertia damp must be non-negative")
	ErrElasticAtLimit  = errors.New("rotation config elastic angle must differ from max rotate angle")
)

// RotationConfig holds the tunable constants of a RotationController. It is read-only once
// handed to a controller. The X components govern yaw (horizontal pointer motion) and the
// Y components govern pitch (vertical pointer motion). All angles are in degrees.
//
// Angle limits are symmetric about zero: the minimum bounds are the negated maximum bounds.
type RotationConfig struct {
	// DragSpeed converts pointer pixels into degrees per second while dragging.
	DragSpeed common.Vec2

	// InertiaDamp is subtracted from the magnitude of each inertia component every frame.
	InertiaDamp common.Vec2

	// MaxRotateAngle is the hard limit on each axis.
	MaxRotateAngle common.Vec2

	// ElasticAngle bounds the comfort zone in which dragging meets no resistance.
	// Expected to be below MaxRotateAngle on each axis.
	ElasticAngle common.Vec2

	// AutoRotationSpeed is the rate at which the rotation is pulled back into the comfort zone.
	AutoRotationSpeed common.Vec2

	// ElasticPull enables the spring-back toward the comfort zone on frames without a drag.
	ElasticPull bool
}

// DefaultRotationConfig returns the stock tuning: 45 degree hard limits, a 20 degree comfort zone,
// horizontal-only dragging and a gentle inertia falloff.
//
// Returns:
//   - RotationConfig: the default configuration
func DefaultRotationConfig() RotationConfig {
	return RotationConfig{
		DragSpeed:         common.Vec2{X: 20, Y: 0},
		InertiaDamp:       common.Vec2{X: 0.1, Y: 0.1},
		MaxRotateAngle:    common.Vec2{X: 45, Y: 45},
		ElasticAngle:      common.Vec2{X: 20, Y: 20},
		AutoRotationSpeed: common.Vec2{X: 20, Y: 20},
		ElasticPull:       true,
	}
}

// MinRotateAngle returns the lower hard limit, the negation of MaxRotateAngle.
func (c RotationConfig) MinRotateAngle() common.Vec2 {
	return c.MaxRotateAngle.Neg()
}

// MaxElasticAngle returns the upper comfort-zone bound.
func (c RotationConfig) MaxElasticAngle() common.Vec2 {
	return c.ElasticAngle
}

// MinElasticAngle returns the lower comfort-zone bound, the negation of ElasticAngle.
func (c RotationConfig) MinElasticAngle() common.Vec2 {
	return c.ElasticAngle.Neg()
}

// Validate checks the configuration for values that would make the rotation update undefined.
// An elastic angle equal to the hard limit on an axis leaves the resistance curve with a zero-width
// range and is rejected rather than allowed to produce NaN rotations at runtime.
//
// Returns:
//   - error: a wrapped sentinel error describing the first fault found, or nil
func (c RotationConfig) Validate() error {
	vectors := []struct {
		name string
		v    common.Vec2
	}{
		{"drag speed", c.DragSpeed},
		{"inertia damp", c.InertiaDamp},
		{"max rotate angle", c.MaxRotateAngle},
		{"elastic angle", c.ElasticAngle},
		{"auto rotation speed", c.AutoRotationSpeed},
	}
	for _, f := range vectors {
		if !f.v.IsFinite() {
			return fmt.Errorf("%s %v: %w", f.name, f.v, ErrNonFiniteConfig)
		}
	}

	if c.MaxRotateAngle.X < 0 || c.MaxRotateAngle.Y < 0 {
		return fmt.Errorf("max rotate angle %v: %w", c.MaxRotateAngle, ErrNegativeAngle)
	}
	if c.ElasticAngle.X < 0 || c.ElasticAngle.Y < 0 {
		return fmt.Errorf("elastic angle %v: %w", c.ElasticAngle, ErrNegativeAngle)
	}
	if c.InertiaDamp.X < 0 || c.InertiaDamp.Y < 0 {
		return fmt.Errorf("inertia damp %v: %w", c.InertiaDamp, ErrNegativeDamp)
	}

	if c.ElasticAngle.X == c.MaxRotateAngle.X {
		return fmt.Errorf("yaw axis at %v degrees: %w", c.ElasticAngle.X, ErrElasticAtLimit)
	}
	if c.ElasticAngle.Y == c.MaxRotateAngle.Y {
		return fmt.Errorf("pitch axis at %v degrees: %w", c.ElasticAngle.Y, ErrElasticAtLimit)
	}
	return nil
}

// elasticExceedsLimit reports whether the comfort zone is wider than the hard limit on either axis.
// Such a configuration is accepted but flattens the resistance curve.
func (c RotationConfig) elasticExceedsLimit() bool {
	return c.ElasticAngle.X > c.MaxRotateAngle.X || c.ElasticAngle.Y > c.MaxRotateAngle.Y
}
