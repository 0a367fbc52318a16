package camera

import (
	"go.uber.org/zap"

	"github.com/Carmen-Shannon/oxy-orbit/common"
)

// RotationControllerOption is a functional option for configuring a RotationController.
type RotationControllerOption func(*rotationControllerImpl)

// WithRotationConfig replaces the whole configuration.
//
// Parameters:
//   - config: the rotation constants to use
//
// Returns:
//   - RotationControllerOption: functional option to set the configuration
func WithRotationConfig(config RotationConfig) RotationControllerOption {
	return func(rc *rotationControllerImpl) {
		rc.config = config
	}
}

// WithElasticPull toggles the spring-back toward the comfort zone on frames without a drag.
//
// Parameters:
//   - enabled: true to pull the rotation back after release
//
// Returns:
//   - RotationControllerOption: functional option to set elastic pull
func WithElasticPull(enabled bool) RotationControllerOption {
	return func(rc *rotationControllerImpl) {
		rc.config.ElasticPull = enabled
	}
}

// WithDragSpeed sets the pointer-to-degrees drag speed.
//
// Parameters:
//   - yaw: degrees per second per pixel of horizontal motion
//   - pitch: degrees per second per pixel of vertical motion
//
// Returns:
//   - RotationControllerOption: functional option to set drag speed
func WithDragSpeed(yaw, pitch float32) RotationControllerOption {
	return func(rc *rotationControllerImpl) {
		rc.config.DragSpeed = common.Vec2{X: yaw, Y: pitch}
	}
}

// WithAngleLimits sets the hard limit and comfort-zone bound on both axes.
//
// Parameters:
//   - maxRotate: hard limit per axis (yaw in X, pitch in Y)
//   - elastic: comfort-zone bound per axis
//
// Returns:
//   - RotationControllerOption: functional option to set angle limits
func WithAngleLimits(maxRotate, elastic common.Vec2) RotationControllerOption {
	return func(rc *rotationControllerImpl) {
		rc.config.MaxRotateAngle = maxRotate
		rc.config.ElasticAngle = elastic
	}
}

// WithLogger sets the logger used for drag and inertia events.
//
// Parameters:
//   - logger: a zap logger; nil keeps the no-op default
//
// Returns:
//   - RotationControllerOption: functional option to set the logger
func WithLogger(logger *zap.Logger) RotationControllerOption {
	return func(rc *rotationControllerImpl) {
		if logger != nil {
			rc.logger = logger.Named("rotation")
		}
	}
}
