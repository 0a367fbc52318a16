package camera

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/Carmen-Shannon/oxy-orbit/common"
)

// rotationControllerImpl is the single implementation of RotationController.
// All rotation state is owned here and mutated only inside Tick and the explicit setters.
type rotationControllerImpl struct {
	mu *sync.Mutex

	config RotationConfig
	logger *zap.Logger

	// Rotation state, stored-axes layout (yaw in X, pitch in Y)
	rotation        StoredAxes
	inertia         common.Vec2
	velocity        common.Vec2
	previousPointer common.Vec2

	orientation Orientation
}

// Compile-time interface compliance check
var _ RotationController = &rotationControllerImpl{}

// NewRotationController creates a rotation controller at zero rotation. The configuration defaults
// to DefaultRotationConfig and is validated after all options are applied.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - RotationController: the newly created controller, or nil on error
//   - error: the validation error if the configuration is unusable
func NewRotationController(options ...RotationControllerOption) (RotationController, error) {
	rc := &rotationControllerImpl{
		mu:     &sync.Mutex{},
		config: DefaultRotationConfig(),
		logger: zap.NewNop(),
	}

	for _, option := range options {
		option(rc)
	}

	if err := rc.config.Validate(); err != nil {
		return nil, fmt.Errorf("camera: invalid rotation config: %w", err)
	}
	if rc.config.elasticExceedsLimit() {
		rc.logger.Warn("elastic angle exceeds max rotate angle; drag resistance will be flattened",
			zapVec2("elastic_angle", rc.config.ElasticAngle),
			zapVec2("max_rotate_angle", rc.config.MaxRotateAngle),
		)
	}

	return rc, nil
}

// zapVec2 renders a Vec2 as a structured log field.
func zapVec2(key string, v common.Vec2) zap.Field {
	return zap.Float32s(key, []float32{v.X, v.Y})
}

func zapFloat(key string, f float32) zap.Field {
	return zap.Float32(key, f)
}
