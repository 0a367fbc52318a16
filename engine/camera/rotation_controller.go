package camera

import (
	"math"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
)

// RotationController turns pointer drags into a damped, elastically bounded rotation.
// While the primary button is held the rotation follows the pointer, slowing as it nears the hard
// limit. On release the last drag velocity carries on as inertia that decays linearly, and (when
// elastic pull is enabled) the rotation springs back into the comfort zone.
type RotationController interface {
	// Tick advances the rotation by one frame and returns the resulting orientation.
	// Must be called exactly once per frame.
	//
	// Parameters:
	//   - in: the pointer state for this frame
	//   - deltaTime: seconds elapsed since the previous frame
	//
	// Returns:
	//   - Orientation: the anchor orientation for this frame
	Tick(in input.FrameInput, deltaTime float32) Orientation

	// Orientation returns the orientation produced by the most recent Tick.
	//
	// Returns:
	//   - Orientation: current yaw and pitch in degrees
	Orientation() Orientation

	// Rotation returns the raw rotation vector (yaw in X, pitch in Y).
	//
	// Returns:
	//   - StoredAxes: current rotation in degrees
	Rotation() StoredAxes

	// SetRotation places the rotation directly, clamped to the hard limits. Inertia is cleared.
	//
	// Parameters:
	//   - rotation: new rotation in stored-axes layout, in degrees
	SetRotation(rotation StoredAxes)

	// Inertia returns the residual angular velocity carried after release.
	//
	// Returns:
	//   - common.Vec2: degrees per second on each stored axis
	Inertia() common.Vec2

	// Velocity returns the manual drag velocity computed on the most recent held frame.
	//
	// Returns:
	//   - common.Vec2: degrees per second on each stored axis
	Velocity() common.Vec2

	// DampingFactor returns the drag-speed multiplier for the current rotation on each axis.
	// 1 inside the comfort zone, falling linearly to 0 at the hard limit.
	//
	// Returns:
	//   - common.Vec2: per-axis factor in [0, 1]
	DampingFactor() common.Vec2

	// Config returns the configuration the controller was built with.
	//
	// Returns:
	//   - RotationConfig: the controller configuration
	Config() RotationConfig

	// Reset zeroes rotation, inertia, velocity and the remembered pointer position.
	Reset()
}

// inertiaEpsilon is the magnitude below which inertia is treated as spent.
const inertiaEpsilon = math.SmallestNonzeroFloat32

// Tick runs the frame update in a fixed order: pointer delta, then either manual rotation
// (held) or inertia capture, inertia application and elastic pull (not held).
func (rc *rotationControllerImpl) Tick(in input.FrameInput, deltaTime float32) Orientation {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	delta := rc.pointerDelta(in)

	if in.Held {
		rc.manualRotation(delta, deltaTime)
	} else {
		if in.JustReleased {
			rc.captureInertia(delta)
		}
		rc.applyInertia(deltaTime)
		if rc.config.ElasticPull {
			rc.applyElastic(deltaTime)
		}
	}

	rc.orientation = OrientationFromStored(rc.rotation)
	return rc.orientation
}

// pointerDelta returns the pointer movement since the previous frame. On the press edge the
// remembered position is reset first so the drag starts from zero. Caller must hold the mutex.
func (rc *rotationControllerImpl) pointerDelta(in input.FrameInput) common.Vec2 {
	if in.JustPressed {
		rc.previousPointer = in.Pointer
		rc.logger.Debug("drag started")
	}
	delta := in.Pointer.Sub(rc.previousPointer)
	rc.previousPointer = in.Pointer
	return delta
}

// manualRotation follows the pointer, scaled down by the resistance factor near the hard limits,
// and hard-clamps the result. Caller must hold the mutex.
func (rc *rotationControllerImpl) manualRotation(delta common.Vec2, deltaTime float32) {
	speed := rc.config.DragSpeed.Mul(rc.dampingFactor())
	rc.velocity = delta.Mul(speed)

	next := rc.rotation.Add(rc.velocity.Scale(deltaTime))
	rc.rotation = common.ClampVec2(next, rc.config.MinRotateAngle(), rc.config.MaxRotateAngle)
}

// captureInertia launches inertia from the release-frame pointer delta at the raw drag speed,
// without the resistance applied during the drag. Caller must hold the mutex.
func (rc *rotationControllerImpl) captureInertia(delta common.Vec2) {
	rc.inertia = delta.Mul(rc.config.DragSpeed)
	rc.logger.Debug("drag released",
		zapVec2("inertia", rc.inertia),
		zapVec2("rotation", rc.rotation),
	)
}

// applyInertia decays inertia linearly, advances the rotation by it, and kills inertia on any axis
// whose rotation has left the hard range. The rotation itself is not clamped here.
// Caller must hold the mutex.
func (rc *rotationControllerImpl) applyInertia(deltaTime float32) {
	if !(rc.inertia.Magnitude() > inertiaEpsilon) {
		return
	}

	rc.inertia = common.DampVec2ToZero(rc.inertia, rc.config.InertiaDamp)
	rc.rotation = rc.rotation.Add(rc.inertia.Scale(deltaTime))

	minAngle, maxAngle := rc.config.MinRotateAngle(), rc.config.MaxRotateAngle
	if !common.WithinRange(rc.rotation.X, minAngle.X, maxAngle.X) {
		rc.inertia.X = 0
		rc.logger.Debug("yaw inertia stopped at limit", zapFloat("yaw", rc.rotation.X))
	}
	if !common.WithinRange(rc.rotation.Y, minAngle.Y, maxAngle.Y) {
		rc.inertia.Y = 0
		rc.logger.Debug("pitch inertia stopped at limit", zapFloat("pitch", rc.rotation.Y))
	}
}

// applyElastic pulls the rotation toward the nearest point of the comfort zone.
// Caller must hold the mutex.
func (rc *rotationControllerImpl) applyElastic(deltaTime float32) {
	target := common.ClampVec2(rc.rotation, rc.config.MinElasticAngle(), rc.config.MaxElasticAngle())
	rate := rc.config.AutoRotationSpeed.Scale(deltaTime)

	rc.rotation = common.Vec2{
		X: common.Lerp(rc.rotation.X, target.X, rate.X),
		Y: common.Lerp(rc.rotation.Y, target.Y, rate.Y),
	}
}

// dampingFactor evaluates the resistance curve for the current rotation. Caller must hold the mutex.
func (rc *rotationControllerImpl) dampingFactor() common.Vec2 {
	maxElastic, minElastic := rc.config.MaxElasticAngle(), rc.config.MinElasticAngle()
	maxRotate, minRotate := rc.config.MaxRotateAngle, rc.config.MinRotateAngle()

	return common.Vec2{
		X: inverseLerpBetweenTwoRanges(rc.rotation.X,
			common.Vec2{X: maxElastic.X, Y: maxRotate.X},
			common.Vec2{X: minElastic.X, Y: minRotate.X}),
		Y: inverseLerpBetweenTwoRanges(rc.rotation.Y,
			common.Vec2{X: maxElastic.Y, Y: maxRotate.Y},
			common.Vec2{X: minElastic.Y, Y: minRotate.Y}),
	}
}

// inverseLerpBetweenTwoRanges returns 1 while value is inside the comfort zone and falls linearly to
// 0 across whichever of the two ranges value has entered. Each range runs from its comfort-zone edge
// (X) to its hard limit (Y).
func inverseLerpBetweenTwoRanges(value float32, positiveRange, negativeRange common.Vec2) float32 {
	if value > positiveRange.X {
		return 1 - common.InverseLerp(positiveRange.X, positiveRange.Y, value)
	}
	if value < negativeRange.X {
		return 1 - common.InverseLerp(negativeRange.X, negativeRange.Y, value)
	}
	return 1
}

func (rc *rotationControllerImpl) Orientation() Orientation {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.orientation
}

func (rc *rotationControllerImpl) Rotation() StoredAxes {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.rotation
}

func (rc *rotationControllerImpl) SetRotation(rotation StoredAxes) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.rotation = common.ClampVec2(rotation, rc.config.MinRotateAngle(), rc.config.MaxRotateAngle)
	rc.inertia = common.Vec2{}
	rc.orientation = OrientationFromStored(rc.rotation)
}

func (rc *rotationControllerImpl) Inertia() common.Vec2 {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.inertia
}

func (rc *rotationControllerImpl) Velocity() common.Vec2 {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.velocity
}

func (rc *rotationControllerImpl) DampingFactor() common.Vec2 {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.dampingFactor()
}

func (rc *rotationControllerImpl) Config() RotationConfig {
	return rc.config
}

func (rc *rotationControllerImpl) Reset() {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.rotation = common.Vec2{}
	rc.inertia = common.Vec2{}
	rc.velocity = common.Vec2{}
	rc.previousPointer = common.Vec2{}
	rc.orientation = Orientation{}
}
