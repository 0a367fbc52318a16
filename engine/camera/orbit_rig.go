package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
)

// OrbitRig places a camera on an anchor that sits at the orbit target and turns with a
// RotationController. The camera keeps a fixed local offset from the anchor, so its world position
// each frame is target + rotation(yaw, pitch) * offset, and it always looks back at the target.
type OrbitRig interface {
	// Update ticks the rotation controller and recomputes the camera transform.
	//
	// Parameters:
	//   - in: the pointer state for this frame
	//   - deltaTime: seconds elapsed since the previous frame
	//
	// Returns:
	//   - Orientation: the anchor orientation for this frame
	Update(in input.FrameInput, deltaTime float32) Orientation

	// Controller returns the rotation controller driving the anchor.
	//
	// Returns:
	//   - RotationController: the attached controller
	Controller() RotationController

	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - x, y, z: world-space camera position
	Position() (x, y, z float32)

	// Target returns the orbit target, which is also the anchor position.
	//
	// Returns:
	//   - x, y, z: world-space target position
	Target() (x, y, z float32)

	// SetTarget moves the orbit target and recomputes the camera transform. The local offset is kept.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetTarget(x, y, z float32)

	// Up returns the camera's world-space up vector after rotation.
	//
	// Returns:
	//   - x, y, z: up vector components
	Up() (x, y, z float32)

	// Distance returns the fixed distance between camera and target.
	//
	// Returns:
	//   - float32: length of the local offset
	Distance() float32

	// AnchorMatrix returns the anchor's world transform as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: translation to the target combined with the yaw-then-pitch rotation
	AnchorMatrix() [16]float32

	// ViewMatrix returns the current 4x4 view matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the view matrix
	ViewMatrix() [16]float32
}

// orbitRigImpl is the single implementation of OrbitRig.
type orbitRigImpl struct {
	mu *sync.Mutex

	controller RotationController

	target [3]float32
	// offset is the camera's position relative to the anchor before rotation
	offset [3]float32
	// localUp is the camera's up vector before rotation
	localUp [3]float32

	// requestedPosition, when set by an option, defines offset as position - target
	requestedPosition *[3]float32

	// Derived each update
	position     [3]float32
	up           [3]float32
	anchorMatrix [16]float32
	viewMatrix   [16]float32
}

// Compile-time interface compliance check
var _ OrbitRig = &orbitRigImpl{}

// NewOrbitRig creates a rig around the given controller. The target defaults to the world origin
// and the camera to 10 units along +Z from it. NewOrbitRig panics if controller is nil or if the
// camera sits on the target (a zero offset leaves the view direction undefined).
//
// Parameters:
//   - controller: the rotation controller driving the anchor (must not be nil)
//   - options: functional options to configure the rig
//
// Returns:
//   - OrbitRig: the newly created rig
func NewOrbitRig(controller RotationController, options ...OrbitRigOption) OrbitRig {
	if controller == nil {
		panic("camera: NewOrbitRig requires a non-nil RotationController")
	}

	r := &orbitRigImpl{
		mu:         &sync.Mutex{},
		controller: controller,
		offset:     [3]float32{0, 0, 10},
		localUp:    [3]float32{0, 1, 0},
	}

	for _, option := range options {
		option(r)
	}

	if p := r.requestedPosition; p != nil {
		r.offset = [3]float32{p[0] - r.target[0], p[1] - r.target[1], p[2] - r.target[2]}
		r.requestedPosition = nil
	}
	if r.offset == ([3]float32{}) {
		panic("camera: NewOrbitRig requires the camera to be offset from the orbit target")
	}

	r.updateTransform(controller.Orientation())
	return r
}

func (r *orbitRigImpl) Update(in input.FrameInput, deltaTime float32) Orientation {
	o := r.controller.Tick(in, deltaTime)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.updateTransform(o)
	return o
}

// updateTransform recomputes the anchor matrix, camera position, up vector and view matrix.
// Caller must hold the mutex (or be the constructor).
func (r *orbitRigImpl) updateTransform(o Orientation) {
	o.Matrix(r.anchorMatrix[:], r.target[0], r.target[1], r.target[2])

	r.position[0], r.position[1], r.position[2] = common.TransformPoint(r.anchorMatrix[:], r.offset[0], r.offset[1], r.offset[2])
	r.up[0], r.up[1], r.up[2] = common.TransformDirection(r.anchorMatrix[:], r.localUp[0], r.localUp[1], r.localUp[2])

	common.LookAt(r.viewMatrix[:],
		r.position[0], r.position[1], r.position[2],
		r.target[0], r.target[1], r.target[2],
		r.up[0], r.up[1], r.up[2],
	)
}

func (r *orbitRigImpl) Controller() RotationController {
	return r.controller
}

func (r *orbitRigImpl) Position() (x, y, z float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.position[0], r.position[1], r.position[2]
}

func (r *orbitRigImpl) Target() (x, y, z float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.target[0], r.target[1], r.target[2]
}

func (r *orbitRigImpl) SetTarget(x, y, z float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.target = [3]float32{x, y, z}
	r.updateTransform(r.controller.Orientation())
}

func (r *orbitRigImpl) Up() (x, y, z float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.up[0], r.up[1], r.up[2]
}

func (r *orbitRigImpl) Distance() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return float32(math.Sqrt(float64(r.offset[0]*r.offset[0] + r.offset[1]*r.offset[1] + r.offset[2]*r.offset[2])))
}

func (r *orbitRigImpl) AnchorMatrix() [16]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.anchorMatrix
}

func (r *orbitRigImpl) ViewMatrix() [16]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.viewMatrix
}
