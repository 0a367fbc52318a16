package camera

// OrbitRigOption is a functional option for configuring an OrbitRig.
type OrbitRigOption func(*orbitRigImpl)

// WithOrbitTarget sets the point the anchor sits on and the camera looks at.
//
// Parameters:
//   - x: X coordinate of the target
//   - y: Y coordinate of the target
//   - z: Z coordinate of the target
//
// Returns:
//   - OrbitRigOption: functional option to set the orbit target
func WithOrbitTarget(x, y, z float32) OrbitRigOption {
	return func(r *orbitRigImpl) {
		r.target = [3]float32{x, y, z}
	}
}

// WithCameraPosition sets the camera's starting world position. The local offset from the anchor
// becomes position - target, evaluated after all options are applied.
//
// Parameters:
//   - x, y, z: world-space camera position at zero rotation
//
// Returns:
//   - OrbitRigOption: functional option to set the camera position
func WithCameraPosition(x, y, z float32) OrbitRigOption {
	return func(r *orbitRigImpl) {
		r.requestedPosition = &[3]float32{x, y, z}
	}
}

// WithCameraOffset sets the camera's position relative to the anchor directly.
//
// Parameters:
//   - x, y, z: local offset from the orbit target at zero rotation
//
// Returns:
//   - OrbitRigOption: functional option to set the local offset
func WithCameraOffset(x, y, z float32) OrbitRigOption {
	return func(r *orbitRigImpl) {
		r.offset = [3]float32{x, y, z}
		r.requestedPosition = nil
	}
}

// WithUp sets the camera's up vector at zero rotation.
//
// Parameters:
//   - x, y, z: up vector components
//
// Returns:
//   - OrbitRigOption: functional option to set the up vector
func WithUp(x, y, z float32) OrbitRigOption {
	return func(r *orbitRigImpl) {
		r.localUp = [3]float32{x, y, z}
	}
}
