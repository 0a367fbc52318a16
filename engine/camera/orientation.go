package camera

import (
	"github.com/Carmen-Shannon/oxy-orbit/common"
)

// StoredAxes is a rotation vector in the controller's packing: horizontal pointer motion drives yaw,
// kept in X; vertical pointer motion drives pitch, kept in Y. Swapping the two changes which screen
// direction tilts the camera, so conversions to Orientation go through OrientationFromStored.
type StoredAxes = common.Vec2

// Orientation is the anchor rotation emitted each tick, in degrees.
type Orientation struct {
	// Yaw rotates around the vertical axis.
	Yaw float32
	// Pitch rotates around the horizontal axis.
	Pitch float32
}

// OrientationFromStored unpacks a stored rotation vector (yaw in X, pitch in Y).
//
// Parameters:
//   - v: rotation vector in stored-axes layout
//
// Returns:
//   - Orientation: the yaw and pitch it encodes
func OrientationFromStored(v StoredAxes) Orientation {
	return Orientation{Yaw: v.X, Pitch: v.Y}
}

// Stored packs the orientation back into the stored-axes layout.
func (o Orientation) Stored() StoredAxes {
	return StoredAxes{X: o.Yaw, Y: o.Pitch}
}

// Matrix writes the rotation as a column-major 4x4 matrix translated to (x, y, z).
// The rotation is built yaw-then-pitch: R = Ry(yaw) * Rx(pitch), no roll.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - x, y, z: translation, normally the orbit target
func (o Orientation) Matrix(out []float32, x, y, z float32) {
	common.BuildModelMatrix(out,
		x, y, z,
		common.DegToRad(o.Pitch), common.DegToRad(o.Yaw), 0,
		1, 1, 1,
	)
}
