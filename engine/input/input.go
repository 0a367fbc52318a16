// Package input turns raw pointer samples into the per-frame input events consumed by camera controllers.
package input

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-orbit/common"
)

// FrameInput is the pointer state for a single frame.
// Held is the level state of the primary button; JustPressed and JustReleased are edge triggers
// that are true only on the frame the transition is observed.
type FrameInput struct {
	// Pointer is the pointer position in screen space.
	Pointer common.Vec2
	// Held reports whether the primary button is down this frame.
	Held bool
	// JustPressed is true on the frame the primary button went down.
	JustPressed bool
	// JustReleased is true on the frame the primary button went up.
	JustReleased bool
}

// PointerTracker accumulates pointer events delivered by a host (typically window callbacks on the
// main thread) and hands them out as one FrameInput per tick. Safe for concurrent use.
//
// Transitions are latched between frames: a press and release that both land between two Frame
// calls are reported as a press on the first frame and a release on the next, so no click is lost.
type PointerTracker struct {
	mu *sync.Mutex

	pointer common.Vec2
	down    bool

	// pending holds unreported transitions (true = press), oldest first. It alternates and never
	// holds more than two entries: a third transition cancels the second.
	pending []bool
}

// NewPointerTracker creates a tracker with the button up and the pointer at the origin.
//
// Returns:
//   - *PointerTracker: the newly created tracker
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{
		mu:      &sync.Mutex{},
		pending: make([]bool, 0, 2),
	}
}

// Move records a new pointer position.
//
// Parameters:
//   - x, y: pointer position in screen space
func (t *PointerTracker) Move(x, y float32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pointer = common.Vec2{X: x, Y: y}
}

// Press records the primary button going down. Repeated presses without a release are ignored.
func (t *PointerTracker) Press() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.transition(true)
}

// Release records the primary button going up. Releases without a press are ignored.
func (t *PointerTracker) Release() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.transition(false)
}

// Sample records a polled pointer state in one call. Hosts that poll rather than receive callbacks
// use this once per frame before calling Frame.
//
// Parameters:
//   - x, y: pointer position in screen space
//   - held: whether the primary button is currently down
func (t *PointerTracker) Sample(x, y float32, held bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pointer = common.Vec2{X: x, Y: y}
	t.transition(held)
}

// Frame returns the input for the current frame and consumes at most one pending transition.
//
// Returns:
//   - FrameInput: the pointer position, held state and edges for this frame
func (t *PointerTracker) Frame() FrameInput {
	t.mu.Lock()
	defer t.mu.Unlock()

	in := FrameInput{Pointer: t.pointer, Held: t.down}
	if len(t.pending) == 0 {
		return in
	}

	pressed := t.pending[0]
	t.pending = append(t.pending[:0], t.pending[1:]...)
	in.Held = pressed
	in.JustPressed = pressed
	in.JustReleased = !pressed
	return in
}

// Down reports the raw button state as last recorded by the host.
func (t *PointerTracker) Down() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.down
}

// transition records a button state change. Caller must hold the mutex.
func (t *PointerTracker) transition(down bool) {
	if t.down == down {
		return
	}
	t.down = down
	if len(t.pending) == 2 {
		// the new transition undoes the unreported tail
		t.pending = t.pending[:1]
		return
	}
	t.pending = append(t.pending, down)
}
