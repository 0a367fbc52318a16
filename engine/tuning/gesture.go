// Package tuning replays scripted pointer gestures against rotation configurations and measures
// how the camera responds. Scenarios run in parallel on a worker pool so a whole grid of tunings
// can be compared in one pass.
package tuning

import (
	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
)

// Step is one recorded frame: the pointer state and the time it took.
type Step struct {
	Input     input.FrameInput
	DeltaTime float32
}

// Gesture is a named sequence of frames.
type Gesture struct {
	Name  string
	Steps []Step
}

// Flick presses at the origin, drags evenly to (dx, dy) over frames held frames and lets go while
// still moving, so the release frame carries one more step of motion into inertia.
//
// Parameters:
//   - dx, dy: total pointer travel while held, in pixels
//   - frames: number of held frames after the press (at least 1)
//   - dt: seconds per frame
//
// Returns:
//   - Gesture: the flick
func Flick(dx, dy float32, frames int, dt float32) Gesture {
	frames = max(frames, 1)
	step := common.Vec2{X: dx / float32(frames), Y: dy / float32(frames)}

	g := Gesture{Name: "flick", Steps: make([]Step, 0, frames+2)}
	g.Steps = append(g.Steps, Step{Input: input.FrameInput{Held: true, JustPressed: true}, DeltaTime: dt})

	var p common.Vec2
	for i := 0; i < frames; i++ {
		p = p.Add(step)
		g.Steps = append(g.Steps, Step{Input: input.FrameInput{Pointer: p, Held: true}, DeltaTime: dt})
	}
	p = p.Add(step)
	g.Steps = append(g.Steps, Step{Input: input.FrameInput{Pointer: p, JustReleased: true}, DeltaTime: dt})
	return g
}

// DragTo presses at the origin, drags evenly to (dx, dy), holds still for one frame and releases
// without motion, so no inertia is launched.
//
// Parameters:
//   - dx, dy: total pointer travel while held, in pixels
//   - frames: number of moving frames after the press (at least 1)
//   - dt: seconds per frame
//
// Returns:
//   - Gesture: the drag
func DragTo(dx, dy float32, frames int, dt float32) Gesture {
	frames = max(frames, 1)
	step := common.Vec2{X: dx / float32(frames), Y: dy / float32(frames)}

	g := Gesture{Name: "drag", Steps: make([]Step, 0, frames+3)}
	g.Steps = append(g.Steps, Step{Input: input.FrameInput{Held: true, JustPressed: true}, DeltaTime: dt})

	var p common.Vec2
	for i := 0; i < frames; i++ {
		p = p.Add(step)
		g.Steps = append(g.Steps, Step{Input: input.FrameInput{Pointer: p, Held: true}, DeltaTime: dt})
	}
	g.Steps = append(g.Steps,
		Step{Input: input.FrameInput{Pointer: p, Held: true}, DeltaTime: dt},
		Step{Input: input.FrameInput{Pointer: p, JustReleased: true}, DeltaTime: dt},
	)
	return g
}

// Idle is frames frames with the button up and the pointer still.
func Idle(frames int, dt float32) Gesture {
	g := Gesture{Name: "idle", Steps: make([]Step, max(frames, 0))}
	for i := range g.Steps {
		g.Steps[i].DeltaTime = dt
	}
	return g
}

// Concat joins gestures end to end under a new name.
func Concat(name string, gestures ...Gesture) Gesture {
	n := 0
	for _, g := range gestures {
		n += len(g.Steps)
	}
	out := Gesture{Name: name, Steps: make([]Step, 0, n)}
	for _, g := range gestures {
		out.Steps = append(out.Steps, g.Steps...)
	}
	return out
}
