package input

import (
	"sync"
	"testing"

	"github.com/Carmen-Shannon/oxy-orbit/common"
)

func TestPointerTrackerDrag(t *testing.T) {
	tr := NewPointerTracker()

	if in := tr.Frame(); in != (FrameInput{}) {
		t.Fatalf("fresh tracker frame = %+v", in)
	}

	tr.Move(10, 20)
	tr.Press()
	in := tr.Frame()
	if !in.Held || !in.JustPressed || in.JustReleased {
		t.Errorf("press frame = %+v", in)
	}
	if in.Pointer != (common.Vec2{X: 10, Y: 20}) {
		t.Errorf("press pointer = %v", in.Pointer)
	}

	tr.Move(15, 20)
	in = tr.Frame()
	if !in.Held || in.JustPressed || in.JustReleased {
		t.Errorf("held frame = %+v", in)
	}
	if in.Pointer.X != 15 {
		t.Errorf("held pointer = %v", in.Pointer)
	}

	tr.Release()
	in = tr.Frame()
	if in.Held || in.JustPressed || !in.JustReleased {
		t.Errorf("release frame = %+v", in)
	}

	in = tr.Frame()
	if in.Held || in.JustPressed || in.JustReleased {
		t.Errorf("idle frame = %+v", in)
	}
}

func TestPointerTrackerLatchesClickBetweenFrames(t *testing.T) {
	tr := NewPointerTracker()
	tr.Press()
	tr.Release()

	if tr.Down() {
		t.Error("raw state still down after release")
	}
	if in := tr.Frame(); !in.JustPressed || !in.Held {
		t.Errorf("first frame = %+v, want the press", in)
	}
	if in := tr.Frame(); !in.JustReleased || in.Held {
		t.Errorf("second frame = %+v, want the release", in)
	}
	if in := tr.Frame(); in.JustPressed || in.JustReleased || in.Held {
		t.Errorf("third frame = %+v, want idle", in)
	}
}

func TestPointerTrackerThirdTransitionCancelsTail(t *testing.T) {
	tr := NewPointerTracker()
	tr.Press()
	tr.Release()
	tr.Press()

	if in := tr.Frame(); !in.JustPressed {
		t.Errorf("first frame = %+v, want the press", in)
	}
	// the release and second press cancel, leaving the button held
	if in := tr.Frame(); !in.Held || in.JustPressed || in.JustReleased {
		t.Errorf("second frame = %+v, want held", in)
	}
}

func TestPointerTrackerIgnoresRepeats(t *testing.T) {
	tr := NewPointerTracker()
	tr.Release()
	if in := tr.Frame(); in.JustReleased {
		t.Error("release without a press was reported")
	}

	tr.Press()
	tr.Press()
	tr.Frame()
	if in := tr.Frame(); in.JustPressed {
		t.Error("repeated press was reported twice")
	}
}

func TestPointerTrackerSample(t *testing.T) {
	tr := NewPointerTracker()

	tr.Sample(1, 2, true)
	in := tr.Frame()
	if !in.JustPressed || in.Pointer != (common.Vec2{X: 1, Y: 2}) {
		t.Errorf("sampled press = %+v", in)
	}

	tr.Sample(3, 2, true)
	if in = tr.Frame(); !in.Held || in.JustPressed || in.Pointer.X != 3 {
		t.Errorf("sampled hold = %+v", in)
	}

	tr.Sample(3, 2, false)
	if in = tr.Frame(); !in.JustReleased {
		t.Errorf("sampled release = %+v", in)
	}
}

func TestPointerTrackerConcurrentUse(t *testing.T) {
	tr := NewPointerTracker()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			tr.Move(float32(i), 0)
			if i%2 == 0 {
				tr.Press()
			} else {
				tr.Release()
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			in := tr.Frame()
			if in.JustPressed && in.JustReleased {
				t.Error("frame reported both edges")
				return
			}
		}
	}()
	wg.Wait()
}
