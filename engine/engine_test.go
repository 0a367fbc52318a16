package engine

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func runWithTimeout(t *testing.T, e Engine) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		e.Quit()
		t.Fatal("engine did not stop")
	}
}

func TestHeadlessTicksUntilQuit(t *testing.T) {
	var ticks atomic.Int32
	var e Engine
	e = NewEngine(
		WithTickRate(500),
		WithTickCallback(func(dt float32) {
			if dt <= 0 {
				t.Errorf("non-positive delta %v", dt)
			}
			if ticks.Add(1) == 10 {
				e.Quit()
			}
		}),
	)

	runWithTimeout(t, e)
	if n := ticks.Load(); n < 10 {
		t.Errorf("ticks = %d, want at least 10", n)
	}
	// Quit is idempotent
	e.Quit()
}

func TestSetTickRate(t *testing.T) {
	e := NewEngine(WithTickRate(0))
	if e.TickRate() != time.Second/60 {
		t.Fatalf("default tick rate = %v, want 60Hz", e.TickRate())
	}
	e.SetTickRate(100)
	if e.TickRate() != 10*time.Millisecond {
		t.Fatalf("tick rate = %v, want 10ms", e.TickRate())
	}

	var ticks atomic.Int32
	e.SetTickCallback(func(float32) {
		switch ticks.Add(1) {
		case 1:
			e.SetTickRate(1000)
		case 30:
			e.Quit()
		}
	})

	runWithTimeout(t, e)
	if e.TickRate() != time.Millisecond {
		t.Errorf("tick rate after live change = %v, want 1ms", e.TickRate())
	}
}

func TestPanicInTickStopsEngine(t *testing.T) {
	e := NewEngine(
		WithTickRate(500),
		WithProfiling(true),
		WithTickCallback(func(float32) { panic("boom") }),
	)
	runWithTimeout(t, e)
}

func TestProfilerToggle(t *testing.T) {
	e := NewEngine(WithProfiling(true))
	if !e.ProfilerEnabled() {
		t.Fatal("WithProfiling(true) left the profiler off")
	}
	e.DisableProfiler()
	if e.ProfilerEnabled() {
		t.Error("DisableProfiler had no effect")
	}
	e.EnableProfiler()
	if !e.ProfilerEnabled() {
		t.Error("EnableProfiler had no effect")
	}
}

func TestSetTickCallbackWhileRunning(t *testing.T) {
	var first atomic.Int32
	e := NewEngine(
		WithTickRate(1000),
		WithTickCallback(func(float32) { first.Add(1) }),
	)

	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()

	deadline := time.Now().Add(5 * time.Second)
	for first.Load() == 0 {
		if time.Now().After(deadline) {
			e.Quit()
			t.Fatal("first callback never ran")
		}
		time.Sleep(time.Millisecond)
	}

	swapped := make(chan struct{})
	var once sync.Once
	e.SetTickCallback(func(float32) {
		once.Do(func() { close(swapped) })
	})

	select {
	case <-swapped:
	case <-time.After(5 * time.Second):
		t.Error("replacement callback never ran")
	}
	e.Quit()
	<-done
}
