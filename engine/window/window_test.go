package window

import (
	"sync"
	"testing"
)

func TestDetachedWindow(t *testing.T) {
	w := &engineWindow{mu: &sync.Mutex{}, title: "a", width: 640, height: 480}

	if w.IsRunning() {
		t.Error("window without a platform handle reports running")
	}
	if err := w.Close(); err == nil {
		t.Error("Close on an uninitialized window succeeded")
	}

	w.SetTitle("yaw 10.0 pitch 0.0")
	if got := w.Title(); got != "yaw 10.0 pitch 0.0" {
		t.Errorf("title = %q", got)
	}
	if w.Width() != 640 || w.Height() != 480 {
		t.Errorf("size = %dx%d, want 640x480", w.Width(), w.Height())
	}

	// the loop exits immediately without a platform window
	called := false
	w.SetUpdateCallback(func() { called = true })
	w.ProcessMessages()
	if called {
		t.Error("update callback ran for a window that is not running")
	}
}
