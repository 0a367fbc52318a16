// Command orbit-viewer opens a window and orbits a camera around a fixed target as the left mouse
// button drags across it. The current yaw and pitch are shown in the window title.
//
// Controls: drag with the left button to rotate, R to recenter, Space to toggle the profiler,
// Escape to quit.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/config"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
	"github.com/Carmen-Shannon/oxy-orbit/engine/logger"
	"github.com/Carmen-Shannon/oxy-orbit/engine/window"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML configuration file (defaults are used when empty)")
	titleFlag := flag.String("title", "", "window title, overriding the configuration")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	controller, err := camera.NewRotationController(
		camera.WithRotationConfig(cfg.RotationConfig()),
		camera.WithLogger(log),
	)
	if err != nil {
		log.Fatal("invalid rotation config", zap.Error(err))
	}
	rig := camera.NewOrbitRig(controller, cfg.RigOptions()...)

	// ── Engine + Window ─────────────────────────────────────────────────
	baseTitle := common.Coalesce(*titleFlag, cfg.Window.Title, "Oxy Orbit")
	eng := engine.NewEngine(
		engine.WithLogger(log),
		engine.WithProfiling(cfg.Engine.Profiling),
		engine.WithTickRate(cfg.Engine.TickRate),
		engine.WithWindow(window.NewWindow(
			window.WithTitle(baseTitle),
			window.WithWidth(cfg.Window.Width),
			window.WithHeight(cfg.Window.Height),
		)),
	)

	tracker := input.NewPointerTracker()
	setupInput(eng, tracker, rig, log)

	eng.SetTickCallback(func(deltaTime float32) {
		rig.Update(tracker.Frame(), deltaTime)
	})

	lastTitle := baseTitle
	eng.Window().SetUpdateCallback(func() {
		o := rig.Controller().Orientation()
		title := fmt.Sprintf("%s | yaw %.1f pitch %.1f", baseTitle, o.Yaw, o.Pitch)
		if title != lastTitle {
			eng.Window().SetTitle(title)
			lastTitle = title
		}
	})

	x, y, z := rig.Position()
	log.Info("orbit viewer ready",
		zap.Float32s("camera", []float32{x, y, z}),
		zap.Float32("distance", rig.Distance()),
	)
	eng.Run()

	if err := eng.Window().Close(); err != nil {
		log.Warn("window close failed", zap.Error(err))
	}
}

// loadConfig reads the file at path, or returns the defaults when path is empty.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// setupInput routes window pointer and key events into the tracker and the rig's controller.
func setupInput(eng engine.Engine, tracker *input.PointerTracker, rig camera.OrbitRig, log *zap.Logger) {
	eng.Window().SetMouseButtonCallback(func(button int, pressed bool, x, y float32) {
		if button != common.MouseButtonLeft {
			return
		}
		tracker.Move(x, y)
		if pressed {
			tracker.Press()
		} else {
			tracker.Release()
		}
	})
	eng.Window().SetMouseMoveCallback(func(x, y float32) {
		tracker.Move(x, y)
	})

	profiling := eng.ProfilerEnabled()
	eng.Window().SetKeyDownCallback(func(keyCode uint32) {
		switch keyCode {
		case common.KeyR:
			rig.Controller().Reset()
			log.Info("rotation reset")
		case common.KeySpace:
			profiling = !profiling
			if profiling {
				eng.EnableProfiler()
			} else {
				eng.DisableProfiler()
			}
		}
	})
}
