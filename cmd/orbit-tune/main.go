// Command orbit-tune replays a set of scripted drags and flicks against a rotation configuration,
// once with elastic pull and once without, and prints how the camera settled.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Carmen-Shannon/oxy-orbit/engine/config"
	"github.com/Carmen-Shannon/oxy-orbit/engine/logger"
	"github.com/Carmen-Shannon/oxy-orbit/engine/tuning"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML configuration file (defaults are used when empty)")
	workers := flag.Int("workers", 0, "number of parallel workers (0 picks one per CPU)")
	settle := flag.Int("settle", 600, "idle frames appended after each gesture")
	verbose := flag.Bool("v", false, "log each scenario as it finishes")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	dt := float32(1 / cfg.Engine.TickRate)
	rotation := cfg.RotationConfig()

	var scenarios []tuning.Scenario
	for _, g := range builtinGestures(dt) {
		scenarios = append(scenarios, tuning.Variants(tuning.Scenario{
			Name:            g.Name,
			Config:          rotation,
			Gesture:         g,
			SettleFrames:    *settle,
			SettleDeltaTime: dt,
		})...)
	}

	runner := tuning.NewRunner(tuning.WithWorkers(*workers), tuning.WithLogger(log))
	defer runner.Close()

	results, err := runner.Run(scenarios)
	if err != nil {
		log.Error("some scenarios were rejected", zap.Error(err))
	}

	if err := tuning.WriteReport(os.Stdout, results); err != nil {
		log.Fatal("failed to write report", zap.Error(err))
	}
}

// builtinGestures returns the gestures every configuration is measured against.
func builtinGestures(dt float32) []tuning.Gesture {
	named := func(name string, g tuning.Gesture) tuning.Gesture {
		g.Name = name
		return g
	}
	return []tuning.Gesture{
		named("flick-right", tuning.Flick(120, 0, 8, dt)),
		named("flick-left", tuning.Flick(-120, 0, 8, dt)),
		named("flick-up", tuning.Flick(0, -120, 8, dt)),
		named("drag-past-zone", tuning.DragTo(600, 0, 30, dt)),
		named("drag-diagonal", tuning.DragTo(300, 300, 20, dt)),
		tuning.Concat("flick-then-drag-back",
			tuning.Flick(90, 0, 6, dt),
			tuning.Idle(30, dt),
			tuning.DragTo(-400, 0, 20, dt),
		),
	}
}
