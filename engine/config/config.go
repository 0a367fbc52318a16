// Package config loads the YAML file that tunes the orbit camera and its host.
//
// Every field is optional; anything left out keeps its default. Vector pairs may be written either
// as a two-element sequence ([20, 0]) or as a mapping ({x: 20, y: 0}).
//
//	rotation:
//	  drag_speed: [20, 0]
//	  inertia_damp: [0.1, 0.1]
//	  max_rotate_angle: [45, 45]
//	  elastic_angle: [20, 20]
//	  auto_rotation_speed: [20, 20]
//	  elastic_pull: true
//	orbit:
//	  target: [0, 0, 0]
//	  camera_position: [0, 0, 10]
//	engine:
//	  tick_rate: 60
//	  profiling: false
//	window:
//	  title: Oxy Orbit
//	  width: 1280
//	  height: 720
//	log:
//	  level: info
//	  format: console
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/logger"
)

// Errors returned by Config.Validate for host settings.
var (
	ErrTickRate      = errors.New("engine tick_rate must be positive")
	ErrWindowSize    = errors.New("window width and height must be positive")
	ErrOrbitDistance = errors.New("orbit camera_position must differ from target")
)

// Config is the root of the configuration file.
type Config struct {
	Rotation Rotation      `yaml:"rotation"`
	Orbit    Orbit         `yaml:"orbit"`
	Engine   Engine        `yaml:"engine"`
	Window   Window        `yaml:"window"`
	Log      logger.Config `yaml:"log"`
}

// Rotation mirrors camera.RotationConfig.
type Rotation struct {
	DragSpeed         Vector2 `yaml:"drag_speed"`
	InertiaDamp       Vector2 `yaml:"inertia_damp"`
	MaxRotateAngle    Vector2 `yaml:"max_rotate_angle"`
	ElasticAngle      Vector2 `yaml:"elastic_angle"`
	AutoRotationSpeed Vector2 `yaml:"auto_rotation_speed"`
	ElasticPull       bool    `yaml:"elastic_pull"`
}

// Orbit positions the anchor and the camera.
type Orbit struct {
	// Target is the point orbited; the world origin when unset.
	Target Vector3 `yaml:"target"`
	// CameraPosition is the camera's world position at zero rotation.
	CameraPosition Vector3 `yaml:"camera_position"`
}

// Engine holds tick loop settings.
type Engine struct {
	TickRate  float64 `yaml:"tick_rate"`
	Profiling bool    `yaml:"profiling"`
}

// Window holds host window settings.
type Window struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	rc := camera.DefaultRotationConfig()
	return &Config{
		Rotation: Rotation{
			DragSpeed:         Vector2(rc.DragSpeed),
			InertiaDamp:       Vector2(rc.InertiaDamp),
			MaxRotateAngle:    Vector2(rc.MaxRotateAngle),
			ElasticAngle:      Vector2(rc.ElasticAngle),
			AutoRotationSpeed: Vector2(rc.AutoRotationSpeed),
			ElasticPull:       rc.ElasticPull,
		},
		Orbit: Orbit{
			CameraPosition: Vector3{0, 0, 10},
		},
		Engine: Engine{
			TickRate: 60,
		},
		Window: Window{
			Title:  "Oxy Orbit",
			Width:  1280,
			Height: 720,
		},
		Log: logger.DefaultConfig(),
	}
}

// Load reads and parses the configuration file at path.
//
// Parameters:
//   - path: location of the YAML file
//
// Returns:
//   - *Config: the parsed and validated configuration
//   - error: error if the file cannot be read, parsed or validated
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result. Unknown keys are rejected.
//
// Parameters:
//   - data: YAML document
//
// Returns:
//   - *Config: the parsed and validated configuration
//   - error: error if decoding or validation fails
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode yaml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the rotation constants and host settings.
//
// Returns:
//   - error: the first problem found, or nil
func (c *Config) Validate() error {
	if err := c.RotationConfig().Validate(); err != nil {
		return fmt.Errorf("rotation: %w", err)
	}
	if c.Engine.TickRate <= 0 {
		return fmt.Errorf("%w (got %v)", ErrTickRate, c.Engine.TickRate)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w (got %dx%d)", ErrWindowSize, c.Window.Width, c.Window.Height)
	}
	if c.Orbit.CameraPosition == c.Orbit.Target {
		return fmt.Errorf("%w (both at %v)", ErrOrbitDistance, c.Orbit.Target)
	}
	return nil
}

// RotationConfig converts the rotation section to the camera package's type.
func (c *Config) RotationConfig() camera.RotationConfig {
	return camera.RotationConfig{
		DragSpeed:         common.Vec2(c.Rotation.DragSpeed),
		InertiaDamp:       common.Vec2(c.Rotation.InertiaDamp),
		MaxRotateAngle:    common.Vec2(c.Rotation.MaxRotateAngle),
		ElasticAngle:      common.Vec2(c.Rotation.ElasticAngle),
		AutoRotationSpeed: common.Vec2(c.Rotation.AutoRotationSpeed),
		ElasticPull:       c.Rotation.ElasticPull,
	}
}

// RigOptions returns the orbit rig options described by the orbit section.
func (c *Config) RigOptions() []camera.OrbitRigOption {
	t, p := c.Orbit.Target, c.Orbit.CameraPosition
	return []camera.OrbitRigOption{
		camera.WithOrbitTarget(t[0], t[1], t[2]),
		camera.WithCameraPosition(p[0], p[1], p[2]),
	}
}
