package tuning

import (
	"errors"
	"fmt"
	"io"
	"math"
	"runtime"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"go.uber.org/zap"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
)

// restEpsilon is the per-frame rotation change, in degrees, below which the camera counts as still.
const restEpsilon = 1e-3

// Scenario is one gesture replayed against one configuration.
type Scenario struct {
	Name    string
	Config  camera.RotationConfig
	Gesture Gesture
	// SettleFrames idle frames are appended after the gesture.
	SettleFrames int
	// SettleDeltaTime is the frame time of the settle frames; 1/60 s when zero.
	SettleDeltaTime float32
}

// Result summarizes how the camera moved during a scenario.
type Result struct {
	Scenario string
	Elastic  bool
	Frames   int

	// Final is the orientation after the last frame.
	Final camera.Orientation
	// Peak is the largest absolute rotation reached on each stored axis.
	Peak common.Vec2
	// InertiaStopFrame is the first frame after a release on which inertia was zero, or -1.
	InertiaStopFrame int
	// RestFrame is the frame from which the camera stayed still until the end, or -1 if it was
	// still moving on the last frame.
	RestFrame int
	// InsideComfortZone reports whether the final rotation lies within the elastic bounds.
	InsideComfortZone bool

	Err error
}

// Variants returns the scenario twice, once with elastic pull on and once off.
func Variants(s Scenario) []Scenario {
	on, off := s, s
	on.Config.ElasticPull = true
	on.Name = s.Name + "/elastic"
	off.Config.ElasticPull = false
	off.Name = s.Name + "/free"
	return []Scenario{on, off}
}

// Simulate replays a single scenario on a fresh controller.
//
// Parameters:
//   - s: the scenario to replay
//
// Returns:
//   - Result: the measurements; Result.Err is set if the configuration is rejected
func Simulate(s Scenario) Result {
	res := Result{Scenario: s.Name, Elastic: s.Config.ElasticPull, InertiaStopFrame: -1, RestFrame: -1}

	rc, err := camera.NewRotationController(camera.WithRotationConfig(s.Config))
	if err != nil {
		res.Err = fmt.Errorf("scenario %s: %w", s.Name, err)
		return res
	}

	settleDT := s.SettleDeltaTime
	if settleDT == 0 {
		settleDT = 1.0 / 60.0
	}
	steps := Concat(s.Gesture.Name, s.Gesture, Idle(s.SettleFrames, settleDT)).Steps

	released := false
	lastMoving := -1
	prev := rc.Rotation()
	for i, step := range steps {
		o := rc.Tick(step.Input, step.DeltaTime)
		rot := o.Stored()
		inertia := rc.Inertia()

		res.Peak.X = max(res.Peak.X, abs(rot.X))
		res.Peak.Y = max(res.Peak.Y, abs(rot.Y))

		if step.Input.JustReleased {
			released = true
			res.InertiaStopFrame = -1
		}
		if step.Input.Held {
			released = false
		}
		stopped := inertia.X == 0 && inertia.Y == 0
		if released && stopped && res.InertiaStopFrame < 0 {
			res.InertiaStopFrame = i
		}

		moved := abs(rot.X-prev.X) > restEpsilon || abs(rot.Y-prev.Y) > restEpsilon
		if step.Input.Held || moved || !stopped {
			lastMoving = i
		}
		prev = rot
	}

	res.Frames = len(steps)
	res.Final = rc.Orientation()
	if lastMoving < len(steps)-1 {
		res.RestFrame = lastMoving + 1
	}

	cfg := rc.Config()
	final := res.Final.Stored()
	res.InsideComfortZone = common.WithinRange(final.X, cfg.MinElasticAngle().X-restEpsilon, cfg.MaxElasticAngle().X+restEpsilon) &&
		common.WithinRange(final.Y, cfg.MinElasticAngle().Y-restEpsilon, cfg.MaxElasticAngle().Y+restEpsilon)
	return res
}

// ErrRunnerClosed is returned by Run after Close.
var ErrRunnerClosed = errors.New("tuning: runner is closed")

// Runner replays scenarios in parallel on a set of worker pools. Call Close to release the workers.
type Runner struct {
	mu      *sync.Mutex
	workers int
	logger  *zap.Logger

	// shards each hold exactly one worker; Stop on a multi-worker pool can strand workers
	shards []worker.DynamicWorkerPool
	closed bool
}

// RunnerOption is a functional option for configuring a Runner.
type RunnerOption func(*Runner)

// WithWorkers sets the number of pool workers. Values below 1 fall back to the default.
func WithWorkers(n int) RunnerOption {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithLogger sets the logger used for per-scenario progress.
func WithLogger(logger *zap.Logger) RunnerOption {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger.Named("tuning")
		}
	}
}

// NewRunner creates a Runner and starts its workers. Defaults to one worker per CPU minus one,
// at least one. The workers live until Close is called.
//
// Parameters:
//   - options: functional options to configure the runner
//
// Returns:
//   - *Runner: the newly created runner
func NewRunner(options ...RunnerOption) *Runner {
	r := &Runner{
		mu:      &sync.Mutex{},
		workers: max(runtime.NumCPU()-1, 1),
		logger:  zap.NewNop(),
	}
	for _, option := range options {
		option(r)
	}

	r.shards = make([]worker.DynamicWorkerPool, r.workers)
	for i := range r.shards {
		r.shards[i] = worker.NewDynamicWorkerPool(1, 256, 1*time.Second)
	}
	return r
}

// Run simulates every scenario and returns results in scenario order. Scenarios whose
// configuration is rejected still produce a Result; their errors are also joined into the
// returned error.
//
// Parameters:
//   - scenarios: the scenarios to replay
//
// Returns:
//   - []Result: one result per scenario, in input order
//   - error: joined configuration errors, ErrRunnerClosed after Close, or nil
func (r *Runner) Run(scenarios []Scenario) ([]Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil, ErrRunnerClosed
	}

	results := make([]Result, len(scenarios))

	// The pool's own Wait tracks worker exits, not task completion, so batches use a WaitGroup.
	var wg sync.WaitGroup
	for i := range scenarios {
		wg.Add(1)
		idx := i
		r.shards[idx%len(r.shards)].SubmitTask(worker.Task{
			ID: idx,
			Do: func() (any, error) {
				defer wg.Done()
				res := Simulate(scenarios[idx])
				results[idx] = res
				r.logger.Debug("scenario finished",
					zap.String("scenario", res.Scenario),
					zap.Int("frames", res.Frames),
					zap.Int("rest_frame", res.RestFrame),
				)
				return nil, res.Err
			},
		})
	}
	wg.Wait()

	var errs []error
	for _, res := range results {
		if res.Err != nil {
			errs = append(errs, res.Err)
		}
	}
	return results, errors.Join(errs...)
}

// Close stops every worker. Safe to call more than once; Run fails with ErrRunnerClosed afterwards.
func (r *Runner) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	for _, pool := range r.shards {
		pool.Stop()
	}
	r.logger.Debug("runner closed", zap.Int("workers", len(r.shards)))
}

// WriteReport prints results as an aligned table.
//
// Parameters:
//   - w: destination writer
//   - results: results to print, in order
//
// Returns:
//   - error: error from the underlying writer
func WriteReport(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SCENARIO\tFINAL YAW\tFINAL PITCH\tPEAK YAW\tPEAK PITCH\tINERTIA STOP\tREST\tIN ZONE")
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(tw, "%s\terror: %v\t\t\t\t\t\t\n", res.Scenario, res.Err)
			continue
		}
		fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%.2f\t%.2f\t%s\t%s\t%t\n",
			res.Scenario,
			res.Final.Yaw, res.Final.Pitch,
			res.Peak.X, res.Peak.Y,
			frameOrDash(res.InertiaStopFrame), frameOrDash(res.RestFrame),
			res.InsideComfortZone,
		)
	}
	return tw.Flush()
}

func frameOrDash(f int) string {
	if f < 0 {
		return "-"
	}
	return fmt.Sprint(f)
}

func abs(f float32) float32 {
	return float32(math.Abs(float64(f)))
}
