package profiler

import (
	"runtime"
	"time"

	"go.uber.org/zap"
)

// Profiler tracks tick rate, tick duration and memory statistics for performance monitoring.
// Outputs stats to the logger at a configurable interval.
type Profiler struct {
	logger *zap.Logger

	tickCount      int
	busy           time.Duration
	worstTick      time.Duration
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64

	now func() time.Time
}

// Stats is one reporting window's worth of measurements.
type Stats struct {
	TicksPerSecond float64
	AvgTick        time.Duration
	WorstTick      time.Duration
	HeapMB         float64
	AllocRateMB    float64
	GCCount        uint32
}

// NewProfiler creates a new Profiler. Update interval defaults to 1 second.
//
// Parameters:
//   - logger: destination for periodic stats; nil disables output
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(logger *zap.Logger) *Profiler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Profiler{
		logger:         logger.Named("profiler"),
		lastTime:       time.Now(),
		updateInterval: time.Second,
		now:            time.Now,
	}
}

// SetInterval changes how often stats are reported.
func (p *Profiler) SetInterval(d time.Duration) {
	if d > 0 {
		p.updateInterval = d
	}
}

// Tick should be called once per engine tick with the time the tick's work took.
// Logs statistics when the update interval has elapsed.
//
// Parameters:
//   - work: time spent inside the tick callback
//
// Returns:
//   - Stats: the reported window's statistics
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick(work time.Duration) (Stats, bool) {
	p.tickCount++
	p.busy += work
	if work > p.worstTick {
		p.worstTick = work
	}

	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return Stats{}, false
	}

	runtime.ReadMemStats(&p.memStats)
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc

	stats := Stats{
		TicksPerSecond: float64(p.tickCount) / elapsed.Seconds(),
		AvgTick:        p.busy / time.Duration(p.tickCount),
		WorstTick:      p.worstTick,
		HeapMB:         float64(p.memStats.Alloc) / 1024 / 1024,
		AllocRateMB:    float64(allocDelta) / 1024 / 1024 / elapsed.Seconds(),
		GCCount:        p.memStats.NumGC,
	}

	p.logger.Info("tick stats",
		zap.Float64("tps", stats.TicksPerSecond),
		zap.Duration("avg_tick", stats.AvgTick),
		zap.Duration("worst_tick", stats.WorstTick),
		zap.Float64("heap_mb", stats.HeapMB),
		zap.Float64("alloc_rate_mb_s", stats.AllocRateMB),
		zap.Uint32("gc_total", stats.GCCount),
		zap.Uint32("gc_window", stats.GCCount-p.lastGCCount),
	)

	p.tickCount = 0
	p.busy = 0
	p.worstTick = 0
	p.lastTime = currentTime
	p.lastGCCount = p.memStats.NumGC
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return stats, true
}
