package metrics

import (
	"runtime"
	"runtime/debug"

	"github.com/agbru/arraysum/internal/logging"
)

// GC modes, matching the --gc values.
const (
	GCModeAuto    = "auto"
	GCModePaused  = "paused"
	GCModeEnabled = "enabled"
)

// GCAutoThreshold is the smallest element count for which auto mode pauses
// the collector.
const GCAutoThreshold = 100_000

// GCController pauses Go's garbage collector around timed sections so that
// collections triggered by earlier allocations do not land inside a
// measurement. End restores the previous settings and collects.
type GCController struct {
	active            bool
	running           bool
	originalGCPercent int
	originalMemLimit  int64
	logger            logging.Logger
	start             MemorySnapshot
	end               MemorySnapshot
	collector         *MemoryCollector
}

// NewGCController creates a controller for mode and an input of n elements.
// Unknown modes leave the collector alone.
func NewGCController(mode string, n int, logger logging.Logger) *GCController {
	gc := &GCController{logger: logger, collector: NewMemoryCollector()}
	switch mode {
	case GCModePaused:
		gc.active = true
	case GCModeAuto:
		gc.active = n >= GCAutoThreshold
	}
	return gc
}

// Active reports whether Begin will pause the collector.
func (gc *GCController) Active() bool {
	return gc != nil && gc.active
}

// Begin pauses the collector. A soft memory limit of three times the memory
// obtained from the OS stays in place as a safety net, unless a lower limit
// (GOMEMLIMIT) is already set.
func (gc *GCController) Begin() {
	if !gc.Active() || gc.running {
		return
	}
	gc.running = true
	gc.start = gc.collector.Snapshot()
	gc.originalGCPercent = debug.SetGCPercent(-1)
	gc.originalMemLimit = debug.SetMemoryLimit(-1)
	if gc.start.Sys > 0 {
		if limit := int64(float64(gc.start.Sys) * 3); limit > 0 && limit < gc.originalMemLimit {
			debug.SetMemoryLimit(limit)
		}
	}
	if gc.logger != nil {
		gc.logger.Debug("gc paused", logging.Uint64("heap_alloc_bytes", gc.start.HeapAlloc))
	}
}

// End restores the GC percentage and memory limit saved by Begin and runs a
// collection.
func (gc *GCController) End() {
	if !gc.Active() || !gc.running {
		return
	}
	gc.running = false
	gc.end = gc.collector.Snapshot()
	debug.SetGCPercent(gc.originalGCPercent)
	debug.SetMemoryLimit(gc.originalMemLimit)
	runtime.GC()
	if gc.logger != nil {
		stats := gc.Stats()
		gc.logger.Debug("gc resumed",
			logging.Uint64("heap_alloc_bytes", stats.HeapAlloc),
			logging.Uint64("total_alloc_bytes", stats.TotalAlloc),
			logging.Int("gc_cycles", int(stats.NumGC)))
	}
}

// Stats returns the memory delta between the last Begin and End.
func (gc *GCController) Stats() MemorySnapshot {
	return gc.end.Since(gc.start)
}
