package memory

import (
	"math"
	"runtime"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// GCMode controls the garbage collector behavior during an enumeration.
type GCMode string

const (
	GCModeAuto       GCMode = "auto"
	GCModeAggressive GCMode = "aggressive"
	GCModeDisabled   GCMode = "disabled"
)

// GCAutoThreshold is the minimum expected tiling count for auto GC control
// to activate. Below a million snapshots the collector's pauses are lost
// in the noise; a 2×13 floor (about 2.6 million tilings) is the first
// width that crosses it.
const GCAutoThreshold uint64 = 1_000_000

// GCController pauses Go's garbage collector around a large enumeration.
// The snapshot set only grows while the walk runs, so collection cycles in
// that window cost pause time without reclaiming anything. End restores
// the collector and reports what the walk allocated.
type GCController struct {
	mode              GCMode
	active            bool
	originalGCPercent int
	logger            zerolog.Logger
	before            runtime.MemStats
	after             runtime.MemStats
}

// GCStats holds GC statistics for one enumeration.
type GCStats struct {
	HeapAlloc    uint64
	TotalAlloc   uint64
	NumGC        uint32
	PauseTotalNs uint64
}

// NewGCController creates a GC controller for the given mode and expected
// tiling count.
func NewGCController(mode string, expected uint64) *GCController {
	m := GCMode(mode)
	return &GCController{
		mode:   m,
		active: gcActiveFor(m, expected),
		logger: zerolog.Nop(),
	}
}

func gcActiveFor(mode GCMode, expected uint64) bool {
	switch mode {
	case GCModeAggressive:
		return true
	case GCModeAuto:
		return expected >= GCAutoThreshold
	}
	return false
}

// SetLogger routes GC pause and restore events to l.
func (gc *GCController) SetLogger(l zerolog.Logger) {
	gc.logger = l
}

func readMemStats() runtime.MemStats {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return ms
}

// softLimit picks a memory ceiling to hold while the collector is off,
// three times the runtime's current footprint. Returns 0 when the
// footprint is unknown.
func softLimit(sys uint64) int64 {
	if sys == 0 {
		return 0
	}
	return int64(float64(sys) * 3)
}

// Begin pauses the collector when the controller is active, otherwise it
// is a no-op.
func (gc *GCController) Begin() {
	if !gc.active {
		return
	}
	gc.before = readMemStats()
	gc.originalGCPercent = debug.SetGCPercent(-1)
	if limit := softLimit(gc.before.Sys); limit > 0 {
		debug.SetMemoryLimit(limit)
	}
	gc.logger.Debug().
		Str("mode", string(gc.mode)).
		Uint64("heap_bytes", gc.before.HeapAlloc).
		Msg("gc disabled")
}

// End restores the original GC settings and triggers a collection.
func (gc *GCController) End() {
	if !gc.active {
		return
	}
	gc.after = readMemStats()
	debug.SetGCPercent(gc.originalGCPercent)
	debug.SetMemoryLimit(math.MaxInt64)
	runtime.GC()
	gc.logger.Debug().
		Str("mode", string(gc.mode)).
		Uint64("heap_bytes", gc.after.HeapAlloc).
		Uint64("walk_alloc_bytes", gc.after.TotalAlloc-gc.before.TotalAlloc).
		Uint32("cycles", gc.after.NumGC-gc.before.NumGC).
		Msg("gc re-enabled")
}

// Stats returns the GC statistics delta between Begin and End.
func (gc *GCController) Stats() GCStats {
	return GCStats{
		HeapAlloc:    gc.after.HeapAlloc,
		TotalAlloc:   gc.after.TotalAlloc - gc.before.TotalAlloc,
		NumGC:        gc.after.NumGC - gc.before.NumGC,
		PauseTotalNs: gc.after.PauseTotalNs - gc.before.PauseTotalNs,
	}
}
