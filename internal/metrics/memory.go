package metrics

import (
	"math"
	"math/big"
	"runtime"
	"strconv"

	"github.com/avannier/tilecalc/internal/tiling"
)

// MemorySnapshot is a point-in-time view of the Go heap, reduced to the
// fields the memory report prints.
type MemorySnapshot struct {
	HeapAlloc    uint64 // live heap bytes
	HeapSys      uint64 // heap address space reserved from the OS
	Sys          uint64 // total address space reserved from the OS
	NumGC        uint32 // completed collection cycles
	PauseTotalNs uint64 // cumulative stop-the-world pause time
	HeapObjects  uint64 // live objects on the heap
}

// ReadSnapshot captures the current runtime memory statistics.
func ReadSnapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		HeapSys:      m.HeapSys,
		Sys:          m.Sys,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
		HeapObjects:  m.HeapObjects,
	}
}

const (
	// cellBytes is the in-memory size of one cell label.
	cellBytes = strconv.IntSize / 8

	// snapshotOverheadBytes covers a retained tiling's bookkeeping outside
	// the raw cells: the Tiling value and its two slice headers.
	snapshotOverheadBytes = 72
)

// EstimateEnumerationBytes estimates the heap bytes needed to retain count
// tilings of the given width. Saturates at MaxUint64 for counts past the
// addressable range, which is answer enough for any guard consulting it.
func EstimateEnumerationBytes(width int, count *big.Int) uint64 {
	if width < 0 || count == nil || count.Sign() <= 0 {
		return 0
	}
	perSnapshot := uint64(tiling.Rows*width)*cellBytes + snapshotOverheadBytes
	total := new(big.Int).Mul(count, new(big.Int).SetUint64(perSnapshot))
	if !total.IsUint64() {
		return math.MaxUint64
	}
	return total.Uint64()
}

// EstimateEnumerationBytesFor predicts the tiling count with the profile
// scan and estimates from that.
func EstimateEnumerationBytesFor(width int) uint64 {
	count, err := tiling.CountByProfile(width)
	if err != nil {
		return 0
	}
	return EstimateEnumerationBytes(width, count)
}
