package tui

import (
	"math/big"
	"time"

	"github.com/avannier/tilecalc/internal/sysmon"
)

// EnumerationProgressMsg reports how far the background enumeration has
// advanced. Total comes from the profile DP count, so Value is exact.
type EnumerationProgressMsg struct {
	Visited uint64
	Total   uint64
	Value   float64
}

// TilingsLoadedMsg carries the fully rendered tiling frames once the
// background enumeration completes.
type TilingsLoadedMsg struct {
	Frames   []string
	Count    *big.Int
	Duration time.Duration
}

// LoadFailedMsg reports an enumeration failure.
type LoadFailedMsg struct {
	Err error
}

// MemStatsMsg carries a heap sample and a host reading for the stats line.
type MemStatsMsg struct {
	HeapAlloc   uint64
	HeapObjects uint64
	Host        sysmon.Stats
}

// TickMsg drives the elapsed display and periodic memory sampling.
type TickMsg time.Time
