package memory

import "github.com/avannier/tilecalc/internal/tiling"

// maxArenaCells caps the pre-allocated block at 128 Mi cells. An
// enumeration predicted to outgrow the cap still works; allocations past
// the block simply fall back to the heap.
const maxArenaCells = 1 << 24

// SnapshotArena pre-allocates one contiguous int block for the cell labels
// of every snapshot an enumeration collects. This removes per-snapshot GC
// tracking for the two row slices and enables O(1) bulk release via
// Reset().
//
// The arena uses a bump-pointer allocation strategy: each AllocRow call
// advances the offset. When capacity is exhausted, it falls back to
// standard heap allocation.
type SnapshotArena struct {
	buf    []int
	offset int
}

// NewSnapshotArena creates an arena sized for count snapshots of a
// 2×width floor. The expected count comes from the profile scan, so the
// block is exact unless it hits the cap.
func NewSnapshotArena(width int, count uint64) *SnapshotArena {
	if width <= 0 || count == 0 {
		return &SnapshotArena{}
	}
	cells := uint64(tiling.Rows * width)
	total := count * cells
	if count > maxArenaCells/cells {
		total = maxArenaCells
	}
	return &SnapshotArena{
		buf: make([]int, total),
	}
}

// AllocRow returns a length-width label slice backed by the arena, with
// unspecified contents. If the arena is exhausted, falls back to heap
// allocation.
func (a *SnapshotArena) AllocRow(width int) []int {
	if width <= 0 {
		return []int{}
	}
	if a.buf == nil || a.offset+width > len(a.buf) {
		return make([]int, width)
	}
	row := a.buf[a.offset : a.offset+width : a.offset+width]
	a.offset += width
	return row
}

// Snapshot deep-copies t into arena-backed row storage. The result is
// valid until the next Reset.
func (a *SnapshotArena) Snapshot(t tiling.Tiling) tiling.Tiling {
	snap := tiling.Tiling{Width: t.Width}
	for r := range t.Cells {
		row := a.AllocRow(t.Width)
		copy(row, t.Cells[r])
		snap.Cells[r] = row
	}
	return snap
}

// Reset resets the arena for reuse without freeing the backing block.
// Rows of previously taken snapshots may be handed out again, so those
// snapshots become invalid.
func (a *SnapshotArena) Reset() {
	a.offset = 0
}

// UsedCells returns the number of cells currently allocated from the arena.
func (a *SnapshotArena) UsedCells() int {
	return a.offset
}

// CapacityCells returns the total capacity of the arena in cells.
func (a *SnapshotArena) CapacityCells() int {
	return len(a.buf)
}
