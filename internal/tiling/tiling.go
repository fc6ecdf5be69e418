package tiling

import (
	"errors"
	"fmt"
	"slices"
)

// Floor geometry. Rows are indexed 0 (top) and 1 (bottom); columns run
// 0..Width-1 left to right.
const Rows = 2

var (
	// ErrNegativeWidth reports a negative floor width passed to a
	// component that requires n ≥ 0. Only the recurrence counter accepts
	// negative widths, for which it returns zero by definition.
	ErrNegativeWidth = errors.New("tiling: negative floor width")

	// ErrMalformedTiling reports a tiling that is not a complete,
	// non-overlapping cover of the floor. Validate wraps it with the
	// offending cell or label.
	ErrMalformedTiling = errors.New("tiling: malformed tiling")

	// ErrStopWalk, when returned by a Walk visitor, stops the walk early
	// without error. Walk itself returns nil in that case.
	ErrStopWalk = errors.New("tiling: stop walk")
)

// Tiling is a complete assignment of the cells of a 2×Width floor to tiles.
// Cells[row][col] holds the label of the tile covering that cell; two cells
// belong to the same tile exactly when they carry the same label. Labels are
// positive and have no meaning across tilings, only equality within one
// tiling matters.
type Tiling struct {
	Width int
	Cells [Rows][]int
}

// NewTiling allocates an unlabeled tiling of the given width. All cells
// start at zero, which no tile ever carries.
func NewTiling(width int) (Tiling, error) {
	if width < 0 {
		return Tiling{}, fmt.Errorf("%w: %d", ErrNegativeWidth, width)
	}
	return Tiling{
		Width: width,
		Cells: [Rows][]int{make([]int, width), make([]int, width)},
	}, nil
}

// Clone returns a deep copy whose cell storage is independent of t.
func (t Tiling) Clone() Tiling {
	clone := Tiling{Width: t.Width}
	for r := range t.Cells {
		clone.Cells[r] = slices.Clone(t.Cells[r])
	}
	return clone
}

// Equal reports whether t and other have identical width and labels.
func (t Tiling) Equal(other Tiling) bool {
	if t.Width != other.Width {
		return false
	}
	for r := range t.Cells {
		if !slices.Equal(t.Cells[r], other.Cells[r]) {
			return false
		}
	}
	return true
}

// TileSize returns the number of cells covered by the tile at (row, col):
// 1 for a unit tile, 2 for a domino. It assumes a valid tiling, where a
// shared label can only sit on an adjacent cell.
func (t Tiling) TileSize(row, col int) int {
	label := t.Cells[row][col]
	if col+1 < t.Width && t.Cells[row][col+1] == label {
		return 2
	}
	if col > 0 && t.Cells[row][col-1] == label {
		return 2
	}
	if t.Cells[1-row][col] == label {
		return 2
	}
	return 1
}

// Validate checks that t is a complete, non-overlapping cover of the floor:
// both rows have Width cells, every cell carries a positive label, and every
// label covers exactly one cell or one domino-shaped pair of cells.
func (t Tiling) Validate() error {
	if t.Width < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeWidth, t.Width)
	}
	for r := range t.Cells {
		if len(t.Cells[r]) != t.Width {
			return fmt.Errorf("%w: row %d has %d cells, want %d",
				ErrMalformedTiling, r, len(t.Cells[r]), t.Width)
		}
	}

	// Census in scan order, so the first occurrence of a label always has
	// the smaller column (or the smaller row within a column).
	occupied := make(map[int][][2]int, t.Width)
	for c := 0; c < t.Width; c++ {
		for r := 0; r < Rows; r++ {
			label := t.Cells[r][c]
			if label <= 0 {
				return fmt.Errorf("%w: cell (%d,%d) is unlabeled",
					ErrMalformedTiling, r, c)
			}
			occupied[label] = append(occupied[label], [2]int{r, c})
		}
	}

	for label, cells := range occupied {
		switch len(cells) {
		case 1:
			// Unit tile.
		case 2:
			first, second := cells[0], cells[1]
			horizontal := first[0] == second[0] && second[1] == first[1]+1
			vertical := first[1] == second[1] && first[0] == 0 && second[0] == 1
			if !horizontal && !vertical {
				return fmt.Errorf("%w: label %d spans non-adjacent cells (%d,%d) and (%d,%d)",
					ErrMalformedTiling, label, first[0], first[1], second[0], second[1])
			}
		default:
			return fmt.Errorf("%w: label %d covers %d cells",
				ErrMalformedTiling, label, len(cells))
		}
	}
	return nil
}
