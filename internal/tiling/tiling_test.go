package tiling

import (
	"errors"
	"testing"
)

func TestNewTiling(t *testing.T) {
	t.Parallel()

	t.Run("allocates unlabeled grid", func(t *testing.T) {
		tl, err := NewTiling(3)
		if err != nil {
			t.Fatalf("NewTiling(3) returned error: %v", err)
		}
		if tl.Width != 3 {
			t.Errorf("Width = %d, want 3", tl.Width)
		}
		for r := range tl.Cells {
			if len(tl.Cells[r]) != 3 {
				t.Errorf("row %d has %d cells, want 3", r, len(tl.Cells[r]))
			}
			for c, label := range tl.Cells[r] {
				if label != 0 {
					t.Errorf("cell (%d,%d) = %d, want 0", r, c, label)
				}
			}
		}
	})

	t.Run("rejects negative width", func(t *testing.T) {
		_, err := NewTiling(-1)
		if !errors.Is(err, ErrNegativeWidth) {
			t.Errorf("NewTiling(-1) error = %v, want ErrNegativeWidth", err)
		}
	})
}

func TestTilingClone(t *testing.T) {
	t.Parallel()

	original := Tiling{Width: 2, Cells: [Rows][]int{{1, 3}, {2, 3}}}
	clone := original.Clone()

	if !clone.Equal(original) {
		t.Fatalf("clone %v differs from original %v", clone.Cells, original.Cells)
	}

	clone.Cells[0][0] = 99
	if original.Cells[0][0] != 1 {
		t.Errorf("mutating the clone changed the original: %v", original.Cells)
	}
}

func TestTilingEqual(t *testing.T) {
	t.Parallel()

	base := Tiling{Width: 2, Cells: [Rows][]int{{1, 1}, {2, 3}}}
	tests := []struct {
		name  string
		other Tiling
		want  bool
	}{
		{"identical", Tiling{Width: 2, Cells: [Rows][]int{{1, 1}, {2, 3}}}, true},
		{"different width", Tiling{Width: 1, Cells: [Rows][]int{{1}, {2}}}, false},
		{"different labels", Tiling{Width: 2, Cells: [Rows][]int{{1, 2}, {2, 3}}}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := base.Equal(tc.other); got != tc.want {
				t.Errorf("Equal = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTileSize(t *testing.T) {
	t.Parallel()

	// One unit tile, a horizontal domino in each row, and a vertical
	// domino in the last column.
	tl := Tiling{Width: 4, Cells: [Rows][]int{
		{1, 2, 2, 3},
		{4, 4, 5, 3},
	}}

	tests := []struct {
		row, col, want int
	}{
		{0, 0, 1}, // unit
		{0, 1, 2}, // horizontal, left half
		{0, 2, 2}, // horizontal, right half
		{0, 3, 2}, // vertical, top half
		{1, 0, 2}, // horizontal, left half
		{1, 1, 2}, // horizontal, right half
		{1, 2, 1}, // unit
		{1, 3, 2}, // vertical, bottom half
	}
	for _, tc := range tests {
		if got := tl.TileSize(tc.row, tc.col); got != tc.want {
			t.Errorf("TileSize(%d, %d) = %d, want %d", tc.row, tc.col, got, tc.want)
		}
	}
}

func TestTilingValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		tiling  Tiling
		wantErr error
	}{
		{
			name:   "all unit tiles",
			tiling: Tiling{Width: 2, Cells: [Rows][]int{{1, 3}, {2, 4}}},
		},
		{
			name:   "mixed tiles",
			tiling: Tiling{Width: 4, Cells: [Rows][]int{{1, 2, 2, 3}, {4, 4, 5, 3}}},
		},
		{
			name:   "empty floor",
			tiling: Tiling{Width: 0, Cells: [Rows][]int{{}, {}}},
		},
		{
			name:    "negative width",
			tiling:  Tiling{Width: -1},
			wantErr: ErrNegativeWidth,
		},
		{
			name:    "row length mismatch",
			tiling:  Tiling{Width: 2, Cells: [Rows][]int{{1}, {2, 3}}},
			wantErr: ErrMalformedTiling,
		},
		{
			name:    "unlabeled cell",
			tiling:  Tiling{Width: 2, Cells: [Rows][]int{{1, 0}, {2, 3}}},
			wantErr: ErrMalformedTiling,
		},
		{
			name:    "diagonal label pair",
			tiling:  Tiling{Width: 2, Cells: [Rows][]int{{1, 2}, {2, 1}}},
			wantErr: ErrMalformedTiling,
		},
		{
			name:    "label covering three cells",
			tiling:  Tiling{Width: 2, Cells: [Rows][]int{{1, 1}, {1, 2}}},
			wantErr: ErrMalformedTiling,
		},
		{
			name:    "same-row gap pair",
			tiling:  Tiling{Width: 3, Cells: [Rows][]int{{1, 2, 1}, {3, 4, 5}}},
			wantErr: ErrMalformedTiling,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.tiling.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tc.wantErr)
			}
		})
	}
}
