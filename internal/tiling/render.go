package tiling

import (
	"io"
	"strconv"
	"strings"
)

// Diagram geometry. A merged cell spans two normal cells plus the
// suppressed divider between them.
const (
	cellWidth   = 3
	mergedWidth = 2*cellWidth + 1

	borderSolid = "---"
	borderBlank = "   "
)

// borderKind selects which of the three horizontal rules is being drawn;
// the rules differ in where they merge with adjacent tiles.
type borderKind int

const (
	borderTop borderKind = iota
	borderMiddle
	borderBottom
)

// Renderer turns one Tiling into a bordered ASCII diagram. Every cell
// shows the size of the tile covering it. A horizontal domino renders as
// one merged double-width cell; a vertical domino blanks the middle border
// segment between its two cells:
//
//	+---+-------+---+
//	| 1 |   2   | 2 |
//	+---+---+---+   +
//	|   2   | 1 | 2 |
//	+-------+---+---+
//
// Rendering is a pure function of the tiling's label structure.
type Renderer struct{}

// NewRenderer returns a Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render returns the diagram for t as a five-line string, each line
// newline-terminated. The tiling is validated first; malformed input is an
// error rather than a garbled diagram.
func (r *Renderer) Render(t Tiling) (string, error) {
	var sb strings.Builder
	if err := r.RenderTo(&sb, t); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// RenderTo writes the diagram for t to w: top border, top row, middle
// border, bottom row, bottom border.
func (r *Renderer) RenderTo(w io.Writer, t Tiling) error {
	if err := t.Validate(); err != nil {
		return err
	}

	// Build the full diagram first so w sees either the whole thing or,
	// on a write error, nothing torn mid-line.
	var sb strings.Builder
	sb.Grow((mergedWidth + 2) * t.Width)
	writeBorder(&sb, t, borderTop)
	writeRow(&sb, t, 0)
	writeBorder(&sb, t, borderMiddle)
	writeRow(&sb, t, 1)
	writeBorder(&sb, t, borderBottom)

	_, err := io.WriteString(w, sb.String())
	return err
}

// writeRow writes one content row. A cell that starts a horizontal domino
// is merged with its right neighbour into one wide cell, consuming both
// columns.
func writeRow(sb *strings.Builder, t Tiling, row int) {
	sb.WriteByte('|')
	for col := 0; col < t.Width; {
		width := cellWidth
		if col+1 < t.Width && t.Cells[row][col] == t.Cells[row][col+1] {
			width = mergedWidth
		}
		writeCentered(sb, strconv.Itoa(t.TileSize(row, col)), width)
		sb.WriteByte('|')
		if width == mergedWidth {
			col += 2
		} else {
			col++
		}
	}
	sb.WriteByte('\n')
}

// writeBorder writes one horizontal rule. The middle rule blanks the
// segment under a vertical domino; the top and bottom rules replace the
// junction inside a horizontal domino's span with a dash so the merged
// cell reads as one piece. Junctions on the middle rule are always drawn.
func writeBorder(sb *strings.Builder, t Tiling, kind borderKind) {
	sb.WriteByte('+')
	for col := 0; col < t.Width; col++ {
		if kind == borderMiddle && t.Cells[0][col] == t.Cells[1][col] {
			sb.WriteString(borderBlank)
		} else {
			sb.WriteString(borderSolid)
		}

		if col+1 == t.Width {
			sb.WriteByte('+')
			continue
		}
		switch {
		case kind == borderTop && t.Cells[0][col] == t.Cells[0][col+1]:
			sb.WriteByte('-')
		case kind == borderBottom && t.Cells[1][col] == t.Cells[1][col+1]:
			sb.WriteByte('-')
		default:
			sb.WriteByte('+')
		}
	}
	sb.WriteByte('\n')
}

// writeCentered writes s centered in width characters; odd leftover space
// goes to the right.
func writeCentered(sb *strings.Builder, s string, width int) {
	pad := width - len(s)
	if pad < 0 {
		pad = 0
	}
	left := pad / 2
	sb.WriteString(strings.Repeat(" ", left))
	sb.WriteString(s)
	sb.WriteString(strings.Repeat(" ", pad-left))
}
