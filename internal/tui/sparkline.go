package tui

import (
	"math"
	"math/big"
	"strings"
)

// Eight block elements, lowest fill to highest.
var sparklineChars = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// GrowthSeries converts a count sequence into 0..100 values suitable for a
// sparkline. Counts grow geometrically, so the series plots log2 of each
// count, normalized against the largest one.
func GrowthSeries(seq []*big.Int) []float64 {
	if len(seq) == 0 {
		return nil
	}
	logs := make([]float64, len(seq))
	maxLog := 0.0
	for i, v := range seq {
		logs[i] = approxLog2(v)
		if logs[i] > maxLog {
			maxLog = logs[i]
		}
	}
	if maxLog == 0 {
		return logs
	}
	for i := range logs {
		logs[i] = logs[i] / maxLog * 100
	}
	return logs
}

// approxLog2 returns log2 of a positive count, falling back to the bit
// length once the value no longer fits in a float64.
func approxLog2(x *big.Int) float64 {
	if x == nil || x.Sign() <= 0 {
		return 0
	}
	f, _ := new(big.Float).SetInt(x).Float64()
	if !math.IsInf(f, 0) {
		return math.Log2(f)
	}
	return float64(x.BitLen() - 1)
}

// clampPercent keeps a sample inside the 0..100 plotting range.
func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// RenderSparkline draws one block character per sample. Samples are read
// on a 0..100 scale and clamped when out of range.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	var b strings.Builder
	for _, v := range values {
		idx := int(clampPercent(v) / 100.0 * 7.0)
		if idx > 7 {
			idx = 7
		}
		b.WriteRune(sparklineChars[idx])
	}
	return b.String()
}

// brailleDotBits holds the Unicode offset bit for each dot position of a
// braille cell, indexed by [column][row]. A character is U+2800 plus the
// OR of its active bits.
var brailleDotBits = [2][4]rune{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// brailleGrid accumulates plotted dots for a chart of braille cells. Each
// cell carries a 2x4 dot matrix, so the grid has twice the horizontal and
// four times the vertical resolution of the text it renders to.
type brailleGrid struct {
	cells [][]rune
	width int
}

func newBrailleGrid(width, rows int) *brailleGrid {
	cells := make([][]rune, rows)
	for r := range cells {
		row := make([]rune, width)
		for c := range row {
			row[c] = 0x2800
		}
		cells[r] = row
	}
	return &brailleGrid{cells: cells, width: width}
}

// set turns on the dot at the given dot-grid coordinates. Coordinates
// outside the grid are ignored.
func (g *brailleGrid) set(dotCol, dotRow int) {
	cellCol, cellRow := dotCol/2, dotRow/4
	if cellCol < 0 || cellCol >= g.width || cellRow < 0 || cellRow >= len(g.cells) {
		return
	}
	g.cells[cellRow][cellCol] |= brailleDotBits[dotCol%2][dotRow%4]
}

func (g *brailleGrid) lines() []string {
	out := make([]string, len(g.cells))
	for r, row := range g.cells {
		out[r] = string(row)
	}
	return out
}

// RenderBrailleChart plots samples (0..100) as a braille chart, rows text
// lines tall and width characters wide. When the series is longer than the
// dot grid only the most recent samples are kept, and the series is
// right-aligned so the newest sample lands in the last dot column.
func RenderBrailleChart(values []float64, width, rows int) []string {
	if width <= 0 || rows <= 0 || len(values) == 0 {
		return nil
	}

	dotW, dotH := width*2, rows*4
	visible := values
	if len(visible) > dotW {
		visible = visible[len(visible)-dotW:]
	}

	grid := newBrailleGrid(width, rows)
	offset := dotW - len(visible)
	for i, raw := range visible {
		v := clampPercent(raw)
		dotRow := dotH - 1 - int(v/100.0*float64(dotH-1))
		if dotRow < 0 {
			dotRow = 0
		} else if dotRow >= dotH {
			dotRow = dotH - 1
		}
		grid.set(offset+i, dotRow)
	}
	return grid.lines()
}
