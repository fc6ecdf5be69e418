package config

import "github.com/avannier/tilecalc/internal/tiling"

// Warn threshold resolution chain (highest priority first):
//   1. CLI flag (--warn-threshold)
//   2. Environment variable (TILECALC_WARN_THRESHOLD)
//   3. Line-budget estimation (this file)

const (
	// defaultLineBudget approximates how many lines of enumeration output a
	// terminal session absorbs before the listing stops being useful.
	defaultLineBudget = 10_000

	// renderedLinesPerTiling is the footprint of one tiling in the
	// enumeration listing: five diagram rows, the header, and the trailing
	// blank line.
	renderedLinesPerTiling = 7
)

// ShouldConfirmEnumeration reports whether enumerating a floor of the given
// width needs an explicit go-ahead first. A configured Yes suppresses the
// prompt entirely.
func (c AppConfig) ShouldConfirmEnumeration(width int) bool {
	if c.Yes {
		return false
	}
	return width > c.WarnThreshold
}

// EstimateUnpromptedWidth returns the largest floor width whose full rendered
// enumeration fits within lineBudget output lines. Enumerating any width
// above it warrants a confirmation prompt.
func EstimateUnpromptedWidth(lineBudget int) int {
	maxTilings := int64(lineBudget / renderedLinesPerTiling)
	if maxTilings < 1 {
		return 0
	}
	width := 0
	for {
		count, err := tiling.CountByProfile(width + 1)
		if err != nil || !count.IsInt64() || count.Int64() > maxTilings {
			return width
		}
		width++
	}
}
