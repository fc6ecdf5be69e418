package tiling

import "github.com/avannier/tilecalc/internal/progress"

// The counters take callbacks and subjects from internal/progress. The
// aliases below re-export that surface so callers of this package can
// observe a count without a second import.

type (
	// ProgressUpdate is one report from a counter: which counter, how far.
	ProgressUpdate = progress.ProgressUpdate

	// ProgressCallback receives completion fractions in [0, 1].
	ProgressCallback = progress.ProgressCallback

	// ProgressObserver consumes ProgressUpdates.
	ProgressObserver = progress.ProgressObserver

	// ProgressSubject fans updates out to registered observers.
	ProgressSubject = progress.ProgressSubject

	// ChannelObserver forwards updates into a channel, dropping when full.
	ChannelObserver = progress.ChannelObserver

	// LoggingObserver writes updates to a zerolog logger.
	LoggingObserver = progress.LoggingObserver

	// NoOpObserver discards updates.
	NoOpObserver = progress.NoOpObserver
)

// Constructors re-exported from internal/progress.
var (
	NewProgressSubject = progress.NewProgressSubject
	NewChannelObserver = progress.NewChannelObserver
	NewLoggingObserver = progress.NewLoggingObserver
	NewNoOpObserver    = progress.NewNoOpObserver
)
