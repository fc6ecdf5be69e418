// Package progress defines the progress-reporting plumbing shared by the
// counters, the orchestration layer, and the UI front ends. Counters report
// completion fractions through callbacks; observers fan the updates out to
// channels, logs, or nothing at all.
package progress

import (
	"sync"

	"github.com/rs/zerolog"
)

// ProgressReportDelta is the smallest change in completion fraction worth
// forwarding. Updates arriving faster than this are dropped to keep the
// reporting overhead negligible next to the counting work itself.
const ProgressReportDelta = 0.01

// ProgressUpdate carries one progress report from a counter.
type ProgressUpdate struct {
	// CounterIndex identifies which counter sent the update.
	CounterIndex int
	// Value is the completion fraction in [0, 1].
	Value float64
}

// ProgressCallback receives completion fractions in [0, 1].
type ProgressCallback func(float64)

// ProgressObserver consumes progress updates.
type ProgressObserver interface {
	OnProgress(update ProgressUpdate)
}

// ProgressSubject fans updates out to registered observers. It is safe for
// concurrent registration and notification.
type ProgressSubject struct {
	mu        sync.RWMutex
	observers []ProgressObserver
}

// NewProgressSubject creates an empty subject.
func NewProgressSubject() *ProgressSubject {
	return &ProgressSubject{}
}

// Register adds an observer. Nil observers are ignored.
func (s *ProgressSubject) Register(o ProgressObserver) {
	if o == nil {
		return
	}
	s.mu.Lock()
	s.observers = append(s.observers, o)
	s.mu.Unlock()
}

// Unregister removes a previously registered observer.
func (s *ProgressSubject) Unregister(o ProgressObserver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.observers {
		if existing == o {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

// Notify delivers an update to every registered observer.
func (s *ProgressSubject) Notify(update ProgressUpdate) {
	s.mu.RLock()
	observers := make([]ProgressObserver, len(s.observers))
	copy(observers, s.observers)
	s.mu.RUnlock()
	for _, o := range observers {
		o.OnProgress(update)
	}
}

// Callback adapts the subject to the per-counter callback form used by the
// counting cores.
func (s *ProgressSubject) Callback(counterIndex int) ProgressCallback {
	return func(value float64) {
		s.Notify(ProgressUpdate{CounterIndex: counterIndex, Value: value})
	}
}

// ChannelObserver forwards updates to a channel. Sends never block: when the
// channel buffer is full the update is dropped, since a newer one will follow.
type ChannelObserver struct {
	ch chan<- ProgressUpdate
}

// NewChannelObserver creates an observer forwarding to ch.
func NewChannelObserver(ch chan<- ProgressUpdate) *ChannelObserver {
	return &ChannelObserver{ch: ch}
}

// OnProgress forwards the update without blocking.
func (o *ChannelObserver) OnProgress(update ProgressUpdate) {
	select {
	case o.ch <- update:
	default:
	}
}

// LoggingObserver logs updates at debug level.
type LoggingObserver struct {
	logger zerolog.Logger
}

// NewLoggingObserver creates an observer logging through the given logger.
func NewLoggingObserver(logger zerolog.Logger) *LoggingObserver {
	return &LoggingObserver{logger: logger}
}

// OnProgress logs the update.
func (o *LoggingObserver) OnProgress(update ProgressUpdate) {
	o.logger.Debug().
		Int("counter", update.CounterIndex).
		Float64("value", update.Value).
		Msg("progress")
}

// NoOpObserver discards updates.
type NoOpObserver struct{}

// NewNoOpObserver creates an observer that ignores everything.
func NewNoOpObserver() *NoOpObserver {
	return &NoOpObserver{}
}

// OnProgress discards the update.
func (*NoOpObserver) OnProgress(ProgressUpdate) {}

// Reporter rate-limits a callback to ProgressReportDelta increments. The
// terminal value 1.0 is always forwarded so consumers see completion.
type Reporter struct {
	cb   ProgressCallback
	last float64
}

// NewReporter wraps a callback; a nil callback yields a no-op reporter.
func NewReporter(cb ProgressCallback) *Reporter {
	return &Reporter{cb: cb, last: -1}
}

// Report forwards value when it moved enough since the last forwarded report.
func (r *Reporter) Report(value float64) {
	if r.cb == nil {
		return
	}
	if value < 1 && value-r.last < ProgressReportDelta {
		return
	}
	r.last = value
	r.cb(value)
}

// ReportStep reports completion of step out of total through cb, rate-limited
// by the reporter. Intended for per-column loops in the counters.
func ReportStep(r *Reporter, step, total int) {
	if total <= 0 {
		return
	}
	r.Report(float64(step) / float64(total))
}
