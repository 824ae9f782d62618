package metrics

import "time"

// OutcomeLabel enumerates how a parse ended.
type OutcomeLabel string

const (
	// OutcomeComplete: the grammar matched and consumed the whole input.
	OutcomeComplete OutcomeLabel = "complete"
	// OutcomePartial: the grammar matched a prefix; Remaining is non-empty.
	OutcomePartial OutcomeLabel = "partial"
	// OutcomeFailed: a hard error (depth limit, missing attribute) aborted the parse.
	OutcomeFailed OutcomeLabel = "failed"
)

// Recorder defines observability hooks for parse metrics. Implementations
// may forward to Prometheus or a test double. The driver always holds a
// Recorder, NoopRecorder when metrics are not configured.
type Recorder interface {
	ObserveParseDuration(d time.Duration)
	IncParseOutcome(outcome OutcomeLabel)
	IncFailureCategory(category string)
	ObserveNodeCount(n int)
	ObserveInputBytes(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveParseDuration(time.Duration) {}
func (NoopRecorder) IncParseOutcome(OutcomeLabel)       {}
func (NoopRecorder) IncFailureCategory(string)          {}
func (NoopRecorder) ObserveNodeCount(int)               {}
func (NoopRecorder) ObserveInputBytes(int)              {}
