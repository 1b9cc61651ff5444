// Package observability records command outcomes: durations and success
// counts through expvar or Prometheus, and spans as JSON lines.
package observability

import (
	"context"
	"time"

	"cakecollate/pkg/domain"
)

// MetricsRecorder captures the outcome of one executed command.
type MetricsRecorder interface {
	Observe(ctx context.Context, operation string, success bool, duration time.Duration)
}

// SnapshotObserver is implemented by recorders that also track store sizes.
type SnapshotObserver interface {
	ObserveSnapshot(snapshot domain.Snapshot)
}

// Tracer starts spans around executed commands.
type Tracer interface {
	Start(ctx context.Context, operation string) (context.Context, TraceSpan)
}

// TraceSpan is ended exactly once with the command's error, if any.
type TraceSpan interface {
	End(err error)
}

type noopMetrics struct{}

func (noopMetrics) Observe(context.Context, string, bool, time.Duration) {}

// NoopMetrics returns a recorder that discards observations.
func NoopMetrics() MetricsRecorder { return noopMetrics{} }

type noopTracer struct{}

type noopSpan struct{}

func (noopTracer) Start(ctx context.Context, _ string) (context.Context, TraceSpan) {
	return ctx, noopSpan{}
}

func (noopSpan) End(error) {}

// NoopTracer returns a tracer whose spans do nothing.
func NoopTracer() Tracer { return noopTracer{} }

// Recorders fans observations out to every non-nil recorder.
func Recorders(recs ...MetricsRecorder) MetricsRecorder {
	out := make(multiRecorder, 0, len(recs))
	for _, r := range recs {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

type multiRecorder []MetricsRecorder

func (m multiRecorder) Observe(ctx context.Context, operation string, success bool, duration time.Duration) {
	for _, r := range m {
		r.Observe(ctx, operation, success, duration)
	}
}

func (m multiRecorder) ObserveSnapshot(snapshot domain.Snapshot) {
	for _, r := range m {
		if so, ok := r.(SnapshotObserver); ok {
			so.ObserveSnapshot(snapshot)
		}
	}
}
