package observability

import (
	"context"
	"expvar"
	"maps"
	"strconv"
	"sync"
	"sync/atomic"
	"time"
)

var expvarSeq atomic.Uint64

// commandTally accumulates the outcomes of one command word.
type commandTally struct {
	totalMS float64
	counts  map[string]int64
}

// ExpvarMetricsRecorder keeps running totals per command word and exposes
// them as a JSON object under an expvar name.
type ExpvarMetricsRecorder struct {
	name string

	mu      sync.Mutex
	tallies map[string]*commandTally
}

// ExpvarMetricsSnapshot is a point-in-time copy of the totals.
type ExpvarMetricsSnapshot struct {
	DurationsMS map[string]float64          `json:"durations_ms_total"`
	Results     map[string]map[string]int64 `json:"results_total"`
	RecordedAt  time.Time                   `json:"recorded_at"`
}

// NewExpvarMetricsRecorder registers a recorder. When name is empty a
// numbered one is chosen so repeated construction never collides.
func NewExpvarMetricsRecorder(name string) *ExpvarMetricsRecorder {
	if name == "" {
		name = "cakecollate_command_metrics_" + strconv.FormatUint(expvarSeq.Add(1), 10)
	}
	rec := &ExpvarMetricsRecorder{name: name, tallies: map[string]*commandTally{}}
	expvar.Publish(name, expvar.Func(func() any { return rec.Snapshot() }))
	return rec
}

func (r *ExpvarMetricsRecorder) Name() string { return r.name }

// Snapshot copies the current totals. Mutating the result does not affect
// the recorder.
func (r *ExpvarMetricsRecorder) Snapshot() ExpvarMetricsSnapshot {
	snap := ExpvarMetricsSnapshot{
		DurationsMS: map[string]float64{},
		Results:     map[string]map[string]int64{},
		RecordedAt:  time.Now().UTC(),
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for word, tally := range r.tallies {
		snap.DurationsMS[word] = tally.totalMS
		snap.Results[word] = maps.Clone(tally.counts)
	}
	return snap
}

// Observe adds one outcome. Observations without a command word are dropped.
func (r *ExpvarMetricsRecorder) Observe(_ context.Context, operation string, success bool, duration time.Duration) {
	if operation == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	tally, ok := r.tallies[operation]
	if !ok {
		tally = &commandTally{counts: make(map[string]int64, 2)}
		r.tallies[operation] = tally
	}
	tally.totalMS += float64(duration) / float64(time.Millisecond)
	tally.counts[statusLabel(success)]++
}

func statusLabel(success bool) string {
	if !success {
		return "error"
	}
	return "success"
}
