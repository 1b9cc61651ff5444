package observability

import (
	"context"
	"encoding/json"
	"io"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// JSONTraceEntry describes a finished span.
type JSONTraceEntry struct {
	TraceID    string    `json:"trace_id"`
	Operation  string    `json:"operation"`
	Status     string    `json:"status"`
	DurationMS float64   `json:"duration_ms"`
	Error      string    `json:"error,omitempty"`
	StartedAt  time.Time `json:"started_at"`
	EndedAt    time.Time `json:"ended_at"`
}

// JSONTraceTracer appends every finished span to an in-memory log and, when
// constructed with a writer, emits it there as one JSON line.
type JSONTraceTracer struct {
	mu  sync.Mutex
	log []JSONTraceEntry
	out *json.Encoder
}

// NewJSONTracer returns a tracer emitting to w, which may be nil.
func NewJSONTracer(w io.Writer) *JSONTraceTracer {
	t := &JSONTraceTracer{}
	if w != nil {
		t.out = json.NewEncoder(w)
	}
	return t
}

// Entries returns the spans finished so far, oldest first.
func (t *JSONTraceTracer) Entries() []JSONTraceEntry {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.log)
}

func (t *JSONTraceTracer) record(e JSONTraceEntry) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.log = append(t.log, e)
	if t.out != nil {
		_ = t.out.Encode(e)
	}
}

type traceIDKey struct{}

// TraceID reports the id of the span carried by ctx.
func TraceID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(traceIDKey{}).(string)
	return id, ok
}

// Start opens a span for operation. The returned context carries its id.
func (t *JSONTraceTracer) Start(ctx context.Context, operation string) (context.Context, TraceSpan) {
	s := &jsonTraceSpan{owner: t, entry: JSONTraceEntry{
		TraceID:   uuid.NewString(),
		Operation: operation,
		StartedAt: time.Now().UTC(),
	}}
	return context.WithValue(ctx, traceIDKey{}, s.entry.TraceID), s
}

type jsonTraceSpan struct {
	owner *JSONTraceTracer
	entry JSONTraceEntry
}

func (s *jsonTraceSpan) End(err error) {
	e := s.entry
	e.EndedAt = time.Now().UTC()
	e.DurationMS = float64(e.EndedAt.Sub(e.StartedAt)) / float64(time.Millisecond)
	e.Status = statusLabel(err == nil)
	if err != nil {
		e.Error = err.Error()
	}
	s.owner.record(e)
}
