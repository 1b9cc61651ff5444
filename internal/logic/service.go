// Package logic runs commands against the model. It serialises execution,
// persists the snapshot after every mutating command, and reports each
// command to the logger, metrics, tracer and audit recorder.
package logic

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"cakecollate/internal/blob"
	"cakecollate/internal/core"
	"cakecollate/internal/logic/commands"
	"cakecollate/internal/model"
	"cakecollate/internal/observability"
	"cakecollate/internal/platform/logger"
	"cakecollate/pkg/domain"
)

// Archiver keeps backup copies of persisted snapshots.
type Archiver interface {
	Archive(ctx context.Context, snapshot domain.Snapshot) (blob.Archive, error)
	RestoreLatest(ctx context.Context) (domain.Snapshot, blob.Archive, error)
}

// ErrArchiveDisabled is returned by RestoreLatest when no archiver is configured.
var ErrArchiveDisabled = errors.New("snapshot archive not configured")

// Service executes commands one at a time.
type Service struct {
	mu       sync.Mutex
	model    *model.Manager
	store    domain.SnapshotStore
	archiver Archiver
	logger   logger.Logger
	metrics  observability.MetricsRecorder
	tracer   observability.Tracer
	audit    AuditRecorder
	clock    domain.Clock
}

// Option configures a Service.
type Option func(*Service)

func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithMetricsRecorder(r observability.MetricsRecorder) Option {
	return func(s *Service) {
		if r != nil {
			s.metrics = r
		}
	}
}

func WithTracer(t observability.Tracer) Option {
	return func(s *Service) {
		if t != nil {
			s.tracer = t
		}
	}
}

func WithAuditRecorder(r AuditRecorder) Option {
	return func(s *Service) {
		if r != nil {
			s.audit = r
		}
	}
}

// WithClock sets the clock used for audit timestamps, reminders and rules.
func WithClock(c domain.Clock) Option {
	return func(s *Service) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithArchiver backs up every persisted snapshot through a.
func WithArchiver(a Archiver) Option {
	return func(s *Service) { s.archiver = a }
}

func newService(store domain.SnapshotStore, opts []Option) *Service {
	s := &Service{
		store:   store,
		logger:  logger.Noop(),
		metrics: observability.NoopMetrics(),
		tracer:  observability.NoopTracer(),
		audit:   noopAuditRecorder{},
		clock:   domain.SystemClock{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewService wraps an existing model. Snapshots are written to store.
func NewService(m *model.Manager, store domain.SnapshotStore, opts ...Option) (*Service, error) {
	if m == nil || store == nil {
		return nil, domain.ErrNilArgument
	}
	s := newService(store, opts)
	s.model = m
	return s, nil
}

// Open loads the persisted snapshot from store and builds a model guarded by
// the default rules.
func Open(ctx context.Context, store domain.SnapshotStore, prefs model.ReadOnlyUserPrefs, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, domain.ErrNilArgument
	}
	s := newService(store, opts)
	snapshot, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	m, err := s.newModel(snapshot, prefs)
	if err != nil {
		return nil, err
	}
	s.model = m
	s.logger.Info("cakecollate loaded", "orders", len(snapshot.Orders), "order_items", len(snapshot.OrderItems))
	return s, nil
}

func (s *Service) newModel(snapshot domain.Snapshot, prefs model.ReadOnlyUserPrefs) (*model.Manager, error) {
	m, err := model.NewManagerFromSnapshot(snapshot, prefs,
		model.WithRulesEngine(core.NewDefaultRulesEngine(s.clock)),
		model.WithLogger(s.logger),
	)
	if err != nil {
		return nil, fmt.Errorf("build model: %w", err)
	}
	return m, nil
}

// Execute runs cmd. Any committed change is persisted before Execute returns;
// a persistence failure is reported as the command's error.
func (s *Service) Execute(ctx context.Context, cmd commands.Command) (commands.Result, error) {
	if cmd == nil {
		return commands.Result{}, domain.ErrNilArgument
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	op := cmd.Word()
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "command."+op)

	res, err := cmd.Execute(ctx, s.model)
	changes := s.model.DrainChanges()
	findings := s.model.DrainFindings()
	if len(changes) > 0 {
		if perr := s.persist(ctx); perr != nil {
			err = errors.Join(err, perr)
		}
	}

	duration := time.Since(start)
	span.End(err)
	s.metrics.Observe(ctx, op, err == nil, duration)
	s.record(ctx, op, changes, err, duration)
	if err != nil {
		s.logger.Warn("command failed", "command", op, "duration_ms", duration.Milliseconds(), "changes", len(changes), "error", err)
		return res, err
	}
	s.logger.Info("command executed", "command", op, "duration_ms", duration.Milliseconds(), "changes", len(changes), "findings", len(findings))
	return res, nil
}

func (s *Service) persist(ctx context.Context) error {
	snapshot := s.model.Snapshot()
	if err := s.store.Save(ctx, snapshot); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	if so, ok := s.metrics.(observability.SnapshotObserver); ok {
		so.ObserveSnapshot(snapshot)
	}
	if s.archiver == nil {
		return nil
	}
	arc, err := s.archiver.Archive(ctx, snapshot)
	if err != nil {
		s.logger.Warn("archive snapshot failed", "error", err)
		return nil
	}
	s.logger.Debug("snapshot archived", "archive", arc.ID)
	return nil
}

func (s *Service) record(ctx context.Context, op string, changes []domain.Change, err error, duration time.Duration) {
	now := s.clock.Now().UTC()
	if err != nil && len(changes) == 0 {
		s.audit.Record(ctx, AuditEntry{Operation: op, Status: AuditStatusError, Error: err.Error(), Duration: duration, Timestamp: now})
		return
	}
	status, msg := AuditStatusSuccess, ""
	if err != nil {
		status, msg = AuditStatusError, err.Error()
	}
	for _, c := range changes {
		entry := AuditEntry{
			Operation: op,
			Entity:    c.Entity,
			Action:    c.Action,
			Key:       changeKey(c),
			Status:    status,
			Error:     msg,
			Duration:  duration,
			Timestamp: now,
		}
		s.audit.Record(ctx, entry)
		s.logger.Debug("change committed", "command", op, "entity", c.Entity, "action", c.Action, "key", entry.Key)
	}
}

// RestoreLatest replaces the model with the newest archived snapshot and
// persists it.
func (s *Service) RestoreLatest(ctx context.Context) (blob.Archive, error) {
	if s.archiver == nil {
		return blob.Archive{}, ErrArchiveDisabled
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot, arc, err := s.archiver.RestoreLatest(ctx)
	if err != nil {
		return blob.Archive{}, fmt.Errorf("restore archive: %w", err)
	}
	m, err := s.newModel(snapshot, s.model.UserPrefs())
	if err != nil {
		return blob.Archive{}, err
	}
	if err := s.store.Save(ctx, snapshot); err != nil {
		return blob.Archive{}, fmt.Errorf("save snapshot: %w", err)
	}
	s.model = m
	s.logger.Info("snapshot restored", "archive", arc.ID, "orders", len(snapshot.Orders), "order_items", len(snapshot.OrderItems))
	return arc, nil
}

// FilteredOrderList returns the orders visible after the last command.
func (s *Service) FilteredOrderList() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model.FilteredOrderList()
}

// FilteredOrderItemList returns the catalog entries visible after the last command.
func (s *Service) FilteredOrderItemList() []domain.OrderItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model.FilteredOrderItemList()
}

func (s *Service) UserPrefs() model.ReadOnlyUserPrefs {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model.UserPrefs()
}

func (s *Service) SetGuiSettings(g model.GuiSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.model.SetGuiSettings(g)
}

// Snapshot returns the current persisted form of the model.
func (s *Service) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model.Snapshot()
}

// Clock returns the clock commands such as remind should use.
func (s *Service) Clock() domain.Clock { return s.clock }

// Close releases the snapshot store.
func (s *Service) Close() error { return s.store.Close() }
