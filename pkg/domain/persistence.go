package domain

import (
	"context"
	"time"
)

// Snapshot is the persisted state of CakeCollate: the ordered order list and
// the order item catalog.
type Snapshot struct {
	Orders     []Order     `json:"orders"`
	OrderItems []OrderItem `json:"order_items"`
}

// SnapshotStore is the contract durable backends implement. Load returns an
// empty snapshot when nothing has been saved yet.
type SnapshotStore interface {
	Load(ctx context.Context) (Snapshot, error)
	Save(ctx context.Context, snapshot Snapshot) error
	Close() error
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reports wall-clock time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant.
type FixedClock struct{ At time.Time }

func (c FixedClock) Now() time.Time { return c.At }
