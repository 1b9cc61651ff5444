// Package memory provides a process-local snapshot store for tests and
// ephemeral sessions.
package memory

import (
	"context"
	"errors"
	"slices"
	"sync"

	"cakecollate/pkg/domain"
)

var _ domain.SnapshotStore = (*Store)(nil)

// ErrClosed is returned after Close.
var ErrClosed = errors.New("memory store closed")

// Store keeps the last saved snapshot in memory.
type Store struct {
	mu     sync.RWMutex
	state  domain.Snapshot
	saves  int
	closed bool
}

// NewStore returns an empty store, optionally seeded with an initial snapshot.
func NewStore(seed ...domain.Snapshot) *Store {
	s := &Store{}
	if len(seed) > 0 {
		s.state = clone(seed[0])
	}
	return s
}

func (s *Store) Load(_ context.Context) (domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return domain.Snapshot{}, ErrClosed
	}
	return clone(s.state), nil
}

func (s *Store) Save(_ context.Context, snapshot domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.state = clone(snapshot)
	s.saves++
	return nil
}

func (s *Store) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return nil
}

// Saves reports how many snapshots have been written.
func (s *Store) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}

func clone(s domain.Snapshot) domain.Snapshot {
	return domain.Snapshot{Orders: slices.Clone(s.Orders), OrderItems: slices.Clone(s.OrderItems)}
}
