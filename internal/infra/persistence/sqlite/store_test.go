package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"cakecollate/pkg/domain"
	"cakecollate/testutil"
)

func openStore(t *testing.T, path string) *Store {
	t.Helper()
	store, err := NewStore(context.Background(), path)
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStorePersistAndReload(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "cakecollate.db")
	store := openStore(t, path)

	empty, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if len(empty.Orders) != 0 || len(empty.OrderItems) != 0 {
		t.Fatalf("expected empty snapshot, got %+v", empty)
	}

	snapshot := domain.Snapshot{Orders: testutil.TypicalOrders(), OrderItems: testutil.TypicalOrderItems()}
	if err := store.Save(ctx, snapshot); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Save(ctx, domain.Snapshot{Orders: snapshot.Orders[:2], OrderItems: snapshot.OrderItems}); err != nil {
		t.Fatalf("second save: %v", err)
	}

	reloaded := openStore(t, path)
	got, err := reloaded.Load(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(got.Orders) != 2 {
		t.Fatalf("expected 2 orders after overwrite, got %d", len(got.Orders))
	}
	if !got.Orders[1].Equal(testutil.Benson) {
		t.Fatalf("unexpected order %v", got.Orders[1])
	}
	if len(got.OrderItems) != len(snapshot.OrderItems) {
		t.Fatalf("expected %d items, got %d", len(snapshot.OrderItems), len(got.OrderItems))
	}
	if got.OrderItems[0].Cost().String() != "35.50" {
		t.Fatalf("cost not preserved: %v", got.OrderItems[0])
	}
	if reloaded.Path() != path {
		t.Fatalf("unexpected path %q", reloaded.Path())
	}
}

func TestStoreKeepsOneRowPerBucket(t *testing.T) {
	ctx := context.Background()
	store := openStore(t, filepath.Join(t.TempDir(), "state.db"))
	for i := 0; i < 3; i++ {
		if err := store.Save(ctx, domain.Snapshot{Orders: testutil.TypicalOrders()[:i+1]}); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}
	var rows int
	if err := store.DB().QueryRowContext(ctx, `SELECT COUNT(*) FROM state`).Scan(&rows); err != nil {
		t.Fatalf("count: %v", err)
	}
	if rows != 2 {
		t.Fatalf("expected 2 bucket rows, got %d", rows)
	}
}

func TestStoreLoadRejectsCorruptPayload(t *testing.T) {
	ctx := context.Background()
	store := openStore(t, filepath.Join(t.TempDir(), "state.db"))
	if _, err := store.DB().ExecContext(ctx, `INSERT INTO state(bucket,payload) VALUES('orders', ?)`, []byte(`{"not":"a list"}`)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := store.Load(ctx); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestStoreSaveAfterCloseFails(t *testing.T) {
	store, err := NewStore(context.Background(), filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := store.Save(context.Background(), domain.Snapshot{}); err == nil {
		t.Fatalf("expected error after close")
	}
}
