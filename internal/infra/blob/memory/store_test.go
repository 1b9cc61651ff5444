package memory

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"cakecollate/internal/blob/core"
)

func TestStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	s := New()
	if s.Driver() != core.DriverMemory {
		t.Fatalf("unexpected driver %s", s.Driver())
	}
	meta := map[string]string{"bucket": "orders"}
	info, err := s.Put(ctx, "snapshots/a/orders.json", strings.NewReader("[]"), core.PutOptions{ContentType: "application/json", Metadata: meta})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	meta["bucket"] = "changed"
	if info.Size != 2 || info.Metadata["bucket"] != "orders" {
		t.Fatalf("unexpected info %+v", info)
	}
	if _, err := s.Put(ctx, "snapshots/a/orders.json", strings.NewReader("[]"), core.PutOptions{}); !errors.Is(err, core.ErrExists) {
		t.Fatalf("expected ErrExists, got %v", err)
	}

	got, rc, err := s.Get(ctx, "snapshots/a/orders.json")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	body, _ := io.ReadAll(rc)
	_ = rc.Close()
	if string(body) != "[]" || got.Metadata["bucket"] != "orders" {
		t.Fatalf("unexpected object %q %+v", body, got)
	}

	if _, err := s.Put(ctx, "other/x", strings.NewReader("x"), core.PutOptions{}); err != nil {
		t.Fatalf("put other: %v", err)
	}
	list, err := s.List(ctx, "snapshots/")
	if err != nil || len(list) != 1 {
		t.Fatalf("expected 1 listed object, got %v (%v)", list, err)
	}

	existed, err := s.Delete(ctx, "snapshots/a/orders.json")
	if err != nil || !existed {
		t.Fatalf("delete: %v %v", existed, err)
	}
	existed, _ = s.Delete(ctx, "snapshots/a/orders.json")
	if existed {
		t.Fatalf("second delete should report missing")
	}
	if _, _, err := s.Get(ctx, "snapshots/a/orders.json"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
