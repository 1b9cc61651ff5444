package persistence

import (
	"strings"
	"testing"

	"cakecollate/pkg/domain"
	"cakecollate/testutil"
)

func TestEncodeDecodeBuckets(t *testing.T) {
	in := domain.Snapshot{Orders: testutil.TypicalOrders(), OrderItems: testutil.TypicalOrderItems()}
	var out domain.Snapshot
	for _, bucket := range Buckets {
		payload, err := Encode(in, bucket)
		if err != nil {
			t.Fatalf("encode %s: %v", bucket, err)
		}
		if err := Decode(&out, bucket, payload); err != nil {
			t.Fatalf("decode %s: %v", bucket, err)
		}
	}
	if len(out.Orders) != len(in.Orders) || len(out.OrderItems) != len(in.OrderItems) {
		t.Fatalf("unexpected sizes: %d orders, %d items", len(out.Orders), len(out.OrderItems))
	}
	for i := range in.Orders {
		if !in.Orders[i].Equal(out.Orders[i]) {
			t.Fatalf("order %d changed: %v != %v", i, in.Orders[i], out.Orders[i])
		}
	}
	for i := range in.OrderItems {
		if !in.OrderItems[i].Equal(out.OrderItems[i]) {
			t.Fatalf("item %d changed: %v != %v", i, in.OrderItems[i], out.OrderItems[i])
		}
	}
}

func TestEncodeEmptySnapshotWritesArrays(t *testing.T) {
	payload, err := Encode(domain.Snapshot{}, BucketOrders)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if string(payload) != "[]" {
		t.Fatalf("expected empty array, got %s", payload)
	}
	if _, err := Encode(domain.Snapshot{}, "organisms"); err == nil {
		t.Fatalf("expected unknown bucket error")
	}
}

func TestDecodeRejectsInvalidOrders(t *testing.T) {
	var s domain.Snapshot
	err := Decode(&s, BucketOrders, []byte(`[{"name":"Amy Bee","phone":"1"}]`))
	if err == nil || !strings.Contains(err.Error(), "decode orders") {
		t.Fatalf("expected decode error, got %v", err)
	}
	if err := Decode(&s, "legacy", []byte(`{}`)); err != nil {
		t.Fatalf("unknown bucket should be ignored: %v", err)
	}
	if err := Decode(&s, BucketOrderItems, nil); err != nil {
		t.Fatalf("empty payload should be ignored: %v", err)
	}
}
