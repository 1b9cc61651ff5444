package model

import (
	"testing"

	"cakecollate/pkg/domain"
	"cakecollate/testutil"
)

func TestOrderItemsIdentityIgnoresCase(t *testing.T) {
	items := NewOrderItems()
	if err := items.Add(testutil.OrderItemOf("Chocolate Cake", "10")); err != nil {
		t.Fatalf("add: %v", err)
	}
	lower := testutil.OrderItemOf("chocolate cake", "")
	if !items.Contains(lower) {
		t.Fatalf("expected case-insensitive match")
	}
	if err := items.Add(lower); !domain.IsDuplicate(err) {
		t.Fatalf("expected duplicate, got %v", err)
	}
}

func TestOrderItemsRemoveAndReplace(t *testing.T) {
	items := NewOrderItems()
	if err := items.SetAll(testutil.TypicalOrderItems()); err != nil {
		t.Fatalf("set all: %v", err)
	}
	mango := testutil.OrderItemOf("Mango Cake", "")
	if err := items.Remove(mango); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := items.Remove(mango); !domain.IsNotFound(err) {
		t.Fatalf("expected not found on second remove, got %v", err)
	}

	choc := testutil.TypicalOrderItems()[0]
	repriced := testutil.OrderItemOf("Chocolate Cake", "12")
	if err := items.Replace(choc, repriced); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if got := items.Items()[0]; !got.Equal(repriced) {
		t.Fatalf("expected repriced item first, got %s", got)
	}
	strawberry := testutil.OrderItemOf("strawberry cake", "")
	if err := items.Replace(repriced, strawberry); !domain.IsDuplicate(err) {
		t.Fatalf("expected duplicate replacing onto another type, got %v", err)
	}
}

func TestOrderItemsSetAllRejectsDuplicates(t *testing.T) {
	items := NewOrderItems()
	err := items.SetAll([]domain.OrderItem{
		testutil.OrderItemOf("Red Velvet", ""),
		testutil.OrderItemOf("RED VELVET", "1"),
	})
	if !domain.IsDuplicate(err) {
		t.Fatalf("expected duplicate, got %v", err)
	}
	if items.Len() != 0 {
		t.Fatalf("failed SetAll must not modify the catalog")
	}
}
