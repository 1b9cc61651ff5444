package core

import (
	"context"
	"slices"
	"testing"
	"time"

	"cakecollate/pkg/domain"
	"cakecollate/testutil"
)

type viewStub struct {
	orders []domain.Order
	items  []domain.OrderItem
}

func (v viewStub) ListOrders() []domain.Order         { return v.orders }
func (v viewStub) ListOrderItems() []domain.OrderItem { return v.items }
func (v viewStub) HasOrderItem(item domain.OrderItem) bool {
	return slices.ContainsFunc(v.items, item.SameOrderItem)
}

func TestDefaultRulesEngineRegistersBuiltins(t *testing.T) {
	engine := NewDefaultRulesEngine(nil)
	want := []string{"store_uniqueness", "catalog_coverage", "delivery_in_past"}
	if got := engine.Rules(); !slices.Equal(got, want) {
		t.Fatalf("expected rules %v, got %v", want, got)
	}
}

func TestStoreUniquenessRule(t *testing.T) {
	ctx := context.Background()
	rule := StoreUniquenessRule()
	clone := testutil.OrderBuilderFrom(testutil.Alice).WithPhone("11111111").Build()

	tests := []struct {
		name      string
		view      viewStub
		wantCount int
	}{
		{name: "unique", view: viewStub{orders: testutil.TypicalOrders(), items: testutil.TypicalOrderItems()}},
		{name: "duplicate order", view: viewStub{orders: []domain.Order{testutil.Alice, testutil.Bob, clone}}, wantCount: 1},
		{name: "duplicate item ignoring case", view: viewStub{items: []domain.OrderItem{
			testutil.OrderItemOf("Mango Cake", ""),
			testutil.OrderItemOf("mango cake", "3"),
		}}, wantCount: 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := rule.Evaluate(ctx, tc.view, nil)
			if err != nil {
				t.Fatalf("evaluate: %v", err)
			}
			if len(res.Violations) != tc.wantCount {
				t.Fatalf("expected %d violations, got %+v", tc.wantCount, res.Violations)
			}
			if tc.wantCount > 0 && !res.HasBlocking() {
				t.Fatalf("expected blocking violations")
			}
		})
	}
}

func TestCatalogCoverageRuleReportsUncataloguedDescriptions(t *testing.T) {
	view := viewStub{items: []domain.OrderItem{testutil.OrderItemOf("strawberry cake", "")}}
	order := testutil.Benson // Strawberry Cake, Mango Cake
	res, err := CatalogCoverageRule().Evaluate(context.Background(), view, []domain.Change{
		{Entity: domain.EntityOrder, Action: domain.ActionCreate, After: order},
		{Entity: domain.EntityOrder, Action: domain.ActionDelete, Before: testutil.Alice},
	})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(res.Violations) != 1 {
		t.Fatalf("expected one finding for Mango Cake, got %+v", res.Violations)
	}
	v := res.Violations[0]
	if v.Severity != domain.SeverityLog || v.Key != order.Key() {
		t.Fatalf("unexpected violation %+v", v)
	}
}

func TestDeliveryInPastRule(t *testing.T) {
	clock := domain.FixedClock{At: time.Date(2100, time.June, 16, 23, 0, 0, 0, time.UTC)}
	rule := DeliveryInPastRule(clock)
	changes := []domain.Change{
		{Entity: domain.EntityOrder, Action: domain.ActionCreate, After: testutil.Benson}, // 15/06/2100
		{Entity: domain.EntityOrder, Action: domain.ActionUpdate, Before: testutil.Alice, After: testutil.Alice},
		{Entity: domain.EntityOrderItem, Action: domain.ActionCreate, After: testutil.OrderItemOf("Mango Cake", "")},
	}
	res, err := rule.Evaluate(context.Background(), viewStub{}, changes)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(res.Violations) != 1 || res.Violations[0].Key != testutil.Benson.Key() {
		t.Fatalf("expected only Benson flagged, got %+v", res.Violations)
	}
	if res.HasBlocking() {
		t.Fatalf("delivery_in_past must not block")
	}
}

func TestDeliveryInPastRuleAcceptsToday(t *testing.T) {
	clock := domain.FixedClock{At: time.Date(2100, time.June, 15, 8, 0, 0, 0, time.UTC)}
	res, err := DeliveryInPastRule(clock).Evaluate(context.Background(), viewStub{}, []domain.Change{
		{Entity: domain.EntityOrder, Action: domain.ActionCreate, After: testutil.Carl},
	})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(res.Violations) != 0 {
		t.Fatalf("expected no findings for an order due today, got %+v", res.Violations)
	}
}
