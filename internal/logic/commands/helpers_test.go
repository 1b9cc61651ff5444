package commands

import (
	"context"
	"errors"
	"slices"
	"testing"

	"cakecollate/internal/model"
	"cakecollate/internal/model/predicate"
	"cakecollate/pkg/domain"
	"cakecollate/testutil"
)

// modelStub fails the test run if any method is reached. Stubs embed it and
// override only what a command is expected to call.
type modelStub struct{}

func notCalled(name string) { panic(name + " should not be called") }

func (modelStub) UserPrefs() model.ReadOnlyUserPrefs {
	notCalled("UserPrefs")
	return nil
}
func (modelStub) SetUserPrefs(model.ReadOnlyUserPrefs) error {
	notCalled("SetUserPrefs")
	return nil
}
func (modelStub) GuiSettings() model.GuiSettings {
	notCalled("GuiSettings")
	return model.GuiSettings{}
}
func (modelStub) SetGuiSettings(model.GuiSettings) { notCalled("SetGuiSettings") }
func (modelStub) CakeCollateFilePath() string {
	notCalled("CakeCollateFilePath")
	return ""
}
func (modelStub) SetCakeCollateFilePath(string) error {
	notCalled("SetCakeCollateFilePath")
	return nil
}
func (modelStub) SetCakeCollate(model.ReadOnlyCakeCollate) error {
	notCalled("SetCakeCollate")
	return nil
}
func (modelStub) CakeCollate() model.ReadOnlyCakeCollate {
	notCalled("CakeCollate")
	return nil
}
func (modelStub) HasOrder(domain.Order) bool {
	notCalled("HasOrder")
	return false
}
func (modelStub) AddOrder(domain.Order) error {
	notCalled("AddOrder")
	return nil
}
func (modelStub) DeleteOrder(domain.Order) error {
	notCalled("DeleteOrder")
	return nil
}
func (modelStub) SetOrder(domain.Order, domain.Order) error {
	notCalled("SetOrder")
	return nil
}
func (modelStub) FilteredOrderList() []domain.Order {
	notCalled("FilteredOrderList")
	return nil
}
func (modelStub) UpdateFilteredOrderList(predicate.Order) { notCalled("UpdateFilteredOrderList") }
func (modelStub) SortFilteredOrderList() error {
	notCalled("SortFilteredOrderList")
	return nil
}
func (modelStub) OrderItems() model.ReadOnlyOrderItems {
	notCalled("OrderItems")
	return nil
}
func (modelStub) HasOrderItem(domain.OrderItem) bool {
	notCalled("HasOrderItem")
	return false
}
func (modelStub) AddOrderItem(domain.OrderItem) error {
	notCalled("AddOrderItem")
	return nil
}
func (modelStub) DeleteOrderItem(domain.OrderItem) error {
	notCalled("DeleteOrderItem")
	return nil
}
func (modelStub) FilteredOrderItemList() []domain.OrderItem {
	notCalled("FilteredOrderItemList")
	return nil
}
func (modelStub) UpdateFilteredOrderItemList(predicate.OrderItem) {
	notCalled("UpdateFilteredOrderItemList")
}

var _ model.Model = modelStub{}

func newTypicalModel(t *testing.T) *model.Manager {
	t.Helper()
	return newModel(t, testutil.TypicalOrders()...)
}

func newModel(t *testing.T, orders ...domain.Order) *model.Manager {
	t.Helper()
	m, err := model.NewManager(model.OrderList(orders), model.OrderItemList(testutil.TypicalOrderItems()), nil)
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	return m
}

// copyModel returns an independent Manager holding the same state and filter
// contents as m.
func copyModel(t *testing.T, m *model.Manager) *model.Manager {
	t.Helper()
	cp, err := model.NewManagerFromSnapshot(m.Snapshot(), m.UserPrefs())
	if err != nil {
		t.Fatalf("copy model: %v", err)
	}
	return cp
}

func assertCommandSuccess(t *testing.T, cmd Command, actual *model.Manager, wantFeedback string, expected *model.Manager) {
	t.Helper()
	res, err := cmd.Execute(context.Background(), actual)
	if err != nil {
		t.Fatalf("execute %s: %v", cmd.Word(), err)
	}
	if res.Feedback != wantFeedback {
		t.Fatalf("feedback mismatch\nwant: %s\ngot:  %s", wantFeedback, res.Feedback)
	}
	assertSameStores(t, expected, actual)
	if !slices.EqualFunc(expected.FilteredOrderList(), actual.FilteredOrderList(), domain.Order.Equal) {
		t.Fatalf("filtered orders mismatch\nwant: %v\ngot:  %v", expected.FilteredOrderList(), actual.FilteredOrderList())
	}
}

// assertCommandFailure checks the command fails with message and leaves the
// store, catalog and displayed list untouched.
func assertCommandFailure(t *testing.T, cmd Command, actual *model.Manager, message string) {
	t.Helper()
	before := copyModel(t, actual)
	beforeFiltered := actual.FilteredOrderList()
	_, err := cmd.Execute(context.Background(), actual)
	var cmdErr *Error
	if !errors.As(err, &cmdErr) {
		t.Fatalf("expected *commands.Error, got %T %v", err, err)
	}
	if cmdErr.Message != message {
		t.Fatalf("message mismatch\nwant: %s\ngot:  %s", message, cmdErr.Message)
	}
	assertSameStores(t, before, actual)
	if !slices.EqualFunc(beforeFiltered, actual.FilteredOrderList(), domain.Order.Equal) {
		t.Fatalf("failed command changed the displayed list")
	}
}

func assertSameStores(t *testing.T, expected, actual *model.Manager) {
	t.Helper()
	want, got := expected.Snapshot(), actual.Snapshot()
	if !slices.EqualFunc(want.Orders, got.Orders, domain.Order.Equal) {
		t.Fatalf("orders mismatch\nwant: %v\ngot:  %v", want.Orders, got.Orders)
	}
	if !slices.EqualFunc(want.OrderItems, got.OrderItems, domain.OrderItem.Equal) {
		t.Fatalf("order items mismatch\nwant: %v\ngot:  %v", want.OrderItems, got.OrderItems)
	}
}
