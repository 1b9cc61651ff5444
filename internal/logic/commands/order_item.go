package commands

import (
	"context"
	"fmt"
	"strings"

	"cakecollate/internal/model"
	"cakecollate/pkg/domain"
	"cakecollate/pkg/domain/index"
)

// Order item command messages.
const (
	AddOrderItemWord              = "addItem"
	AddOrderItemUsage             = AddOrderItemWord + ": Adds an order item to the catalog. Parameters: o/ORDER_ITEM_TYPE [c/COST]"
	MessageAddOrderItemSuccess    = "New order item added: %s"
	DeleteOrderItemWord           = "deleteItem"
	DeleteOrderItemUsage          = DeleteOrderItemWord + ": Deletes the order items at the given indexes of the displayed catalog. Parameters: INDEX [INDEX]..."
	MessageDeleteOrderItemSuccess = "Deleted Order Item(s):\n%s"
)

// AddOrderItem adds one catalog entry.
type AddOrderItem struct {
	Item domain.OrderItem
}

func (AddOrderItem) Word() string { return AddOrderItemWord }

func (a AddOrderItem) Execute(_ context.Context, m model.Model) (Result, error) {
	if m.HasOrderItem(a.Item) {
		return Result{}, fail(MessageDuplicateOrderItem, nil)
	}
	if err := m.AddOrderItem(a.Item); err != nil {
		return Result{}, failf(err, MessageDuplicateOrderItem)
	}
	return NewResult(fmt.Sprintf(MessageAddOrderItemSuccess, a.Item)), nil
}

// DeleteOrderItem removes the displayed catalog entries named by Indexes.
// Orders that mention the removed types are left alone.
type DeleteOrderItem struct {
	Indexes index.List
}

func (DeleteOrderItem) Word() string { return DeleteOrderItemWord }

func (d DeleteOrderItem) Execute(_ context.Context, m model.Model) (Result, error) {
	if len(d.Indexes) == 0 {
		return Result{}, fail(MessageInvalidOrderItemIndex, nil)
	}
	targets, err := index.ResolveAll(m.FilteredOrderItemList(), d.Indexes)
	if err != nil {
		return Result{}, fail(MessageInvalidOrderItemIndex, err)
	}
	lines := make([]string, 0, len(targets))
	for i, item := range targets {
		if err := m.DeleteOrderItem(item); err != nil {
			return Result{}, failf(err, MessageDuplicateOrderItem)
		}
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, item))
	}
	return NewResult(fmt.Sprintf(MessageDeleteOrderItemSuccess, strings.Join(lines, "\n"))), nil
}
