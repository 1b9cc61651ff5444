package commands

import (
	"context"
	"fmt"

	"cakecollate/internal/model"
	"cakecollate/pkg/domain"
	"cakecollate/pkg/domain/index"
)

// Delivery status command messages.
const (
	DeliveryStatusUsage          = "delivered|undelivered|cancelled: Sets the delivery status of the orders at the given indexes of the displayed list. Parameters: INDEX [INDEX]..."
	MessageDeliveryStatusSuccess = "Set delivery status to %s for Order(s):\n%s"
)

// DeliveryStatus sets Status on every displayed order named by Indexes. The
// command word is the status name.
type DeliveryStatus struct {
	Indexes index.List
	Status  domain.DeliveryStatus
}

func (d DeliveryStatus) Word() string { return d.Status.String() }

func (d DeliveryStatus) Execute(_ context.Context, m model.Model) (Result, error) {
	status, err := domain.ParseDeliveryStatus(d.Status.String())
	if err != nil {
		return Result{}, fail(invalidMessage(err), err)
	}
	if len(d.Indexes) == 0 {
		return Result{}, fail(MessageInvalidOrderDisplayedIndex, nil)
	}
	targets, err := index.ResolveAll(m.FilteredOrderList(), d.Indexes)
	if err != nil {
		return Result{}, fail(MessageInvalidOrderDisplayedIndex, err)
	}
	updated := make([]domain.Order, 0, len(targets))
	for _, o := range targets {
		edited := o.WithStatus(status)
		if err := m.SetOrder(o, edited); err != nil {
			return Result{}, failf(err, MessageDuplicateOrder)
		}
		updated = append(updated, edited)
	}
	return NewResult(fmt.Sprintf(MessageDeliveryStatusSuccess, status, listOrders(updated))), nil
}
