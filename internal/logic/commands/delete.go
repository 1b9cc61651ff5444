package commands

import (
	"context"
	"fmt"

	"cakecollate/internal/model"
	"cakecollate/pkg/domain/index"
)

// Delete command messages.
const (
	DeleteWord           = "delete"
	DeleteUsage          = DeleteWord + ": Deletes the orders at the given indexes of the displayed list. Parameters: INDEX [INDEX]..."
	MessageDeleteSuccess = "Deleted Order(s):\n%s"
)

// Delete removes every displayed order named by Indexes. All indexes are
// resolved against the list as displayed when the command starts; one bad
// index aborts the command before anything is deleted.
type Delete struct {
	Indexes index.List
}

func (Delete) Word() string { return DeleteWord }

func (d Delete) Execute(_ context.Context, m model.Model) (Result, error) {
	if len(d.Indexes) == 0 {
		return Result{}, fail(MessageInvalidOrderDisplayedIndex, nil)
	}
	targets, err := index.ResolveAll(m.FilteredOrderList(), d.Indexes)
	if err != nil {
		return Result{}, fail(MessageInvalidOrderDisplayedIndex, err)
	}
	for _, o := range targets {
		if err := m.DeleteOrder(o); err != nil {
			return Result{}, failf(err, MessageDuplicateOrder)
		}
	}
	return NewResult(fmt.Sprintf(MessageDeleteSuccess, listOrders(targets))), nil
}
