package commands

import (
	"context"
	"fmt"

	"cakecollate/internal/model"
	"cakecollate/pkg/domain"
	"cakecollate/pkg/domain/index"
)

// Remark command messages.
const (
	RemarkWord                 = "remark"
	RemarkUsage                = RemarkWord + ": Sets the remark of the order at INDEX in the displayed list; an empty remark removes it. Parameters: INDEX r/[REMARK]"
	MessageAddRemarkSuccess    = "Added remark to Order: %s"
	MessageDeleteRemarkSuccess = "Removed remark from Order: %s"
)

// Remark replaces the remark of one displayed order.
type Remark struct {
	Index  index.Index
	Remark domain.Remark
}

func (Remark) Word() string { return RemarkWord }

func (r Remark) Execute(_ context.Context, m model.Model) (Result, error) {
	target, err := index.Resolve(m.FilteredOrderList(), r.Index)
	if err != nil {
		return Result{}, fail(MessageInvalidOrderDisplayedIndex, err)
	}
	edited := target.WithRemark(r.Remark)
	if err := m.SetOrder(target, edited); err != nil {
		return Result{}, failf(err, MessageDuplicateOrder)
	}
	msg := MessageAddRemarkSuccess
	if r.Remark.IsZero() {
		msg = MessageDeleteRemarkSuccess
	}
	return NewResult(fmt.Sprintf(msg, edited)), nil
}
