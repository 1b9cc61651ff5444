package commands

import (
	"context"
	"fmt"

	"cakecollate/internal/model"
	"cakecollate/internal/model/predicate"
	"cakecollate/pkg/domain"
)

// Remind command messages.
const (
	RemindWord  = "remind"
	RemindUsage = RemindWord + ": Lists orders due within DAYS days from today. Parameters: DAYS"
)

// Remind filters the displayed orders down to those due within Days days of
// the current date reported by Clock.
type Remind struct {
	Days  int
	Clock domain.Clock
}

// NewRemind rejects negative windows. A nil clock uses the system clock.
func NewRemind(days int, clock domain.Clock) (Remind, error) {
	if days < 0 {
		return Remind{}, &domain.InvalidValueError{Field: "days", Value: fmt.Sprint(days), Message: "Days should be a non-negative integer"}
	}
	if clock == nil {
		clock = domain.SystemClock{}
	}
	return Remind{Days: days, Clock: clock}, nil
}

func (Remind) Word() string { return RemindWord }

func (r Remind) Execute(_ context.Context, m model.Model) (Result, error) {
	clock := r.Clock
	if clock == nil {
		clock = domain.SystemClock{}
	}
	p, err := predicate.NewReminderDate(r.Days, clock.Now())
	if err != nil {
		return Result{}, fail(err.Error(), err)
	}
	m.UpdateFilteredOrderList(p)
	return NewResult(fmt.Sprintf(MessageOrdersReminderOverview, len(m.FilteredOrderList()), r.Days)), nil
}
