package predicate

import (
	"fmt"
	"time"

	"cakecollate/pkg/domain"
)

// ReminderDate matches orders due within Days days of From, both ends
// inclusive. Only calendar dates are compared.
type ReminderDate struct {
	Days int
	From domain.DeliveryDate
}

// NewReminderDate builds the window starting on the calendar day of now.
func NewReminderDate(days int, now time.Time) (ReminderDate, error) {
	if days < 0 {
		return ReminderDate{}, fmt.Errorf("reminder window %d: days must not be negative", days)
	}
	return ReminderDate{Days: days, From: domain.DateOf(now)}, nil
}

// Until returns the last day inside the window.
func (r ReminderDate) Until() domain.DeliveryDate { return r.From.AddDays(r.Days) }

func (r ReminderDate) Test(o domain.Order) bool {
	d := o.DeliveryDate()
	return !d.Before(r.From) && !d.After(r.Until())
}
