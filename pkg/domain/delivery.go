package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Constraint messages for delivery details.
const (
	DeliveryDateConstraints = "Delivery dates should be valid calendar dates in one of the formats " +
		"dd/MM/yyyy, dd-MM-yyyy, dd.MM.yyyy, yyyy/MM/dd, yyyy-MM-dd, dd MMM yyyy or MMM dd yyyy"
	DeliveryTimeConstraints   = "Delivery times should be in 24-hour HH:mm format"
	DeliveryStatusConstraints = "Delivery status should be one of undelivered, delivered or cancelled"
)

// deliveryDateLayouts lists accepted input layouts. Non-padded day and month
// fields accept both "5" and "05".
var deliveryDateLayouts = []string{
	"2/1/2006",
	"2-1-2006",
	"2.1.2006",
	"2006/1/2",
	"2006-1-2",
	"2 Jan 2006",
	"2 January 2006",
	"Jan 2 2006",
	"January 2 2006",
}

const (
	deliveryDateDisplay = "02/01/2006"
	deliveryDateStorage = "2006-01-02"
)

// DeliveryDate is the calendar day an order is due. The time of day is never
// part of the value.
type DeliveryDate struct{ day time.Time }

// NewDeliveryDate parses raw in any accepted layout.
func NewDeliveryDate(raw string) (DeliveryDate, error) {
	trimmed := strings.Join(strings.Fields(raw), " ")
	if trimmed == "" || trimmed != raw {
		return DeliveryDate{}, invalid("delivery date", raw, DeliveryDateConstraints)
	}
	for _, layout := range deliveryDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return DateOf(t), nil
		}
	}
	return DeliveryDate{}, invalid("delivery date", raw, DeliveryDateConstraints)
}

// IsValidDeliveryDate reports whether s parses as a delivery date.
func IsValidDeliveryDate(s string) bool {
	_, err := NewDeliveryDate(s)
	return err == nil
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) DeliveryDate {
	y, m, d := t.Date()
	return DeliveryDate{day: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// Time returns the date as midnight UTC.
func (d DeliveryDate) Time() time.Time { return d.day }

// IsZero reports whether the date was never set.
func (d DeliveryDate) IsZero() bool { return d.day.IsZero() }

// AddDays returns the date n calendar days later.
func (d DeliveryDate) AddDays(n int) DeliveryDate {
	return DeliveryDate{day: d.day.AddDate(0, 0, n)}
}

// Compare returns -1, 0 or +1 ordering d against other.
func (d DeliveryDate) Compare(other DeliveryDate) int { return d.day.Compare(other.day) }

func (d DeliveryDate) Before(other DeliveryDate) bool { return d.day.Before(other.day) }

func (d DeliveryDate) After(other DeliveryDate) bool { return d.day.After(other.day) }

func (d DeliveryDate) Equal(other DeliveryDate) bool { return d.day.Equal(other.day) }

func (d DeliveryDate) String() string {
	if d.IsZero() {
		return ""
	}
	return d.day.Format(deliveryDateDisplay)
}

func (d DeliveryDate) MarshalText() ([]byte, error) {
	if d.IsZero() {
		return nil, nil
	}
	return []byte(d.day.Format(deliveryDateStorage)), nil
}

func (d *DeliveryDate) UnmarshalText(b []byte) error { return parseInto(d, b, NewDeliveryDate) }

var deliveryTimeRegex = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// DeliveryTime is an optional time of day for a delivery. The zero value
// means no time was given.
type DeliveryTime struct {
	minutes int
	set     bool
}

// NewDeliveryTime parses raw as HH:mm.
func NewDeliveryTime(raw string) (DeliveryTime, error) {
	m := deliveryTimeRegex.FindStringSubmatch(raw)
	if m == nil {
		return DeliveryTime{}, invalid("delivery time", raw, DeliveryTimeConstraints)
	}
	h, err := strconv.Atoi(m[1])
	if err != nil {
		return DeliveryTime{}, invalid("delivery time", raw, DeliveryTimeConstraints)
	}
	mins, err := strconv.Atoi(m[2])
	if err != nil {
		return DeliveryTime{}, invalid("delivery time", raw, DeliveryTimeConstraints)
	}
	return DeliveryTime{minutes: h*60 + mins, set: true}, nil
}

// IsZero reports whether the time was never set.
func (t DeliveryTime) IsZero() bool { return !t.set }

// Minutes returns minutes since midnight; unset times report -1 so they sort first.
func (t DeliveryTime) Minutes() int {
	if !t.set {
		return -1
	}
	return t.minutes
}

func (t DeliveryTime) String() string {
	if !t.set {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

func (t DeliveryTime) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *DeliveryTime) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*t = DeliveryTime{}
		return nil
	}
	return parseInto(t, b, NewDeliveryTime)
}

// DeliveryStatus tracks whether an order has gone out.
type DeliveryStatus string

// Canonical delivery statuses.
const (
	StatusUndelivered DeliveryStatus = "undelivered"
	StatusDelivered   DeliveryStatus = "delivered"
	StatusCancelled   DeliveryStatus = "cancelled"
)

// ParseDeliveryStatus accepts a status name in any letter case.
func ParseDeliveryStatus(raw string) (DeliveryStatus, error) {
	switch s := DeliveryStatus(strings.ToLower(raw)); s {
	case StatusUndelivered, StatusDelivered, StatusCancelled:
		return s, nil
	default:
		return "", invalid("delivery status", raw, DeliveryStatusConstraints)
	}
}

func (s DeliveryStatus) String() string { return string(s) }
