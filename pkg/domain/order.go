package domain

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// MessageMissingDescriptions is reported when an order would have no items.
const MessageMissingDescriptions = "An order should have at least one order description"

// OrderFields holds the attributes of an Order before validation.
type OrderFields struct {
	Name         Name
	Phone        Phone
	Email        Email
	Address      Address
	Descriptions []OrderDescription
	Tags         []Tag
	DeliveryDate DeliveryDate
	DeliveryTime DeliveryTime
	Status       DeliveryStatus
	Remark       Remark
}

// Order is a customer's cake order. Orders are immutable; the With* methods
// return modified copies.
type Order struct {
	f OrderFields
}

// NewOrder validates the required fields and returns an Order. Tags become a
// sorted set and repeated descriptions are dropped.
func NewOrder(f OrderFields) (Order, error) {
	switch {
	case f.Name.IsZero():
		return Order{}, invalid("name", "", NameConstraints)
	case f.Phone.IsZero():
		return Order{}, invalid("phone", "", PhoneConstraints)
	case f.Email.IsZero():
		return Order{}, invalid("email", "", EmailConstraints)
	case f.Address.IsZero():
		return Order{}, invalid("address", "", AddressConstraints)
	case f.DeliveryDate.IsZero():
		return Order{}, invalid("delivery date", "", DeliveryDateConstraints)
	case len(f.Descriptions) == 0:
		return Order{}, invalid("order descriptions", "", MessageMissingDescriptions)
	}
	if f.Status == "" {
		f.Status = StatusUndelivered
	}
	if _, err := ParseDeliveryStatus(string(f.Status)); err != nil {
		return Order{}, err
	}
	f.Descriptions = normalizeDescriptions(f.Descriptions)
	f.Tags = normalizeTags(f.Tags)
	return Order{f: f}, nil
}

func (o Order) Name() Name                 { return o.f.Name }
func (o Order) Phone() Phone               { return o.f.Phone }
func (o Order) Email() Email               { return o.f.Email }
func (o Order) Address() Address           { return o.f.Address }
func (o Order) DeliveryDate() DeliveryDate { return o.f.DeliveryDate }
func (o Order) DeliveryTime() DeliveryTime { return o.f.DeliveryTime }
func (o Order) Status() DeliveryStatus     { return o.f.Status }
func (o Order) Remark() Remark             { return o.f.Remark }

// Descriptions returns a copy of the order descriptions.
func (o Order) Descriptions() []OrderDescription { return slices.Clone(o.f.Descriptions) }

// Tags returns a copy of the tag set in sorted order.
func (o Order) Tags() []Tag { return slices.Clone(o.f.Tags) }

// Fields returns a copy of the order's attributes for building an edited order.
func (o Order) Fields() OrderFields {
	f := o.f
	f.Descriptions = slices.Clone(o.f.Descriptions)
	f.Tags = slices.Clone(o.f.Tags)
	return f
}

// WithRemark returns a copy of the order carrying remark.
func (o Order) WithRemark(remark Remark) Order {
	f := o.Fields()
	f.Remark = remark
	return Order{f: f}
}

// WithStatus returns a copy of the order carrying status.
func (o Order) WithStatus(status DeliveryStatus) Order {
	f := o.Fields()
	f.Status = status
	return Order{f: f}
}

// IsZero reports whether o was never constructed.
func (o Order) IsZero() bool { return o.f.Name.IsZero() }

// SameOrder reports whether both orders have the same identity: equal
// customer name and delivery date. It is weaker than Equal.
func (o Order) SameOrder(other Order) bool {
	return o.f.Name == other.f.Name && o.f.DeliveryDate.Equal(other.f.DeliveryDate)
}

// Key returns the identity of the order as a readable string.
func (o Order) Key() string {
	return o.f.Name.String() + "@" + o.f.DeliveryDate.String()
}

// Equal reports whether every attribute of both orders matches.
func (o Order) Equal(other Order) bool {
	a, b := o.f, other.f
	return a.Name == b.Name &&
		a.Phone == b.Phone &&
		a.Email == b.Email &&
		a.Address == b.Address &&
		a.DeliveryDate.Equal(b.DeliveryDate) &&
		a.DeliveryTime == b.DeliveryTime &&
		a.Status == b.Status &&
		a.Remark == b.Remark &&
		slices.Equal(a.Descriptions, b.Descriptions) &&
		slices.Equal(a.Tags, b.Tags)
}

func (o Order) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s; Phone: %s; Email: %s; Address: %s; Order Descriptions: %s; Delivery Date: %s",
		o.f.Name, o.f.Phone, o.f.Email, o.f.Address, joinValues(o.f.Descriptions), o.f.DeliveryDate)
	if !o.f.DeliveryTime.IsZero() {
		fmt.Fprintf(&b, " %s", o.f.DeliveryTime)
	}
	fmt.Fprintf(&b, "; Delivery Status: %s", o.f.Status)
	if len(o.f.Tags) > 0 {
		fmt.Fprintf(&b, "; Tags: %s", joinValues(o.f.Tags))
	}
	if !o.f.Remark.IsZero() {
		fmt.Fprintf(&b, "; Remark: %s", o.f.Remark)
	}
	return b.String()
}

func joinValues[T fmt.Stringer](values []T) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, "["+v.String()+"]")
	}
	return strings.Join(parts, "")
}

type orderRecord struct {
	Name         Name               `json:"name"`
	Phone        Phone              `json:"phone"`
	Email        Email              `json:"email"`
	Address      Address            `json:"address"`
	Descriptions []OrderDescription `json:"order_descriptions"`
	Tags         []Tag              `json:"tags"`
	DeliveryDate DeliveryDate       `json:"delivery_date"`
	DeliveryTime DeliveryTime       `json:"delivery_time"`
	Status       DeliveryStatus     `json:"delivery_status"`
	Remark       Remark             `json:"remark"`
}

// MarshalJSON encodes the order for snapshot persistence.
func (o Order) MarshalJSON() ([]byte, error) {
	return json.Marshal(orderRecord(o.f))
}

// UnmarshalJSON decodes and re-validates an order.
func (o *Order) UnmarshalJSON(data []byte) error {
	var rec orderRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	order, err := NewOrder(OrderFields(rec))
	if err != nil {
		return err
	}
	*o = order
	return nil
}
