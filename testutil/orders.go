package testutil

import (
	"fmt"

	"cakecollate/pkg/domain"
)

// Default attributes of orders built by NewOrderBuilder.
const (
	DefaultName         = "Amy Bee"
	DefaultPhone        = "85355255"
	DefaultEmail        = "amy@gmail.com"
	DefaultAddress      = "123, Jurong West Ave 6, #08-111"
	DefaultDescription  = "Strawberry Cake"
	DefaultDeliveryDate = "13/05/2100"
)

// OrderBuilder assembles orders from raw strings for tests. Invalid input panics.
type OrderBuilder struct {
	f domain.OrderFields
}

// NewOrderBuilder starts from the default order.
func NewOrderBuilder() *OrderBuilder {
	b := &OrderBuilder{}
	return b.WithName(DefaultName).
		WithPhone(DefaultPhone).
		WithEmail(DefaultEmail).
		WithAddress(DefaultAddress).
		WithOrderDescriptions(DefaultDescription).
		WithDeliveryDate(DefaultDeliveryDate)
}

// OrderBuilderFrom starts from a copy of o.
func OrderBuilderFrom(o domain.Order) *OrderBuilder {
	return &OrderBuilder{f: o.Fields()}
}

func (b *OrderBuilder) WithName(v string) *OrderBuilder {
	b.f.Name = must(domain.NewName(v))
	return b
}

func (b *OrderBuilder) WithPhone(v string) *OrderBuilder {
	b.f.Phone = must(domain.NewPhone(v))
	return b
}

func (b *OrderBuilder) WithEmail(v string) *OrderBuilder {
	b.f.Email = must(domain.NewEmail(v))
	return b
}

func (b *OrderBuilder) WithAddress(v string) *OrderBuilder {
	b.f.Address = must(domain.NewAddress(v))
	return b
}

// WithOrderDescriptions replaces the descriptions. No arguments leaves the
// order without descriptions, which Build rejects.
func (b *OrderBuilder) WithOrderDescriptions(vs ...string) *OrderBuilder {
	b.f.Descriptions = nil
	for _, v := range vs {
		b.f.Descriptions = append(b.f.Descriptions, must(domain.NewOrderDescription(v)))
	}
	return b
}

func (b *OrderBuilder) WithTags(vs ...string) *OrderBuilder {
	b.f.Tags = nil
	for _, v := range vs {
		b.f.Tags = append(b.f.Tags, must(domain.NewTag(v)))
	}
	return b
}

func (b *OrderBuilder) WithDeliveryDate(v string) *OrderBuilder {
	b.f.DeliveryDate = must(domain.NewDeliveryDate(v))
	return b
}

// WithDate sets the delivery date directly.
func (b *OrderBuilder) WithDate(d domain.DeliveryDate) *OrderBuilder {
	b.f.DeliveryDate = d
	return b
}

// WithDeliveryTime sets HH:mm; an empty string clears the time.
func (b *OrderBuilder) WithDeliveryTime(v string) *OrderBuilder {
	if v == "" {
		b.f.DeliveryTime = domain.DeliveryTime{}
		return b
	}
	b.f.DeliveryTime = must(domain.NewDeliveryTime(v))
	return b
}

func (b *OrderBuilder) WithStatus(s domain.DeliveryStatus) *OrderBuilder {
	b.f.Status = s
	return b
}

func (b *OrderBuilder) WithRemark(v string) *OrderBuilder {
	b.f.Remark = domain.NewRemark(v)
	return b
}

// Fields returns the attributes collected so far.
func (b *OrderBuilder) Fields() domain.OrderFields { return b.f }

// Build validates and returns the order.
func (b *OrderBuilder) Build() domain.Order {
	return must(domain.NewOrder(b.f))
}

// OrderItemOf builds a catalog entry; an empty cost leaves it unpriced.
func OrderItemOf(itemType, cost string) domain.OrderItem {
	t := must(domain.NewItemType(itemType))
	var c domain.Cost
	if cost != "" {
		c = must(domain.NewCost(cost))
	}
	return must(domain.NewOrderItem(t, c))
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(fmt.Sprintf("testutil: %v", err))
	}
	return v
}
