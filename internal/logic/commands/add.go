package commands

import (
	"context"
	"fmt"

	"cakecollate/internal/model"
	"cakecollate/pkg/domain"
	"cakecollate/pkg/domain/index"
)

// Add command messages.
const (
	AddWord           = "add"
	AddUsage          = AddWord + ": Adds an order to CakeCollate. Parameters: n/NAME p/PHONE e/EMAIL a/ADDRESS [o/ORDER_DESCRIPTION]... [oi/ORDER_ITEM_INDEXES] [t/TAG]... d/DELIVERY_DATE [dt/DELIVERY_TIME]"
	MessageAddSuccess = "New order added: %s"
)

// AddOrderDescriptor carries the attributes of a new order.
type AddOrderDescriptor struct {
	Name         domain.Name
	Phone        domain.Phone
	Email        domain.Email
	Address      domain.Address
	Descriptions []domain.OrderDescription
	Tags         []domain.Tag
	DeliveryDate domain.DeliveryDate
	DeliveryTime domain.DeliveryTime
}

// AddOrderDescriptorOf copies the attributes of o.
func AddOrderDescriptorOf(o domain.Order) AddOrderDescriptor {
	return AddOrderDescriptor{
		Name:         o.Name(),
		Phone:        o.Phone(),
		Email:        o.Email(),
		Address:      o.Address(),
		Descriptions: o.Descriptions(),
		Tags:         o.Tags(),
		DeliveryDate: o.DeliveryDate(),
		DeliveryTime: o.DeliveryTime(),
	}
}

// Add stores a new order. Items optionally names entries of the displayed
// order item list whose types join the order's descriptions.
type Add struct {
	Items      index.List
	Descriptor AddOrderDescriptor
}

func (Add) Word() string { return AddWord }

func (a Add) Execute(_ context.Context, m model.Model) (Result, error) {
	items, err := index.ResolveAll(m.FilteredOrderItemList(), a.Items)
	if err != nil {
		return Result{}, fail(MessageInvalidOrderItemIndex, err)
	}
	descs := withItemDescriptions(a.Descriptor.Descriptions, items)
	if len(descs) == 0 {
		return Result{}, fail(MessageMissingOrderDescription, nil)
	}

	order, err := domain.NewOrder(domain.OrderFields{
		Name:         a.Descriptor.Name,
		Phone:        a.Descriptor.Phone,
		Email:        a.Descriptor.Email,
		Address:      a.Descriptor.Address,
		Descriptions: descs,
		Tags:         a.Descriptor.Tags,
		DeliveryDate: a.Descriptor.DeliveryDate,
		DeliveryTime: a.Descriptor.DeliveryTime,
	})
	if err != nil {
		return Result{}, fail(invalidMessage(err), err)
	}
	if m.HasOrder(order) {
		return Result{}, fail(MessageDuplicateOrder, nil)
	}
	planned := missingOrderItems(m, order.Descriptions())

	if err := m.AddOrder(order); err != nil {
		return Result{}, failf(err, MessageDuplicateOrder)
	}
	if err := addOrderItems(m, planned); err != nil {
		return Result{}, err
	}
	return NewResult(fmt.Sprintf(MessageAddSuccess, order)), nil
}

// withItemDescriptions appends the types of items to descs, skipping any type
// already present when compared case-insensitively.
func withItemDescriptions(descs []domain.OrderDescription, items []domain.OrderItem) []domain.OrderDescription {
	out := append([]domain.OrderDescription(nil), descs...)
	seen := make(map[string]bool, len(descs)+len(items))
	for _, d := range descs {
		seen[d.ItemType().Key()] = true
	}
	for _, item := range items {
		key := item.Type().Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item.Type().Description())
	}
	return out
}
