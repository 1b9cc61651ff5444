package commands

import (
	"context"
	"fmt"

	"cakecollate/internal/model"
	"cakecollate/internal/model/predicate"
	"cakecollate/pkg/domain"
	"cakecollate/pkg/domain/index"
)

// Edit command messages.
const (
	EditWord           = "edit"
	EditUsage          = EditWord + ": Edits the order at INDEX in the displayed list. Unspecified fields keep their values. Parameters: INDEX [n/NAME] [p/PHONE] [e/EMAIL] [a/ADDRESS] [o/ORDER_DESCRIPTION]... [t/TAG]... [d/DELIVERY_DATE] [dt/DELIVERY_TIME]"
	MessageEditSuccess = "Edited Order: %s"
	MessageNotEdited   = "At least one field to edit must be provided."
)

// EditOrderDescriptor lists the fields an edit changes. Zero values leave the
// field as it was. Tags replace the tag set when ReplaceTags is set, so an
// empty Tags with ReplaceTags clears every tag.
type EditOrderDescriptor struct {
	Name         domain.Name
	Phone        domain.Phone
	Email        domain.Email
	Address      domain.Address
	Descriptions []domain.OrderDescription
	Tags         []domain.Tag
	ReplaceTags  bool
	DeliveryDate domain.DeliveryDate
	DeliveryTime domain.DeliveryTime
}

// IsAnyFieldEdited reports whether the descriptor changes anything.
func (d EditOrderDescriptor) IsAnyFieldEdited() bool {
	return !d.Name.IsZero() || !d.Phone.IsZero() || !d.Email.IsZero() || !d.Address.IsZero() ||
		len(d.Descriptions) > 0 || d.ReplaceTags || len(d.Tags) > 0 ||
		!d.DeliveryDate.IsZero() || !d.DeliveryTime.IsZero()
}

func (d EditOrderDescriptor) apply(o domain.Order) (domain.Order, error) {
	f := o.Fields()
	if !d.Name.IsZero() {
		f.Name = d.Name
	}
	if !d.Phone.IsZero() {
		f.Phone = d.Phone
	}
	if !d.Email.IsZero() {
		f.Email = d.Email
	}
	if !d.Address.IsZero() {
		f.Address = d.Address
	}
	if len(d.Descriptions) > 0 {
		f.Descriptions = d.Descriptions
	}
	if d.ReplaceTags || len(d.Tags) > 0 {
		f.Tags = d.Tags
	}
	if !d.DeliveryDate.IsZero() {
		f.DeliveryDate = d.DeliveryDate
	}
	if !d.DeliveryTime.IsZero() {
		f.DeliveryTime = d.DeliveryTime
	}
	return domain.NewOrder(f)
}

// Edit replaces the displayed order at Index with an edited copy.
type Edit struct {
	Index      index.Index
	Descriptor EditOrderDescriptor
}

// NewEdit rejects descriptors that change nothing.
func NewEdit(i index.Index, d EditOrderDescriptor) (Edit, error) {
	if !d.IsAnyFieldEdited() {
		return Edit{}, &domain.InvalidValueError{Field: "edit", Message: MessageNotEdited}
	}
	return Edit{Index: i, Descriptor: d}, nil
}

func (Edit) Word() string { return EditWord }

func (e Edit) Execute(_ context.Context, m model.Model) (Result, error) {
	target, err := index.Resolve(m.FilteredOrderList(), e.Index)
	if err != nil {
		return Result{}, fail(MessageInvalidOrderDisplayedIndex, err)
	}
	edited, err := e.Descriptor.apply(target)
	if err != nil {
		return Result{}, fail(invalidMessage(err), err)
	}
	if !target.SameOrder(edited) && m.HasOrder(edited) {
		return Result{}, fail(MessageDuplicateOrder, nil)
	}
	planned := missingOrderItems(m, edited.Descriptions())

	if err := m.SetOrder(target, edited); err != nil {
		return Result{}, failf(err, MessageDuplicateOrder)
	}
	if err := addOrderItems(m, planned); err != nil {
		return Result{}, err
	}
	m.UpdateFilteredOrderList(predicate.ShowAllOrders{})
	return NewResult(fmt.Sprintf(MessageEditSuccess, edited)), nil
}
