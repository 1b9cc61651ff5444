// Package model holds the mutable CakeCollate session state: the order store,
// the order item catalog, user preferences, and the filtered projections
// commands and views read from.
package model

import (
	"fmt"
	"slices"

	"cakecollate/pkg/domain"
)

// ReadOnlyCakeCollate is an ordered, read-only view of stored orders.
type ReadOnlyCakeCollate interface {
	Orders() []domain.Order
}

// CakeCollate is the ordered store of orders. No two stored orders are the
// same order.
type CakeCollate struct {
	orders []domain.Order
}

// NewCakeCollate returns an empty store.
func NewCakeCollate() *CakeCollate {
	return &CakeCollate{}
}

// CakeCollateFrom copies src into a new store, rejecting duplicate orders.
func CakeCollateFrom(src ReadOnlyCakeCollate) (*CakeCollate, error) {
	cc := NewCakeCollate()
	if src == nil {
		return cc, nil
	}
	if err := cc.SetAll(src.Orders()); err != nil {
		return nil, err
	}
	return cc, nil
}

// Orders returns a copy of the stored orders in store order.
func (c *CakeCollate) Orders() []domain.Order { return slices.Clone(c.orders) }

// Len returns the number of stored orders.
func (c *CakeCollate) Len() int { return len(c.orders) }

// Contains reports whether an order with the same identity is stored.
func (c *CakeCollate) Contains(o domain.Order) bool {
	return slices.ContainsFunc(c.orders, o.SameOrder)
}

// Add appends o.
func (c *CakeCollate) Add(o domain.Order) error {
	if c.Contains(o) {
		return &domain.DuplicateEntityError{Entity: domain.EntityOrder, Key: o.Key()}
	}
	c.orders = append(c.orders, o)
	return nil
}

// Remove deletes the stored order equal to o.
func (c *CakeCollate) Remove(o domain.Order) error {
	i := c.indexOf(o)
	if i < 0 {
		return &domain.EntityNotFoundError{Entity: domain.EntityOrder, Key: o.Key()}
	}
	c.orders = slices.Delete(c.orders, i, i+1)
	return nil
}

// Replace swaps target for replacement at the same position. The replacement
// may share target's identity but not that of any other stored order.
func (c *CakeCollate) Replace(target, replacement domain.Order) error {
	i := c.indexOf(target)
	if i < 0 {
		return &domain.EntityNotFoundError{Entity: domain.EntityOrder, Key: target.Key()}
	}
	for j, o := range c.orders {
		if j != i && o.SameOrder(replacement) {
			return &domain.DuplicateEntityError{Entity: domain.EntityOrder, Key: replacement.Key()}
		}
	}
	c.orders[i] = replacement
	return nil
}

// SetAll replaces the contents with orders, which must be unique among themselves.
func (c *CakeCollate) SetAll(orders []domain.Order) error {
	for i := range orders {
		for j := i + 1; j < len(orders); j++ {
			if orders[i].SameOrder(orders[j]) {
				return fmt.Errorf("set orders: %w", &domain.DuplicateEntityError{Entity: domain.EntityOrder, Key: orders[j].Key()})
			}
		}
	}
	c.orders = slices.Clone(orders)
	return nil
}

// SortByDelivery orders the store by delivery date then time. Orders due at
// the same moment keep their relative order.
func (c *CakeCollate) SortByDelivery() {
	slices.SortStableFunc(c.orders, func(a, b domain.Order) int {
		if cmp := a.DeliveryDate().Compare(b.DeliveryDate()); cmp != 0 {
			return cmp
		}
		return a.DeliveryTime().Minutes() - b.DeliveryTime().Minutes()
	})
}

func (c *CakeCollate) indexOf(o domain.Order) int {
	return slices.IndexFunc(c.orders, o.Equal)
}

func (c *CakeCollate) clone() *CakeCollate {
	return &CakeCollate{orders: slices.Clone(c.orders)}
}
