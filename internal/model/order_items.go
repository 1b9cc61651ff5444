package model

import (
	"fmt"
	"slices"

	"cakecollate/pkg/domain"
)

// ReadOnlyOrderItems is a read-only view of the order item catalog.
type ReadOnlyOrderItems interface {
	Items() []domain.OrderItem
}

// OrderItems is the catalog of known order item types, unique by
// case-insensitive type.
type OrderItems struct {
	items []domain.OrderItem
}

// NewOrderItems returns an empty catalog.
func NewOrderItems() *OrderItems {
	return &OrderItems{}
}

// OrderItemsFrom copies src into a new catalog, rejecting duplicate types.
func OrderItemsFrom(src ReadOnlyOrderItems) (*OrderItems, error) {
	oi := NewOrderItems()
	if src == nil {
		return oi, nil
	}
	if err := oi.SetAll(src.Items()); err != nil {
		return nil, err
	}
	return oi, nil
}

// Items returns a copy of the catalog in insertion order.
func (c *OrderItems) Items() []domain.OrderItem { return slices.Clone(c.items) }

// Len returns the number of catalog entries.
func (c *OrderItems) Len() int { return len(c.items) }

// Contains reports whether an entry of the same type exists.
func (c *OrderItems) Contains(item domain.OrderItem) bool {
	return slices.ContainsFunc(c.items, item.SameOrderItem)
}

// Add appends item.
func (c *OrderItems) Add(item domain.OrderItem) error {
	if c.Contains(item) {
		return &domain.DuplicateEntityError{Entity: domain.EntityOrderItem, Key: item.Type().String()}
	}
	c.items = append(c.items, item)
	return nil
}

// Remove deletes the entry equal to item.
func (c *OrderItems) Remove(item domain.OrderItem) error {
	i := slices.IndexFunc(c.items, item.Equal)
	if i < 0 {
		return &domain.EntityNotFoundError{Entity: domain.EntityOrderItem, Key: item.Type().String()}
	}
	c.items = slices.Delete(c.items, i, i+1)
	return nil
}

// Replace swaps target for replacement in place.
func (c *OrderItems) Replace(target, replacement domain.OrderItem) error {
	i := slices.IndexFunc(c.items, target.Equal)
	if i < 0 {
		return &domain.EntityNotFoundError{Entity: domain.EntityOrderItem, Key: target.Type().String()}
	}
	for j, it := range c.items {
		if j != i && it.SameOrderItem(replacement) {
			return &domain.DuplicateEntityError{Entity: domain.EntityOrderItem, Key: replacement.Type().String()}
		}
	}
	c.items[i] = replacement
	return nil
}

// SetAll replaces the catalog with items, which must be unique among themselves.
func (c *OrderItems) SetAll(items []domain.OrderItem) error {
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if _, dup := seen[it.Key()]; dup {
			return fmt.Errorf("set order items: %w", &domain.DuplicateEntityError{Entity: domain.EntityOrderItem, Key: it.Type().String()})
		}
		seen[it.Key()] = struct{}{}
	}
	c.items = slices.Clone(items)
	return nil
}

func (c *OrderItems) clone() *OrderItems {
	return &OrderItems{items: slices.Clone(c.items)}
}
