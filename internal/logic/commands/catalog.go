package commands

import (
	"cakecollate/internal/model"
	"cakecollate/pkg/domain"
)

// missingOrderItems plans the catalog entries needed to cover descs. Types
// already catalogued and repeats that differ only in case are skipped.
func missingOrderItems(m model.Model, descs []domain.OrderDescription) []domain.OrderItem {
	var planned []domain.OrderItem
	seen := make(map[string]struct{}, len(descs))
	for _, d := range descs {
		item := domain.OrderItemFor(d)
		if _, dup := seen[item.Key()]; dup {
			continue
		}
		seen[item.Key()] = struct{}{}
		if !m.HasOrderItem(item) {
			planned = append(planned, item)
		}
	}
	return planned
}

func addOrderItems(m model.Model, items []domain.OrderItem) error {
	for _, item := range items {
		if err := m.AddOrderItem(item); err != nil {
			return failf(err, MessageDuplicateOrderItem)
		}
	}
	return nil
}
