package core

import (
	"context"
	"fmt"

	"cakecollate/pkg/domain"
)

// StoreUniquenessRule blocks any mutation that leaves two orders with the same
// identity, or two catalog entries with the same type.
func StoreUniquenessRule() domain.Rule {
	return storeUniquenessRule{}
}

type storeUniquenessRule struct{}

func (storeUniquenessRule) Name() string { return "store_uniqueness" }

func (r storeUniquenessRule) Evaluate(_ context.Context, view domain.RuleView, _ []domain.Change) (domain.Result, error) {
	res := domain.Result{}
	orders := view.ListOrders()
	for i := range orders {
		for j := i + 1; j < len(orders); j++ {
			if orders[i].SameOrder(orders[j]) {
				res.Violations = append(res.Violations, r.violation(domain.EntityOrder, orders[j].Key(),
					fmt.Sprintf("orders at positions %d and %d are the same order", i+1, j+1)))
			}
		}
	}
	seen := make(map[string]int)
	for i, item := range view.ListOrderItems() {
		if first, dup := seen[item.Key()]; dup {
			res.Violations = append(res.Violations, r.violation(domain.EntityOrderItem, item.Type().String(),
				fmt.Sprintf("order items at positions %d and %d share a type", first+1, i+1)))
			continue
		}
		seen[item.Key()] = i
	}
	return res, nil
}

func (r storeUniquenessRule) violation(entity domain.EntityType, key, message string) domain.Violation {
	return domain.Violation{
		Rule:     r.Name(),
		Severity: domain.SeverityBlock,
		Message:  message,
		Entity:   entity,
		Key:      key,
	}
}
