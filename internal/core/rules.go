// Package core holds the built-in invariant rules evaluated on every model
// mutation.
package core

import "cakecollate/pkg/domain"

// NewDefaultRulesEngine builds a rules engine with the built-in policy set.
// clock decides what "today" is for date-sensitive rules; nil uses the system clock.
func NewDefaultRulesEngine(clock domain.Clock) *domain.RulesEngine {
	if clock == nil {
		clock = domain.SystemClock{}
	}
	engine := domain.NewRulesEngine()
	engine.Register(StoreUniquenessRule())
	engine.Register(CatalogCoverageRule())
	engine.Register(DeliveryInPastRule(clock))
	return engine
}

// changedOrders returns the orders a batch of changes creates or updates.
func changedOrders(changes []domain.Change) []domain.Order {
	var out []domain.Order
	for _, change := range changes {
		if change.Entity != domain.EntityOrder {
			continue
		}
		switch change.Action {
		case domain.ActionCreate, domain.ActionUpdate:
			if o, ok := change.After.(domain.Order); ok {
				out = append(out, o)
			}
		}
	}
	return out
}
