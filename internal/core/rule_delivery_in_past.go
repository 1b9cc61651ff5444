package core

import (
	"context"
	"fmt"

	"cakecollate/pkg/domain"
)

// DeliveryInPastRule warns when a created or edited order is due before today.
func DeliveryInPastRule(clock domain.Clock) domain.Rule {
	return deliveryInPastRule{clock: clock}
}

type deliveryInPastRule struct {
	clock domain.Clock
}

func (deliveryInPastRule) Name() string { return "delivery_in_past" }

func (r deliveryInPastRule) Evaluate(_ context.Context, _ domain.RuleView, changes []domain.Change) (domain.Result, error) {
	res := domain.Result{}
	today := domain.DateOf(r.clock.Now())
	for _, o := range changedOrders(changes) {
		if !o.DeliveryDate().Before(today) {
			continue
		}
		res.Violations = append(res.Violations, domain.Violation{
			Rule:     r.Name(),
			Severity: domain.SeverityWarn,
			Message:  fmt.Sprintf("delivery date %s is before today %s", o.DeliveryDate(), today),
			Entity:   domain.EntityOrder,
			Key:      o.Key(),
		})
	}
	return res, nil
}
