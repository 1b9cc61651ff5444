package core

import (
	"context"
	"fmt"

	"cakecollate/pkg/domain"
)

// CatalogCoverageRule notes order descriptions that have no catalog entry
// yet. Commands back-fill the catalog after storing an order, so a finding
// here is informational.
func CatalogCoverageRule() domain.Rule {
	return catalogCoverageRule{}
}

type catalogCoverageRule struct{}

func (catalogCoverageRule) Name() string { return "catalog_coverage" }

func (r catalogCoverageRule) Evaluate(_ context.Context, view domain.RuleView, changes []domain.Change) (domain.Result, error) {
	res := domain.Result{}
	for _, o := range changedOrders(changes) {
		for _, d := range o.Descriptions() {
			if view.HasOrderItem(domain.OrderItemFor(d)) {
				continue
			}
			res.Violations = append(res.Violations, domain.Violation{
				Rule:     r.Name(),
				Severity: domain.SeverityLog,
				Message:  fmt.Sprintf("order description %q has no catalog entry", d),
				Entity:   domain.EntityOrder,
				Key:      o.Key(),
			})
		}
	}
	return res, nil
}
