// Package domain defines the CakeCollate value types, the Order and OrderItem
// entities, and the rule evaluation primitives shared by the model and the
// persistence backends.
package domain

import (
	"fmt"
	"slices"
	"strings"
)

// EntityType names the list a Change or Violation refers to.
type EntityType string

const (
	EntityOrder     EntityType = "order"
	EntityOrderItem EntityType = "order_item"
)

// Severity captures rule outcomes.
type Severity string

// Rule evaluation severities determine commit behavior and logging.
const (
	// SeverityBlock blocks the mutation from committing.
	SeverityBlock Severity = "block"
	// SeverityWarn logs a warning but allows commit.
	SeverityWarn Severity = "warn"
	SeverityLog  Severity = "log"
)

// Change describes a mutation applied to an entity by the model.
type Change struct {
	Entity EntityType
	Action Action
	Before any
	After  any
}

// Action indicates the type of modification performed.
type Action string

// Change actions enumerate the mutations captured for persistence and audit.
const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	// ActionReset marks a bulk replacement of a whole store.
	ActionReset Action = "reset"
	// ActionReorder marks a reordering of the store without content changes.
	ActionReorder Action = "reorder"
)

// Violation reports a failed rule evaluation.
type Violation struct {
	Rule     string
	Severity Severity
	Message  string
	Entity   EntityType
	Key      string
}

// Result aggregates violations from the rules engine.
type Result struct {
	Violations []Violation
}

// Merge folds other's violations into r, keeping their order.
func (r *Result) Merge(other Result) {
	r.Violations = append(r.Violations, other.Violations...)
}

// HasBlocking reports whether any violation stops the commit.
func (r Result) HasBlocking() bool {
	return slices.ContainsFunc(r.Violations, func(v Violation) bool { return v.Severity == SeverityBlock })
}

// Filter returns the violations carrying the given severity.
func (r Result) Filter(severity Severity) []Violation {
	var out []Violation
	for _, v := range r.Violations {
		if v.Severity == severity {
			out = append(out, v)
		}
	}
	return out
}

// RuleViolationError is returned when blocking violations are present.
type RuleViolationError struct {
	Result Result
}

func (e RuleViolationError) Error() string {
	blocking := e.Result.Filter(SeverityBlock)
	if len(blocking) == 0 {
		return "mutation blocked by rules"
	}
	msgs := make([]string, 0, len(blocking))
	for _, v := range blocking {
		msgs = append(msgs, fmt.Sprintf("%s: %s", v.Rule, v.Message))
	}
	return "mutation blocked by rules: " + strings.Join(msgs, "; ")
}
