package domain

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestResultMergeAndBlocking(t *testing.T) {
	var result Result
	result.Merge(Result{Violations: []Violation{{Rule: "warn", Severity: SeverityWarn}}})
	if result.HasBlocking() {
		t.Fatalf("expected no blocking violations")
	}
	result.Merge(Result{})
	result.Merge(Result{Violations: []Violation{{Rule: "block", Severity: SeverityBlock, Message: "duplicate order"}}})
	if !result.HasBlocking() {
		t.Fatalf("expected blocking violation")
	}
	if got := result.Filter(SeverityWarn); len(got) != 1 || got[0].Rule != "warn" {
		t.Fatalf("unexpected warn filter %+v", got)
	}
	err := RuleViolationError{Result: result}
	if err.Error() != "mutation blocked by rules: block: duplicate order" {
		t.Fatalf("unexpected error text %q", err.Error())
	}
	if (RuleViolationError{}).Error() != "mutation blocked by rules" {
		t.Fatalf("unexpected empty error text")
	}
}

type staticRule struct {
	name     string
	severity Severity
	err      error
}

func (r staticRule) Name() string { return r.name }

func (r staticRule) Evaluate(context.Context, RuleView, []Change) (Result, error) {
	if r.err != nil {
		return Result{}, r.err
	}
	return Result{Violations: []Violation{{Rule: r.name, Severity: r.severity}}}, nil
}

type emptyView struct{}

func (emptyView) ListOrders() []Order          { return nil }
func (emptyView) ListOrderItems() []OrderItem { return nil }
func (emptyView) HasOrderItem(OrderItem) bool { return false }

func TestRulesEngineEvaluate(t *testing.T) {
	engine := NewRulesEngine()
	engine.Register(staticRule{name: "first", severity: SeverityLog})
	engine.Register(staticRule{name: "second", severity: SeverityWarn})
	if names := engine.Rules(); strings.Join(names, ",") != "first,second" {
		t.Fatalf("unexpected rule order %v", names)
	}
	res, err := engine.Evaluate(context.Background(), emptyView{}, nil)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(res.Violations) != 2 || res.HasBlocking() {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestRulesEngineEvaluateError(t *testing.T) {
	boom := errors.New("boom")
	engine := NewRulesEngine()
	engine.Register(staticRule{name: "ok", severity: SeverityWarn})
	engine.Register(staticRule{name: "broken", err: boom})
	res, err := engine.Evaluate(context.Background(), emptyView{}, nil)
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if len(res.Violations) != 0 {
		t.Fatalf("expected no partial result, got %+v", res)
	}
}
