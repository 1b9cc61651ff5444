package model

import (
	"context"
	"fmt"

	"cakecollate/internal/model/predicate"
	"cakecollate/internal/platform/logger"
	"cakecollate/pkg/domain"
)

// Manager is the in-memory Model. Each mutation runs against a clone of the
// order store and catalog, is checked by the rules engine, and replaces the
// live state only when no blocking violation is reported.
type Manager struct {
	state state
	prefs *UserPrefs

	orderFilter    predicate.Order
	itemFilter     predicate.OrderItem
	filteredOrders []domain.Order
	filteredItems  []domain.OrderItem

	engine   *domain.RulesEngine
	logger   logger.Logger
	changes  []domain.Change
	findings []domain.Violation
}

var _ Model = (*Manager)(nil)

// Option configures a Manager.
type Option func(*Manager)

// WithRulesEngine evaluates engine on every mutation.
func WithRulesEngine(engine *domain.RulesEngine) Option {
	return func(m *Manager) { m.engine = engine }
}

// WithLogger routes rule findings to l.
func WithLogger(l logger.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewManager loads cc, items and prefs into a new Manager. Nil sources start
// empty or with default preferences. Sources that hold duplicate entries are
// rejected.
func NewManager(cc ReadOnlyCakeCollate, items ReadOnlyOrderItems, prefs ReadOnlyUserPrefs, opts ...Option) (*Manager, error) {
	orders, err := CakeCollateFrom(cc)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	catalog, err := OrderItemsFrom(items)
	if err != nil {
		return nil, fmt.Errorf("load order items: %w", err)
	}
	p := NewUserPrefs()
	if prefs != nil {
		if p, err = UserPrefsFrom(prefs); err != nil {
			return nil, fmt.Errorf("load user prefs: %w", err)
		}
	}
	m := &Manager{
		state:       state{orders: orders, items: catalog},
		prefs:       p,
		orderFilter: predicate.ShowAllOrders{},
		itemFilter:  predicate.ShowAllOrderItems{},
		logger:      logger.Noop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.refresh()
	return m, nil
}

// NewManagerFromSnapshot loads a persisted snapshot.
func NewManagerFromSnapshot(s domain.Snapshot, prefs ReadOnlyUserPrefs, opts ...Option) (*Manager, error) {
	return NewManager(OrderList(s.Orders), OrderItemList(s.OrderItems), prefs, opts...)
}

// OrderList adapts a slice to ReadOnlyCakeCollate.
type OrderList []domain.Order

func (l OrderList) Orders() []domain.Order { return append([]domain.Order(nil), l...) }

// OrderItemList adapts a slice to ReadOnlyOrderItems.
type OrderItemList []domain.OrderItem

func (l OrderItemList) Items() []domain.OrderItem { return append([]domain.OrderItem(nil), l...) }

// Snapshot returns the persisted form of the current state.
func (m *Manager) Snapshot() domain.Snapshot {
	return domain.Snapshot{Orders: m.state.orders.Orders(), OrderItems: m.state.items.Items()}
}

// DrainChanges returns the changes committed since the previous call.
func (m *Manager) DrainChanges() []domain.Change {
	out := m.changes
	m.changes = nil
	return out
}

// DrainFindings returns the non-blocking rule violations reported since the
// previous call.
func (m *Manager) DrainFindings() []domain.Violation {
	out := m.findings
	m.findings = nil
	return out
}

func (m *Manager) UserPrefs() ReadOnlyUserPrefs {
	p, _ := UserPrefsFrom(m.prefs)
	return p
}

func (m *Manager) SetUserPrefs(prefs ReadOnlyUserPrefs) error {
	return m.prefs.Reset(prefs)
}

func (m *Manager) GuiSettings() GuiSettings { return m.prefs.GuiSettings() }

func (m *Manager) SetGuiSettings(settings GuiSettings) { m.prefs.SetGuiSettings(settings) }

func (m *Manager) CakeCollateFilePath() string { return m.prefs.CakeCollateFilePath() }

func (m *Manager) SetCakeCollateFilePath(path string) error {
	return m.prefs.SetCakeCollateFilePath(path)
}

func (m *Manager) SetCakeCollate(cc ReadOnlyCakeCollate) error {
	if cc == nil {
		return domain.ErrNilArgument
	}
	return m.apply("set_cakecollate", func(st state) ([]domain.Change, error) {
		before := st.orders.Orders()
		if err := st.orders.SetAll(cc.Orders()); err != nil {
			return nil, err
		}
		return []domain.Change{{Entity: domain.EntityOrder, Action: domain.ActionReset, Before: before, After: st.orders.Orders()}}, nil
	})
}

func (m *Manager) CakeCollate() ReadOnlyCakeCollate { return m.state.orders.clone() }

func (m *Manager) HasOrder(o domain.Order) bool { return m.state.orders.Contains(o) }

func (m *Manager) AddOrder(o domain.Order) error {
	err := m.apply("add_order", func(st state) ([]domain.Change, error) {
		if err := st.orders.Add(o); err != nil {
			return nil, err
		}
		return []domain.Change{{Entity: domain.EntityOrder, Action: domain.ActionCreate, After: o}}, nil
	})
	if err != nil {
		return err
	}
	m.UpdateFilteredOrderList(predicate.ShowAllOrders{})
	return nil
}

func (m *Manager) DeleteOrder(target domain.Order) error {
	return m.apply("delete_order", func(st state) ([]domain.Change, error) {
		if err := st.orders.Remove(target); err != nil {
			return nil, err
		}
		return []domain.Change{{Entity: domain.EntityOrder, Action: domain.ActionDelete, Before: target}}, nil
	})
}

func (m *Manager) SetOrder(target, edited domain.Order) error {
	return m.apply("set_order", func(st state) ([]domain.Change, error) {
		if err := st.orders.Replace(target, edited); err != nil {
			return nil, err
		}
		return []domain.Change{{Entity: domain.EntityOrder, Action: domain.ActionUpdate, Before: target, After: edited}}, nil
	})
}

func (m *Manager) FilteredOrderList() []domain.Order {
	return append([]domain.Order(nil), m.filteredOrders...)
}

// UpdateFilteredOrderList installs p as the order filter. A nil p shows every order.
func (m *Manager) UpdateFilteredOrderList(p predicate.Order) {
	if p == nil {
		p = predicate.ShowAllOrders{}
	}
	m.orderFilter = p
	m.refresh()
}

func (m *Manager) SortFilteredOrderList() error {
	return m.apply("sort_orders", func(st state) ([]domain.Change, error) {
		before := st.orders.Orders()
		st.orders.SortByDelivery()
		return []domain.Change{{Entity: domain.EntityOrder, Action: domain.ActionReorder, Before: before, After: st.orders.Orders()}}, nil
	})
}

func (m *Manager) OrderItems() ReadOnlyOrderItems { return m.state.items.clone() }

func (m *Manager) HasOrderItem(item domain.OrderItem) bool { return m.state.items.Contains(item) }

func (m *Manager) AddOrderItem(item domain.OrderItem) error {
	return m.apply("add_order_item", func(st state) ([]domain.Change, error) {
		if err := st.items.Add(item); err != nil {
			return nil, err
		}
		return []domain.Change{{Entity: domain.EntityOrderItem, Action: domain.ActionCreate, After: item}}, nil
	})
}

func (m *Manager) DeleteOrderItem(item domain.OrderItem) error {
	return m.apply("delete_order_item", func(st state) ([]domain.Change, error) {
		if err := st.items.Remove(item); err != nil {
			return nil, err
		}
		return []domain.Change{{Entity: domain.EntityOrderItem, Action: domain.ActionDelete, Before: item}}, nil
	})
}

func (m *Manager) FilteredOrderItemList() []domain.OrderItem {
	return append([]domain.OrderItem(nil), m.filteredItems...)
}

// UpdateFilteredOrderItemList installs p as the catalog filter. A nil p shows every entry.
func (m *Manager) UpdateFilteredOrderItemList(p predicate.OrderItem) {
	if p == nil {
		p = predicate.ShowAllOrderItems{}
	}
	m.itemFilter = p
	m.refresh()
}

// apply runs mutate on a cloned state and commits it when the rules allow.
func (m *Manager) apply(op string, mutate func(st state) ([]domain.Change, error)) error {
	candidate := m.state.clone()
	changes, err := mutate(candidate)
	if err != nil {
		return err
	}
	if m.engine != nil {
		res, err := m.engine.Evaluate(context.Background(), candidate, changes)
		if err != nil {
			return fmt.Errorf("%s: evaluate rules: %w", op, err)
		}
		if res.HasBlocking() {
			m.logger.Warn("mutation blocked", "operation", op, "violations", len(res.Filter(domain.SeverityBlock)))
			return domain.RuleViolationError{Result: res}
		}
		for _, v := range res.Violations {
			if v.Severity == domain.SeverityWarn {
				m.logger.Warn("rule warning", "operation", op, "rule", v.Rule, "key", v.Key, "message", v.Message)
			} else {
				m.logger.Debug("rule finding", "operation", op, "rule", v.Rule, "key", v.Key, "message", v.Message)
			}
		}
		m.findings = append(m.findings, res.Violations...)
	}
	m.state = candidate
	m.changes = append(m.changes, changes...)
	m.refresh()
	return nil
}

func (m *Manager) refresh() {
	m.filteredOrders = m.filteredOrders[:0:0]
	for _, o := range m.state.orders.orders {
		if m.orderFilter.Test(o) {
			m.filteredOrders = append(m.filteredOrders, o)
		}
	}
	m.filteredItems = m.filteredItems[:0:0]
	for _, it := range m.state.items.items {
		if m.itemFilter.Test(it) {
			m.filteredItems = append(m.filteredItems, it)
		}
	}
}

// state pairs the order store with the catalog so both move together.
type state struct {
	orders *CakeCollate
	items  *OrderItems
}

func (s state) clone() state {
	return state{orders: s.orders.clone(), items: s.items.clone()}
}

func (s state) ListOrders() []domain.Order { return s.orders.Orders() }

func (s state) ListOrderItems() []domain.OrderItem { return s.items.Items() }

func (s state) HasOrderItem(item domain.OrderItem) bool { return s.items.Contains(item) }
