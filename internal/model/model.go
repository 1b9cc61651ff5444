package model

import (
	"cakecollate/internal/model/predicate"
	"cakecollate/pkg/domain"
)

// Model is the API commands use to read and mutate session state. It is not
// safe for concurrent use.
type Model interface {
	UserPrefs() ReadOnlyUserPrefs
	SetUserPrefs(prefs ReadOnlyUserPrefs) error
	GuiSettings() GuiSettings
	SetGuiSettings(settings GuiSettings)
	CakeCollateFilePath() string
	SetCakeCollateFilePath(path string) error

	// SetCakeCollate replaces every stored order with the contents of cc.
	SetCakeCollate(cc ReadOnlyCakeCollate) error
	CakeCollate() ReadOnlyCakeCollate
	HasOrder(o domain.Order) bool
	// AddOrder stores o and resets the order filter to show every order.
	AddOrder(o domain.Order) error
	DeleteOrder(target domain.Order) error
	// SetOrder replaces target with edited. edited may share target's
	// identity but no other stored order's.
	SetOrder(target, edited domain.Order) error
	FilteredOrderList() []domain.Order
	UpdateFilteredOrderList(p predicate.Order)
	// SortFilteredOrderList sorts the stored orders by delivery date and time
	// and reapplies the active filter.
	SortFilteredOrderList() error

	OrderItems() ReadOnlyOrderItems
	HasOrderItem(item domain.OrderItem) bool
	AddOrderItem(item domain.OrderItem) error
	DeleteOrderItem(item domain.OrderItem) error
	FilteredOrderItemList() []domain.OrderItem
	UpdateFilteredOrderItemList(p predicate.OrderItem)
}
