package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// Constraint messages for catalog entries.
const (
	ItemTypeConstraints = "Order Type should only contain alphabets, and it should not be blank."
	CostConstraints     = "Cost should be a non-negative amount with at most two decimal places"
)

var costRegex = regexp.MustCompile(`^(\d+)(?:\.(\d{1,2}))?$`)

// ItemType is the cake flavor or category of a catalog order item. Two types
// are the same when they match under Unicode case folding.
type ItemType struct{ value string }

// NewItemType validates raw and returns an ItemType.
func NewItemType(raw string) (ItemType, error) {
	if !IsValidItemType(raw) {
		return ItemType{}, invalid("order item type", raw, ItemTypeConstraints)
	}
	return ItemType{value: raw}, nil
}

// IsValidItemType reports whether s is an acceptable type.
func IsValidItemType(s string) bool { return IsValidOrderDescription(s) }

func (t ItemType) String() string { return t.value }

// Key returns the case-folded identity of the type.
func (t ItemType) Key() string { return cases.Fold().String(t.value) }

// Equal compares types ignoring case.
func (t ItemType) Equal(other ItemType) bool { return t.Key() == other.Key() }

// Description returns the order description spelled like this type.
func (t ItemType) Description() OrderDescription { return OrderDescription{value: t.value} }

func (t ItemType) MarshalText() ([]byte, error) { return []byte(t.value), nil }

func (t *ItemType) UnmarshalText(b []byte) error { return parseInto(t, b, NewItemType) }

// Cost is the unit price of a catalog order item, held in cents. The zero
// value means the item is unpriced.
type Cost struct {
	cents int64
	set   bool
}

// NewCost parses raw as a non-negative decimal amount.
func NewCost(raw string) (Cost, error) {
	m := costRegex.FindStringSubmatch(raw)
	if m == nil {
		return Cost{}, invalid("cost", raw, CostConstraints)
	}
	whole, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil || whole > (1<<53)/100 {
		return Cost{}, invalid("cost", raw, CostConstraints)
	}
	frac := m[2]
	if len(frac) == 1 {
		frac += "0"
	}
	var fracCents int64
	if frac != "" {
		fracCents, _ = strconv.ParseInt(frac, 10, 64)
	}
	return Cost{cents: whole*100 + fracCents, set: true}, nil
}

// IsZero reports whether no cost was given.
func (c Cost) IsZero() bool { return !c.set }

// Cents returns the amount in cents.
func (c Cost) Cents() int64 { return c.cents }

func (c Cost) String() string {
	if !c.set {
		return ""
	}
	return fmt.Sprintf("%d.%02d", c.cents/100, c.cents%100)
}

func (c Cost) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Cost) UnmarshalText(b []byte) error {
	if strings.TrimSpace(string(b)) == "" {
		*c = Cost{}
		return nil
	}
	return parseInto(c, b, NewCost)
}
