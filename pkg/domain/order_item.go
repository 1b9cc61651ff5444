package domain

import "encoding/json"

// OrderItem is a catalog entry for a distinct cake type, reusable across orders.
type OrderItem struct {
	itemType ItemType
	cost     Cost
}

// NewOrderItem returns a catalog entry for t with an optional unit cost.
func NewOrderItem(t ItemType, cost Cost) (OrderItem, error) {
	if t.value == "" {
		return OrderItem{}, invalid("order item type", "", ItemTypeConstraints)
	}
	return OrderItem{itemType: t, cost: cost}, nil
}

// OrderItemFor returns the unpriced catalog entry matching an order description.
func OrderItemFor(d OrderDescription) OrderItem {
	return OrderItem{itemType: d.ItemType()}
}

func (i OrderItem) Type() ItemType { return i.itemType }

func (i OrderItem) Cost() Cost { return i.cost }

// SameOrderItem reports whether both entries name the same type, ignoring case.
func (i OrderItem) SameOrderItem(other OrderItem) bool { return i.itemType.Equal(other.itemType) }

// Equal reports whether type (ignoring case) and cost both match.
func (i OrderItem) Equal(other OrderItem) bool {
	return i.SameOrderItem(other) && i.cost == other.cost
}

// Key returns the case-folded identity of the entry.
func (i OrderItem) Key() string { return i.itemType.Key() }

func (i OrderItem) String() string {
	if i.cost.IsZero() {
		return i.itemType.String()
	}
	return i.itemType.String() + " ($" + i.cost.String() + ")"
}

type orderItemRecord struct {
	Type ItemType `json:"type"`
	Cost Cost     `json:"cost"`
}

// MarshalJSON encodes the entry for snapshot persistence.
func (i OrderItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(orderItemRecord{Type: i.itemType, Cost: i.cost})
}

// UnmarshalJSON decodes and re-validates an entry.
func (i *OrderItem) UnmarshalJSON(data []byte) error {
	var rec orderItemRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	item, err := NewOrderItem(rec.Type, rec.Cost)
	if err != nil {
		return err
	}
	*i = item
	return nil
}
