package domain

import (
	"regexp"
	"slices"
	"strings"
)

// Constraint messages for order descriptions and annotations.
const (
	OrderDescriptionConstraints = "Order descriptions should only contain alphabets and spaces, " +
		"and it should start with an alphabet"
	TagConstraints = "Tags names should be alphanumeric"
)

// typeRule is shared by order descriptions and order item types so that every
// description can be promoted to a catalog entry.
var (
	typeRule = regexp.MustCompile(`^\p{L}[\p{L} ]*$`)
	tagRegex = regexp.MustCompile(`^[\p{L}\p{N}]+$`)
)

// OrderDescription names one item of an order, such as "chocolate cake".
type OrderDescription struct{ value string }

// NewOrderDescription validates raw and returns an OrderDescription.
func NewOrderDescription(raw string) (OrderDescription, error) {
	if !IsValidOrderDescription(raw) {
		return OrderDescription{}, invalid("order description", raw, OrderDescriptionConstraints)
	}
	return OrderDescription{value: raw}, nil
}

// IsValidOrderDescription reports whether s is an acceptable description.
func IsValidOrderDescription(s string) bool {
	return typeRule.MatchString(s)
}

func (d OrderDescription) String() string { return d.value }

// ItemType converts the description into the catalog type it corresponds to.
func (d OrderDescription) ItemType() ItemType { return ItemType{value: d.value} }

func (d OrderDescription) MarshalText() ([]byte, error) { return []byte(d.value), nil }

func (d *OrderDescription) UnmarshalText(b []byte) error {
	return parseInto(d, b, NewOrderDescription)
}

// Remark is free text attached to an order. The empty remark means none.
type Remark struct{ value string }

// NewRemark wraps raw. Every string is a valid remark.
func NewRemark(raw string) Remark { return Remark{value: raw} }

func (r Remark) String() string { return r.value }

// IsZero reports whether the remark is empty.
func (r Remark) IsZero() bool { return r.value == "" }

func (r Remark) MarshalText() ([]byte, error) { return []byte(r.value), nil }

func (r *Remark) UnmarshalText(b []byte) error {
	*r = NewRemark(string(b))
	return nil
}

// Tag labels an order.
type Tag struct{ value string }

// NewTag validates raw and returns a Tag.
func NewTag(raw string) (Tag, error) {
	if !IsValidTag(raw) {
		return Tag{}, invalid("tag", raw, TagConstraints)
	}
	return Tag{value: raw}, nil
}

// IsValidTag reports whether s is an acceptable tag name.
func IsValidTag(s string) bool { return tagRegex.MatchString(s) }

func (t Tag) String() string { return t.value }

func (t Tag) MarshalText() ([]byte, error) { return []byte(t.value), nil }

func (t *Tag) UnmarshalText(b []byte) error { return parseInto(t, b, NewTag) }

// normalizeTags returns a sorted set copy of tags.
func normalizeTags(tags []Tag) []Tag {
	if len(tags) == 0 {
		return nil
	}
	out := slices.Clone(tags)
	slices.SortFunc(out, func(a, b Tag) int { return strings.Compare(a.value, b.value) })
	return slices.Compact(out)
}

// normalizeDescriptions drops exact repeats while keeping first-seen order.
func normalizeDescriptions(descs []OrderDescription) []OrderDescription {
	out := make([]OrderDescription, 0, len(descs))
	for _, d := range descs {
		if !slices.Contains(out, d) {
			out = append(out, d)
		}
	}
	return out
}
