// Package predicate provides the filters the model applies to its order and
// order item projections.
package predicate

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"cakecollate/pkg/domain"
)

// Order decides whether an order is visible in the filtered order list.
type Order interface {
	Test(o domain.Order) bool
}

// OrderItem decides whether a catalog entry is visible in the filtered item list.
type OrderItem interface {
	Test(i domain.OrderItem) bool
}

// ShowAllOrders matches every order.
type ShowAllOrders struct{}

func (ShowAllOrders) Test(domain.Order) bool { return true }

// ShowAllOrderItems matches every catalog entry.
type ShowAllOrderItems struct{}

func (ShowAllOrderItems) Test(domain.OrderItem) bool { return true }

// Field selects which order attribute a keyword search inspects.
type Field string

// Searchable fields.
const (
	FieldAny          Field = ""
	FieldName         Field = "name"
	FieldPhone        Field = "phone"
	FieldEmail        Field = "email"
	FieldAddress      Field = "address"
	FieldDescription  Field = "description"
	FieldTag          Field = "tag"
	FieldRemark       Field = "remark"
	FieldDeliveryDate Field = "date"
)

var allFields = []Field{
	FieldName, FieldPhone, FieldEmail, FieldAddress,
	FieldDescription, FieldTag, FieldRemark, FieldDeliveryDate,
}

// Fields returns every concrete searchable field.
func Fields() []Field { return slices.Clone(allFields) }

// ParseField maps a field name to a Field; ok is false for unknown names.
func ParseField(name string) (Field, bool) {
	f := Field(strings.ToLower(strings.TrimSpace(name)))
	if f == FieldAny || slices.Contains(allFields, f) {
		return f, true
	}
	return "", false
}

// Keywords matches an order when any keyword appears in the selected field,
// ignoring case. Name, address, descriptions, tags and remark match whole
// words; phone, email and delivery date match substrings.
type Keywords struct {
	Field    Field
	Keywords []string
}

func (k Keywords) Test(o domain.Order) bool {
	fields := []Field{k.Field}
	if k.Field == FieldAny {
		fields = allFields
	}
	for _, kw := range k.Keywords {
		if strings.TrimSpace(kw) == "" {
			continue
		}
		for _, f := range fields {
			if matchField(f, o, kw) {
				return true
			}
		}
	}
	return false
}

func matchField(f Field, o domain.Order, kw string) bool {
	switch f {
	case FieldName:
		return containsWord(o.Name().String(), kw)
	case FieldPhone:
		return containsFold(o.Phone().String(), kw)
	case FieldEmail:
		return containsFold(o.Email().String(), kw)
	case FieldAddress:
		return containsWord(o.Address().String(), kw)
	case FieldDescription:
		return slices.ContainsFunc(o.Descriptions(), func(d domain.OrderDescription) bool {
			return containsWord(d.String(), kw)
		})
	case FieldTag:
		return slices.ContainsFunc(o.Tags(), func(t domain.Tag) bool {
			return containsWord(t.String(), kw)
		})
	case FieldRemark:
		return containsWord(o.Remark().String(), kw)
	case FieldDeliveryDate:
		return containsFold(o.DeliveryDate().String(), kw)
	default:
		return false
	}
}

// containsWord reports whether the words of keyword appear consecutively in
// sentence, comparing whole words under case folding.
func containsWord(sentence, keyword string) bool {
	words := strings.Fields(sentence)
	want := strings.Fields(keyword)
	if len(want) == 0 || len(want) > len(words) {
		return false
	}
	for start := 0; start+len(want) <= len(words); start++ {
		match := true
		for i, w := range want {
			if !strings.EqualFold(words[start+i], w) {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

func containsFold(value, keyword string) bool {
	fold := cases.Fold()
	return strings.Contains(fold.String(value), fold.String(strings.TrimSpace(keyword)))
}

// AllOf matches when every member matches. An empty AllOf matches everything.
type AllOf []Order

func (a AllOf) Test(o domain.Order) bool {
	for _, p := range a {
		if !p.Test(o) {
			return false
		}
	}
	return true
}

// AnyOf matches when at least one member matches.
type AnyOf []Order

func (a AnyOf) Test(o domain.Order) bool {
	for _, p := range a {
		if p.Test(o) {
			return true
		}
	}
	return false
}

// DeliveryStatusIs matches orders carrying Status.
type DeliveryStatusIs struct {
	Status domain.DeliveryStatus
}

func (d DeliveryStatusIs) Test(o domain.Order) bool { return o.Status() == d.Status }

// ItemKeywords matches catalog entries whose type contains any keyword as a word.
type ItemKeywords struct {
	Keywords []string
}

func (k ItemKeywords) Test(i domain.OrderItem) bool {
	for _, kw := range k.Keywords {
		if containsWord(i.Type().String(), kw) {
			return true
		}
	}
	return false
}
