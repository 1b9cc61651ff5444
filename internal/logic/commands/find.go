package commands

import (
	"context"
	"fmt"
	"slices"

	"cakecollate/internal/model"
	"cakecollate/internal/model/predicate"
)

// Find command messages.
const (
	FindWord  = "find"
	FindUsage = FindWord + ": Finds orders matching every given field prefix, or any field when no prefix is given. Keywords are case-insensitive. Parameters: [KEYWORD]... [n/NAME_KEYWORDS] [p/PHONE] [e/EMAIL] [a/ADDRESS_KEYWORDS] [o/ORDER_DESCRIPTION_KEYWORDS] [t/TAG] [r/REMARK] [d/DATE]"
)

// Find filters the displayed orders.
type Find struct {
	Predicate predicate.Order
}

// NewFind builds a Find from free keywords and per-field keywords. Per-field
// keywords must all match; free keywords may match any field.
func NewFind(keywords []string, byField map[predicate.Field][]string) Find {
	var all predicate.AllOf
	if len(keywords) > 0 {
		all = append(all, predicate.Keywords{Field: predicate.FieldAny, Keywords: keywords})
	}
	fields := make([]predicate.Field, 0, len(byField))
	for f := range byField {
		fields = append(fields, f)
	}
	slices.Sort(fields)
	for _, f := range fields {
		all = append(all, predicate.Keywords{Field: f, Keywords: byField[f]})
	}
	if len(all) == 1 {
		return Find{Predicate: all[0]}
	}
	return Find{Predicate: all}
}

func (Find) Word() string { return FindWord }

func (f Find) Execute(_ context.Context, m model.Model) (Result, error) {
	m.UpdateFilteredOrderList(f.Predicate)
	return NewResult(fmt.Sprintf(MessageOrdersListedOverview, len(m.FilteredOrderList()))), nil
}
