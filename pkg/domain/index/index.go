// Package index models user-facing positions into a displayed list and
// resolves them against a snapshot of that list.
package index

import (
	"fmt"
	"slices"
)

// Index is a position in a displayed list. It stores the zero-based offset and
// converts to the one-based form users see.
type Index struct{ zeroBased int }

// FromOneBased returns the index a user typed as n.
func FromOneBased(n int) (Index, error) {
	if n < 1 {
		return Index{}, fmt.Errorf("index %d: must be a positive integer", n)
	}
	return Index{zeroBased: n - 1}, nil
}

// FromZeroBased returns the index at offset n.
func FromZeroBased(n int) (Index, error) {
	if n < 0 {
		return Index{}, fmt.Errorf("offset %d: must not be negative", n)
	}
	return Index{zeroBased: n}, nil
}

// MustOneBased is FromOneBased for literals in tests and fixtures.
func MustOneBased(n int) Index {
	i, err := FromOneBased(n)
	if err != nil {
		panic(err)
	}
	return i
}

func (i Index) OneBased() int  { return i.zeroBased + 1 }
func (i Index) ZeroBased() int { return i.zeroBased }

func (i Index) String() string { return fmt.Sprintf("%d", i.OneBased()) }

// List is an ordered sequence of indices as the user gave them.
type List []Index

// Of builds a List from one-based positions.
func Of(oneBased ...int) (List, error) {
	out := make(List, 0, len(oneBased))
	for _, n := range oneBased {
		i, err := FromOneBased(n)
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, nil
}

// Unique returns the list with repeated indices removed, keeping first occurrences.
func (l List) Unique() List {
	out := make(List, 0, len(l))
	for _, i := range l {
		if !slices.Contains(out, i) {
			out = append(out, i)
		}
	}
	return out
}

// OutOfRangeError reports an index that does not address the displayed list.
type OutOfRangeError struct {
	Index Index
	Size  int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("index %d is out of range for a list of %d", e.Index.OneBased(), e.Size)
}

// Resolve returns the element at i, or an OutOfRangeError.
func Resolve[T any](items []T, i Index) (T, error) {
	if i.zeroBased >= len(items) {
		var zero T
		return zero, &OutOfRangeError{Index: i, Size: len(items)}
	}
	return items[i.zeroBased], nil
}

// ResolveAll resolves every index against items before returning anything, so
// callers never act on a partial resolution. The first invalid index in list
// order is reported. Repeated indices resolve once.
func ResolveAll[T any](items []T, list List) ([]T, error) {
	snapshot := slices.Clone(items)
	unique := list.Unique()
	out := make([]T, 0, len(unique))
	for _, i := range unique {
		v, err := Resolve(snapshot, i)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
