// Package query implements the predicate filter and pagination layer applied
// over a collection's current values. Predicates compose with logical AND; a
// predicate whose caller input is absent is simply never built, so an
// unspecified filter never restricts the result set.
package query

import (
	"sort"
	"strings"
	"time"
)

// Predicate reports whether a record matches one filter condition.
type Predicate[T any] func(T) bool

// And combines predicates so a record must satisfy all of them. With no
// predicates it matches everything.
func And[T any](preds ...Predicate[T]) Predicate[T] {
	return func(record T) bool {
		for _, pred := range preds {
			if !pred(record) {
				return false
			}
		}
		return true
	}
}

// Apply filters records through pred, preserving input order. A nil predicate
// matches everything.
func Apply[T any](records []T, pred Predicate[T]) []T {
	if pred == nil {
		return records
	}
	matched := make([]T, 0, len(records))
	for _, record := range records {
		if pred(record) {
			matched = append(matched, record)
		}
	}
	return matched
}

// Equals matches records whose extracted field equals want.
func Equals[T any, V comparable](get func(T) V, want V) Predicate[T] {
	return func(record T) bool { return get(record) == want }
}

// ContainsFold matches records whose extracted string field contains needle,
// ignoring case.
func ContainsFold[T any](get func(T) string, needle string) Predicate[T] {
	needle = strings.ToLower(needle)
	return func(record T) bool {
		return strings.Contains(strings.ToLower(get(record)), needle)
	}
}

// InRange matches records whose extracted numeric field falls inside the
// closed interval described by min and max. Either bound may be nil, leaving
// that side unbounded.
func InRange[T any](get func(T) float64, min, max *float64) Predicate[T] {
	return func(record T) bool {
		value := get(record)
		if min != nil && value < *min {
			return false
		}
		if max != nil && value > *max {
			return false
		}
		return true
	}
}

// AtLeast matches records whose extracted integer field is at least want.
func AtLeast[T any](get func(T) int, want int) Predicate[T] {
	return func(record T) bool { return get(record) >= want }
}

// Ordered is satisfied by records that carry a creation timestamp and a key.
type Ordered interface {
	Key() string
	Created() time.Time
}

// SortByCreation orders records ascending by creation time, breaking ties by
// key, in place. Applied before pagination so page boundaries are
// deterministic regardless of the underlying iteration order.
func SortByCreation[T Ordered](records []T) {
	sort.Slice(records, func(i, j int) bool {
		ci, cj := records[i].Created(), records[j].Created()
		if ci.Equal(cj) {
			return records[i].Key() < records[j].Key()
		}
		return ci.Before(cj)
	})
}
