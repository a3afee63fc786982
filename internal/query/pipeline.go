// Package query implements the in-memory half of the two-stage query
// pipeline: repositories push at most one equality predicate down to the
// store (composite indexes are deliberately avoided), then apply the
// residual predicates, sort and offset here as pure functions.
package query

import (
	"sort"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type Predicate[T any] func(T) bool

// Filter keeps the items satisfying every predicate, preserving order.
func Filter[T any](items []T, preds ...Predicate[T]) []T {
	if len(preds) == 0 {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		keep := true
		for _, pred := range preds {
			if !pred(item) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, item)
		}
	}
	return out
}

// SortBy sorts in place, stable, flipping the comparison when desc is set.
func SortBy[T any](items []T, less func(a, b T) bool, desc bool) {
	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
}

// Offset drops the first n items. An offset past the end yields an empty
// slice, never an error.
func Offset[T any](items []T, n int) []T {
	if n <= 0 {
		return items
	}
	if n >= len(items) {
		return []T{}
	}
	return items[n:]
}

// Limit truncates to at most n items; n <= 0 means unlimited.
func Limit[T any](items []T, n int) []T {
	if n <= 0 || n >= len(items) {
		return items
	}
	return items[:n]
}

var (
	collatorMu sync.Mutex
	collator   = collate.New(language.English)
)

// CompareStrings is the locale-aware comparison used for string sort keys.
// The collator buffers internally, so access is serialized.
func CompareStrings(a, b string) int {
	collatorMu.Lock()
	defer collatorMu.Unlock()
	return collator.CompareString(a, b)
}
