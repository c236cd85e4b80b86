// Package query is the client-side query engine: one pure filter/sort/paginate
// pipeline reused for every entity collection. It performs no I/O and never
// mutates its input.
package query

import "sort"

const defaultLimit = 10

// Spec describes one derivation of a visible page from a full collection.
// A nil Match keeps every item; a nil Priority preserves insertion order.
type Spec[T any] struct {
	Match    func(T) bool
	Priority func(T) int
	Page     int
	Limit    int
}

// Result is the deterministic page plus the pre-pagination totals.
type Result[T any] struct {
	Data       []T
	Total      int
	TotalPages int
}

// Run filters, sorts and paginates items. Sorting is stable, so equal
// priorities keep the filtered order. A page beyond the last one yields an
// empty slice, not an error.
func Run[T any](items []T, spec Spec[T]) Result[T] {
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if spec.Match == nil || spec.Match(item) {
			filtered = append(filtered, item)
		}
	}

	if spec.Priority != nil {
		sort.SliceStable(filtered, func(i, j int) bool {
			return spec.Priority(filtered[i]) < spec.Priority(filtered[j])
		})
	}

	page := spec.Page
	if page < 1 {
		page = 1
	}
	limit := spec.Limit
	if limit < 1 {
		limit = defaultLimit
	}

	total := len(filtered)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return Result[T]{
		Data:       filtered[start:end],
		Total:      total,
		TotalPages: totalPages,
	}
}
