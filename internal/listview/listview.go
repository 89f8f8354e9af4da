// Package listview derives the visible page of rows from a source
// collection, filter predicates and pagination parameters. It is pure: the
// source is never mutated, only narrowed into a fresh view.
package listview

import (
	"sort"
	"strings"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Predicate narrows the working set. A nil predicate is skipped.
type Predicate[T any] func(T) bool

// Page is the derived view of one page of filtered rows
type Page[T any] struct {
	Visible    []T
	SafePage   int
	TotalPages int
	Total      int
	PageSize   int
}

// Paginate applies predicates in sequence, computes total pages and clamps
// the requested page into the valid range. An empty source or a filter that
// matches nothing yields one page with zero rows, never an error.
func Paginate[T any](rows []T, preds []Predicate[T], page, pageSize int) Page[T] {
	if pageSize <= 0 || pageSize > MaxPageSize {
		pageSize = DefaultPageSize
	}

	filtered := Filter(rows, preds)
	total := len(filtered)

	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	safePage := page
	if safePage < 1 {
		safePage = 1
	}
	if safePage > totalPages {
		safePage = totalPages
	}

	start := (safePage - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page[T]{
		Visible:    filtered[start:end],
		SafePage:   safePage,
		TotalPages: totalPages,
		Total:      total,
		PageSize:   pageSize,
	}
}

// Filter narrows rows through each predicate without touching the input
// slice. Exports operate on this full filtered set rather than one page.
func Filter[T any](rows []T, preds []Predicate[T]) []T {
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		keep := true
		for _, pred := range preds {
			if pred != nil && !pred(row) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, row)
		}
	}
	return out
}

// TextSearch matches rows where any extracted field contains q,
// case-insensitively. An empty query matches everything.
func TextSearch[T any](q string, fields func(T) []string) Predicate[T] {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return nil
	}
	return func(row T) bool {
		for _, f := range fields(row) {
			if strings.Contains(strings.ToLower(f), q) {
				return true
			}
		}
		return false
	}
}

// Exact matches rows whose extracted field equals want. An empty want
// matches everything (the "all" dropdown option).
func Exact[T any](want string, field func(T) string) Predicate[T] {
	if want == "" {
		return nil
	}
	return func(row T) bool {
		return field(row) == want
	}
}

// DistinctStrings collects sorted unique non-empty values for a filter
// dropdown. Values listed in preferred come first, in that order, when
// present in the data.
func DistinctStrings[T any](rows []T, field func(T) string, preferred ...string) []string {
	seen := make(map[string]bool)
	for _, row := range rows {
		if v := field(row); v != "" {
			seen[v] = true
		}
	}

	out := make([]string, 0, len(seen))
	for _, p := range preferred {
		if seen[p] {
			out = append(out, p)
			delete(seen, p)
		}
	}

	rest := make([]string, 0, len(seen))
	for v := range seen {
		rest = append(rest, v)
	}
	sort.Strings(rest)
	return append(out, rest...)
}
