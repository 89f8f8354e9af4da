// Package controllers provides the one screen loop every management view
// repeats: fetch a list, filter and paginate it client-side, dispatch CRUD,
// refresh. It is instantiated per entity type instead of rewritten per
// screen.
package controllers

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/CloudsoftGithub/items-admin/internal/listview"
	"github.com/CloudsoftGithub/items-admin/internal/pkg/logger"
)

// FetchFunc loads the full source collection from the backend
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// ListController owns one screen's source collection and view parameters.
// Fetch completions carry a generation stamp: a fetch superseded by a newer
// Refresh is discarded instead of overwriting fresher state.
type ListController[T any] struct {
	fetch FetchFunc[T]
	gen   atomic.Uint64

	mu       sync.Mutex
	rows     []T
	loaded   bool
	loadErr  error
	preds    []listview.Predicate[T]
	page     int
	pageSize int
}

// NewListController creates a controller for one entity type
func NewListController[T any](fetch FetchFunc[T]) *ListController[T] {
	return &ListController[T]{
		fetch:    fetch,
		page:     1,
		pageSize: listview.DefaultPageSize,
	}
}

// Refresh re-fetches the source collection. On failure the previous rows
// stay visible and the error is recorded for a retry-oriented display; one
// screen's load failure never propagates further.
func (c *ListController[T]) Refresh(ctx context.Context) error {
	gen := c.gen.Add(1)

	rows, err := c.fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen.Load() {
		// A newer Refresh has been issued since this one started; its
		// result wins and this one is stale.
		logger.Debug().Uint64("generation", gen).Msg("discarding superseded fetch result")
		return nil
	}

	if err != nil {
		c.loadErr = err
		return err
	}
	c.rows = rows
	c.loaded = true
	c.loadErr = nil
	return nil
}

// SetFilters replaces the active predicates and resets to the first page
func (c *ListController[T]) SetFilters(preds ...listview.Predicate[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.preds = preds
	c.page = 1
}

// SetPage requests a page; the view clamps it into the valid range
func (c *ListController[T]) SetPage(page int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.page = page
}

// SetPageSize changes the page size
func (c *ListController[T]) SetPageSize(size int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pageSize = size
}

// View derives the current visible page. If the clamp moved the page, the
// controller adopts the clamped value so the displayed page number matches.
func (c *ListController[T]) View() listview.Page[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	page := listview.Paginate(c.rows, c.preds, c.page, c.pageSize)
	c.page = page.SafePage
	return page
}

// Rows returns a snapshot of the unfiltered source collection, for duplicate
// detection and dropdown derivation.
func (c *ListController[T]) Rows() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.rows))
	copy(out, c.rows)
	return out
}

// Loaded reports whether an initial fetch has completed
func (c *ListController[T]) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

// Err returns the last load error, if the most recent fetch failed
func (c *ListController[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadErr
}
