package controllers

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CloudsoftGithub/items-admin/internal/listview"
)

type item struct {
	ID   int
	Name string
}

func fetchOf(rows []item, err error) FetchFunc[item] {
	return func(ctx context.Context) ([]item, error) {
		return rows, err
	}
}

func TestRefreshLoadsRows(t *testing.T) {
	c := NewListController(fetchOf([]item{{ID: 1}, {ID: 2}}, nil))

	require.NoError(t, c.Refresh(context.Background()))
	assert.True(t, c.Loaded())
	assert.NoError(t, c.Err())
	assert.Len(t, c.Rows(), 2)
}

func TestRefreshFailureKeepsPriorRows(t *testing.T) {
	rows := []item{{ID: 1}}
	var loadErr error
	var mu sync.Mutex

	c := NewListController(func(ctx context.Context) ([]item, error) {
		mu.Lock()
		defer mu.Unlock()
		return rows, loadErr
	})

	require.NoError(t, c.Refresh(context.Background()))

	mu.Lock()
	loadErr = errors.New("backend down")
	mu.Unlock()

	err := c.Refresh(context.Background())
	require.Error(t, err)

	// The stale-but-usable rows stay visible for the retry display.
	assert.Len(t, c.Rows(), 1)
	assert.True(t, c.Loaded())
	assert.Error(t, c.Err())

	// A later success clears the error.
	mu.Lock()
	loadErr = nil
	mu.Unlock()
	require.NoError(t, c.Refresh(context.Background()))
	assert.NoError(t, c.Err())
}

func TestRefreshDiscardsSupersededFetch(t *testing.T) {
	slowStarted := make(chan struct{})
	slowRelease := make(chan struct{})
	calls := 0
	var mu sync.Mutex

	c := NewListController(func(ctx context.Context) ([]item, error) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n == 1 {
			close(slowStarted)
			<-slowRelease
			return []item{{ID: 1, Name: "stale"}}, nil
		}
		return []item{{ID: 2, Name: "fresh"}}, nil
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, c.Refresh(context.Background()))
	}()

	<-slowStarted
	// A second refresh starts and finishes while the first is stalled.
	require.NoError(t, c.Refresh(context.Background()))

	close(slowRelease)
	wg.Wait()

	rows := c.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "fresh", rows[0].Name, "superseded fetch must not overwrite newer result")
}

func TestSetFiltersResetsPage(t *testing.T) {
	rows := make([]item, 25)
	for i := range rows {
		rows[i] = item{ID: i + 1}
	}
	c := NewListController(fetchOf(rows, nil))
	require.NoError(t, c.Refresh(context.Background()))

	c.SetPage(3)
	page := c.View()
	assert.Equal(t, 3, page.SafePage)

	c.SetFilters(func(r item) bool { return r.ID <= 12 })
	page = c.View()
	assert.Equal(t, 1, page.SafePage)
	assert.Equal(t, 12, page.Total)
}

func TestViewAdoptsClampedPage(t *testing.T) {
	rows := make([]item, 5)
	c := NewListController(fetchOf(rows, nil))
	require.NoError(t, c.Refresh(context.Background()))

	c.SetPage(40)
	page := c.View()
	assert.Equal(t, 1, page.SafePage)

	// The controller now reports the clamped page on the next view too.
	page = c.View()
	assert.Equal(t, 1, page.SafePage)
}

func TestViewUsesPageSize(t *testing.T) {
	rows := make([]item, 30)
	c := NewListController(fetchOf(rows, nil))
	require.NoError(t, c.Refresh(context.Background()))

	c.SetPageSize(listview.MaxPageSize)
	page := c.View()
	assert.Len(t, page.Visible, 30)
	assert.Equal(t, 1, page.TotalPages)
}

func TestRowsReturnsCopy(t *testing.T) {
	c := NewListController(fetchOf([]item{{ID: 1, Name: "keep"}}, nil))
	require.NoError(t, c.Refresh(context.Background()))

	snapshot := c.Rows()
	snapshot[0].Name = "mutated"

	assert.Equal(t, "keep", c.Rows()[0].Name)
}
