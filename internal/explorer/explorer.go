// Package explorer implements the infinite-scroll controller used by the
// explore screen: a monotonically growing, de-duplicated page accumulator
// that coordinates initial loads, filter changes and scroll-triggered loads
// without duplicate or stale-page fetches.
package explorer

import (
	"context"
	"sync"

	"westudy/internal/domain/models"
	"westudy/internal/flow"
)

// DefaultPageSize matches the explore screen's card grid.
const DefaultPageSize = 8

// Fetcher loads one page of listings. The listings API client implements it.
type Fetcher interface {
	FetchListings(ctx context.Context, page, limit int, filters models.ListingFilters) ([]models.Listing, error)
}

// Explorer accumulates listing pages for one filter configuration at a time.
// A filter change starts a new epoch: the accumulated list resets and any
// in-flight load from the previous epoch is cancelled and its late result
// discarded.
type Explorer struct {
	mu       sync.Mutex
	fetcher  Fetcher
	pageSize int

	epoch       uint64
	filters     models.ListingFilters
	items       []models.Listing
	seen        map[int64]struct{}
	page        int
	hasMore     bool
	initial     flow.Action
	incremental flow.Action
	cancel      context.CancelFunc
}

func New(f Fetcher, pageSize int) *Explorer {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Explorer{
		fetcher:  f,
		pageSize: pageSize,
		seen:     map[int64]struct{}{},
		page:     1,
		hasMore:  true,
	}
}

// ApplyFilters starts a new filter epoch and fetches page 1. A load still in
// flight for the previous epoch is superseded: its context is cancelled and a
// late result is never appended to the new epoch's list.
func (e *Explorer) ApplyFilters(ctx context.Context, filters models.ListingFilters) error {
	e.mu.Lock()
	e.epoch++
	myEpoch := e.epoch
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	e.filters = filters
	e.items = nil
	e.seen = map[int64]struct{}{}
	e.page = 1
	e.hasMore = true
	e.initial.Reset()
	e.incremental.Reset()
	_ = e.initial.Start()
	loadCtx, cancel := context.WithCancel(ctx)
	e.cancel = cancel
	pageSize := e.pageSize
	e.mu.Unlock()

	result, err := e.fetcher.FetchListings(loadCtx, 1, pageSize, filters)
	cancel()

	e.mu.Lock()
	defer e.mu.Unlock()
	if myEpoch != e.epoch {
		// superseded by a newer filter change
		return nil
	}
	e.cancel = nil
	if err != nil {
		e.hasMore = false
		_ = e.initial.Fail(err)
		return err
	}
	_ = e.initial.Succeed()
	e.appendLocked(result)
	e.page = 2
	e.hasMore = len(result) == pageSize
	return nil
}

// LoadMore fetches the next page. It is a no-op while any load is in flight
// or once the end of the list is known, so rapid repeated triggers cause at
// most one fetch.
func (e *Explorer) LoadMore(ctx context.Context) error {
	e.mu.Lock()
	if e.initial.InFlight() || e.incremental.InFlight() || !e.hasMore {
		e.mu.Unlock()
		return nil
	}
	myEpoch := e.epoch
	page := e.page
	filters := e.filters
	pageSize := e.pageSize
	_ = e.incremental.Start()
	loadCtx, cancel := context.WithCancel(ctx)
	e.cancel = cancel
	e.mu.Unlock()

	result, err := e.fetcher.FetchListings(loadCtx, page, pageSize, filters)
	cancel()

	e.mu.Lock()
	defer e.mu.Unlock()
	if myEpoch != e.epoch {
		// filters changed while we were loading; drop the stale page
		return nil
	}
	e.cancel = nil
	if err != nil {
		e.hasMore = false
		_ = e.incremental.Fail(err)
		return err
	}
	_ = e.incremental.Succeed()
	e.appendLocked(result)
	e.page++
	e.hasMore = len(result) == pageSize
	return nil
}

// OnLastItemVisible is the intersection trigger: it fires a LoadMore at most
// once per visibility transition and never while a load is running.
func (e *Explorer) OnLastItemVisible(ctx context.Context) error {
	return e.LoadMore(ctx)
}

// Items returns a copy of the accumulated list for the current epoch.
func (e *Explorer) Items() []models.Listing {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]models.Listing, len(e.items))
	copy(out, e.items)
	return out
}

// HasMore reports whether another page may exist for the current epoch.
func (e *Explorer) HasMore() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hasMore
}

// Loading reports the two independent loading flags: initial (or
// filter-change) load and incremental load.
func (e *Explorer) Loading() (initial, incremental bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.initial.InFlight(), e.incremental.InFlight()
}

// NextPage exposes the page cursor, mainly for tests and debugging.
func (e *Explorer) NextPage() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.page
}

func (e *Explorer) appendLocked(batch []models.Listing) {
	for _, l := range batch {
		if _, dup := e.seen[l.ID]; dup {
			continue
		}
		e.seen[l.ID] = struct{}{}
		e.items = append(e.items, l)
	}
}
