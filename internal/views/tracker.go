package views

import (
	"fmt"
	"sync"
)

// Fetcher supplies view counts for listings.
type Fetcher interface {
	GetListingViews(id string) (int, error)
}

// entry holds the one fetch for a listing. Concurrent callers share it and
// block on the Once until the fetch resolves.
type entry struct {
	once  sync.Once
	count int
	err   error
}

// Tracker fetches view counts at most once per listing per session. Callers
// arriving while a fetch is in flight wait for it and get the same result. A
// failed fetch forgets the listing so a later call may retry; one listing's
// failure never blocks another's fetch.
type Tracker struct {
	fetcher Fetcher

	mu      sync.Mutex
	entries map[string]*entry
}

// NewTracker creates a tracker over the given fetcher.
func NewTracker(fetcher Fetcher) *Tracker {
	return &Tracker{
		fetcher: fetcher,
		entries: make(map[string]*entry),
	}
}

// Views returns the view count for a listing, fetching it on first request
// and serving the shared result afterwards.
func (t *Tracker) Views(id string) (int, error) {
	t.mu.Lock()
	e, ok := t.entries[id]
	if !ok {
		e = &entry{}
		t.entries[id] = e
	}
	t.mu.Unlock()

	// The fetch runs outside the tracker lock so one slow listing never
	// blocks the rest.
	e.once.Do(func() {
		e.count, e.err = t.fetcher.GetListingViews(id)
	})

	if e.err != nil {
		t.mu.Lock()
		if t.entries[id] == e {
			delete(t.entries, id)
		}
		t.mu.Unlock()
		return 0, fmt.Errorf("views: failed to fetch views for %s: %w", id, e.err)
	}
	return e.count, nil
}

// Requested reports whether a listing has a recorded (or in-flight) fetch.
func (t *Tracker) Requested(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.entries[id]
	return ok
}
