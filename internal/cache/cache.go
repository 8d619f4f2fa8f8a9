// Package cache tracks remote query state per descriptor: loading, success
// with data, or error retaining the last good data. Staleness is managed per
// resource kind so one mutation can invalidate every related query at once.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Kind names a category of server data; the unit of invalidation.
type Kind string

const (
	KindExpenses   Kind = "expenses"   // the expense collection
	KindExpense    Kind = "expense"    // a single record
	KindSummary    Kind = "summary"    // monthly category summaries
	KindPrediction Kind = "prediction" // overspend forecasts
)

// Descriptor identifies one parameterized query. Two descriptors with equal
// kind and params share a cache entry.
type Descriptor struct {
	Kind   Kind
	Params string
}

func (d Descriptor) key() string { return string(d.Kind) + "\x00" + d.Params }

// State of a cache entry.
type State int

const (
	StateLoading State = iota
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Entry is a point-in-time view of one descriptor's cache state. Data holds
// the last successful result even when State is StateError.
type Entry struct {
	State     State
	Data      any
	Err       error
	Stale     bool
	FetchedAt time.Time
}

// Cache is the query cache. The zero value is not usable; call New.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*Entry
	byKind  map[Kind][]string
	group   singleflight.Group
	now     func() time.Time
}

func New() *Cache {
	return &Cache{
		entries: make(map[string]*Entry),
		byKind:  make(map[Kind][]string),
		now:     time.Now,
	}
}

// Fetch returns the cached result for d when present, fresh and successful;
// otherwise it runs fn. Concurrent fetches for the same descriptor while a
// request is in flight share one fn invocation. On error the entry keeps its
// previous data so the UI can keep showing it.
func Fetch[T any](ctx context.Context, c *Cache, d Descriptor, fn func(ctx context.Context) (T, error)) (T, error) {
	key := d.key()

	c.mu.Lock()
	e, ok := c.entries[key]
	if ok && e.State == StateSuccess && !e.Stale {
		data := e.Data.(T)
		c.mu.Unlock()
		return data, nil
	}
	if !ok {
		e = &Entry{State: StateLoading}
		c.entries[key] = e
		c.byKind[d.Kind] = append(c.byKind[d.Kind], key)
	} else {
		e.State = StateLoading
	}
	c.mu.Unlock()

	v, err, _ := c.group.Do(key, func() (any, error) {
		// A fetch that raced a just-completed one finds fresh data here and
		// must not issue a second request.
		c.mu.Lock()
		if entry := c.entries[key]; entry != nil && entry.State == StateSuccess && !entry.Stale {
			data := entry.Data
			c.mu.Unlock()
			return data, nil
		}
		c.mu.Unlock()

		data, err := fn(ctx)
		c.mu.Lock()
		defer c.mu.Unlock()
		entry := c.entries[key]
		if entry == nil {
			// Dropped while in flight; record the outcome anyway.
			entry = &Entry{}
			c.entries[key] = entry
			c.byKind[d.Kind] = append(c.byKind[d.Kind], key)
		}
		if err != nil {
			entry.State = StateError
			entry.Err = err
			// entry.Data intentionally retained
			return nil, err
		}
		entry.State = StateSuccess
		entry.Data = data
		entry.Err = nil
		entry.Stale = false
		entry.FetchedAt = c.now()
		return data, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// Invalidate marks every descriptor of the given kinds stale. The next Fetch
// for any of them re-issues its network call.
func (c *Cache) Invalidate(kinds ...Kind) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range kinds {
		for _, key := range c.byKind[k] {
			if e := c.entries[key]; e != nil {
				e.Stale = true
			}
		}
	}
}

// Peek returns a copy of the entry for d without triggering a fetch.
func (c *Cache) Peek(d Descriptor) (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[d.key()]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Drop removes the entry for d (its parameter set changed and the old result
// has no further use).
func (c *Cache) Drop(d Descriptor) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := d.key()
	delete(c.entries, key)
	keys := c.byKind[d.Kind]
	for i, k := range keys {
		if k == key {
			c.byKind[d.Kind] = append(keys[:i], keys[i+1:]...)
			break
		}
	}
}
