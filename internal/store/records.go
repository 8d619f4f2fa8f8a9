// Package store is the normalized in-memory table of expense records: the
// single source of truth for what the UI renders. Records only enter through
// the mutation coordinator or a collection fetch; the store never talks to
// the network.
package store

import (
	"iter"
	"sort"
	"strings"
	"sync"

	"expensetrack/internal/api"
)

// Filter selects records for List. Zero values match everything.
type Filter struct {
	Category string // exact category
	Search   string // case-insensitive substring over notes
	From     string // inclusive YYYY-MM-DD
	To       string // inclusive YYYY-MM-DD
}

// Match reports whether e passes the filter.
func (f Filter) Match(e api.Expense) bool {
	if f.Category != "" && e.Category != f.Category {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(e.Notes), strings.ToLower(f.Search)) {
		return false
	}
	if day := e.Day(); f.From != "" && day < f.From {
		return false
	} else if f.To != "" && day > f.To {
		return false
	}
	return true
}

// Store holds expense records keyed by server-assigned ID.
type Store struct {
	mu      sync.RWMutex
	records map[int]api.Expense
	subs    map[int]func()
	nextSub int
}

func New() *Store {
	return &Store{
		records: make(map[int]api.Expense),
		subs:    make(map[int]func()),
	}
}

// Upsert inserts or replaces the record with the same ID.
func (s *Store) Upsert(e api.Expense) {
	s.mu.Lock()
	s.records[e.ID] = e
	s.mu.Unlock()
	s.notify()
}

// Remove deletes by ID; absent IDs are a no-op (no notification either).
func (s *Store) Remove(id int) {
	s.mu.Lock()
	_, ok := s.records[id]
	if ok {
		delete(s.records, id)
	}
	s.mu.Unlock()
	if ok {
		s.notify()
	}
}

// Get returns the record for id.
func (s *Store) Get(id int) (api.Expense, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.records[id]
	return e, ok
}

// Len returns the number of records held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// ReplaceAll swaps the table for the given records (a fresh collection
// fetch landing).
func (s *Store) ReplaceAll(records []api.Expense) {
	s.mu.Lock()
	s.records = make(map[int]api.Expense, len(records))
	for _, e := range records {
		s.records[e.ID] = e
	}
	s.mu.Unlock()
	s.notify()
}

// List returns a restartable sequence of matching records, newest date
// first (ID breaks ties). Each range over the sequence sees a consistent
// snapshot taken when iteration starts.
func (s *Store) List(f Filter) iter.Seq[api.Expense] {
	return func(yield func(api.Expense) bool) {
		for _, e := range s.snapshot() {
			if !f.Match(e) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

func (s *Store) snapshot() []api.Expense {
	s.mu.RLock()
	out := make([]api.Expense, 0, len(s.records))
	for _, e := range s.records {
		out = append(out, e)
	}
	s.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Day() != out[j].Day() {
			return out[i].Day() > out[j].Day()
		}
		return out[i].ID > out[j].ID
	})
	return out
}

// Subscribe registers a mutation listener and returns its cancel func.
// Listeners run synchronously after each mutation, outside the lock.
func (s *Store) Subscribe(fn func()) (cancel func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) notify() {
	s.mu.RLock()
	listeners := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		listeners = append(listeners, fn)
	}
	s.mu.RUnlock()
	for _, fn := range listeners {
		fn()
	}
}
