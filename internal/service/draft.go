package service

import "sync"

// DraftField identifies one editable form field.
type DraftField int

const (
	FieldAmount DraftField = iota
	FieldCategory
	FieldDate
	FieldNotes
	FieldReceiptURL
)

// Draft is the transient unsaved edit state for one expense form. Values are
// the raw text as typed; a field the user has edited is marked touched and
// is never overwritten by an extraction result.
type Draft struct {
	mu      sync.Mutex
	values  map[DraftField]string
	touched map[DraftField]bool
}

func NewDraft() *Draft {
	return &Draft{
		values:  make(map[DraftField]string),
		touched: make(map[DraftField]bool),
	}
}

// Seed installs initial values (editing an existing record) without marking
// anything touched.
func (d *Draft) Seed(values map[DraftField]string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for f, v := range values {
		d.values[f] = v
	}
}

// Set records a user edit: value plus the touched flag.
func (d *Draft) Set(f DraftField, v string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.values[f] = v
	d.touched[f] = true
}

// Get returns the current value for f.
func (d *Draft) Get(f DraftField) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.values[f]
}

// Touched reports whether the user has edited f.
func (d *Draft) Touched(f DraftField) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.touched[f]
}

// propose writes v into f only when the user has not touched it. Returns
// whether the value was applied.
func (d *Draft) propose(f DraftField, v string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.touched[f] {
		return false
	}
	d.values[f] = v
	return true
}
