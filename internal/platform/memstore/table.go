// Package memstore provides a process-local record table used when the
// application runs without PostgreSQL and by tests.
package memstore

import (
	"errors"
	"sort"
	"sync"
)

var ErrNotFound = errors.New("memstore: not found")

// Table stores records of one kind keyed by an auto-incremented identifier.
type Table[T any] struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]T
}

// NewTable returns an empty table whose first identifier is 1.
func NewTable[T any]() *Table[T] {
	return &Table[T]{nextID: 1, rows: make(map[int64]T)}
}

// Insert stores rec under a fresh identifier. build receives that identifier
// so callers can stamp it on the record before it is stored.
func (t *Table[T]) Insert(build func(id int64) T) int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.nextID
	t.nextID++
	t.rows[id] = build(id)
	return id
}

func (t *Table[T]) Get(id int64) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	rec, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return rec, nil
}

// Has reports whether id is present.
func (t *Table[T]) Has(id int64) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.rows[id]
	return ok
}

// Update applies fn to the stored record in place.
func (t *Table[T]) Update(id int64, fn func(T) T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	rec, ok := t.rows[id]
	if !ok {
		return ErrNotFound
	}
	t.rows[id] = fn(rec)
	return nil
}

func (t *Table[T]) Delete(id int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return ErrNotFound
	}
	delete(t.rows, id)
	return nil
}

// List returns every record in insertion order.
func (t *Table[T]) List() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	ids := make([]int64, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.rows[id])
	}
	return out
}

// Links is a set of (owner, target) pairs, used for many-to-many relations.
type Links struct {
	mu    sync.RWMutex
	pairs map[int64][]int64
}

func NewLinks() *Links {
	return &Links{pairs: make(map[int64][]int64)}
}

// Add links owner to target; adding an existing pair is a no-op.
func (l *Links) Add(owner, target int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, existing := range l.pairs[owner] {
		if existing == target {
			return
		}
	}
	l.pairs[owner] = append(l.pairs[owner], target)
}

// Targets returns the targets linked to owner in the order they were added.
func (l *Links) Targets(owner int64) []int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]int64, len(l.pairs[owner]))
	copy(out, l.pairs[owner])
	return out
}

// DropOwner removes every link held by owner.
func (l *Links) DropOwner(owner int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.pairs, owner)
}
