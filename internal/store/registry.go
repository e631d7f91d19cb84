// Package store keeps append-only geometry buffers addressed by integer
// handles.
package store

import "sync"

// Registry maps monotonically increasing handles to owned slices of T.
// It is safe for concurrent use.
type Registry[T any] struct {
	mu    sync.RWMutex
	next  int
	items map[int][]T
}

// NewRegistry creates an empty registry. The first handle it issues is 0.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{items: make(map[int][]T)}
}

// Load stores a copy of items and returns its handle.
func (r *Registry[T]) Load(items []T) int {
	owned := make([]T, len(items))
	copy(owned, items)

	r.mu.Lock()
	id := r.next
	r.next++
	r.items[id] = owned
	r.mu.Unlock()

	return id
}

// Get returns the slice stored under id. The slice is shared with the
// registry and must not be modified.
func (r *Registry[T]) Get(id int) ([]T, bool) {
	r.mu.RLock()
	items, ok := r.items[id]
	r.mu.RUnlock()
	return items, ok
}

// Len returns the number of stored buffers.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
