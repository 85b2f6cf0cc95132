package store

import (
	"sort"
	"sync"
)

// Collection is one in-memory keyed set of records plus its identifier
// allocator. IDs start at 1, increase monotonically and are never reused
// after a delete; the counter never decrements.
//
// Mutations are serialized with the collection's mutex so interleaved
// creates cannot allocate the same ID. Reads take the shared lock and
// return snapshots, never live references into the map.
type Collection[T any] struct {
	mu     sync.RWMutex
	items  map[int]T
	nextID int
}

// NewCollection creates an empty collection whose first record gets ID 1
func NewCollection[T any]() *Collection[T] {
	return &Collection[T]{
		items:  make(map[int]T),
		nextID: 1,
	}
}

// List returns a snapshot of all records in insertion order. Because IDs
// are allocated monotonically, ascending ID order is insertion order.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := make([]int, 0, len(c.items))
	for id := range c.items {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.items[id])
	}
	return out
}

// Get returns the record with the given ID. A false second return means
// "not found", which is not an error at this layer.
func (c *Collection[T]) Get(id int) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[id]
	return item, ok
}

// Insert allocates the next ID, calls build with it to produce the record,
// stores the result and returns it. build runs under the collection lock
// and must not call back into the collection.
//
// No field uniqueness is checked here; uniqueness of attributes such as
// studentId or username is a caller-level concern.
func (c *Collection[T]) Insert(build func(id int) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++

	item := build(id)
	c.items[id] = item
	return item
}

// Update applies merge to the existing record and stores the result.
// Returns false if no record with the given ID exists; update never
// creates a record.
func (c *Collection[T]) Update(id int, merge func(T) T) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	existing, ok := c.items[id]
	if !ok {
		var zero T
		return zero, false
	}

	updated := merge(existing)
	c.items[id] = updated
	return updated, true
}

// Delete removes the record with the given ID. Returns true only when a
// record existed; deleting an absent ID is safe and returns false.
func (c *Collection[T]) Delete(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	return true
}

// Len returns the number of stored records
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
