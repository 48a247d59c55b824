package store

import "sync"

// Entity is anything held in a Collection, keyed by a stable server-assigned id.
type Entity interface {
	EntityID() int64
}

// Collection is an ordered, in-memory holder for one entity kind.
//
// Every mutation installs a freshly built slice rather than editing the old
// one in place, and notifies subscribers exactly once, so readers holding a
// previously returned slice never observe a half-applied change.
// All operations are total: unmatched ids are silent no-ops.
type Collection[T Entity] struct {
	mu      sync.Mutex
	items   []T
	subs    map[int]func()
	nextSub int
}

func NewCollection[T Entity]() *Collection[T] {
	return &Collection[T]{subs: make(map[int]func())}
}

// Items returns a copy of the collection in insertion order.
func (c *Collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of elements held.
func (c *Collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Get returns the first element with the given id.
func (c *Collection[T]) Get(id int64) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range c.items {
		if item.EntityID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// SetAll replaces the entire collection, typically after a bulk fetch.
func (c *Collection[T]) SetAll(items []T) {
	next := make([]T, len(items))
	copy(next, items)

	c.mu.Lock()
	c.items = next
	c.mu.Unlock()
	c.notify()
}

// Add appends item to the end of the collection. Ids are not deduplicated;
// adding an id twice yields two elements (the caller owns uniqueness).
func (c *Collection[T]) Add(item T) {
	c.mu.Lock()
	next := make([]T, 0, len(c.items)+1)
	next = append(next, c.items...)
	next = append(next, item)
	c.items = next
	c.mu.Unlock()
	c.notify()
}

// Update applies the mutator to every element whose id matches. Elements
// with other ids are untouched; an unmatched id changes nothing.
func (c *Collection[T]) Update(id int64, apply func(*T)) {
	c.mu.Lock()
	next := make([]T, len(c.items))
	copy(next, c.items)
	for i := range next {
		if next[i].EntityID() == id {
			apply(&next[i])
		}
	}
	c.items = next
	c.mu.Unlock()
	c.notify()
}

// Remove retains all elements whose id does not match.
func (c *Collection[T]) Remove(id int64) {
	c.mu.Lock()
	next := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if item.EntityID() != id {
			next = append(next, item)
		}
	}
	c.items = next
	c.mu.Unlock()
	c.notify()
}

// Clear empties the collection.
func (c *Collection[T]) Clear() {
	c.mu.Lock()
	c.items = nil
	c.mu.Unlock()
	c.notify()
}

// Subscribe registers fn to run once after every mutation. The returned
// function unregisters it.
func (c *Collection[T]) Subscribe(fn func()) func() {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

// notify runs subscribers outside the lock so they may read the collection.
func (c *Collection[T]) notify() {
	c.mu.Lock()
	fns := make([]func(), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
