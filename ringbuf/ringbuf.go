// This file is part of Strobe.
//
// Strobe is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Strobe is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Strobe.  If not, see <https://www.gnu.org/licenses/>.

// Package ringbuf implements a fixed-capacity FIFO queue with
// overwrite-oldest semantics. It is the backpressure boundary between the
// event producers (platform callbacks) and the once-per-frame consumer:
// when the queue is full the oldest item is evicted to admit the new one,
// bounding memory without ever blocking the producer.
//
// None of the operations allocate. Iteration with ForEach() and draining
// with a Shift() loop are the intended hot paths; ToSlice() and Drain()
// allocate and exist for diagnostic and test use.
package ringbuf

import (
	"github.com/kestrelgames/strobe/curated"
)

// InvalidCapacity is returned by New() for capacities less than one.
const InvalidCapacity = "ringbuf: invalid capacity (%d)"

// Ring is a fixed-capacity FIFO queue of items of type T.
type Ring[T any] struct {
	items  []T
	oldest int
	count  int
}

// New returns a Ring with the specified, fixed capacity.
func New[T any](capacity int) (*Ring[T], error) {
	if capacity <= 0 {
		return nil, curated.Errorf(InvalidCapacity, capacity)
	}
	return &Ring[T]{
		items: make([]T, capacity),
	}, nil
}

// Len returns the number of items currently in the queue.
func (r *Ring[T]) Len() int {
	return r.count
}

// Cap returns the fixed capacity of the queue.
func (r *Ring[T]) Cap() int {
	return len(r.items)
}

// Push appends an item to the queue. If the queue is full the oldest item
// is evicted and returned, with the boolean indicating the eviction. The
// caller is responsible for the evicted item (releasing it back to a pool
// for example).
func (r *Ring[T]) Push(item T) (T, bool) {
	var evicted T

	if r.count == len(r.items) {
		evicted = r.items[r.oldest]
		r.items[r.oldest] = item
		r.oldest = (r.oldest + 1) % len(r.items)
		return evicted, true
	}

	r.items[(r.oldest+r.count)%len(r.items)] = item
	r.count++
	return evicted, false
}

// Shift removes and returns the oldest item in the queue. The boolean is
// false if the queue is empty.
func (r *Ring[T]) Shift() (T, bool) {
	var item T

	if r.count == 0 {
		return item, false
	}

	item = r.items[r.oldest]

	// release the slot's reference so pooled items are not pinned by the
	// queue after they have been consumed
	var zero T
	r.items[r.oldest] = zero

	r.oldest = (r.oldest + 1) % len(r.items)
	r.count--
	return item, true
}

// Get returns the item at the offset from the oldest item, without
// removing it. The boolean is false if the offset is out of range.
func (r *Ring[T]) Get(offset int) (T, bool) {
	var item T
	if offset < 0 || offset >= r.count {
		return item, false
	}
	return r.items[(r.oldest+offset)%len(r.items)], true
}

// ForEach calls f for every item in the queue, oldest first. The queue is
// left untouched.
func (r *Ring[T]) ForEach(f func(item T)) {
	for i := 0; i < r.count; i++ {
		f(r.items[(r.oldest+i)%len(r.items)])
	}
}

// ToSlice returns the queued items, oldest first, leaving the queue
// untouched.
func (r *Ring[T]) ToSlice() []T {
	s := make([]T, 0, r.count)
	r.ForEach(func(item T) {
		s = append(s, item)
	})
	return s
}

// Drain returns the queued items, oldest first, and clears the queue.
func (r *Ring[T]) Drain() []T {
	s := r.ToSlice()
	r.Clear()
	return s
}

// Clear empties the queue. Capacity is unchanged.
func (r *Ring[T]) Clear() {
	var zero T
	for i := range r.items {
		r.items[i] = zero
	}
	r.oldest = 0
	r.count = 0
}
