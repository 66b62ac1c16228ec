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

// Package pool implements a free-list of reusable records. Acquiring a
// record from the pool in preference to allocating one keeps the per-event
// capture path free of heap allocation, which in turn keeps the garbage
// collector out of the frame loop.
//
// Records returned by Acquire() carry whatever field values they had when
// they were released. The caller is expected to assign every field.
//
// Each device type owns its own pool instance. Records from different
// devices never share a pool.
package pool

// Stats record how a pool has been used. Useful for diagnosing pool
// sizing: a large Allocated count relative to Reused suggests the pool's
// maximum size is too small for the event rate.
type Stats struct {
	// number of records created because the free-list was empty
	Allocated int

	// number of Acquire() calls served from the free-list
	Reused int

	// high-water mark of records in use at the same time
	Peak int

	// number of released records abandoned because the free-list was full
	Abandoned int
}

// Pool is a free-list of records of type T.
type Pool[T any] struct {
	free    []*T
	maxSize int
	inUse   int
	stats   Stats
}

// New returns a Pool holding at most maxSize free records. The pool is
// pre-warmed to half its maximum size so that the first burst of events
// does not cause an allocation burst. A maxSize less than one is treated
// as one.
func New[T any](maxSize int) *Pool[T] {
	if maxSize < 1 {
		maxSize = 1
	}
	p := &Pool[T]{
		free:    make([]*T, 0, maxSize),
		maxSize: maxSize,
	}
	p.Prewarm(maxSize / 2)
	return p
}

// Acquire returns a record, reusing a free record if one is available.
// The record's fields are not zeroed.
func (p *Pool[T]) Acquire() *T {
	p.inUse++
	if p.inUse > p.stats.Peak {
		p.stats.Peak = p.inUse
	}

	if len(p.free) > 0 {
		r := p.free[len(p.free)-1]
		p.free = p.free[:len(p.free)-1]
		p.stats.Reused++
		return r
	}

	p.stats.Allocated++
	return new(T)
}

// Release returns a record to the free-list. If the free-list is already
// at the pool's maximum size the record is abandoned for the garbage
// collector to reclaim.
func (p *Pool[T]) Release(r *T) {
	if r == nil {
		return
	}

	if p.inUse > 0 {
		p.inUse--
	}

	if len(p.free) >= p.maxSize {
		p.stats.Abandoned++
		return
	}
	p.free = append(p.free, r)
}

// ReleaseMany returns a batch of records to the free-list.
func (p *Pool[T]) ReleaseMany(rs []*T) {
	for _, r := range rs {
		p.Release(r)
	}
}

// Prewarm creates n free records ahead of need. The free-list is never
// grown beyond the pool's maximum size.
func (p *Pool[T]) Prewarm(n int) {
	for i := 0; i < n && len(p.free) < p.maxSize; i++ {
		p.free = append(p.free, new(T))
		p.stats.Allocated++
	}
}

// Resize changes the maximum size of the free-list. Excess free records
// are abandoned immediately.
func (p *Pool[T]) Resize(maxSize int) {
	if maxSize < 1 {
		maxSize = 1
	}
	p.maxSize = maxSize
	if len(p.free) > maxSize {
		p.stats.Abandoned += len(p.free) - maxSize
		p.free = p.free[:maxSize]
	}
}

// Stats returns a copy of the pool's usage counters.
func (p *Pool[T]) Stats() Stats {
	return p.stats
}

// FreeCount returns the number of records currently on the free-list.
func (p *Pool[T]) FreeCount() int {
	return len(p.free)
}
