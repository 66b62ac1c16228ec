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

package ringbuf_test

import (
	"testing"

	"github.com/kestrelgames/strobe/curated"
	"github.com/kestrelgames/strobe/ringbuf"
	"github.com/kestrelgames/strobe/test"
)

func TestInvalidCapacity(t *testing.T) {
	_, err := ringbuf.New[int](0)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, ringbuf.InvalidCapacity))

	_, err = ringbuf.New[int](-1)
	test.ExpectFailure(t, err)
}

func TestPushShift(t *testing.T) {
	r, err := ringbuf.New[int](3)
	test.DemandSuccess(t, err)

	test.Equate(t, r.Len(), 0)
	test.Equate(t, r.Cap(), 3)

	_, evicted := r.Push(1)
	test.ExpectSuccess(t, !evicted)
	_, evicted = r.Push(2)
	test.ExpectSuccess(t, !evicted)
	test.Equate(t, r.Len(), 2)

	v, ok := r.Shift()
	test.ExpectSuccess(t, ok)
	test.Equate(t, v, 1)
	v, ok = r.Shift()
	test.ExpectSuccess(t, ok)
	test.Equate(t, v, 2)

	_, ok = r.Shift()
	test.ExpectSuccess(t, !ok)
}

func TestOverwriteOldest(t *testing.T) {
	r, err := ringbuf.New[int](3)
	test.DemandSuccess(t, err)

	r.Push(1)
	r.Push(2)
	r.Push(3)

	// queue is full. the next push evicts the oldest item
	old, evicted := r.Push(4)
	test.ExpectSuccess(t, evicted)
	test.Equate(t, old, 1)
	test.Equate(t, r.Len(), 3)

	// remaining items are in arrival order
	s := r.Drain()
	test.Equate(t, len(s), 3)
	test.Equate(t, s[0], 2)
	test.Equate(t, s[1], 3)
	test.Equate(t, s[2], 4)
	test.Equate(t, r.Len(), 0)
}

func TestGetAndForEach(t *testing.T) {
	r, err := ringbuf.New[string](4)
	test.DemandSuccess(t, err)

	r.Push("a")
	r.Push("b")
	r.Push("c")

	v, ok := r.Get(0)
	test.ExpectSuccess(t, ok)
	test.Equate(t, v, "a")
	v, ok = r.Get(2)
	test.ExpectSuccess(t, ok)
	test.Equate(t, v, "c")
	_, ok = r.Get(3)
	test.ExpectSuccess(t, !ok)
	_, ok = r.Get(-1)
	test.ExpectSuccess(t, !ok)

	// ForEach leaves the queue untouched
	ct := 0
	r.ForEach(func(_ string) {
		ct++
	})
	test.Equate(t, ct, 3)
	test.Equate(t, r.Len(), 3)
}

func TestWrapAround(t *testing.T) {
	r, err := ringbuf.New[int](3)
	test.DemandSuccess(t, err)

	// exercise the index arithmetic over several full cycles
	for i := 0; i < 10; i++ {
		r.Push(i)
		v, ok := r.Shift()
		test.DemandEquality(t, ok, true)
		test.Equate(t, v, i)
	}
	test.Equate(t, r.Len(), 0)
}

func TestShiftReleasesReference(t *testing.T) {
	r, err := ringbuf.New[*int](2)
	test.DemandSuccess(t, err)

	n := 10
	r.Push(&n)
	v, ok := r.Shift()
	test.ExpectSuccess(t, ok)
	test.Equate(t, *v, 10)

	// the vacated slot must not pin the item
	s := r.ToSlice()
	test.Equate(t, len(s), 0)
}
