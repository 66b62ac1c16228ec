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

package bitvec

import (
	"math/bits"
	"strings"

	"github.com/kestrelgames/strobe/curated"
)

// NegativeIndex is returned by Set() when given an index less than zero.
const NegativeIndex = "bitvec: negative index (%d)"

// width of a single word in the backing array
const wordWidth = 32

// Vector is a set of booleans indexed by a dense non-negative integer.
// The zero value is an empty vector ready for use.
type Vector struct {
	words []uint32
}

// NewVector returns a Vector with enough capacity for the given number of
// entries. The capacity is a convenience only, the vector will still grow
// if an index beyond it is Set().
func NewVector(capacity int) *Vector {
	if capacity < 0 {
		capacity = 0
	}
	return &Vector{
		words: make([]uint32, (capacity+wordWidth-1)/wordWidth),
	}
}

// grow backing array so that index is addressable. does nothing if index
// is already in range.
func (vec *Vector) grow(index int) {
	req := index/wordWidth + 1
	if req <= len(vec.words) {
		return
	}
	w := make([]uint32, req)
	copy(w, vec.words)
	vec.words = w
}

// Set the entry at index. Grows the vector as required. The only error
// condition is a negative index.
func (vec *Vector) Set(index int, v bool) error {
	if index < 0 {
		return curated.Errorf(NegativeIndex, index)
	}
	if v {
		vec.grow(index)
		vec.words[index/wordWidth] |= 1 << (index % wordWidth)
	} else if index/wordWidth < len(vec.words) {
		vec.words[index/wordWidth] &^= 1 << (index % wordWidth)
	}
	return nil
}

// Get the entry at index. Indices outside the current capacity, including
// negative indices, report false.
func (vec *Vector) Get(index int) bool {
	if index < 0 || index/wordWidth >= len(vec.words) {
		return false
	}
	return vec.words[index/wordWidth]&(1<<(index%wordWidth)) != 0
}

// Any returns true if at least one entry is set.
func (vec *Vector) Any() bool {
	for _, w := range vec.words {
		if w != 0 {
			return true
		}
	}
	return false
}

// AnyOf returns true if at least one of the listed indices is set.
func (vec *Vector) AnyOf(indices ...int) bool {
	for _, idx := range indices {
		if vec.Get(idx) {
			return true
		}
	}
	return false
}

// AllOf returns true if every one of the listed indices is set. An empty
// list reports true.
func (vec *Vector) AllOf(indices ...int) bool {
	for _, idx := range indices {
		if !vec.Get(idx) {
			return false
		}
	}
	return true
}

// Count returns the number of set entries.
func (vec *Vector) Count() int {
	var ct int
	for _, w := range vec.words {
		ct += bits.OnesCount32(w)
	}
	return ct
}

// SetIndices returns the set entries in ascending order.
func (vec *Vector) SetIndices() []int {
	indices := make([]int, 0, vec.Count())
	vec.ForEachSet(func(idx int) {
		indices = append(indices, idx)
	})
	return indices
}

// ForEachSet calls f for every set entry in ascending order. Unlike
// SetIndices() it does not allocate.
func (vec *Vector) ForEachSet(f func(index int)) {
	for i, w := range vec.words {
		for w != 0 {
			f(i*wordWidth + bits.TrailingZeros32(w))
			w &= w - 1
		}
	}
}

// Clear every entry. Capacity is retained.
func (vec *Vector) Clear() {
	for i := range vec.words {
		vec.words[i] = 0
	}
}

// Clone returns an independent copy of the vector.
func (vec *Vector) Clone() *Vector {
	n := &Vector{
		words: make([]uint32, len(vec.words)),
	}
	copy(n.words, vec.words)
	return n
}

// Or sets every entry that is set in the other vector. Grows the receiver
// as required.
func (vec *Vector) Or(other *Vector) {
	if len(other.words) > len(vec.words) {
		vec.grow(len(other.words)*wordWidth - 1)
	}
	for i, w := range other.words {
		vec.words[i] |= w
	}
}

// And clears every entry that is not also set in the other vector.
func (vec *Vector) And(other *Vector) {
	for i := range vec.words {
		if i < len(other.words) {
			vec.words[i] &= other.words[i]
		} else {
			vec.words[i] = 0
		}
	}
}

func (vec *Vector) String() string {
	s := strings.Builder{}
	for i := len(vec.words)*wordWidth - 1; i >= 0; i-- {
		if vec.Get(i) {
			s.WriteRune('1')
		} else {
			s.WriteRune('0')
		}
	}
	return s.String()
}
