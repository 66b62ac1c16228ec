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

package bitvec_test

import (
	"testing"

	"github.com/kestrelgames/strobe/bitvec"
	"github.com/kestrelgames/strobe/curated"
	"github.com/kestrelgames/strobe/test"
)

func TestSetGet(t *testing.T) {
	vec := bitvec.NewVector(64)

	test.ExpectSuccess(t, !vec.Any())
	test.ExpectSuccess(t, !vec.Get(0))
	test.ExpectSuccess(t, !vec.Get(63))

	test.ExpectSuccess(t, vec.Set(0, true))
	test.ExpectSuccess(t, vec.Set(31, true))
	test.ExpectSuccess(t, vec.Set(32, true))
	test.ExpectSuccess(t, vec.Set(63, true))

	test.ExpectSuccess(t, vec.Get(0))
	test.ExpectSuccess(t, vec.Get(31))
	test.ExpectSuccess(t, vec.Get(32))
	test.ExpectSuccess(t, vec.Get(63))
	test.ExpectSuccess(t, !vec.Get(1))
	test.ExpectSuccess(t, vec.Any())
	test.Equate(t, vec.Count(), 4)

	test.ExpectSuccess(t, vec.Set(31, false))
	test.ExpectSuccess(t, !vec.Get(31))
	test.Equate(t, vec.Count(), 3)
}

func TestNegativeIndex(t *testing.T) {
	vec := bitvec.NewVector(8)

	err := vec.Set(-1, true)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, bitvec.NegativeIndex))

	// negative index on the read path is not an error, it simply
	// reports false
	test.ExpectSuccess(t, !vec.Get(-1))
}

func TestGrowth(t *testing.T) {
	vec := bitvec.NewVector(8)

	// setting an index beyond the initial capacity grows the vector
	test.ExpectSuccess(t, vec.Set(100, true))
	test.ExpectSuccess(t, vec.Get(100))

	// clearing an index beyond capacity is a no-op, not a growth
	vec = bitvec.NewVector(8)
	test.ExpectSuccess(t, vec.Set(100, false))
	test.ExpectSuccess(t, !vec.Get(100))
}

func TestBulkQueries(t *testing.T) {
	vec := bitvec.NewVector(32)
	for _, idx := range []int{2, 5, 9} {
		test.ExpectSuccess(t, vec.Set(idx, true))
	}

	test.ExpectSuccess(t, vec.AnyOf(1, 2, 3))
	test.ExpectSuccess(t, !vec.AnyOf(0, 1, 3))
	test.ExpectSuccess(t, vec.AllOf(2, 5, 9))
	test.ExpectSuccess(t, !vec.AllOf(2, 5, 10))
	test.ExpectSuccess(t, vec.AllOf())
}

func TestIteration(t *testing.T) {
	vec := bitvec.NewVector(64)
	for _, idx := range []int{3, 31, 32, 60} {
		test.ExpectSuccess(t, vec.Set(idx, true))
	}

	indices := vec.SetIndices()
	test.Equate(t, len(indices), 4)
	test.Equate(t, indices[0], 3)
	test.Equate(t, indices[1], 31)
	test.Equate(t, indices[2], 32)
	test.Equate(t, indices[3], 60)

	var visited []int
	vec.ForEachSet(func(idx int) {
		visited = append(visited, idx)
	})
	test.Equate(t, len(visited), 4)
	test.Equate(t, visited[3], 60)
}

func TestCloneAndCombine(t *testing.T) {
	a := bitvec.NewVector(32)
	test.ExpectSuccess(t, a.Set(1, true))
	test.ExpectSuccess(t, a.Set(2, true))

	b := a.Clone()
	test.ExpectSuccess(t, b.Set(3, true))
	test.ExpectSuccess(t, !a.Get(3), "clone must be independent")

	a.Or(b)
	test.ExpectSuccess(t, a.Get(3))
	test.Equate(t, a.Count(), 3)

	c := bitvec.NewVector(32)
	test.ExpectSuccess(t, c.Set(2, true))
	a.And(c)
	test.Equate(t, a.Count(), 1)
	test.ExpectSuccess(t, a.Get(2))

	a.Clear()
	test.ExpectSuccess(t, !a.Any())
}
