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

// Package bitvec implements a growable vector of booleans over a dense,
// non-negative index space. It is the backing store for the per-code input
// state kept by the device controllers.
//
// Three aggregate queries are worth noting: Any(), Count() and SetIndices().
// They operate on whole 32bit words at a time rather than on individual
// bits, which matters when they are called once per frame.
//
// A Vector grows transparently when Set() is given an index beyond the
// current capacity. Capacity never shrinks. Negative indices are the only
// invalid input and are rejected with an error rather than being allowed
// anywhere near the backing array.
package bitvec
