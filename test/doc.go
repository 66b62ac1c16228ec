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

// Package test contains helper functions to remove common boilerplate from
// the project's tests.
//
// The ExpectSuccess() and ExpectFailure() functions test for success and
// failure under generic conditions. A bool is successful when true and an
// error is successful when nil. The nil type is considered a success, which
// follows from how Go errors work: a nil error indicates no error.
//
// The Demand variants of those functions are the same except that failure
// of the test is fatal. They are useful when later parts of the test make
// no sense after an earlier failure.
//
// The Equate() function compares like-typed values for equality.
//
// The CompareWriter type implements io.Writer and should be used to capture
// output for comparison with expected strings.
package test
