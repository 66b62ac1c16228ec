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

// Package diagnostics gathers the optional debugging facilities.
//
// The statistics server is only built when the statsview build
// constraint is present:
//
//	go build -tags statsview
//
// After launch, graphical runtime statistics are viewable at:
//
//	localhost:12700/debug/statsview
//
// And standard Go pprof statistics at:
//
//	localhost:12700/debug/pprof/
//
// The memory graph dump is always available.
package diagnostics
