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

package input

import (
	"github.com/kestrelgames/strobe/pool"
)

// Diagnostics count the events seen by one device controller. The
// counters are purely observational, nothing reads them to make
// decisions.
type Diagnostics struct {
	// events consumed by Update()
	Processed uint64

	// events evicted because the queue was full
	Dropped uint64

	// events discarded because the code was outside the vocabulary
	Rejected uint64
}

// DeviceDebug is the debugging snapshot of one device controller.
type DeviceDebug struct {
	Enabled   bool
	Diag      Diagnostics
	Pool      pool.Stats
	QueueLen  int
	QueueCap  int
	DownCount int
}

// DebugInfo is the debugging snapshot of the entire input subsystem, as
// returned by Input.DebugInfo().
type DebugInfo struct {
	Frame    uint64
	Keyboard DeviceDebug
	Mouse    DeviceDebug
	Gamepad  DeviceDebug
}
