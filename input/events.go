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
	"time"

	"github.com/kestrelgames/strobe/input/codes"
)

// The raw event records buffered between capture and the next Update()
// call. Records are pooled: a record is acquired when the platform
// backend reports an event and released when Update() consumes it, or
// when it is evicted by queue overflow. A record is never owned by more
// than one queue slot at a time.
//
// Timestamps are advisory. They are never used for staleness decisions.

// KeyEvent is the raw record of one key press or release.
type KeyEvent struct {
	Key    codes.Key
	Down   bool
	Mod    codes.Mod
	Repeat bool
	Time   time.Time
}

// MouseEventKind discriminates the variants of MouseEvent.
type MouseEventKind int

// List of valid MouseEventKind values.
const (
	MouseButtonChange MouseEventKind = iota
	MouseMotion
	MouseWheel
)

// MouseEvent is the raw record of one mouse button change, motion or
// wheel movement. Which payload fields are meaningful depends on Kind:
// every variant carries the window position, MouseButtonChange carries
// Button and Down, MouseWheel carries the wheel deltas.
type MouseEvent struct {
	Kind   MouseEventKind
	Button codes.MouseButton
	Down   bool
	X      float32
	Y      float32
	WheelX float32
	WheelY float32
	WheelZ float32
	Time   time.Time
}

// PadEvent is the raw record of one gamepad button press or release. Pad
// identifies which of the tracked gamepads the event belongs to.
type PadEvent struct {
	Pad    int
	Button codes.PadButton
	Down   bool
	Time   time.Time
}
