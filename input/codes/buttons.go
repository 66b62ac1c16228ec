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

package codes

// MouseButton identifies one mouse button. Valid buttons are in
// [0, MouseButtonTotal).
type MouseButton int

// MouseButtonNone is the value to use when no button is meant.
const MouseButtonNone MouseButton = -1

// The mouse button vocabulary.
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonMiddle
	MouseButtonRight
	MouseButtonX1
	MouseButtonX2

	// MouseButtonTotal is the size of the mouse button vocabulary. It is
	// not a valid button.
	MouseButtonTotal
)

var mouseButtonNames = [MouseButtonTotal]string{
	MouseButtonLeft:   "Left",
	MouseButtonMiddle: "Middle",
	MouseButtonRight:  "Right",
	MouseButtonX1:     "X1",
	MouseButtonX2:     "X2",
}

func (b MouseButton) String() string {
	if b < 0 || b >= MouseButtonTotal {
		return "unknown"
	}
	return mouseButtonNames[b]
}

// PadButton identifies one gamepad button, using the standard gamepad
// layout. Valid buttons are in [0, PadButtonTotal).
type PadButton int

// PadButtonNone is the value to use when no button is meant.
const PadButtonNone PadButton = -1

// The gamepad button vocabulary.
const (
	PadButtonA PadButton = iota
	PadButtonB
	PadButtonX
	PadButtonY
	PadButtonBack
	PadButtonGuide
	PadButtonStart
	PadButtonLeftStick
	PadButtonRightStick
	PadButtonLeftBumper
	PadButtonRightBumper
	PadButtonDPadUp
	PadButtonDPadDown
	PadButtonDPadLeft
	PadButtonDPadRight

	// PadButtonTotal is the size of the gamepad button vocabulary. It is
	// not a valid button.
	PadButtonTotal
)

var padButtonNames = [PadButtonTotal]string{
	PadButtonA:           "A",
	PadButtonB:           "B",
	PadButtonX:           "X",
	PadButtonY:           "Y",
	PadButtonBack:        "Back",
	PadButtonGuide:       "Guide",
	PadButtonStart:       "Start",
	PadButtonLeftStick:   "LeftStick",
	PadButtonRightStick:  "RightStick",
	PadButtonLeftBumper:  "LeftBumper",
	PadButtonRightBumper: "RightBumper",
	PadButtonDPadUp:      "DPadUp",
	PadButtonDPadDown:    "DPadDown",
	PadButtonDPadLeft:    "DPadLeft",
	PadButtonDPadRight:   "DPadRight",
}

func (b PadButton) String() string {
	if b < 0 || b >= PadButtonTotal {
		return "unknown"
	}
	return padButtonNames[b]
}

// PadAxis identifies one gamepad analogue axis. Valid axes are in
// [0, PadAxisTotal).
type PadAxis int

// The gamepad axis vocabulary. Stick axes report values in [-1, 1],
// trigger axes in [0, 1].
const (
	PadAxisLeftX PadAxis = iota
	PadAxisLeftY
	PadAxisRightX
	PadAxisRightY
	PadAxisTriggerLeft
	PadAxisTriggerRight

	// PadAxisTotal is the size of the gamepad axis vocabulary. It is not
	// a valid axis.
	PadAxisTotal
)

var padAxisNames = [PadAxisTotal]string{
	PadAxisLeftX:        "LeftX",
	PadAxisLeftY:        "LeftY",
	PadAxisRightX:       "RightX",
	PadAxisRightY:       "RightY",
	PadAxisTriggerLeft:  "TriggerLeft",
	PadAxisTriggerRight: "TriggerRight",
}

func (a PadAxis) String() string {
	if a < 0 || a >= PadAxisTotal {
		return "unknown"
	}
	return padAxisNames[a]
}

// IsTrigger returns true for the two trigger axes.
func (a PadAxis) IsTrigger() bool {
	return a == PadAxisTriggerLeft || a == PadAxisTriggerRight
}
