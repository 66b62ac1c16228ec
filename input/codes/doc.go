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

// Package codes defines the fixed input vocabularies: the dense integer
// codes that identify one key, mouse button or gamepad control within its
// device class.
//
// Codes are dense so that they can index bit-vectors and state arrays
// directly. Each vocabulary ends with a Total sentinel; a code is valid
// for its device if it lies in [0, Total).
//
// Platform backends own the tables that translate their native codes
// (SDL scancodes, kernel joystick button numbers) into these dense codes.
// This package only knows about names, which are stable across platforms
// and are what preference files refer to.
package codes
