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
	"testing"

	"github.com/kestrelgames/strobe/input/codes"
	"github.com/kestrelgames/strobe/test"
)

func TestMouseButtons(t *testing.T) {
	ms := NewMouse()

	ms.HandleButton(codes.MouseButtonLeft, true, 10, 20)
	ms.Update(1)
	test.ExpectSuccess(t, ms.WasJustPressed(codes.MouseButtonLeft))
	test.ExpectSuccess(t, ms.IsDown(codes.MouseButtonLeft))

	// the button event carries the position at which it happened
	x, y := ms.Position()
	test.Equate(t, x, float32(10))
	test.Equate(t, y, float32(20))

	ms.Update(2)
	test.Equate(t, ms.ButtonState(codes.MouseButtonLeft), Down)

	ms.HandleButton(codes.MouseButtonLeft, false, 10, 20)
	ms.Update(3)
	test.ExpectSuccess(t, ms.WasJustReleased(codes.MouseButtonLeft))
	test.ExpectSuccess(t, ms.IsUp(codes.MouseButtonLeft))

	ms.Update(4)
	test.Equate(t, ms.ButtonState(codes.MouseButtonLeft), Up)
}

func TestMousePressed(t *testing.T) {
	ms := NewMouse()

	ms.HandleButton(codes.MouseButtonLeft, true, 0, 0)
	ms.HandleButton(codes.MouseButtonRight, true, 0, 0)
	ms.Update(1)

	pressed := ms.Pressed()
	test.Equate(t, len(pressed), 2)
	test.Equate(t, pressed[0], codes.MouseButtonLeft)
	test.Equate(t, pressed[1], codes.MouseButtonRight)

	ms.HandleButton(codes.MouseButtonLeft, false, 0, 0)
	ms.Update(2)
	pressed = ms.Pressed()
	test.Equate(t, len(pressed), 1)
	test.Equate(t, pressed[0], codes.MouseButtonRight)
}

func TestMouseMotionAndDelta(t *testing.T) {
	ms := NewMouse()

	ms.HandleMotion(100, 100)
	ms.Update(1)
	x, y := ms.Position()
	test.Equate(t, x, float32(100))
	test.Equate(t, y, float32(100))

	// several motion events in one frame. position is the final one,
	// delta is measured from the previous frame's position
	ms.HandleMotion(110, 100)
	ms.HandleMotion(130, 90)
	ms.Update(2)
	x, y = ms.Position()
	test.Equate(t, x, float32(130))
	test.Equate(t, y, float32(90))
	dx, dy := ms.Delta()
	test.Equate(t, dx, float32(30))
	test.Equate(t, dy, float32(-10))

	// a frame without motion has zero delta
	ms.Update(3)
	dx, dy = ms.Delta()
	test.Equate(t, dx, float32(0))
	test.Equate(t, dy, float32(0))
}

func TestMouseWheel(t *testing.T) {
	ms := NewMouse()

	// wheel movement accumulates within the frame
	ms.HandleWheel(0, 1, 0)
	ms.HandleWheel(0, 2, 0)
	ms.HandleWheel(1, 0, 0)
	ms.Update(1)
	wx, wy, wz := ms.Wheel()
	test.Equate(t, wx, float32(1))
	test.Equate(t, wy, float32(3))
	test.Equate(t, wz, float32(0))

	// and is forgotten at the next frame
	ms.Update(2)
	wx, wy, wz = ms.Wheel()
	test.Equate(t, wx, float32(0))
	test.Equate(t, wy, float32(0))
	test.Equate(t, wz, float32(0))
}

type halvingMapper struct{}

func (halvingMapper) MapCoords(x float32, y float32) (float32, float32) {
	return x / 2, y / 2
}

func TestMouseMapper(t *testing.T) {
	ms := NewMouse()
	ms.AttachMapper(halvingMapper{})

	ms.HandleMotion(200, 100)
	ms.Update(1)
	x, y := ms.Position()
	test.Equate(t, x, float32(100))
	test.Equate(t, y, float32(50))

	// a nil mapper restores the identity mapping
	ms.AttachMapper(nil)
	ms.HandleMotion(200, 100)
	ms.Update(2)
	x, y = ms.Position()
	test.Equate(t, x, float32(200))
	test.Equate(t, y, float32(100))
}

func TestMouseRejection(t *testing.T) {
	ms := NewMouse()

	ms.HandleButton(codes.MouseButton(99), true, 0, 0)
	ms.HandleButton(codes.MouseButtonNone, true, 0, 0)
	ms.Update(1)

	test.Equate(t, ms.Diagnostics().Rejected, uint64(2))
	test.ExpectSuccess(t, !ms.AnyDown())
}

func TestMouseBlur(t *testing.T) {
	ms := NewMouse()

	ms.HandleMotion(50, 60)
	ms.HandleButton(codes.MouseButtonRight, true, 50, 60)
	ms.HandleWheel(0, 5, 0)
	ms.Update(1)
	ms.Update(2)
	test.ExpectSuccess(t, ms.IsDown(codes.MouseButtonRight))

	ms.Blur()

	// held buttons are released and deltas are zeroed but the cursor
	// position is kept
	test.ExpectSuccess(t, ms.WasJustReleased(codes.MouseButtonRight))
	x, y := ms.Position()
	test.Equate(t, x, float32(50))
	test.Equate(t, y, float32(60))
	dx, dy := ms.Delta()
	test.Equate(t, dx, float32(0))
	test.Equate(t, dy, float32(0))

	ms.Update(3)
	test.Equate(t, ms.ButtonState(codes.MouseButtonRight), Up)
}

func TestMouseOverflow(t *testing.T) {
	ms, err := newMouse(2)
	test.DemandSuccess(t, err)

	ms.HandleMotion(1, 1)
	ms.HandleMotion(2, 2)
	ms.HandleMotion(3, 3)
	test.Equate(t, ms.Diagnostics().Dropped, uint64(1))

	ms.Update(1)
	x, y := ms.Position()
	test.Equate(t, x, float32(3))
	test.Equate(t, y, float32(3))
}
