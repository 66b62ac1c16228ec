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

	"github.com/kestrelgames/strobe/curated"
	"github.com/kestrelgames/strobe/input/codes"
	"github.com/kestrelgames/strobe/test"
)

func TestInputFanOut(t *testing.T) {
	inp := NewInput()

	inp.HandleKey(codes.KeyA, true, codes.ModNone, false)
	inp.HandleMouseButton(codes.MouseButtonLeft, true, 5, 5)
	inp.HandlePadConnect(0)
	inp.HandlePadButton(0, codes.PadButtonA, true)
	inp.Update(1)

	test.ExpectSuccess(t, inp.KeyJustPressed(codes.KeyA))
	test.ExpectSuccess(t, inp.MouseButtonJustPressed(codes.MouseButtonLeft))
	test.ExpectSuccess(t, inp.PadButtonJustPressed(0, codes.PadButtonA))
	test.Equate(t, inp.Frame(), uint64(1))

	inp.Update(2)
	test.ExpectSuccess(t, inp.IsKeyDown(codes.KeyA))
	test.ExpectSuccess(t, inp.IsMouseButtonDown(codes.MouseButtonLeft))
	test.ExpectSuccess(t, inp.IsPadButtonDown(0, codes.PadButtonA))
}

func TestInputUpdateIdempotence(t *testing.T) {
	inp := NewInput()

	inp.HandleKey(codes.KeySpace, true, codes.ModNone, false)
	inp.Update(1)
	test.ExpectSuccess(t, inp.KeyJustPressed(codes.KeySpace))

	// repeating the same frame number must not decay the edge, at the
	// orchestrator or at any controller
	inp.Update(1)
	test.ExpectSuccess(t, inp.KeyJustPressed(codes.KeySpace))

	inp.Update(2)
	test.ExpectSuccess(t, !inp.KeyJustPressed(codes.KeySpace))
}

func TestInputDisabledDevice(t *testing.T) {
	inp := NewInput()

	inp.HandleKey(codes.KeyA, true, codes.ModNone, false)
	inp.Update(1)
	inp.Update(2)
	test.ExpectSuccess(t, inp.IsKeyDown(codes.KeyA))

	// disabling a device sweeps it and its queries return neutral
	// defaults
	inp.SetKeyboardEnabled(false)
	test.ExpectSuccess(t, !inp.IsKeyDown(codes.KeyA))
	test.Equate(t, inp.KeyState(codes.KeyA), Up)
	test.ExpectSuccess(t, !inp.IsAnyKeyDown())
	test.Equate(t, len(inp.PressedKeys()), 0)
	test.Equate(t, inp.Mods(), codes.ModNone)

	// capture for a disabled device is discarded
	inp.HandleKey(codes.KeyB, true, codes.ModNone, false)
	inp.Update(3)
	test.ExpectSuccess(t, !inp.IsKeyDown(codes.KeyB))

	// other devices are unaffected
	inp.HandleMouseMotion(7, 8)
	inp.Update(4)
	x, y := inp.MousePosition()
	test.Equate(t, x, float32(7))
	test.Equate(t, y, float32(8))

	// re-enabling starts from a clean slate
	inp.SetKeyboardEnabled(true)
	inp.HandleKey(codes.KeyB, true, codes.ModNone, false)
	inp.Update(5)
	test.ExpectSuccess(t, inp.KeyJustPressed(codes.KeyB))
}

func TestInputDisabledSubsystem(t *testing.T) {
	inp := NewInput()

	inp.HandleKey(codes.KeyA, true, codes.ModNone, false)
	inp.Update(1)
	inp.Update(2)
	test.ExpectSuccess(t, inp.IsKeyDown(codes.KeyA))

	inp.SetEnabled(false)
	test.ExpectSuccess(t, !inp.Enabled())
	test.ExpectSuccess(t, !inp.IsKeyDown(codes.KeyA))

	// neither capture nor update do anything while disabled
	inp.HandleKey(codes.KeyB, true, codes.ModNone, false)
	inp.Update(3)
	test.Equate(t, inp.Frame(), uint64(2))

	inp.SetEnabled(true)
	inp.Update(4)
	test.ExpectSuccess(t, !inp.IsKeyDown(codes.KeyB))
}

func TestInputBlur(t *testing.T) {
	inp := NewInput()

	inp.HandleKey(codes.KeyA, true, codes.ModNone, false)
	inp.HandleMouseButton(codes.MouseButtonLeft, true, 0, 0)
	inp.HandlePadConnect(0)
	inp.HandlePadButton(0, codes.PadButtonA, true)
	inp.Update(1)
	inp.Update(2)

	inp.Blur()
	test.ExpectSuccess(t, inp.KeyJustReleased(codes.KeyA))
	test.ExpectSuccess(t, inp.MouseButtonJustReleased(codes.MouseButtonLeft))
	test.ExpectSuccess(t, inp.PadButtonJustReleased(0, codes.PadButtonA))

	inp.Update(3)
	test.Equate(t, inp.KeyState(codes.KeyA), Up)
	test.Equate(t, inp.MouseButtonState(codes.MouseButtonLeft), Up)
	test.Equate(t, inp.PadButtonState(0, codes.PadButtonA), Up)
}

func TestInputPreventDefault(t *testing.T) {
	inp := NewInput()

	test.ExpectSuccess(t, !inp.PreventsDefaultKey(codes.KeyTab))

	test.ExpectSuccess(t, inp.SetPreventDefaultKey(codes.KeyTab, true))
	test.ExpectSuccess(t, inp.PreventsDefaultKey(codes.KeyTab))
	test.ExpectSuccess(t, !inp.PreventsDefaultKey(codes.KeyA))

	test.ExpectSuccess(t, inp.SetPreventDefaultKey(codes.KeyTab, false))
	test.ExpectSuccess(t, !inp.PreventsDefaultKey(codes.KeyTab))

	err := inp.SetPreventDefaultKey(codes.KeyNone, true)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, UnknownKey))

	test.ExpectSuccess(t, inp.SetPreventDefaultMouseButton(codes.MouseButtonRight, true))
	test.ExpectSuccess(t, inp.PreventsDefaultMouseButton(codes.MouseButtonRight))
	test.ExpectFailure(t, inp.SetPreventDefaultMouseButton(codes.MouseButton(99), true))
}

func TestInputDebugInfo(t *testing.T) {
	inp := NewInput()

	inp.HandleKey(codes.KeyA, true, codes.ModNone, false)
	inp.Update(1)

	d := inp.DebugInfo()
	test.Equate(t, d.Frame, uint64(1))
	test.Equate(t, d.Keyboard.Diag.Processed, uint64(1))
	test.ExpectSuccess(t, d.Keyboard.Enabled)
	test.Equate(t, d.Keyboard.DownCount, 1)

	inp.SetMouseEnabled(false)
	d = inp.DebugInfo()
	test.ExpectSuccess(t, !d.Mouse.Enabled)
}
