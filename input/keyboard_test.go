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

func TestKeyboardEdgeVisibility(t *testing.T) {
	k := NewKeyboard()

	// the edge from a press is visible for exactly one frame
	k.HandleKey(codes.KeySpace, true, codes.ModNone, false)
	k.Update(1)
	test.ExpectSuccess(t, k.WasJustPressed(codes.KeySpace))
	test.ExpectSuccess(t, k.IsDown(codes.KeySpace))
	test.Equate(t, k.KeyState(codes.KeySpace), JustPressed)

	k.Update(2)
	test.ExpectSuccess(t, !k.WasJustPressed(codes.KeySpace))
	test.ExpectSuccess(t, k.IsDown(codes.KeySpace))
	test.Equate(t, k.KeyState(codes.KeySpace), Down)

	// holding across many frames leaves the state stable
	k.Update(3)
	k.Update(4)
	test.Equate(t, k.KeyState(codes.KeySpace), Down)

	// release symmetry
	k.HandleKey(codes.KeySpace, false, codes.ModNone, false)
	k.Update(5)
	test.ExpectSuccess(t, k.WasJustReleased(codes.KeySpace))
	test.ExpectSuccess(t, k.IsUp(codes.KeySpace))
	test.Equate(t, k.KeyState(codes.KeySpace), JustReleased)

	k.Update(6)
	test.ExpectSuccess(t, !k.WasJustReleased(codes.KeySpace))
	test.Equate(t, k.KeyState(codes.KeySpace), Up)
}

func TestKeyboardUpdateIdempotence(t *testing.T) {
	k := NewKeyboard()

	k.HandleKey(codes.KeyA, true, codes.ModNone, false)
	k.Update(1)
	test.ExpectSuccess(t, k.WasJustPressed(codes.KeyA))

	// a second Update() with the same frame number must not decay the
	// edge
	k.Update(1)
	test.ExpectSuccess(t, k.WasJustPressed(codes.KeyA))

	k.Update(2)
	test.ExpectSuccess(t, !k.WasJustPressed(codes.KeyA))
	test.ExpectSuccess(t, k.IsDown(codes.KeyA))
}

func TestKeyboardSameFrameTap(t *testing.T) {
	k := NewKeyboard()

	// press and release between two updates. the release edge wins but
	// the press is not lost entirely, the key passes through JustPressed
	// during the drain
	k.HandleKey(codes.KeyEnter, true, codes.ModNone, false)
	k.HandleKey(codes.KeyEnter, false, codes.ModNone, false)
	k.Update(1)

	test.Equate(t, k.KeyState(codes.KeyEnter), JustReleased)
	test.ExpectSuccess(t, !k.IsDown(codes.KeyEnter))
	test.ExpectSuccess(t, !(k.WasJustPressed(codes.KeyEnter) && k.WasJustReleased(codes.KeyEnter)))

	k.Update(2)
	test.Equate(t, k.KeyState(codes.KeyEnter), Up)
}

func TestKeyboardDebounce(t *testing.T) {
	k := NewKeyboard()

	k.HandleKey(codes.KeyW, true, codes.ModNone, false)
	k.HandleKey(codes.KeyW, true, codes.ModNone, false)
	k.HandleKey(codes.KeyW, true, codes.ModNone, false)
	k.Update(1)
	test.Equate(t, k.KeyState(codes.KeyW), JustPressed)

	k.Update(2)
	test.Equate(t, k.KeyState(codes.KeyW), Down)
	test.Equate(t, k.DownCount(), 1)
}

func TestKeyboardRepeatFiltering(t *testing.T) {
	k := NewKeyboard()

	k.HandleKey(codes.KeyE, true, codes.ModNone, false)
	k.Update(1)
	k.Update(2)
	test.Equate(t, k.KeyState(codes.KeyE), Down)

	// OS auto-repeat events carry no state change
	k.HandleKey(codes.KeyE, true, codes.ModShift, true)
	k.Update(3)
	test.Equate(t, k.KeyState(codes.KeyE), Down)
	test.ExpectSuccess(t, !k.WasJustPressed(codes.KeyE))

	// but the modifier mask is still noted
	test.Equate(t, k.Mods(), codes.ModShift)
}

func TestKeyboardRejection(t *testing.T) {
	k := NewKeyboard()

	k.HandleKey(codes.Key(9999), true, codes.ModNone, false)
	k.HandleKey(codes.KeyNone, true, codes.ModNone, false)
	k.Update(1)

	test.Equate(t, k.Diagnostics().Rejected, uint64(2))
	test.Equate(t, k.Diagnostics().Processed, uint64(0))
	test.ExpectSuccess(t, !k.AnyDown())
}

func TestKeyboardOverflow(t *testing.T) {
	k, err := newKeyboard(4)
	test.DemandSuccess(t, err)

	// five events into a four deep queue. the oldest (the press of
	// KeyA) is evicted
	k.HandleKey(codes.KeyA, true, codes.ModNone, false)
	k.HandleKey(codes.KeyB, true, codes.ModNone, false)
	k.HandleKey(codes.KeyC, true, codes.ModNone, false)
	k.HandleKey(codes.KeyD, true, codes.ModNone, false)
	k.HandleKey(codes.KeyE, true, codes.ModNone, false)

	test.Equate(t, k.Diagnostics().Dropped, uint64(1))

	k.Update(1)
	test.ExpectSuccess(t, !k.IsDown(codes.KeyA))
	test.ExpectSuccess(t, k.IsDown(codes.KeyB))
	test.ExpectSuccess(t, k.IsDown(codes.KeyC))
	test.ExpectSuccess(t, k.IsDown(codes.KeyD))
	test.ExpectSuccess(t, k.IsDown(codes.KeyE))
	test.Equate(t, k.Diagnostics().Processed, uint64(4))

	// every released record returns to the pool until the free-list is
	// full. five records against a four deep pool leaves one abandoned
	test.Equate(t, k.pool.FreeCount(), 4)
	test.Equate(t, k.PoolStats().Abandoned, 1)
}

func TestKeyboardBlur(t *testing.T) {
	k := NewKeyboard()

	k.HandleKey(codes.KeyLeftShift, true, codes.ModShift, false)
	k.HandleKey(codes.KeyF, true, codes.ModShift, false)
	k.Update(1)
	k.Update(2)
	test.Equate(t, k.DownCount(), 2)

	// an event arrives and then focus is lost before the next update
	k.HandleKey(codes.KeyG, true, codes.ModShift, false)
	k.Blur()

	// held keys are forced to JustReleased, the queued press is
	// discarded and the modifier mask is cleared
	test.ExpectSuccess(t, k.WasJustReleased(codes.KeyLeftShift))
	test.ExpectSuccess(t, k.WasJustReleased(codes.KeyF))
	test.Equate(t, k.DownCount(), 0)
	test.Equate(t, k.Mods(), codes.ModNone)

	k.Update(3)
	test.Equate(t, k.KeyState(codes.KeyLeftShift), Up)
	test.Equate(t, k.KeyState(codes.KeyF), Up)
	test.Equate(t, k.KeyState(codes.KeyG), Up)
	test.Equate(t, k.m.pendingCount(), 0)

	// the device works normally after focus returns
	k.HandleKey(codes.KeyF, true, codes.ModNone, false)
	k.Update(4)
	test.ExpectSuccess(t, k.WasJustPressed(codes.KeyF))
}

func TestKeyboardPressed(t *testing.T) {
	k := NewKeyboard()

	k.HandleKey(codes.KeyZ, true, codes.ModNone, false)
	k.HandleKey(codes.KeyA, true, codes.ModNone, false)
	k.Update(1)

	// code order, not arrival order
	pressed := k.Pressed()
	test.DemandEquality(t, len(pressed), 2)
	test.Equate(t, pressed[0], codes.KeyA)
	test.Equate(t, pressed[1], codes.KeyZ)

	// the memoized slice is rebuilt after the next update
	k.HandleKey(codes.KeyA, false, codes.ModNone, false)
	k.Update(2)
	pressed = k.Pressed()
	test.DemandEquality(t, len(pressed), 1)
	test.Equate(t, pressed[0], codes.KeyZ)
}
