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
	"github.com/kestrelgames/strobe/bitvec"
	"github.com/kestrelgames/strobe/curated"
	"github.com/kestrelgames/strobe/input/codes"
)

// sentinel errors returned by the prevent-default registry
const (
	UnknownKey         = "input: unknown key (%d)"
	UnknownMouseButton = "input: unknown mouse button (%d)"
)

// Input is the composition point for the input subsystem. It owns one
// controller per device class and exposes a flat query surface that
// delegates to the relevant controller, or returns a neutral default if
// that device class is disabled.
//
// Construct with NewInput() and share the single instance between the
// platform backend (capture side) and the game loop (query side).
type Input struct {
	keyboard *Keyboard
	mouse    *Mouse
	gamepad  *Gamepad

	enabled         bool
	keyboardEnabled bool
	mouseEnabled    bool
	gamepadEnabled  bool

	// codes for which the platform backend should suppress the host's
	// native behaviour (window shortcuts, text input and so on)
	preventKeys  *bitvec.Vector
	preventMouse *bitvec.Vector

	frame  uint64
	primed bool

	verbose bool

	// the debug snapshot is rebuilt only when something has changed
	// since it was last requested
	debugStale bool
	debugInfo  DebugInfo
}

// NewInput is the preferred method of initialisation of the Input type.
// All device classes start enabled.
func NewInput() *Input {
	return &Input{
		keyboard:        NewKeyboard(),
		mouse:           NewMouse(),
		gamepad:         NewGamepad(),
		enabled:         true,
		keyboardEnabled: true,
		mouseEnabled:    true,
		gamepadEnabled:  true,
		preventKeys:     bitvec.NewVector(int(codes.KeyTotal)),
		preventMouse:    bitvec.NewVector(int(codes.MouseButtonTotal)),
		debugStale:      true,
	}
}

// Keyboard returns the keyboard controller. Platform backends use it for
// capture; application code will normally prefer the flat query surface.
func (inp *Input) Keyboard() *Keyboard {
	return inp.keyboard
}

// Mouse returns the mouse controller.
func (inp *Input) Mouse() *Mouse {
	return inp.mouse
}

// Gamepad returns the gamepad controller.
func (inp *Input) Gamepad() *Gamepad {
	return inp.gamepad
}

// Update drives every enabled controller for the numbered frame. Call
// once per frame before any queries; calling it again with the same
// frame number has no effect.
func (inp *Input) Update(frame uint64) {
	if !inp.enabled {
		return
	}
	if inp.primed && frame == inp.frame {
		return
	}
	inp.primed = true
	inp.frame = frame

	if inp.keyboardEnabled {
		inp.keyboard.Update(frame)
	}
	if inp.mouseEnabled {
		inp.mouse.Update(frame)
	}
	if inp.gamepadEnabled {
		inp.gamepad.Update(frame)
	}

	inp.debugStale = true
}

// Frame returns the most recently updated frame number.
func (inp *Input) Frame() uint64 {
	return inp.frame
}

// Blur reconciles every controller with the loss of window focus. The
// platform backend calls this when the window loses focus or the
// application is hidden.
func (inp *Input) Blur() {
	inp.keyboard.Blur()
	inp.mouse.Blur()
	inp.gamepad.Blur()
	inp.debugStale = true
}

// Focus reconciles every controller with the regaining of window focus.
// The same sweep as Blur() is performed: any state accumulated while
// unfocused is suspect because the matching release events may have been
// sent elsewhere.
func (inp *Input) Focus() {
	inp.Blur()
}

// SetEnabled turns the entire subsystem on or off. Disabling sweeps all
// controllers so that no state appears stuck when the subsystem is
// re-enabled.
func (inp *Input) SetEnabled(enabled bool) {
	if inp.enabled && !enabled {
		inp.Blur()
	}
	inp.enabled = enabled
	inp.debugStale = true
}

// Enabled returns true if the subsystem is enabled.
func (inp *Input) Enabled() bool {
	return inp.enabled
}

// SetKeyboardEnabled turns the keyboard controller on or off.
func (inp *Input) SetKeyboardEnabled(enabled bool) {
	if inp.keyboardEnabled && !enabled {
		inp.keyboard.Blur()
	}
	inp.keyboardEnabled = enabled
	inp.debugStale = true
}

// SetMouseEnabled turns the mouse controller on or off.
func (inp *Input) SetMouseEnabled(enabled bool) {
	if inp.mouseEnabled && !enabled {
		inp.mouse.Blur()
	}
	inp.mouseEnabled = enabled
	inp.debugStale = true
}

// SetGamepadEnabled turns the gamepad controller on or off.
func (inp *Input) SetGamepadEnabled(enabled bool) {
	if inp.gamepadEnabled && !enabled {
		inp.gamepad.Blur()
	}
	inp.gamepadEnabled = enabled
	inp.debugStale = true
}

// SetVerbose turns the controllers' throttled diagnostic warnings on or
// off.
func (inp *Input) SetVerbose(verbose bool) {
	inp.verbose = verbose
	inp.keyboard.SetVerbose(verbose)
	inp.mouse.SetVerbose(verbose)
	inp.gamepad.SetVerbose(verbose)
}

// Verbose returns true if diagnostic warnings are enabled.
func (inp *Input) Verbose() bool {
	return inp.verbose
}

// capture proxies. the platform backend can use these rather than the
// controllers directly; events for disabled device classes are discarded
// here.

// HandleKey forwards a key event to the keyboard controller.
func (inp *Input) HandleKey(key codes.Key, down bool, mod codes.Mod, repeat bool) {
	if !inp.enabled || !inp.keyboardEnabled {
		return
	}
	inp.keyboard.HandleKey(key, down, mod, repeat)
}

// HandleMouseButton forwards a mouse button event to the mouse
// controller.
func (inp *Input) HandleMouseButton(button codes.MouseButton, down bool, x float32, y float32) {
	if !inp.enabled || !inp.mouseEnabled {
		return
	}
	inp.mouse.HandleButton(button, down, x, y)
}

// HandleMouseMotion forwards a mouse motion event to the mouse
// controller.
func (inp *Input) HandleMouseMotion(x float32, y float32) {
	if !inp.enabled || !inp.mouseEnabled {
		return
	}
	inp.mouse.HandleMotion(x, y)
}

// HandleMouseWheel forwards a wheel event to the mouse controller.
func (inp *Input) HandleMouseWheel(deltaX float32, deltaY float32, deltaZ float32) {
	if !inp.enabled || !inp.mouseEnabled {
		return
	}
	inp.mouse.HandleWheel(deltaX, deltaY, deltaZ)
}

// HandlePadButton forwards a gamepad button event to the gamepad
// controller.
func (inp *Input) HandlePadButton(pad int, button codes.PadButton, down bool) {
	if !inp.enabled || !inp.gamepadEnabled {
		return
	}
	inp.gamepad.HandleButton(pad, button, down)
}

// HandlePadAxis forwards a gamepad axis value to the gamepad controller.
func (inp *Input) HandlePadAxis(pad int, axis codes.PadAxis, value float32) {
	if !inp.enabled || !inp.gamepadEnabled {
		return
	}
	inp.gamepad.HandleAxis(pad, axis, value)
}

// HandlePadConnect forwards a pad connection to the gamepad controller.
func (inp *Input) HandlePadConnect(pad int) {
	if !inp.enabled || !inp.gamepadEnabled {
		return
	}
	inp.gamepad.HandleConnect(pad)
}

// HandlePadDisconnect forwards a pad disconnection to the gamepad
// controller.
func (inp *Input) HandlePadDisconnect(pad int) {
	if !inp.enabled || !inp.gamepadEnabled {
		return
	}
	inp.gamepad.HandleDisconnect(pad)
}

// keyboard queries

// IsKeyDown returns true if the key is held.
func (inp *Input) IsKeyDown(key codes.Key) bool {
	if !inp.enabled || !inp.keyboardEnabled {
		return false
	}
	return inp.keyboard.IsDown(key)
}

// KeyJustPressed returns true if the key went down this frame.
func (inp *Input) KeyJustPressed(key codes.Key) bool {
	if !inp.enabled || !inp.keyboardEnabled {
		return false
	}
	return inp.keyboard.WasJustPressed(key)
}

// KeyJustReleased returns true if the key went up this frame.
func (inp *Input) KeyJustReleased(key codes.Key) bool {
	if !inp.enabled || !inp.keyboardEnabled {
		return false
	}
	return inp.keyboard.WasJustReleased(key)
}

// KeyState returns the discrete state of the key.
func (inp *Input) KeyState(key codes.Key) State {
	if !inp.enabled || !inp.keyboardEnabled {
		return Up
	}
	return inp.keyboard.KeyState(key)
}

// IsAnyKeyDown returns true if any key is held.
func (inp *Input) IsAnyKeyDown() bool {
	if !inp.enabled || !inp.keyboardEnabled {
		return false
	}
	return inp.keyboard.AnyDown()
}

// PressedKeys returns the currently held keys. The slice is reused and
// must not be retained.
func (inp *Input) PressedKeys() []codes.Key {
	if !inp.enabled || !inp.keyboardEnabled {
		return nil
	}
	return inp.keyboard.Pressed()
}

// Mods returns the modifier mask from the most recent key event.
func (inp *Input) Mods() codes.Mod {
	if !inp.enabled || !inp.keyboardEnabled {
		return codes.ModNone
	}
	return inp.keyboard.Mods()
}

// mouse queries

// IsMouseButtonDown returns true if the mouse button is held.
func (inp *Input) IsMouseButtonDown(button codes.MouseButton) bool {
	if !inp.enabled || !inp.mouseEnabled {
		return false
	}
	return inp.mouse.IsDown(button)
}

// MouseButtonJustPressed returns true if the mouse button went down this
// frame.
func (inp *Input) MouseButtonJustPressed(button codes.MouseButton) bool {
	if !inp.enabled || !inp.mouseEnabled {
		return false
	}
	return inp.mouse.WasJustPressed(button)
}

// MouseButtonJustReleased returns true if the mouse button went up this
// frame.
func (inp *Input) MouseButtonJustReleased(button codes.MouseButton) bool {
	if !inp.enabled || !inp.mouseEnabled {
		return false
	}
	return inp.mouse.WasJustReleased(button)
}

// MouseButtonState returns the discrete state of the mouse button.
func (inp *Input) MouseButtonState(button codes.MouseButton) State {
	if !inp.enabled || !inp.mouseEnabled {
		return Up
	}
	return inp.mouse.ButtonState(button)
}

// PressedMouseButtons returns the currently held mouse buttons. The
// slice is reused and must not be retained.
func (inp *Input) PressedMouseButtons() []codes.MouseButton {
	if !inp.enabled || !inp.mouseEnabled {
		return nil
	}
	return inp.mouse.Pressed()
}

// MousePosition returns the cursor position in mapped coordinates.
func (inp *Input) MousePosition() (float32, float32) {
	if !inp.enabled || !inp.mouseEnabled {
		return 0, 0
	}
	return inp.mouse.Position()
}

// MouseDelta returns the cursor movement since the previous frame.
func (inp *Input) MouseDelta() (float32, float32) {
	if !inp.enabled || !inp.mouseEnabled {
		return 0, 0
	}
	return inp.mouse.Delta()
}

// MouseWheel returns the wheel movement accumulated during the current
// frame.
func (inp *Input) MouseWheel() (float32, float32, float32) {
	if !inp.enabled || !inp.mouseEnabled {
		return 0, 0, 0
	}
	return inp.mouse.Wheel()
}

// gamepad queries

// IsPadConnected returns true if the pad is connected.
func (inp *Input) IsPadConnected(pad int) bool {
	if !inp.enabled || !inp.gamepadEnabled {
		return false
	}
	return inp.gamepad.IsConnected(pad)
}

// IsPadButtonDown returns true if the button on the pad is held.
func (inp *Input) IsPadButtonDown(pad int, button codes.PadButton) bool {
	if !inp.enabled || !inp.gamepadEnabled {
		return false
	}
	return inp.gamepad.IsDown(pad, button)
}

// PadButtonJustPressed returns true if the button on the pad went down
// this frame.
func (inp *Input) PadButtonJustPressed(pad int, button codes.PadButton) bool {
	if !inp.enabled || !inp.gamepadEnabled {
		return false
	}
	return inp.gamepad.WasJustPressed(pad, button)
}

// PadButtonJustReleased returns true if the button on the pad went up
// this frame.
func (inp *Input) PadButtonJustReleased(pad int, button codes.PadButton) bool {
	if !inp.enabled || !inp.gamepadEnabled {
		return false
	}
	return inp.gamepad.WasJustReleased(pad, button)
}

// PadButtonState returns the discrete state of the button on the pad.
func (inp *Input) PadButtonState(pad int, button codes.PadButton) State {
	if !inp.enabled || !inp.gamepadEnabled {
		return Up
	}
	return inp.gamepad.ButtonState(pad, button)
}

// PressedPadButtons returns the currently held buttons on the pad. The
// slice is reused and must not be retained.
func (inp *Input) PressedPadButtons(pad int) []codes.PadButton {
	if !inp.enabled || !inp.gamepadEnabled {
		return nil
	}
	return inp.gamepad.Pressed(pad)
}

// PadAxis returns the deadzone-normalized value of the axis on the pad.
func (inp *Input) PadAxis(pad int, axis codes.PadAxis) float32 {
	if !inp.enabled || !inp.gamepadEnabled {
		return 0
	}
	return inp.gamepad.Axis(pad, axis)
}

// PadLeftStick returns the normalized position of the pad's left
// thumbstick.
func (inp *Input) PadLeftStick(pad int) (float32, float32) {
	if !inp.enabled || !inp.gamepadEnabled {
		return 0, 0
	}
	return inp.gamepad.LeftStick(pad)
}

// PadRightStick returns the normalized position of the pad's right
// thumbstick.
func (inp *Input) PadRightStick(pad int) (float32, float32) {
	if !inp.enabled || !inp.gamepadEnabled {
		return 0, 0
	}
	return inp.gamepad.RightStick(pad)
}

// PadTriggers returns the normalized values of the pad's triggers.
func (inp *Input) PadTriggers(pad int) (float32, float32) {
	if !inp.enabled || !inp.gamepadEnabled {
		return 0, 0
	}
	return inp.gamepad.Triggers(pad)
}

// prevent-default registry. the platform backend consults this to decide
// whether an event should also reach the host's native handling.

// SetPreventDefaultKey registers or unregisters a key whose native
// behaviour the platform backend should suppress.
func (inp *Input) SetPreventDefaultKey(key codes.Key, prevent bool) error {
	if key < 0 || key >= codes.KeyTotal {
		return curated.Errorf(UnknownKey, int(key))
	}
	return inp.preventKeys.Set(int(key), prevent)
}

// PreventsDefaultKey returns true if the key's native behaviour should be
// suppressed.
func (inp *Input) PreventsDefaultKey(key codes.Key) bool {
	return inp.preventKeys.Get(int(key))
}

// SetPreventDefaultMouseButton registers or unregisters a mouse button
// whose native behaviour the platform backend should suppress.
func (inp *Input) SetPreventDefaultMouseButton(button codes.MouseButton, prevent bool) error {
	if button < 0 || button >= codes.MouseButtonTotal {
		return curated.Errorf(UnknownMouseButton, int(button))
	}
	return inp.preventMouse.Set(int(button), prevent)
}

// PreventsDefaultMouseButton returns true if the mouse button's native
// behaviour should be suppressed.
func (inp *Input) PreventsDefaultMouseButton(button codes.MouseButton) bool {
	return inp.preventMouse.Get(int(button))
}

// DebugInfo returns a snapshot of the subsystem's internals. The
// snapshot is memoized and only rebuilt after something has changed, so
// it is cheap to call every frame even when a debug overlay is the only
// consumer.
func (inp *Input) DebugInfo() DebugInfo {
	if inp.debugStale {
		inp.debugInfo = DebugInfo{
			Frame:    inp.frame,
			Keyboard: inp.keyboard.debug(inp.keyboardEnabled),
			Mouse:    inp.mouse.debug(inp.mouseEnabled),
			Gamepad:  inp.gamepad.debug(inp.gamepadEnabled),
		}
		inp.debugStale = false
	}
	return inp.debugInfo
}
