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

package sdl

import (
	"github.com/kestrelgames/strobe/input/codes"

	"github.com/veandco/go-sdl2/sdl"
)

var scancodeMap = map[sdl.Scancode]codes.Key{
	sdl.SCANCODE_A: codes.KeyA,
	sdl.SCANCODE_B: codes.KeyB,
	sdl.SCANCODE_C: codes.KeyC,
	sdl.SCANCODE_D: codes.KeyD,
	sdl.SCANCODE_E: codes.KeyE,
	sdl.SCANCODE_F: codes.KeyF,
	sdl.SCANCODE_G: codes.KeyG,
	sdl.SCANCODE_H: codes.KeyH,
	sdl.SCANCODE_I: codes.KeyI,
	sdl.SCANCODE_J: codes.KeyJ,
	sdl.SCANCODE_K: codes.KeyK,
	sdl.SCANCODE_L: codes.KeyL,
	sdl.SCANCODE_M: codes.KeyM,
	sdl.SCANCODE_N: codes.KeyN,
	sdl.SCANCODE_O: codes.KeyO,
	sdl.SCANCODE_P: codes.KeyP,
	sdl.SCANCODE_Q: codes.KeyQ,
	sdl.SCANCODE_R: codes.KeyR,
	sdl.SCANCODE_S: codes.KeyS,
	sdl.SCANCODE_T: codes.KeyT,
	sdl.SCANCODE_U: codes.KeyU,
	sdl.SCANCODE_V: codes.KeyV,
	sdl.SCANCODE_W: codes.KeyW,
	sdl.SCANCODE_X: codes.KeyX,
	sdl.SCANCODE_Y: codes.KeyY,
	sdl.SCANCODE_Z: codes.KeyZ,

	sdl.SCANCODE_0: codes.Key0,
	sdl.SCANCODE_1: codes.Key1,
	sdl.SCANCODE_2: codes.Key2,
	sdl.SCANCODE_3: codes.Key3,
	sdl.SCANCODE_4: codes.Key4,
	sdl.SCANCODE_5: codes.Key5,
	sdl.SCANCODE_6: codes.Key6,
	sdl.SCANCODE_7: codes.Key7,
	sdl.SCANCODE_8: codes.Key8,
	sdl.SCANCODE_9: codes.Key9,

	sdl.SCANCODE_F1:  codes.KeyF1,
	sdl.SCANCODE_F2:  codes.KeyF2,
	sdl.SCANCODE_F3:  codes.KeyF3,
	sdl.SCANCODE_F4:  codes.KeyF4,
	sdl.SCANCODE_F5:  codes.KeyF5,
	sdl.SCANCODE_F6:  codes.KeyF6,
	sdl.SCANCODE_F7:  codes.KeyF7,
	sdl.SCANCODE_F8:  codes.KeyF8,
	sdl.SCANCODE_F9:  codes.KeyF9,
	sdl.SCANCODE_F10: codes.KeyF10,
	sdl.SCANCODE_F11: codes.KeyF11,
	sdl.SCANCODE_F12: codes.KeyF12,

	sdl.SCANCODE_ESCAPE:       codes.KeyEscape,
	sdl.SCANCODE_RETURN:       codes.KeyEnter,
	sdl.SCANCODE_TAB:          codes.KeyTab,
	sdl.SCANCODE_BACKSPACE:    codes.KeyBackspace,
	sdl.SCANCODE_SPACE:        codes.KeySpace,
	sdl.SCANCODE_MINUS:        codes.KeyMinus,
	sdl.SCANCODE_EQUALS:       codes.KeyEquals,
	sdl.SCANCODE_LEFTBRACKET:  codes.KeyLeftBracket,
	sdl.SCANCODE_RIGHTBRACKET: codes.KeyRightBracket,
	sdl.SCANCODE_BACKSLASH:    codes.KeyBackslash,
	sdl.SCANCODE_SEMICOLON:    codes.KeySemicolon,
	sdl.SCANCODE_APOSTROPHE:   codes.KeyApostrophe,
	sdl.SCANCODE_GRAVE:        codes.KeyGrave,
	sdl.SCANCODE_COMMA:        codes.KeyComma,
	sdl.SCANCODE_PERIOD:       codes.KeyPeriod,
	sdl.SCANCODE_SLASH:        codes.KeySlash,
	sdl.SCANCODE_CAPSLOCK:     codes.KeyCapsLock,

	sdl.SCANCODE_INSERT:   codes.KeyInsert,
	sdl.SCANCODE_DELETE:   codes.KeyDelete,
	sdl.SCANCODE_HOME:     codes.KeyHome,
	sdl.SCANCODE_END:      codes.KeyEnd,
	sdl.SCANCODE_PAGEUP:   codes.KeyPageUp,
	sdl.SCANCODE_PAGEDOWN: codes.KeyPageDown,

	sdl.SCANCODE_RIGHT: codes.KeyRight,
	sdl.SCANCODE_LEFT:  codes.KeyLeft,
	sdl.SCANCODE_DOWN:  codes.KeyDown,
	sdl.SCANCODE_UP:    codes.KeyUp,

	sdl.SCANCODE_LSHIFT: codes.KeyLeftShift,
	sdl.SCANCODE_LCTRL:  codes.KeyLeftCtrl,
	sdl.SCANCODE_LALT:   codes.KeyLeftAlt,
	sdl.SCANCODE_LGUI:   codes.KeyLeftSuper,
	sdl.SCANCODE_RSHIFT: codes.KeyRightShift,
	sdl.SCANCODE_RCTRL:  codes.KeyRightCtrl,
	sdl.SCANCODE_RALT:   codes.KeyRightAlt,
	sdl.SCANCODE_RGUI:   codes.KeyRightSuper,

	sdl.SCANCODE_KP_0:        codes.KeyPad0,
	sdl.SCANCODE_KP_1:        codes.KeyPad1,
	sdl.SCANCODE_KP_2:        codes.KeyPad2,
	sdl.SCANCODE_KP_3:        codes.KeyPad3,
	sdl.SCANCODE_KP_4:        codes.KeyPad4,
	sdl.SCANCODE_KP_5:        codes.KeyPad5,
	sdl.SCANCODE_KP_6:        codes.KeyPad6,
	sdl.SCANCODE_KP_7:        codes.KeyPad7,
	sdl.SCANCODE_KP_8:        codes.KeyPad8,
	sdl.SCANCODE_KP_9:        codes.KeyPad9,
	sdl.SCANCODE_KP_DIVIDE:   codes.KeyPadDivide,
	sdl.SCANCODE_KP_MULTIPLY: codes.KeyPadMultiply,
	sdl.SCANCODE_KP_MINUS:    codes.KeyPadMinus,
	sdl.SCANCODE_KP_PLUS:     codes.KeyPadPlus,
	sdl.SCANCODE_KP_ENTER:    codes.KeyPadEnter,
	sdl.SCANCODE_KP_PERIOD:   codes.KeyPadPeriod,
}

// translateScancode maps an SDL scancode to the keyboard vocabulary.
// Unmapped scancodes translate to KeyNone.
func translateScancode(sc sdl.Scancode) codes.Key {
	if key, ok := scancodeMap[sc]; ok {
		return key
	}
	return codes.KeyNone
}
