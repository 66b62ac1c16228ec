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

import (
	"strings"
)

// Key identifies one keyboard key. Valid keys are in [0, KeyTotal).
type Key int

// KeyNone is the value to use when no key is meant.
const KeyNone Key = -1

// The keyboard vocabulary. The ordering is arbitrary but fixed: codes
// index bit-vectors and state arrays so they must never be renumbered
// casually.
const (
	KeyA Key = iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeySpace
	KeyMinus
	KeyEquals
	KeyLeftBracket
	KeyRightBracket
	KeyBackslash
	KeySemicolon
	KeyApostrophe
	KeyGrave
	KeyComma
	KeyPeriod
	KeySlash
	KeyCapsLock

	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyRight
	KeyLeft
	KeyDown
	KeyUp

	KeyLeftShift
	KeyLeftCtrl
	KeyLeftAlt
	KeyLeftSuper
	KeyRightShift
	KeyRightCtrl
	KeyRightAlt
	KeyRightSuper

	KeyPad0
	KeyPad1
	KeyPad2
	KeyPad3
	KeyPad4
	KeyPad5
	KeyPad6
	KeyPad7
	KeyPad8
	KeyPad9
	KeyPadDivide
	KeyPadMultiply
	KeyPadMinus
	KeyPadPlus
	KeyPadEnter
	KeyPadPeriod

	// KeyTotal is the size of the keyboard vocabulary. It is not a valid
	// key.
	KeyTotal
)

var keyNames = [KeyTotal]string{
	KeyA: "A", KeyB: "B", KeyC: "C", KeyD: "D", KeyE: "E", KeyF: "F",
	KeyG: "G", KeyH: "H", KeyI: "I", KeyJ: "J", KeyK: "K", KeyL: "L",
	KeyM: "M", KeyN: "N", KeyO: "O", KeyP: "P", KeyQ: "Q", KeyR: "R",
	KeyS: "S", KeyT: "T", KeyU: "U", KeyV: "V", KeyW: "W", KeyX: "X",
	KeyY: "Y", KeyZ: "Z",

	Key0: "0", Key1: "1", Key2: "2", Key3: "3", Key4: "4",
	Key5: "5", Key6: "6", Key7: "7", Key8: "8", Key9: "9",

	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5",
	KeyF6: "F6", KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10",
	KeyF11: "F11", KeyF12: "F12",

	KeyEscape: "Escape", KeyEnter: "Enter", KeyTab: "Tab",
	KeyBackspace: "Backspace", KeySpace: "Space", KeyMinus: "Minus",
	KeyEquals: "Equals", KeyLeftBracket: "LeftBracket",
	KeyRightBracket: "RightBracket", KeyBackslash: "Backslash",
	KeySemicolon: "Semicolon", KeyApostrophe: "Apostrophe",
	KeyGrave: "Grave", KeyComma: "Comma", KeyPeriod: "Period",
	KeySlash: "Slash", KeyCapsLock: "CapsLock",

	KeyInsert: "Insert", KeyDelete: "Delete", KeyHome: "Home",
	KeyEnd: "End", KeyPageUp: "PageUp", KeyPageDown: "PageDown",

	KeyRight: "Right", KeyLeft: "Left", KeyDown: "Down", KeyUp: "Up",

	KeyLeftShift: "LeftShift", KeyLeftCtrl: "LeftCtrl",
	KeyLeftAlt: "LeftAlt", KeyLeftSuper: "LeftSuper",
	KeyRightShift: "RightShift", KeyRightCtrl: "RightCtrl",
	KeyRightAlt: "RightAlt", KeyRightSuper: "RightSuper",

	KeyPad0: "Pad0", KeyPad1: "Pad1", KeyPad2: "Pad2", KeyPad3: "Pad3",
	KeyPad4: "Pad4", KeyPad5: "Pad5", KeyPad6: "Pad6", KeyPad7: "Pad7",
	KeyPad8: "Pad8", KeyPad9: "Pad9", KeyPadDivide: "PadDivide",
	KeyPadMultiply: "PadMultiply", KeyPadMinus: "PadMinus",
	KeyPadPlus: "PadPlus", KeyPadEnter: "PadEnter",
	KeyPadPeriod: "PadPeriod",
}

func (k Key) String() string {
	if k < 0 || k >= KeyTotal {
		return "unknown"
	}
	return keyNames[k]
}

// lazily built reverse of the keyNames table
var keyLookup map[string]Key

// LookupKey finds the Key with the given name, as returned by the
// String() function. The boolean is false if the name is not part of the
// vocabulary.
func LookupKey(name string) (Key, bool) {
	if keyLookup == nil {
		keyLookup = make(map[string]Key, KeyTotal)
		for k, n := range keyNames {
			keyLookup[n] = Key(k)
		}
	}
	k, ok := keyLookup[name]
	return k, ok
}

// Mod is a bitmask of keyboard modifiers.
type Mod int

// ModNone is the empty modifier mask.
const ModNone Mod = 0

// List of valid keyboard modifiers.
const (
	ModShift Mod = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

func (m Mod) String() string {
	if m == ModNone {
		return "none"
	}

	s := strings.Builder{}
	if m&ModShift == ModShift {
		s.WriteString("shift+")
	}
	if m&ModCtrl == ModCtrl {
		s.WriteString("ctrl+")
	}
	if m&ModAlt == ModAlt {
		s.WriteString("alt+")
	}
	if m&ModSuper == ModSuper {
		s.WriteString("super+")
	}

	return strings.TrimSuffix(s.String(), "+")
}
