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

package termkeys

import (
	"github.com/kestrelgames/strobe/input/codes"
)

// translateByte maps a single terminal byte to the keyboard vocabulary.
// An upper case letter implies the shift modifier; control characters
// imply ctrl. Escape sequences are not decoded, a lone escape byte maps
// to the escape key.
func translateByte(b byte) (codes.Key, codes.Mod) {
	switch {
	case b >= 'a' && b <= 'z':
		return codes.KeyA + codes.Key(b-'a'), codes.ModNone

	case b >= 'A' && b <= 'Z':
		return codes.KeyA + codes.Key(b-'A'), codes.ModShift

	case b == '0':
		return codes.Key0, codes.ModNone
	case b >= '1' && b <= '9':
		return codes.Key1 + codes.Key(b-'1'), codes.ModNone

	// ctrl-a to ctrl-z, with the exceptions that are indistinguishable
	// from their own keys
	case b >= 0x01 && b <= 0x1a:
		switch b {
		case 0x09:
			return codes.KeyTab, codes.ModNone
		case 0x0a, 0x0d:
			return codes.KeyEnter, codes.ModNone
		}
		return codes.KeyA + codes.Key(b-0x01), codes.ModCtrl
	}

	switch b {
	case 0x1b:
		return codes.KeyEscape, codes.ModNone
	case 0x7f, 0x08:
		return codes.KeyBackspace, codes.ModNone
	case ' ':
		return codes.KeySpace, codes.ModNone
	case '-':
		return codes.KeyMinus, codes.ModNone
	case '=':
		return codes.KeyEquals, codes.ModNone
	case '[':
		return codes.KeyLeftBracket, codes.ModNone
	case ']':
		return codes.KeyRightBracket, codes.ModNone
	case '\\':
		return codes.KeyBackslash, codes.ModNone
	case ';':
		return codes.KeySemicolon, codes.ModNone
	case '\'':
		return codes.KeyApostrophe, codes.ModNone
	case '`':
		return codes.KeyGrave, codes.ModNone
	case ',':
		return codes.KeyComma, codes.ModNone
	case '.':
		return codes.KeyPeriod, codes.ModNone
	case '/':
		return codes.KeySlash, codes.ModNone
	}

	return codes.KeyNone, codes.ModNone
}
