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
	"testing"

	"github.com/kestrelgames/strobe/input/codes"
	"github.com/kestrelgames/strobe/test"
)

func TestTranslateByte(t *testing.T) {
	key, mod := translateByte('a')
	test.Equate(t, key, codes.KeyA)
	test.Equate(t, mod, codes.ModNone)

	key, mod = translateByte('Z')
	test.Equate(t, key, codes.KeyZ)
	test.Equate(t, mod, codes.ModShift)

	key, mod = translateByte('5')
	test.Equate(t, key, codes.Key5)
	test.Equate(t, mod, codes.ModNone)

	key, mod = translateByte(0x03)
	test.Equate(t, key, codes.KeyC)
	test.Equate(t, mod, codes.ModCtrl)

	// tab and enter are control characters but are reported as their own
	// keys
	key, mod = translateByte(0x09)
	test.Equate(t, key, codes.KeyTab)
	test.Equate(t, mod, codes.ModNone)
	key, _ = translateByte(0x0d)
	test.Equate(t, key, codes.KeyEnter)

	key, _ = translateByte(0x1b)
	test.Equate(t, key, codes.KeyEscape)
	key, _ = translateByte(0x7f)
	test.Equate(t, key, codes.KeyBackspace)
	key, _ = translateByte(' ')
	test.Equate(t, key, codes.KeySpace)

	key, _ = translateByte(0xff)
	test.Equate(t, key, codes.KeyNone)
}
