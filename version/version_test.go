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

package version_test

import (
	"testing"

	"github.com/kestrelgames/strobe/test"
	"github.com/kestrelgames/strobe/version"
)

func TestVersion(t *testing.T) {
	// the strings depend on how the test binary was built but they are
	// never empty
	ver, rev := version.Version()
	test.ExpectSuccess(t, ver == "unreleased" || ver == "local")
	test.ExpectSuccess(t, len(rev) > 0)
}
