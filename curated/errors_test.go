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

package curated_test

import (
	"errors"
	"testing"

	"github.com/kestrelgames/strobe/curated"
	"github.com/kestrelgames/strobe/test"
)

const testError = "test error: %s"
const otherError = "other error"

func TestIdentity(t *testing.T) {
	err := curated.Errorf(testError, "details")
	test.Equate(t, err.Error(), "test error: details")

	test.ExpectSuccess(t, curated.IsAny(err))
	test.ExpectSuccess(t, curated.Is(err, testError))
	test.ExpectSuccess(t, !curated.Is(err, otherError))

	// plain errors are not curated errors
	plain := errors.New("plain")
	test.ExpectSuccess(t, !curated.IsAny(plain))
	test.ExpectSuccess(t, !curated.Is(plain, testError))

	// nor is the nil error
	test.ExpectSuccess(t, !curated.IsAny(nil))
	test.ExpectSuccess(t, !curated.Is(nil, testError))
	test.ExpectSuccess(t, !curated.Has(nil, testError))
}

func TestWrapping(t *testing.T) {
	inner := curated.Errorf(otherError)
	outer := curated.Errorf(testError, inner)

	// Is() tests only the outermost error, Has() searches the chain
	test.ExpectSuccess(t, curated.Is(outer, testError))
	test.ExpectSuccess(t, !curated.Is(outer, otherError))
	test.ExpectSuccess(t, curated.Has(outer, testError))
	test.ExpectSuccess(t, curated.Has(outer, otherError))

	test.Equate(t, outer.Error(), "test error: other error")
}

func TestDeduplication(t *testing.T) {
	// adjacent duplicate message parts are folded when the message is
	// rendered
	inner := curated.Errorf("segment: %s", "detail")
	outer := curated.Errorf("segment: %s", inner)
	test.Equate(t, outer.Error(), "segment: detail")
}
