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

package modalflag_test

import (
	"testing"

	"github.com/kestrelgames/strobe/modalflag"
	"github.com/kestrelgames/strobe/test"
)

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})

	r, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.Equate(t, r, modalflag.ParseContinue)
	test.Equate(t, md.Mode(), "")
	test.Equate(t, len(md.RemainingArgs()), 0)
}

func TestDefaultSubMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})
	md.AddSubModes("run", "term", "version")

	r, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.Equate(t, r, modalflag.ParseContinue)
	test.Equate(t, md.Mode(), "RUN")
}

func TestSubModeSelection(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"version"})
	md.AddSubModes("run", "term", "version")

	r, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.Equate(t, r, modalflag.ParseContinue)
	test.Equate(t, md.Mode(), "VERSION")

	// sub-mode matching is case insensitive
	md = modalflag.Modes{}
	md.NewArgs([]string{"TeRm"})
	md.AddSubModes("run", "term")
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.Equate(t, md.Mode(), "TERM")
}

func TestSubModeFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"run", "-scale", "3", "leftover"})
	md.AddSubModes("run", "term")

	r, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.Equate(t, r, modalflag.ParseContinue)
	test.Equate(t, md.Mode(), "RUN")

	// flags for the selected sub-mode are parsed in a second pass
	md.NewMode()
	scale := md.AddInt("scale", 1, "window scale")
	r, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.Equate(t, r, modalflag.ParseContinue)
	test.Equate(t, *scale, 3)
	test.Equate(t, md.GetArg(0), "leftover")
}

func TestPath(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"run"})
	md.AddSubModes("run", "term")
	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.Equate(t, md.Path(), "RUN")
}

func TestParseError(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-unknown"})

	r, err := md.Parse()
	test.ExpectFailure(t, err)
	test.Equate(t, r, modalflag.ParseError)
}

func TestHelp(t *testing.T) {
	md := modalflag.Modes{}
	tw := &test.CompareWriter{}
	md.Output = tw
	md.NewArgs([]string{"-help"})
	md.AddSubModes("run", "term")

	r, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.Equate(t, r, modalflag.ParseHelp)
	test.ExpectSuccess(t, len(tw.String()) > 0)
}
