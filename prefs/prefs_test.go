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

package prefs_test

import (
	"path/filepath"
	"testing"

	"github.com/kestrelgames/strobe/curated"
	"github.com/kestrelgames/strobe/input"
	"github.com/kestrelgames/strobe/input/codes"
	"github.com/kestrelgames/strobe/prefs"
	"github.com/kestrelgames/strobe/test"
)

func TestDefaults(t *testing.T) {
	p := prefs.NewPrefs()
	test.Equate(t, p.StickDeadzone, float32(input.DefaultStickDeadzone))
	test.Equate(t, p.TriggerDeadzone, float32(input.DefaultTriggerDeadzone))
	test.ExpectSuccess(t, p.Keyboard)
	test.ExpectSuccess(t, p.Mouse)
	test.ExpectSuccess(t, p.Gamepad)
	test.ExpectSuccess(t, !p.Verbose)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.yaml")

	p := prefs.NewPrefs()
	p.StickDeadzone = 0.25
	p.PreventDefault = []string{"Tab", "F11"}
	p.Verbose = true
	p.Mouse = false
	test.ExpectSuccess(t, p.Save(path))

	q := prefs.NewPrefs()
	test.ExpectSuccess(t, q.Load(path))
	test.Equate(t, q.StickDeadzone, float32(0.25))
	test.DemandEquality(t, len(q.PreventDefault), 2)
	test.Equate(t, q.PreventDefault[0], "Tab")
	test.Equate(t, q.PreventDefault[1], "F11")
	test.ExpectSuccess(t, q.Verbose)
	test.ExpectSuccess(t, !q.Mouse)

	// defaults survive a roundtrip untouched
	test.Equate(t, q.TriggerDeadzone, float32(input.DefaultTriggerDeadzone))
}

func TestLoadMissingFile(t *testing.T) {
	p := prefs.NewPrefs()
	test.ExpectSuccess(t, p.Load(filepath.Join(t.TempDir(), "does-not-exist.yaml")))
	test.Equate(t, p.StickDeadzone, float32(input.DefaultStickDeadzone))
}

func TestApply(t *testing.T) {
	inp := input.NewInput()

	p := prefs.NewPrefs()
	p.StickDeadzone = 0.3
	p.PreventDefault = []string{"Escape"}
	p.Gamepad = false
	test.ExpectSuccess(t, p.Apply(inp))

	test.Equate(t, inp.Gamepad().StickDeadzone(), float32(0.3))
	test.ExpectSuccess(t, inp.PreventsDefaultKey(codes.KeyEscape))
	test.ExpectSuccess(t, !inp.IsPadConnected(0))
}

func TestApplyValidation(t *testing.T) {
	inp := input.NewInput()

	p := prefs.NewPrefs()
	p.PreventDefault = []string{"NotAKey"}
	err := p.Apply(inp)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, prefs.UnknownKeyName))

	p = prefs.NewPrefs()
	p.StickDeadzone = 1.5
	test.ExpectFailure(t, p.Apply(inp))
	test.ExpectSuccess(t, curated.Is(p.Apply(inp), input.InvalidDeadzone))
}
