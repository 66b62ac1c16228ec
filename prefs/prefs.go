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

// Package prefs loads and saves user preferences for the input
// subsystem. Preferences live in a single YAML file; a missing file is
// not an error and simply yields the defaults.
package prefs

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/kestrelgames/strobe/curated"
	"github.com/kestrelgames/strobe/input"
	"github.com/kestrelgames/strobe/input/codes"

	"gopkg.in/yaml.v3"
)

// UnknownKeyName is returned by Apply() when the prevent-default list
// names a key outside the vocabulary.
const UnknownKeyName = "prefs: unknown key name (%s)"

// name of the directory the preferences file lives in, under the user's
// config directory
const configDir = "strobe"

// Prefs are the user tunable settings of the input subsystem.
type Prefs struct {
	StickDeadzone   float32 `yaml:"stickDeadzone"`
	TriggerDeadzone float32 `yaml:"triggerDeadzone"`

	// keys whose native behaviour the platform backend should suppress,
	// by name as reported by codes.Key.String()
	PreventDefault []string `yaml:"preventDefault"`

	Verbose bool `yaml:"verbose"`

	Keyboard bool `yaml:"keyboard"`
	Mouse    bool `yaml:"mouse"`
	Gamepad  bool `yaml:"gamepad"`
}

// NewPrefs returns a Prefs instance with every setting at its default.
func NewPrefs() *Prefs {
	return &Prefs{
		StickDeadzone:   input.DefaultStickDeadzone,
		TriggerDeadzone: input.DefaultTriggerDeadzone,
		Keyboard:        true,
		Mouse:           true,
		Gamepad:         true,
	}
}

// DefaultPath returns the usual location of the preferences file.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configDir, "input.yaml"), nil
}

// Load reads preferences from path. A missing file leaves the defaults
// untouched and is not an error.
func (p *Prefs) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, p)
}

// Save writes preferences to path, creating the containing directory as
// required.
func (p *Prefs) Save(path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// Apply pushes the preferences into a live input subsystem. Every
// setting is validated; the first invalid setting aborts the apply.
func (p *Prefs) Apply(inp *input.Input) error {
	if err := inp.Gamepad().SetStickDeadzone(p.StickDeadzone); err != nil {
		return err
	}
	if err := inp.Gamepad().SetTriggerDeadzone(p.TriggerDeadzone); err != nil {
		return err
	}

	for _, name := range p.PreventDefault {
		key, ok := codes.LookupKey(name)
		if !ok {
			return curated.Errorf(UnknownKeyName, name)
		}
		if err := inp.SetPreventDefaultKey(key, true); err != nil {
			return err
		}
	}

	inp.SetVerbose(p.Verbose)
	inp.SetKeyboardEnabled(p.Keyboard)
	inp.SetMouseEnabled(p.Mouse)
	inp.SetGamepadEnabled(p.Gamepad)

	return nil
}
