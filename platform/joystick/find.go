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

//go:build linux

package joystick

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const inputPath = "/dev/input"

// Find returns the paths of the joystick devices currently present, in
// device number order.
func Find() ([]string, error) {
	entries, err := os.ReadDir(inputPath)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "js") {
			paths = append(paths, filepath.Join(inputPath, e.Name()))
		}
	}
	sort.Strings(paths)

	return paths, nil
}
