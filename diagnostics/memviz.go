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

package diagnostics

import (
	"io"

	"github.com/kestrelgames/strobe/input"

	"github.com/bradleyjkemp/memviz"
)

// DumpDebugGraph writes the input subsystem's debugging snapshot as a
// graphviz dot graph. Render with:
//
//	dot -Tpng -o debug.png
func DumpDebugGraph(output io.Writer, inp *input.Input) {
	info := inp.DebugInfo()
	memviz.Map(output, &info)
}
