// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

package snapshot

import (
	"io"

	"github.com/bradleyjkemp/memviz"
)

// Visualise writes the capture graph of the state, and every nested state,
// to the writer in the Graphviz DOT format. A nil state writes nothing.
func Visualise(w io.Writer, s State) {
	if s == nil {
		return
	}
	memviz.Map(w, s)
}
