// seehuhn.de/go/predraster - tiled prediction raster blocks
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package predraster

import "math"

// postProcessRow masks and clamps one block row of width pixels starting
// at off. Pixels outside seg become the no-data value, pixels inside are
// clamped to vr unless they already hold the no-data value.
func (p Pixels[T]) postProcessRow(off, width int, seg RowSegment, nd noData, vr valueRange) {
	row := p[off : off+width]

	var noDataValue T
	var noDataNaN bool
	if nd.ok {
		_, _, isInt := limits[T]()
		noDataValue = fromFloat[T](nd.value)
		noDataNaN = !isInt && math.IsNaN(nd.value)
	}

	if nd.ok {
		for x := 0; x < seg.Start; x++ {
			row[x] = noDataValue
		}
	}

	if vr.ok {
		lo := fromFloat[T](vr.lo)
		hi := fromFloat[T](vr.hi)
		for x := seg.Start; x < seg.End; x++ {
			v := row[x]
			if nd.ok && (v == noDataValue || noDataNaN && math.IsNaN(float64(v))) {
				continue // keep existing gaps
			}
			if v < lo {
				row[x] = lo
			} else if v > hi {
				row[x] = hi
			}
		}
	}

	if nd.ok {
		for x := seg.End; x < width; x++ {
			row[x] = noDataValue
		}
	}
}
