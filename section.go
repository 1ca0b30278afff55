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

// Section numbers with a known meaning.
const (
	SectionPathLoss = 0 // path loss in dB
	SectionAngle    = 1 // angle in hundredths of a degree
)

// ValidRange returns the physically meaningful value range of a raster
// section. Sections without a known range return ok == false.
func ValidRange(section int) (lo, hi float64, ok bool) {
	switch section {
	case SectionPathLoss:
		return 0, 200, true
	case SectionAngle:
		return -18000, 18000, true
	default:
		return math.NaN(), math.NaN(), false
	}
}

// DefaultNoData returns the no-data value conventionally used by
// prediction rasters with encoding enc.
func DefaultNoData(enc Encoding) (float64, bool) {
	switch enc {
	case Float32:
		return -9999, true // unmasked path loss
	case Int16:
		return -9999, true // unmasked angles
	case Uint8:
		return 200, true // masked loss and line-of-sight info
	default:
		return 0, false
	}
}

// valueRange is a valid range converted once per block.
type valueRange struct {
	lo, hi float64
	ok     bool
}

// noData is a snapshot of the no-data value of a band.
type noData struct {
	value float64
	ok    bool
}
