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

import "errors"

var (
	// ErrUnsupportedEncoding is returned for a pixel encoding outside the
	// seven supported kinds.
	ErrUnsupportedEncoding = errors.New("unsupported pixel encoding")

	// ErrNoDataUndefined is returned when a block has no tile and the band
	// has no no-data value to fill it with.
	ErrNoDataUndefined = errors.New("no-data value undefined")

	// ErrTileTooLarge indicates a tile provider returned a tile which does
	// not fit into a block.
	ErrTileTooLarge = errors.New("tile larger than block")

	// ErrInvalidTile indicates a tile provider returned a tile with a
	// negative width or height.
	ErrInvalidTile = errors.New("invalid tile region")

	// ErrBlockOutOfRange is returned for block coordinates outside the
	// block grid of a band.
	ErrBlockOutOfRange = errors.New("block out of range")

	// ErrShortTile is returned when a tile holds fewer bytes than its
	// dimensions require.
	ErrShortTile = errors.New("tile data too short")

	// ErrNoValidPixels is returned by statistics on a band without any
	// valid pixels.
	ErrNoValidPixels = errors.New("no valid pixels")
)
