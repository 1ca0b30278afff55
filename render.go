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

// Package predraster assembles the blocks of tiled prediction rasters.
//
// A prediction raster stores, for each section (path loss, angle, ...), a
// grid of tiles around a transmitter. A [Band] turns the tiles supplied
// by a [TileProvider] into fixed-size blocks: missing tiles become
// no-data blocks, smaller tiles are placed at the top-left corner of
// their block, and every block is masked to the disk around the
// transmitter and clamped to the valid range of its section.
package predraster

import (
	"context"
	"fmt"

	"seehuhn.de/go/predraster/testcases"
)

// RenderExample reads the whole raster of a test case.
// The tiles of the test case are stored with the encoding of the band.
func RenderExample(tc testcases.TestCase) (Buffer, error) {
	enc, err := ParseEncoding(tc.Encoding)
	if err != nil {
		return nil, err
	}

	tiles := NewMemTiles()
	for _, t := range tc.Tiles {
		buf, err := NewBuffer(enc, len(t.Values))
		if err != nil {
			return nil, err
		}
		for i, v := range t.Values {
			buf.Set(i, v)
		}
		raw, err := NewRawTile(t.Width, t.Height, buf)
		if err != nil {
			return nil, fmt.Errorf("tile (%d,%d): %w", t.Col, t.Row, err)
		}
		tiles.Put(t.Col, t.Row, raw)
	}

	band, err := NewBand(Config{
		Geometry: Geometry{
			Width:       tc.Width,
			Height:      tc.Height,
			BlockWidth:  tc.BlockWidth,
			BlockHeight: tc.BlockHeight,
		},
		Encoding: enc,
		Section:  tc.Section,
		Extent:   tc.Extent,
		Transmitter: Transmitter{
			Pos:        tc.Transmitter,
			Resolution: tc.Resolution,
			Radius:     tc.Radius,
		},
		NoData: tc.NoData,
	}, tiles)
	if err != nil {
		return nil, err
	}
	return band.ReadRaster(context.Background())
}
