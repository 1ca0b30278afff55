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

package testcases

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single band reading scenario.
type TestCase struct {
	Name        string // lowercase a-z and _ only
	Width       int    // raster width in pixels
	Height      int    // raster height in pixels
	BlockWidth  int
	BlockHeight int
	Encoding    string    // pixel encoding name, e.g. "int16"
	Section     int       // selects the valid value range
	NoData      *float64  // nil means the default for the encoding
	Extent      rect.Rect // world bounding box
	Transmitter vec.Vec2  // transmitter position in world units
	Resolution  float64   // world units per pixel
	Radius      float64   // coverage radius in world units
	Tiles       []Tile    // blocks without a tile are missing
	Want        []float64 // expected raster, row-major
}

// Tile is the pixel data stored for one block.
type Tile struct {
	Col, Row      int // block coordinates
	Width, Height int // tile size, at most the block size
	Values        []float64
}

// noData is the sentinel used by the int16 and float32 scenarios.
const noData = -9999

// nd returns a pointer to v, for the NoData field.
func nd(v float64) *float64 {
	return &v
}

// square returns the extent of an n×n raster with unit resolution.
func square(n float64) rect.Rect {
	return rect.Rect{LLx: 0, LLy: 0, URx: n, URy: n}
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
