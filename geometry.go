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

import "fmt"

// Geometry describes a raster divided into blocks.
// Blocks on the right and bottom edges may extend beyond the raster.
type Geometry struct {
	Width, Height           int // raster size in pixels
	BlockWidth, BlockHeight int // block size in pixels
}

// Validate checks that all dimensions are positive.
func (g Geometry) Validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("invalid raster size %dx%d", g.Width, g.Height)
	}
	if g.BlockWidth <= 0 || g.BlockHeight <= 0 {
		return fmt.Errorf("invalid block size %dx%d", g.BlockWidth, g.BlockHeight)
	}
	return nil
}

// BlocksPerRow returns the number of block columns.
func (g Geometry) BlocksPerRow() int {
	return divRoundUp(g.Width, g.BlockWidth)
}

// BlocksPerColumn returns the number of block rows.
func (g Geometry) BlocksPerColumn() int {
	return divRoundUp(g.Height, g.BlockHeight)
}

// BlockPixels returns the number of pixels in one block.
func (g Geometry) BlockPixels() int {
	return g.BlockWidth * g.BlockHeight
}

// Contains reports whether (col, row) is a valid block coordinate.
func (g Geometry) Contains(col, row int) bool {
	return col >= 0 && row >= 0 && col < g.BlocksPerRow() && row < g.BlocksPerColumn()
}

// BlockOrigin returns the raster pixel coordinates of the top-left pixel
// of block (col, row).
func (g Geometry) BlockOrigin(col, row int) (x, y int) {
	return col * g.BlockWidth, row * g.BlockHeight
}

// visible returns the size of the part of block (col, row) which lies
// inside the raster.
func (g Geometry) visible(col, row int) (width, height int) {
	x, y := g.BlockOrigin(col, row)
	return min(g.BlockWidth, g.Width-x), min(g.BlockHeight, g.Height-y)
}

func divRoundUp(a, b int) int {
	return (a + b - 1) / b
}
