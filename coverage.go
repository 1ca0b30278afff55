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

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// RowSegment is the half-open column interval [Start, End) of a raster
// row which lies inside the coverage disk.
type RowSegment struct {
	Start, End int
}

// Empty reports whether the segment contains no columns.
func (s RowSegment) Empty() bool {
	return s.End <= s.Start
}

// Transmitter describes the disk around a transmitter inside which
// predicted values are meaningful.
type Transmitter struct {
	Pos        vec.Vec2 // position in world units
	Resolution float64  // world units per pixel
	Radius     float64  // prediction radius in world units
}

// GeoTransform returns the matrix mapping pixel coordinates (x to the
// right, y downwards) to world coordinates for a raster covering extent
// with the given resolution. The raster is stored top-down.
func GeoTransform(extent rect.Rect, res float64) matrix.Matrix {
	return matrix.Matrix{res, 0, 0, -res, extent.LLx, extent.URy}
}

// Coverage holds one RowSegment per raster row.
// A Coverage is immutable and safe for concurrent use.
type Coverage struct {
	rows []RowSegment
}

// NewCoverage wraps precomputed row segments. The slice is not copied.
func NewCoverage(rows []RowSegment) *Coverage {
	return &Coverage{rows: rows}
}

// ComputeCoverage determines, for each of the given number of rows of a
// raster covering extent, the columns whose pixel centres lie inside the
// transmitter disk.
//
// Boundary pixels are decided without any tolerance: the first column is
// the smallest one whose centre is at or right of the left end of the
// chord, the end column is one past the largest one whose centre is at or
// left of the right end.
func ComputeCoverage(tx Transmitter, extent rect.Rect, rows int) *Coverage {
	res := tx.Resolution
	radius := tx.Radius
	radiusSquared := radius * radius

	// centre of the top-left pixel
	m := GeoTransform(extent, res)
	leftmost := m[0]*0.5 + m[2]*0.5 + m[4]
	topmost := m[1]*0.5 + m[3]*0.5 + m[5]

	segs := make([]RowSegment, rows)
	for r := range segs {
		y := topmost - float64(r)*res
		dy := math.Abs(y - tx.Pos.Y)
		if dy > radius {
			continue
		}

		dx := math.Sqrt(radiusSquared - dy*dy)
		segStart := tx.Pos.X - dx
		segEnd := tx.Pos.X + dx

		segs[r] = RowSegment{
			Start: int(math.Ceil((segStart - leftmost) / res)),
			End:   int(math.Floor((segEnd-leftmost)/res)) + 1,
		}
	}
	return &Coverage{rows: segs}
}

// Rows returns the number of rows.
func (c *Coverage) Rows() int {
	return len(c.rows)
}

// Row returns the segment of raster row r. Rows outside the raster are
// empty.
func (c *Coverage) Row(r int) RowSegment {
	if r < 0 || r >= len(c.rows) {
		return RowSegment{}
	}
	return c.rows[r]
}

// BlockSegment returns the segment of raster row r relative to a block
// whose first column is x0, clipped to [0, width).
func (c *Coverage) BlockSegment(x0, r, width int) RowSegment {
	seg := c.Row(r)
	return clipSegment(RowSegment{Start: seg.Start - x0, End: seg.End - x0}, width)
}

// Count returns the number of raster pixels inside the disk, restricted
// to columns [0, width).
func (c *Coverage) Count(width int) int {
	n := 0
	for _, seg := range c.rows {
		s := clipSegment(seg, width)
		n += s.End - s.Start
	}
	return n
}

func clipSegment(seg RowSegment, width int) RowSegment {
	return RowSegment{
		Start: max(0, min(width, seg.Start)),
		End:   max(0, min(width, seg.End)),
	}
}
