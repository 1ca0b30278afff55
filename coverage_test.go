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
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestCoverageSmall(t *testing.T) {
	cases := []struct {
		tx   Transmitter
		want []RowSegment
	}{
		{leftColumns, []RowSegment{{0, 2}, {0, 2}, {}, {}}},
		{firstColumn, []RowSegment{{0, 1}, {0, 1}, {}, {}}},
		{ // disk centred on the raster
			Transmitter{Pos: vec.Vec2{X: 2, Y: 2}, Resolution: 1, Radius: 1.6},
			[]RowSegment{{1, 3}, {0, 4}, {0, 4}, {1, 3}},
		},
		{ // disk left of the raster
			Transmitter{Pos: vec.Vec2{X: -5, Y: 2}, Resolution: 1, Radius: 1},
			[]RowSegment{{}, {-6, -4}, {-6, -4}, {}},
		},
	}
	for i, c := range cases {
		cov := ComputeCoverage(c.tx, testExtent, 4)
		got := make([]RowSegment, cov.Rows())
		for r := range got {
			got[r] = cov.Row(r)
		}
		// normalise empty segments
		for r := range got {
			if got[r].Empty() {
				got[r] = RowSegment{}
			}
			if c.want[r].Empty() {
				c.want[r] = RowSegment{}
			}
		}
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("case %d: segments differ (-want +got):\n%s", i, d)
		}
	}
}

func TestCoverageBruteForce(t *testing.T) {
	extent := rect.Rect{LLx: 1000, LLy: -250, URx: 1100, URy: -180}
	for _, tx := range []Transmitter{
		{Pos: vec.Vec2{X: 1040, Y: -210}, Resolution: 1, Radius: 17.5},
		{Pos: vec.Vec2{X: 1050.25, Y: -200.75}, Resolution: 0.5, Radius: 9},
		{Pos: vec.Vec2{X: 1099, Y: -249}, Resolution: 2.5, Radius: 40},
		{Pos: vec.Vec2{X: 1003, Y: -183}, Resolution: 1, Radius: 0.2},
	} {
		res := tx.Resolution
		w := int(math.Ceil(extent.Dx() / res))
		h := int(math.Ceil(extent.Dy() / res))
		cov := ComputeCoverage(tx, extent, h)

		for y := range h {
			seg := cov.Row(y)
			cy := extent.URy - (float64(y)+0.5)*res
			for x := range w {
				cx := extent.LLx + (float64(x)+0.5)*res
				d := math.Hypot(cx-tx.Pos.X, cy-tx.Pos.Y)
				if math.Abs(d-tx.Radius) < 1e-9 {
					continue // on the circle
				}
				inside := d < tx.Radius
				inSeg := x >= seg.Start && x < seg.End
				if inside != inSeg {
					t.Errorf("tx %v: pixel (%d,%d) at distance %g: in segment %t",
						tx.Pos, x, y, d, inSeg)
				}
			}
		}
	}
}

// addDisk adds a circle of the given radius to r, using cubic Bézier
// curves.
func addDisk(r *vector.Rasterizer, cx, cy, radius float32) {
	const k = float32(0.5522847498)
	kr := k * radius

	r.MoveTo(cx, cy-radius)
	r.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
	r.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
	r.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
	r.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
	r.ClosePath()
}

// drawDisk renders the coverage disk of tx into a w×h alpha mask, in
// pixel coordinates of a raster covering extent.
func drawDisk(tx Transmitter, extent rect.Rect, w, h int) *image.Alpha {
	res := tx.Resolution
	r := vector.NewRasterizer(w, h)
	addDisk(r,
		float32((tx.Pos.X-extent.LLx)/res),
		float32((extent.URy-tx.Pos.Y)/res),
		float32(tx.Radius/res))
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(dst, dst.Bounds(), image.NewUniform(color.Alpha{255}), image.Point{})
	return dst
}

// TestCoverageVector compares the analytic mask with an anti-aliased
// rendering of the disk. Pixels which are mostly inside the disk must be
// covered, pixels which are mostly outside must not be.
func TestCoverageVector(t *testing.T) {
	const w, h = 64, 48
	extent := rect.Rect{LLx: 0, LLy: 0, URx: w * 10, URy: h * 10}
	for i, tx := range []Transmitter{
		{Pos: vec.Vec2{X: 320, Y: 240}, Resolution: 10, Radius: 200},
		{Pos: vec.Vec2{X: 3, Y: 7}, Resolution: 10, Radius: 311},
		{Pos: vec.Vec2{X: 517.3, Y: 94.1}, Resolution: 10, Radius: 123.4},
		{Pos: vec.Vec2{X: 800, Y: 240}, Resolution: 10, Radius: 250},
	} {
		t.Run(fmt.Sprintf("case%d", i), func(t *testing.T) {
			cov := ComputeCoverage(tx, extent, h)
			mask := drawDisk(tx, extent, w, h)

			for y := range h {
				seg := cov.Row(y)
				for x := range w {
					a := mask.AlphaAt(x, y).A
					inSeg := x >= seg.Start && x < seg.End
					switch {
					case a >= 200 && !inSeg:
						t.Errorf("pixel (%d,%d) has coverage %d but is masked", x, y, a)
					case a <= 55 && inSeg:
						t.Errorf("pixel (%d,%d) has coverage %d but is not masked", x, y, a)
					}
				}
			}
		})
	}
}

func TestCoverageRowsOutside(t *testing.T) {
	cov := ComputeCoverage(Transmitter{Pos: vec.Vec2{X: 2, Y: 2}, Resolution: 1, Radius: 100}, testExtent, 4)
	for _, r := range []int{-1, 4, 100} {
		if seg := cov.Row(r); !seg.Empty() {
			t.Errorf("row %d: got %v, want an empty segment", r, seg)
		}
	}
	if n := cov.Count(4); n != 16 {
		t.Errorf("Count = %d, want 16", n)
	}
}

func TestBlockSegment(t *testing.T) {
	cov := NewCoverage([]RowSegment{{-3, 10}, {5, 7}, {2, 2}, {12, 20}})
	cases := []struct {
		x0, r int
		want  RowSegment
	}{
		{0, 0, RowSegment{0, 4}},
		{8, 0, RowSegment{0, 2}},
		{12, 0, RowSegment{0, 0}},
		{4, 1, RowSegment{1, 3}},
		{0, 1, RowSegment{4, 4}},
		{0, 2, RowSegment{2, 2}},
		{16, 3, RowSegment{0, 4}},
		{0, 4, RowSegment{0, 0}},
	}
	for _, c := range cases {
		got := cov.BlockSegment(c.x0, c.r, 4)
		if got != c.want {
			t.Errorf("BlockSegment(%d, %d, 4) = %v, want %v", c.x0, c.r, got, c.want)
		}
		if got.Start < 0 || got.End > 4 {
			t.Errorf("BlockSegment(%d, %d, 4) = %v is not clipped", c.x0, c.r, got)
		}
	}
}

func TestGeoTransform(t *testing.T) {
	extent := rect.Rect{LLx: 10, LLy: 20, URx: 30, URy: 50}
	m := GeoTransform(extent, 2.5)

	// pixel (x, y) -> world
	apply := func(x, y float64) vec.Vec2 {
		return vec.Vec2{X: m[0]*x + m[2]*y + m[4], Y: m[1]*x + m[3]*y + m[5]}
	}
	if got := apply(0, 0); got != (vec.Vec2{X: 10, Y: 50}) {
		t.Errorf("top-left corner maps to %v", got)
	}
	if got := apply(8, 12); got != (vec.Vec2{X: 30, Y: 20}) {
		t.Errorf("bottom-right corner maps to %v", got)
	}
}
